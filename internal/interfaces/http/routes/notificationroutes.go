package routes

import (
	"github.com/gin-gonic/gin"

	"oficina/internal/interfaces/http/handlers"
	"oficina/internal/interfaces/http/middleware"
)

type NotificationRouteConfig struct {
	NotificationHandler *handlers.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

func SetupNotificationRoutes(engine *gin.Engine, config *NotificationRouteConfig) {
	notifications := engine.Group("/notificacoes")
	notifications.Use(config.AuthMiddleware.RequireAuth())
	{
		notifications.POST("/email", config.NotificationHandler.SendUpdateEmail)
	}
}
