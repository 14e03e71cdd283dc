package routes

import (
	"github.com/gin-gonic/gin"

	adminhandlers "oficina/internal/interfaces/http/handlers/admin"
	"oficina/internal/interfaces/http/middleware"
)

type AdminRouteConfig struct {
	AdminHandler   *adminhandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupAdminRoutes(engine *gin.Engine, config *AdminRouteConfig) {
	engine.POST("/admin/login", config.AdminHandler.Login)

	authed := engine.Group("")
	authed.Use(config.AuthMiddleware.RequireAuth())
	{
		authed.GET("/usuario/me", config.AdminHandler.Me)
		authed.POST("/upload-foto", config.AdminHandler.UploadPhoto)
		authed.GET("/logs", config.AdminHandler.AccessLogs)
	}
}
