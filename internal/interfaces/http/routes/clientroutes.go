package routes

import (
	"github.com/gin-gonic/gin"

	clienthandlers "oficina/internal/interfaces/http/handlers/client"
	"oficina/internal/interfaces/http/middleware"
)

type ClientRouteConfig struct {
	ClientHandler  *clienthandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupClientRoutes(engine *gin.Engine, config *ClientRouteConfig) {
	clients := engine.Group("/clientes")
	clients.Use(config.AuthMiddleware.RequireAuth())
	{
		clients.POST("", config.ClientHandler.Create)
		clients.GET("", config.ClientHandler.List)

		// static segments before /:id
		clients.GET("/search", config.ClientHandler.Search)

		clients.GET("/:id/fichas", config.ClientHandler.Tickets)
		clients.GET("/:id", config.ClientHandler.Get)
		clients.PUT("/:id", config.ClientHandler.Update)
		clients.DELETE("/:id", config.ClientHandler.Delete)
	}
}
