package http

import (
	"github.com/gin-gonic/gin"

	"oficina/internal/interfaces/http/middleware"
	"oficina/internal/interfaces/http/routes"
)

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", r.hdlrs.healthHandler.Health)

	// Uploaded profile photos are served from the static directory.
	if r.cfg.Server.StaticDir != "" {
		r.engine.Static("/static", r.cfg.Server.StaticDir)
	}

	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		AdminHandler:   r.hdlrs.adminHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupClientRoutes(r.engine, &routes.ClientRouteConfig{
		ClientHandler:  r.hdlrs.clientHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:     r.hdlrs.ticketHandler,
		AuthMiddleware:    r.authMiddleware,
		PublicRateLimiter: r.publicRateLimiter,
	})

	routes.SetupNotificationRoutes(r.engine, &routes.NotificationRouteConfig{
		NotificationHandler: r.hdlrs.notificationHandler,
		AuthMiddleware:      r.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
