package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "oficina/internal/interfaces/http/handlers/ticket"
	"oficina/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler     *tickethandlers.TicketHandler
	AuthMiddleware    *middleware.AuthMiddleware
	PublicRateLimiter *middleware.RateLimiter
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	// Public tracking page, no authentication.
	engine.GET("/rastreio/:codigo", config.PublicRateLimiter.Limit(), config.TicketHandler.TrackTicket)

	engine.GET("/minhas-fichas", config.AuthMiddleware.RequireAuth(), config.TicketHandler.ListMyTickets)

	tickets := engine.Group("/fichas")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		tickets.GET("", config.TicketHandler.ListTickets)

		// Register specific paths BEFORE parameterized paths
		tickets.GET("/estatisticas", config.TicketHandler.Stats)
		tickets.GET("/codigo/:codigo", config.TicketHandler.GetTicketByCode)

		// POST /fichas/:id opens a ticket for client :id. The wildcard shares
		// its name with /:id/logs because gin requires one name per segment.
		tickets.POST("/:id", config.TicketHandler.CreateTicket)

		tickets.GET("/:id/detail", config.TicketHandler.GetTicketDetail)
		tickets.GET("/:id/pdf", config.TicketHandler.DownloadReceipt)
		tickets.POST("/:id/logs", config.TicketHandler.AddLog)
		tickets.GET("/:id/logs", config.TicketHandler.ListLogs)
		tickets.PUT("/:id", config.TicketHandler.UpdateTicket)
	}
}
