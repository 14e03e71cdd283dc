package http

import (
	"time"

	"oficina/internal/interfaces/http/handlers"
	adminHandlers "oficina/internal/interfaces/http/handlers/admin"
	clientHandlers "oficina/internal/interfaces/http/handlers/client"
	ticketHandlers "oficina/internal/interfaces/http/handlers/ticket"
	"oficina/internal/interfaces/http/middleware"
)

// allHandlers holds every HTTP handler.
type allHandlers struct {
	healthHandler       *handlers.HealthHandler
	notificationHandler *handlers.NotificationHandler
	adminHandler        *adminHandlers.Handler
	clientHandler       *clientHandlers.Handler
	ticketHandler       *ticketHandlers.TicketHandler
}

func (c *Container) initHandlers() {
	u := c.ucs
	log := c.log

	c.authMiddleware = middleware.NewAuthMiddleware(c.svcs.jwtSvc, c.cfg.Auth.Cookie, log)
	c.publicRateLimiter = middleware.NewRateLimiter(c.svcs.store, "rastreio", c.cfg.RateLimit.PublicPerMinute, time.Minute, log)

	c.hdlrs = &allHandlers{
		healthHandler:       handlers.NewHealthHandler(&gormPinger{db: c.db}, log),
		notificationHandler: handlers.NewNotificationHandler(u.sendUpdateEmailUC, log),
		adminHandler: adminHandlers.NewHandler(
			u.loginUC, u.getProfileUC, u.uploadPhotoUC, u.listAccessLogsUC,
			c.cfg.Auth.Cookie, c.svcs.photos.MaxBytes(), log,
		),
		clientHandler: clientHandlers.NewHandler(
			u.createClientUC, u.listClientsUC, u.searchClientsUC, u.getClientUC,
			u.listClientTicketsUC, u.updateClientUC, u.deleteClientUC, log,
		),
		ticketHandler: ticketHandlers.NewTicketHandler(
			u.createTicketUC, u.listTicketsUC, u.listMyTicketsUC, u.getTicketByCodeUC,
			u.getTicketDetailUC, u.trackTicketUC, u.updateTicketUC, u.receiptUC,
			u.addUpdateLogUC, u.listUpdateLogsUC, u.ticketStatsUC, log,
		),
	}
}
