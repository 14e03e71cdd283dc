package http

import (
	"oficina/internal/domain/accesslog"
	"oficina/internal/domain/admin"
	"oficina/internal/domain/client"
	"oficina/internal/domain/ticket"
	"oficina/internal/domain/updatelog"
	"oficina/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	adminRepo     admin.Repository
	clientRepo    client.Repository
	ticketRepo    ticket.Repository
	updateLogRepo updatelog.Repository
	accessLogRepo accesslog.Repository
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		adminRepo:     repository.NewAdminRepository(c.db, c.log),
		clientRepo:    repository.NewClientRepository(c.db, c.log),
		ticketRepo:    repository.NewTicketRepository(c.db, c.log),
		updateLogRepo: repository.NewUpdateLogRepository(c.db, c.log),
		accessLogRepo: repository.NewAccessLogRepository(c.db, c.log),
	}
}
