package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"oficina/internal/domain/admin"
	"oficina/internal/domain/client"
	"oficina/internal/domain/tenant"
	"oficina/internal/domain/ticket"
	"oficina/internal/infrastructure/persistence/models"
	"oficina/internal/infrastructure/persistence/testdb"
	"oficina/internal/shared/logger"
)

type repos struct {
	db         *gorm.DB
	admins     admin.Repository
	clients    client.Repository
	tickets    ticket.Repository
	updateLogs *UpdateLogRepository
	accessLogs *AccessLogRepository
}

func newRepos(t *testing.T) repos {
	t.Helper()
	gdb := testdb.Open(t)
	log := logger.NewNop()
	return repos{
		db:         gdb,
		admins:     NewAdminRepository(gdb, log),
		clients:    NewClientRepository(gdb, log),
		tickets:    NewTicketRepository(gdb, log),
		updateLogs: NewUpdateLogRepository(gdb, log).(*UpdateLogRepository),
		accessLogs: NewAccessLogRepository(gdb, log).(*AccessLogRepository),
	}
}

func (r repos) seedAdmin(t *testing.T, email string) *admin.Admin {
	t.Helper()
	a, err := admin.NewAdmin(email, "$2a$10$hash")
	require.NoError(t, err)
	require.NoError(t, r.admins.Create(context.Background(), a))
	return a
}

func (r repos) seedClient(t *testing.T, owner tenant.Owner, name, phone string) *client.Client {
	t.Helper()
	c, err := client.NewClient(client.Details{Name: name, Phone: phone}, owner)
	require.NoError(t, err)
	require.NoError(t, r.clients.Create(context.Background(), c))
	return c
}

func (r repos) seedTicket(t *testing.T, clientID uint, code, brand string) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(clientID, ticket.Details{
		Defect:   "tela quebrada",
		Category: "Celular",
		Brand:    brand,
		Model:    "Galaxy",
	}, "", code)
	require.NoError(t, err)
	require.NoError(t, r.tickets.Create(context.Background(), tk))
	return tk
}

func (r repos) backdateTicket(t *testing.T, id uint, at time.Time) {
	t.Helper()
	require.NoError(t, r.db.Model(&models.TicketModel{}).
		Where("id = ?", id).
		Update("data_criacao", at.UTC()).Error)
}
