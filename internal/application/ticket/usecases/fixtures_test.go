package usecases

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"oficina/internal/application/access"
	"oficina/internal/domain/accesslog"
	"oficina/internal/domain/client"
	"oficina/internal/domain/tenant"
	"oficina/internal/domain/ticket"
	"oficina/internal/domain/updatelog"
	"oficina/internal/infrastructure/persistence/models"
	"oficina/internal/infrastructure/persistence/testdb"
	"oficina/internal/infrastructure/repository"
	"oficina/internal/shared/db"
	"oficina/internal/shared/logger"
)

type fixture struct {
	db         *gorm.DB
	clients    client.Repository
	tickets    ticket.Repository
	logs       updatelog.Repository
	accessLogs accesslog.Repository
	guard      *access.Guard
	txMgr      *db.TransactionManager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gdb := testdb.Open(t)
	log := logger.NewNop()
	f := &fixture{
		db:         gdb,
		clients:    repository.NewClientRepository(gdb, log),
		tickets:    repository.NewTicketRepository(gdb, log),
		logs:       repository.NewUpdateLogRepository(gdb, log),
		accessLogs: repository.NewAccessLogRepository(gdb, log),
		txMgr:      db.NewTransactionManager(gdb),
	}
	f.guard = access.NewGuard(f.clients, f.tickets, f.logs)
	return f
}

func (f *fixture) seedClient(t *testing.T, owner tenant.Owner, email string) *client.Client {
	t.Helper()
	c, err := client.NewClient(client.Details{Name: "Ana", Phone: "11900000001", Email: email}, owner)
	require.NoError(t, err)
	require.NoError(t, f.clients.Create(context.Background(), c))
	return c
}

func (f *fixture) seedTicket(t *testing.T, clientID uint, code string) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(clientID, ticket.Details{Defect: "não liga", Brand: "Motorola", Model: "G8"}, "", code)
	require.NoError(t, err)
	require.NoError(t, f.tickets.Create(context.Background(), tk))
	return tk
}

func (f *fixture) backdate(t *testing.T, ticketID uint, at time.Time) {
	t.Helper()
	require.NoError(t, f.db.Model(&models.TicketModel{}).
		Where("id = ?", ticketID).
		Update("data_criacao", at.UTC()).Error)
}

type recordingNotifier struct {
	mu      sync.Mutex
	created []string
}

func (n *recordingNotifier) TicketCreated(_ *client.Client, t *ticket.Ticket) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.created = append(n.created, t.TrackingCode())
}

type mockReceiptRenderer struct {
	RenderFunc func(t *ticket.Ticket, c *client.Client) ([]byte, error)
}

func (m *mockReceiptRenderer) Render(t *ticket.Ticket, c *client.Client) ([]byte, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(t, c)
	}
	return []byte("%PDF-1.3"), nil
}

type failingAccessLogRepository struct{}

func (failingAccessLogRepository) Create(context.Context, *accesslog.AccessLog) error {
	return errors.New("disk full")
}

func (failingAccessLogRepository) ListByAdmin(context.Context, uint, int, int) ([]*accesslog.AccessLog, int64, error) {
	return nil, 0, nil
}

func strPtr(s string) *string { return &s }
