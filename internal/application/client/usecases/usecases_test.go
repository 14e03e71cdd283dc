package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oficina/internal/application/access"
	"oficina/internal/domain/client"
	"oficina/internal/domain/tenant"
	"oficina/internal/domain/ticket"
	"oficina/internal/infrastructure/persistence/testdb"
	"oficina/internal/infrastructure/repository"
	"oficina/internal/shared/constants"
	apperrors "oficina/internal/shared/errors"
	"oficina/internal/shared/logger"
)

type env struct {
	clients client.Repository
	tickets ticket.Repository
	guard   *access.Guard
}

func newEnv(t *testing.T) env {
	t.Helper()
	db := testdb.Open(t)
	log := logger.NewNop()
	e := env{
		clients: repository.NewClientRepository(db, log),
		tickets: repository.NewTicketRepository(db, log),
	}
	e.guard = access.NewGuard(e.clients, e.tickets, repository.NewUpdateLogRepository(db, log))
	return e
}

func (e env) seedClient(t *testing.T, owner tenant.Owner, name, phone string) *client.Client {
	t.Helper()
	c, err := client.NewClient(client.Details{Name: name, Phone: phone}, owner)
	require.NoError(t, err)
	require.NoError(t, e.clients.Create(context.Background(), c))
	return c
}

func (e env) seedTicket(t *testing.T, clientID uint, code string) {
	t.Helper()
	tk, err := ticket.NewTicket(clientID, ticket.Details{Defect: "sem som"}, "", code)
	require.NoError(t, err)
	require.NoError(t, e.tickets.Create(context.Background(), tk))
}

func strPtr(s string) *string { return &s }

func TestCreateClientUseCase(t *testing.T) {
	e := newEnv(t)
	uc := NewCreateClientUseCase(e.clients, logger.NewNop())

	got, err := uc.Execute(context.Background(), CreateClientCommand{
		AdminID: 7,
		Details: client.Details{Name: " Maria ", Phone: "(11) 99999-0000", Email: "Maria@Example.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Maria", got.Name)
	assert.Equal(t, "11999990000", got.Phone)
	assert.Equal(t, "maria@example.com", got.Email.String)
	assert.Equal(t, int64(7), got.AdminID.Int64)

	_, err = uc.Execute(context.Background(), CreateClientCommand{AdminID: 7, Details: client.Details{Name: "X", Phone: "123"}})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestListAndSearchClients(t *testing.T) {
	e := newEnv(t)
	e.seedClient(t, tenant.OwnedBy(7), "Zélia", "11900000001")
	e.seedClient(t, tenant.OwnedBy(9), "Zeca", "11900000002")
	e.seedClient(t, tenant.Unowned(), "Zara", "11900000003")
	ctx := context.Background()

	list, err := NewListClientsUseCase(e.clients, logger.NewNop()).Execute(ctx, ListClientsQuery{AdminID: 7, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), list.Total)

	search := NewSearchClientsUseCase(e.clients, logger.NewNop())
	found, err := search.Execute(ctx, 7, "119000")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Zara", found[0].Name)

	short, err := search.Execute(ctx, 7, " 1 ")
	require.NoError(t, err)
	assert.NotNil(t, short)
	assert.Empty(t, short)
}

func TestGetClientUseCase(t *testing.T) {
	e := newEnv(t)
	c := e.seedClient(t, tenant.OwnedBy(7), "Ana", "11900000001")
	for _, code := range []string{"CODE00000001", "CODE00000002", "CODE00000003"} {
		e.seedTicket(t, c.ID(), code)
	}
	uc := NewGetClientUseCase(e.guard, e.tickets, logger.NewNop())
	ctx := context.Background()

	detail, err := uc.Execute(ctx, GetClientQuery{AdminID: 7, ClientID: c.ID(), TicketLimit: 2})
	require.NoError(t, err)
	assert.Equal(t, "Ana", detail.Client.Name)
	require.Len(t, detail.Tickets, 2)
	assert.Equal(t, "CODE00000003", detail.Tickets[0].TrackingCode)

	_, err = uc.Execute(ctx, GetClientQuery{AdminID: 9, ClientID: c.ID()})
	assert.True(t, apperrors.IsNotFoundError(err))

	history, err := NewListClientTicketsUseCase(e.guard, e.tickets, logger.NewNop()).Execute(ctx, ListClientTicketsQuery{
		AdminID: 7, ClientID: c.ID(), Page: 2, PageSize: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), history.Total)
	require.Len(t, history.Items, 1)
	assert.Equal(t, "CODE00000001", history.Items[0].TrackingCode)
}

func TestGetClientUseCase_CapsTicketLimit(t *testing.T) {
	e := newEnv(t)
	c := e.seedClient(t, tenant.OwnedBy(7), "Ana", "11900000001")
	for i := 0; i <= constants.MaxPageSize; i++ {
		e.seedTicket(t, c.ID(), fmt.Sprintf("CODE%08d", i))
	}
	uc := NewGetClientUseCase(e.guard, e.tickets, logger.NewNop())

	detail, err := uc.Execute(context.Background(), GetClientQuery{AdminID: 7, ClientID: c.ID(), TicketLimit: 1 << 40})
	require.NoError(t, err)
	assert.Len(t, detail.Tickets, constants.MaxPageSize)
}

func TestUpdateClientUseCase(t *testing.T) {
	e := newEnv(t)
	c := e.seedClient(t, tenant.OwnedBy(7), "Ana", "11900000001")
	uc := NewUpdateClientUseCase(e.guard, e.clients, logger.NewNop())
	ctx := context.Background()

	got, err := uc.Execute(ctx, UpdateClientCommand{AdminID: 7, ClientID: c.ID(), Patch: client.Patch{
		Name:     strPtr("  Ana Paula "),
		District: strPtr("Centro"),
	}})
	require.NoError(t, err)
	assert.Equal(t, "Ana Paula", got.Name)
	assert.Equal(t, "11900000001", got.Phone)

	stored, err := e.clients.GetByID(ctx, c.ID())
	require.NoError(t, err)
	assert.Equal(t, "Centro", stored.District())
	assert.Equal(t, uint(7), *stored.Owner().AdminID())

	_, err = uc.Execute(ctx, UpdateClientCommand{AdminID: 9, ClientID: c.ID(), Patch: client.Patch{Name: strPtr("Hijack")}})
	assert.True(t, apperrors.IsNotFoundError(err))

	_, err = uc.Execute(ctx, UpdateClientCommand{AdminID: 7, ClientID: c.ID(), Patch: client.Patch{Phone: strPtr("abc")}})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestDeleteClientUseCase(t *testing.T) {
	e := newEnv(t)
	c := e.seedClient(t, tenant.OwnedBy(7), "Ana", "11900000001")
	e.seedTicket(t, c.ID(), "CODE00000001")
	uc := NewDeleteClientUseCase(e.guard, e.clients, logger.NewNop())
	ctx := context.Background()

	assert.True(t, apperrors.IsNotFoundError(uc.Execute(ctx, 9, c.ID())))

	require.NoError(t, uc.Execute(ctx, 7, c.ID()))
	tk, err := e.tickets.GetByCode(ctx, "CODE00000001")
	require.NoError(t, err)
	assert.Nil(t, tk)

	assert.True(t, apperrors.IsNotFoundError(uc.Execute(ctx, 7, c.ID())))
}
