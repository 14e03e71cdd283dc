package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oficina/internal/domain/tenant"
	"oficina/internal/domain/ticket"
	vo "oficina/internal/domain/ticket/valueobjects"
	apperrors "oficina/internal/shared/errors"
)

func summaryCodes(items []ticket.Summary) []string {
	codes := make([]string, len(items))
	for i, s := range items {
		codes[i] = s.Ticket.TrackingCode()
	}
	return codes
}

func TestTicketRepository_CreateRejectsDuplicateCode(t *testing.T) {
	r := newRepos(t)
	c := r.seedClient(t, tenant.Unowned(), "Ana", "11999990001")
	r.seedTicket(t, c.ID(), "DUPLICATE01", "Samsung")

	dup, err := ticket.NewTicket(c.ID(), ticket.Details{Defect: "x"}, "", "DUPLICATE01")
	require.NoError(t, err)
	err = r.tickets.Create(context.Background(), dup)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestTicketRepository_GetByCodeAndExists(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	c := r.seedClient(t, tenant.Unowned(), "Ana", "11999990001")
	created := r.seedTicket(t, c.ID(), "ABCDEF123456", "Samsung")

	got, err := r.tickets.GetByCode(ctx, " ABCDEF123456 ")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID(), got.ID())
	assert.Equal(t, vo.StatusOpen, got.Status())
	assert.Equal(t, "tela quebrada", got.Defect())

	missing, err := r.tickets.GetByCode(ctx, "NOPE")
	require.NoError(t, err)
	assert.Nil(t, missing)

	exists, err := r.tickets.ExistsByCode(ctx, "ABCDEF123456")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = r.tickets.ExistsByCode(ctx, "OTHER")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTicketRepository_Update(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	c := r.seedClient(t, tenant.Unowned(), "Ana", "11999990001")
	tk := r.seedTicket(t, c.ID(), "CODE1", "Samsung")
	r.seedTicket(t, c.ID(), "CODE2", "Apple")

	status := vo.StatusInRepair
	value := 150.5
	_, err := tk.Apply(ticket.Patch{Status: &status, Value: &value})
	require.NoError(t, err)
	require.NoError(t, r.tickets.Update(ctx, tk))

	got, err := r.tickets.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusInRepair, got.Status())
	require.NotNil(t, got.Value())
	assert.Equal(t, 150.5, *got.Value())

	taken := "CODE2"
	_, err = got.Apply(ticket.Patch{TrackingCode: &taken})
	require.NoError(t, err)
	assert.True(t, apperrors.IsConflictError(r.tickets.Update(ctx, got)))
}

func TestTicketRepository_ListAppliesOwnershipAndFilters(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	a7 := r.seedAdmin(t, "seven@x.com")
	a9 := r.seedAdmin(t, "nine@x.com")
	mine := r.seedClient(t, tenant.OwnedBy(a7.ID()), "Ana Souza", "11999990001")
	theirs := r.seedClient(t, tenant.OwnedBy(a9.ID()), "Bruno", "11999990002")
	orphan := r.seedClient(t, tenant.Unowned(), "Carla", "11999990003")

	old := r.seedTicket(t, mine.ID(), "MINE0001", "Samsung")
	r.seedTicket(t, mine.ID(), "MINE0002", "Apple")
	r.seedTicket(t, theirs.ID(), "THEIRS01", "Samsung")
	r.seedTicket(t, orphan.ID(), "ORPHAN01", "Motorola")
	r.backdateTicket(t, old.ID(), time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))

	all, total, err := r.tickets.List(ctx, ticket.ListFilter{AdminID: a7.ID(), Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, []string{"ORPHAN01", "MINE0002", "MINE0001"}, summaryCodes(all))
	assert.Equal(t, "Carla", all[0].ClientName)

	byClient, _, err := r.tickets.List(ctx, ticket.ListFilter{AdminID: a7.ID(), Query: "souza", Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"MINE0002", "MINE0001"}, summaryCodes(byClient))

	byBrand, _, err := r.tickets.List(ctx, ticket.ListFilter{AdminID: a7.ID(), Query: "SAMS", Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"MINE0001"}, summaryCodes(byBrand))

	byStatus, _, err := r.tickets.List(ctx, ticket.ListFilter{AdminID: a7.ID(), Status: "open", Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, byStatus, 3)

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	byDate, total, err := r.tickets.List(ctx, ticket.ListFilter{AdminID: a7.ID(), CreatedFrom: &from, CreatedTo: &to, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, []string{"MINE0001"}, summaryCodes(byDate))

	hidden, total, err := r.tickets.List(ctx, ticket.ListFilter{AdminID: a9.ID(), Query: "MINE", Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, hidden)
}

func TestTicketRepository_ListByClient(t *testing.T) {
	r := newRepos(t)
	c := r.seedClient(t, tenant.Unowned(), "Ana", "11999990001")
	r.seedTicket(t, c.ID(), "A1", "X")
	r.seedTicket(t, c.ID(), "A2", "X")
	r.seedTicket(t, c.ID(), "A3", "X")

	got, total, err := r.tickets.ListByClient(context.Background(), c.ID(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, got, 2)
	assert.Equal(t, "A3", got[0].TrackingCode())
	assert.Equal(t, "A2", got[1].TrackingCode())
}

func TestTicketRepository_OwnedQueriesIgnoreOrphans(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	a := r.seedAdmin(t, "a@x.com")
	mine := r.seedClient(t, tenant.OwnedBy(a.ID()), "Ana", "11999990001")
	orphan := r.seedClient(t, tenant.Unowned(), "Carla", "11999990003")

	first := r.seedTicket(t, mine.ID(), "MINE1", "X")
	r.seedTicket(t, mine.ID(), "MINE2", "X")
	r.seedTicket(t, orphan.ID(), "ORPH1", "X")
	r.backdateTicket(t, first.ID(), time.Now().UTC().AddDate(-2, 0, 0))

	owned, err := r.tickets.ListOwnedBy(ctx, a.ID(), 1000)
	require.NoError(t, err)
	require.Len(t, owned, 2)
	assert.Equal(t, "MINE2", owned[0].TrackingCode())

	limited, err := r.tickets.ListOwnedBy(ctx, a.ID(), 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	dates, err := r.tickets.CreatedSince(ctx, a.ID(), time.Now().UTC().AddDate(0, -1, 0))
	require.NoError(t, err)
	require.Len(t, dates, 1)
	assert.WithinDuration(t, time.Now().UTC(), dates[0], time.Minute)
}
