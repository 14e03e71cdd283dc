package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oficina/internal/domain/accesslog"
	"oficina/internal/domain/client"
	"oficina/internal/domain/tenant"
	"oficina/internal/domain/ticket"
	vo "oficina/internal/domain/ticket/valueobjects"
	"oficina/internal/domain/updatelog"
	apperrors "oficina/internal/shared/errors"
	"oficina/internal/shared/logger"
)

func TestListTicketsUseCase(t *testing.T) {
	f := newFixture(t)
	mine := f.seedClient(t, tenant.OwnedBy(7), "")
	other := f.seedClient(t, tenant.OwnedBy(9), "")
	orphan := f.seedClient(t, tenant.Unowned(), "")
	old := f.seedTicket(t, mine.ID(), "CODE00000001")
	f.seedTicket(t, mine.ID(), "CODE00000002")
	f.seedTicket(t, other.ID(), "CODE00000003")
	f.seedTicket(t, orphan.ID(), "CODE00000004")
	f.backdate(t, old.ID(), time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC))

	uc := NewListTicketsUseCase(f.tickets, logger.NewNop())
	ctx := context.Background()

	all, err := uc.Execute(ctx, ListTicketsQuery{AdminID: 7, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), all.Total)
	assert.Equal(t, "CODE00000004", all.Items[0].TrackingCode)
	assert.Equal(t, "Ana", all.Items[0].ClientName)

	recent, err := uc.Execute(ctx, ListTicketsQuery{AdminID: 7, CreatedFrom: "2025-01-01", CreatedTo: "not-a-date", Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), recent.Total)

	byCode, err := uc.Execute(ctx, ListTicketsQuery{AdminID: 7, Query: "00000003", Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Zero(t, byCode.Total)
	assert.NotNil(t, byCode.Items)
}

func TestListMyTicketsUseCase(t *testing.T) {
	f := newFixture(t)
	mine := f.seedClient(t, tenant.OwnedBy(7), "")
	orphan := f.seedClient(t, tenant.Unowned(), "")
	f.seedTicket(t, mine.ID(), "CODE00000001")
	f.seedTicket(t, mine.ID(), "CODE00000002")
	f.seedTicket(t, mine.ID(), "CODE00000003")
	f.seedTicket(t, orphan.ID(), "CODE00000004")

	uc := NewListMyTicketsUseCase(f.tickets, logger.NewNop())
	got, err := uc.Execute(context.Background(), ListMyTicketsQuery{AdminID: 7, Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Total)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "CODE00000001", got.Items[0].TrackingCode)

	past, err := uc.Execute(context.Background(), ListMyTicketsQuery{AdminID: 7, Page: 5, PageSize: 2})
	require.NoError(t, err)
	assert.Empty(t, past.Items)

	var huge *ListMyTicketsResult
	assert.NotPanics(t, func() {
		huge, err = uc.Execute(context.Background(), ListMyTicketsQuery{AdminID: 7, Page: 461168601842738792, PageSize: 20})
	})
	require.NoError(t, err)
	assert.Empty(t, huge.Items)
	assert.Equal(t, int64(3), huge.Total)
}

func TestGetTicketByCodeAndTrack(t *testing.T) {
	f := newFixture(t)
	c := f.seedClient(t, tenant.OwnedBy(7), "")
	tk := f.seedTicket(t, c.ID(), "CODE00000001")
	_, err := tk.Apply(ticket.Patch{PrivateNote: strPtr("cliente difícil"), PublicNote: strPtr("aguardando peça")})
	require.NoError(t, err)
	require.NoError(t, f.tickets.Update(context.Background(), tk))
	ctx := context.Background()

	byCode := NewGetTicketByCodeUseCase(f.guard, logger.NewNop())
	got, err := byCode.Execute(ctx, 7, "CODE00000001")
	require.NoError(t, err)
	assert.Equal(t, "cliente difícil", got.PrivateNote.String)

	_, err = byCode.Execute(ctx, 9, "CODE00000001")
	assert.True(t, apperrors.IsNotFoundError(err))

	track := NewTrackTicketUseCase(f.tickets, logger.NewNop())
	public, err := track.Execute(ctx, " CODE00000001 ")
	require.NoError(t, err)
	assert.Equal(t, "aguardando peça", public.PublicNote.String)
	assert.Equal(t, "Open", public.StatusLabel)

	_, err = track.Execute(ctx, "NOPE")
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestUpdateTicketUseCase(t *testing.T) {
	f := newFixture(t)
	c := f.seedClient(t, tenant.OwnedBy(7), "")
	tk := f.seedTicket(t, c.ID(), "CODE00000001")
	f.seedTicket(t, c.ID(), "CODE00000002")
	uc := NewUpdateTicketUseCase(f.guard, f.tickets, f.logs, logger.NewNop())
	ctx := context.Background()
	status := vo.StatusInRepair

	got, err := uc.Execute(ctx, UpdateTicketCommand{AdminID: 7, TicketID: tk.ID(), Patch: ticket.Patch{
		Status: &status,
		Brand:  strPtr(" Samsung "),
	}})
	require.NoError(t, err)
	assert.Equal(t, "IN_REPAIR", got.Status)
	assert.Equal(t, "Samsung", got.Brand)

	logs, err := f.logs.ListByTicket(ctx, tk.ID())
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "marca: 'Motorola' -> 'Samsung'; status: 'OPEN' -> 'IN_REPAIR'", logs[0].Description())

	_, err = uc.Execute(ctx, UpdateTicketCommand{AdminID: 7, TicketID: tk.ID(), Patch: ticket.Patch{Brand: strPtr("Samsung")}})
	require.NoError(t, err)
	logs, err = f.logs.ListByTicket(ctx, tk.ID())
	require.NoError(t, err)
	assert.Len(t, logs, 1, "no-op update writes no history")

	_, err = uc.Execute(ctx, UpdateTicketCommand{AdminID: 7, TicketID: tk.ID(), Patch: ticket.Patch{TrackingCode: strPtr("CODE00000002")}})
	assert.True(t, apperrors.IsConflictError(err))

	_, err = uc.Execute(ctx, UpdateTicketCommand{AdminID: 9, TicketID: tk.ID(), Patch: ticket.Patch{Brand: strPtr("LG")}})
	assert.True(t, apperrors.IsNotFoundError(err))
}

type failingUpdateLogRepository struct {
	updatelog.Repository
}

func (failingUpdateLogRepository) Create(context.Context, *updatelog.UpdateLog) error {
	return errors.New("log table locked")
}

func TestUpdateTicketUseCase_HistoryFailureKeepsUpdate(t *testing.T) {
	f := newFixture(t)
	c := f.seedClient(t, tenant.OwnedBy(7), "")
	tk := f.seedTicket(t, c.ID(), "CODE00000001")
	uc := NewUpdateTicketUseCase(f.guard, f.tickets, failingUpdateLogRepository{f.logs}, logger.NewNop())

	_, err := uc.Execute(context.Background(), UpdateTicketCommand{AdminID: 7, TicketID: tk.ID(), Patch: ticket.Patch{Model: strPtr("G9")}})
	require.NoError(t, err)

	stored, err := f.tickets.GetByID(context.Background(), tk.ID())
	require.NoError(t, err)
	assert.Equal(t, "G9", stored.Model())
}

func TestGetTicketDetailUseCase(t *testing.T) {
	f := newFixture(t)
	c := f.seedClient(t, tenant.OwnedBy(7), "")
	tk := f.seedTicket(t, c.ID(), "CODE00000001")
	ctx := context.Background()
	add := NewAddUpdateLogUseCase(f.guard, f.logs, logger.NewNop())
	_, err := add.Execute(ctx, AddUpdateLogCommand{AdminID: 7, TicketID: tk.ID(), Status: "Em análise", Description: "bateria estufada"})
	require.NoError(t, err)

	uc := NewGetTicketDetailUseCase(f.guard, f.logs, logger.NewNop())
	detail, err := uc.Execute(ctx, 7, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, "CODE00000001", detail.Ticket.TrackingCode)
	assert.Equal(t, c.ID(), detail.Client.ID)
	require.Len(t, detail.Logs, 1)
	assert.Equal(t, "bateria estufada", detail.Logs[0].Description)

	_, err = uc.Execute(ctx, 9, tk.ID())
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestUpdateLogsAreScoped(t *testing.T) {
	f := newFixture(t)
	c := f.seedClient(t, tenant.OwnedBy(7), "")
	tk := f.seedTicket(t, c.ID(), "CODE00000001")
	ctx := context.Background()
	add := NewAddUpdateLogUseCase(f.guard, f.logs, logger.NewNop())
	list := NewListUpdateLogsUseCase(f.guard, f.logs, logger.NewNop())

	_, err := add.Execute(ctx, AddUpdateLogCommand{AdminID: 7, TicketID: tk.ID(), Status: "Aberta"})
	require.NoError(t, err)

	_, err = add.Execute(ctx, AddUpdateLogCommand{AdminID: 9, TicketID: tk.ID(), Status: "Hijack"})
	assert.True(t, apperrors.IsNotFoundError(err))

	logs, err := list.Execute(ctx, 7, tk.ID())
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "Aberta", logs[0].Status)

	hidden, err := list.Execute(ctx, 9, tk.ID())
	require.NoError(t, err)
	assert.NotNil(t, hidden)
	assert.Empty(t, hidden)

	missing, err := list.Execute(ctx, 7, 999)
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestGenerateReceiptUseCase(t *testing.T) {
	f := newFixture(t)
	c := f.seedClient(t, tenant.OwnedBy(7), "")
	tk := f.seedTicket(t, c.ID(), "CODE00000001")
	ctx := context.Background()

	var rendered *client.Client
	renderer := &mockReceiptRenderer{RenderFunc: func(_ *ticket.Ticket, c *client.Client) ([]byte, error) {
		rendered = c
		return []byte("%PDF"), nil
	}}
	uc := NewGenerateReceiptUseCase(f.guard, renderer, f.accessLogs, logger.NewNop())

	receipt, err := uc.Execute(ctx, 7, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, "ficha_1.pdf", receipt.Filename)
	assert.Equal(t, []byte("%PDF"), receipt.Content)
	assert.Equal(t, c.ID(), rendered.ID())

	entries, total, err := f.accessLogs.ListByAdmin(ctx, 7, 1, 10)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	assert.Equal(t, accesslog.ActionGeneratePDF, entries[0].Action())
	assert.Equal(t, "Ficha ID: 1", entries[0].Detail())

	_, err = uc.Execute(ctx, 9, tk.ID())
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestGenerateReceiptUseCase_AccessLogFailureIgnored(t *testing.T) {
	f := newFixture(t)
	c := f.seedClient(t, tenant.Unowned(), "")
	tk := f.seedTicket(t, c.ID(), "CODE00000001")
	uc := NewGenerateReceiptUseCase(f.guard, &mockReceiptRenderer{}, failingAccessLogRepository{}, logger.NewNop())

	receipt, err := uc.Execute(context.Background(), 3, tk.ID())
	require.NoError(t, err)
	assert.NotEmpty(t, receipt.Content)
}

func TestTicketStatsUseCase(t *testing.T) {
	f := newFixture(t)
	mine := f.seedClient(t, tenant.OwnedBy(7), "")
	orphan := f.seedClient(t, tenant.Unowned(), "")
	dates := map[string]time.Time{
		"CODE00000001": time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC),
		"CODE00000002": time.Date(2026, 1, 20, 15, 0, 0, 0, time.UTC),
		"CODE00000003": time.Date(2026, 1, 21, 15, 0, 0, 0, time.UTC),
		"CODE00000004": time.Date(2025, 12, 5, 15, 0, 0, 0, time.UTC),
		"CODE00000005": time.Date(2025, 5, 1, 15, 0, 0, 0, time.UTC),
	}
	for code, at := range dates {
		tk := f.seedTicket(t, mine.ID(), code)
		f.backdate(t, tk.ID(), at)
	}
	orphanTicket := f.seedTicket(t, orphan.ID(), "CODE00000006")
	f.backdate(t, orphanTicket.ID(), time.Date(2026, 3, 11, 15, 0, 0, 0, time.UTC))

	uc := NewTicketStatsUseCase(f.tickets, logger.NewNop())
	uc.now = func() time.Time { return time.Date(2026, 3, 15, 15, 0, 0, 0, time.UTC) }

	stats, err := uc.Execute(context.Background(), 7, 0)
	require.NoError(t, err)
	require.Len(t, stats, 6)

	keys := make([]string, len(stats))
	totals := make([]int, len(stats))
	for i, s := range stats {
		keys[i] = s.Key
		totals[i] = s.Total
	}
	assert.Equal(t, []string{"2025-10", "2025-11", "2025-12", "2026-01", "2026-02", "2026-03"}, keys)
	assert.Equal(t, []int{0, 0, 1, 2, 0, 1}, totals)
	assert.Equal(t, "Mar 2026", stats[5].Label)

	capped, err := uc.Execute(context.Background(), 7, 500)
	require.NoError(t, err)
	assert.Len(t, capped, 36)
}
