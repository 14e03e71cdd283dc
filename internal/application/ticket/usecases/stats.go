package usecases

import (
	"context"
	"time"

	"oficina/internal/application/ticket/dto"
	"oficina/internal/domain/ticket"
	"oficina/internal/shared/biztime"
	"oficina/internal/shared/constants"
	"oficina/internal/shared/logger"
)

const (
	monthKeyLayout   = "2006-01"
	monthLabelLayout = "Jan 2006"
)

// TicketStatsUseCase counts tickets opened per month by the admin's own
// clients, oldest month first. Months follow the business timezone.
type TicketStatsUseCase struct {
	tickets ticket.Repository
	logger  logger.Interface
	now     func() time.Time
}

func NewTicketStatsUseCase(tickets ticket.Repository, logger logger.Interface) *TicketStatsUseCase {
	return &TicketStatsUseCase{tickets: tickets, logger: logger, now: biztime.NowUTC}
}

func (uc *TicketStatsUseCase) Execute(ctx context.Context, adminID uint, months int) ([]*dto.MonthlyCountDTO, error) {
	switch {
	case months < 1:
		months = constants.DefaultStatsMonths
	case months > constants.MaxStatsMonths:
		months = constants.MaxStatsMonths
	}

	starts := biztime.MonthStarts(uc.now(), months)
	created, err := uc.tickets.CreatedSince(ctx, adminID, starts[0])
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, months)
	for _, at := range created {
		counts[biztime.Format(at, monthKeyLayout)]++
	}

	out := make([]*dto.MonthlyCountDTO, 0, months)
	for _, start := range starts {
		key := biztime.Format(start, monthKeyLayout)
		out = append(out, &dto.MonthlyCountDTO{
			Label: biztime.Format(start, monthLabelLayout),
			Key:   key,
			Total: counts[key],
		})
	}
	return out, nil
}
