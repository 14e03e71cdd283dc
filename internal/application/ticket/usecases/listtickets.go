package usecases

import (
	"context"
	"strings"
	"time"

	"oficina/internal/application/ticket/dto"
	"oficina/internal/domain/ticket"
	"oficina/internal/shared/biztime"
	"oficina/internal/shared/constants"
	"oficina/internal/shared/logger"
	"oficina/internal/shared/utils"
)

type ListTicketsQuery struct {
	AdminID uint
	Query   string
	Status  string
	// CreatedFrom and CreatedTo are raw query values. Values that do not
	// parse as dates are ignored.
	CreatedFrom string
	CreatedTo   string
	Page        int
	PageSize    int
}

type ListTicketsResult struct {
	Items []*dto.TicketListItemDTO
	Total int64
}

type ListTicketsUseCase struct {
	tickets ticket.Repository
	logger  logger.Interface
}

func NewListTicketsUseCase(tickets ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{tickets: tickets, logger: logger}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter := ticket.ListFilter{
		AdminID:  query.AdminID,
		Query:    strings.TrimSpace(query.Query),
		Status:   query.Status,
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	filter.CreatedFrom = uc.parseDate("data_ini", query.CreatedFrom)
	filter.CreatedTo = uc.parseDate("data_fim", query.CreatedTo)

	rows, total, err := uc.tickets.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ListTicketsResult{Items: dto.ToTicketListItemDTOs(rows), Total: total}, nil
}

func (uc *ListTicketsUseCase) parseDate(name, raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	t, err := biztime.ParseDate(raw)
	if err != nil {
		uc.logger.Debugw("ignoring invalid date filter", "param", name, "value", raw)
		return nil
	}
	return &t
}

type ListMyTicketsQuery struct {
	AdminID  uint
	Page     int
	PageSize int
}

type ListMyTicketsResult struct {
	Items []*dto.TicketDTO
	Total int64
}

// ListMyTicketsUseCase pages over the newest MaxOwnTickets tickets of clients
// the admin explicitly owns. Unowned clients are not included.
type ListMyTicketsUseCase struct {
	tickets ticket.Repository
	logger  logger.Interface
}

func NewListMyTicketsUseCase(tickets ticket.Repository, logger logger.Interface) *ListMyTicketsUseCase {
	return &ListMyTicketsUseCase{tickets: tickets, logger: logger}
}

func (uc *ListMyTicketsUseCase) Execute(ctx context.Context, query ListMyTicketsQuery) (*ListMyTicketsResult, error) {
	all, err := uc.tickets.ListOwnedBy(ctx, query.AdminID, constants.MaxOwnTickets)
	if err != nil {
		return nil, err
	}

	page, pageSize := query.Page, query.PageSize
	if page < 1 {
		page = constants.DefaultPage
	}
	if pageSize < 1 {
		pageSize = constants.DefaultLogPageSize
	}
	start, end := utils.ApplyPagination(len(all), page, pageSize)
	return &ListMyTicketsResult{
		Items: dto.ToTicketDTOs(all[start:end]),
		Total: int64(len(all)),
	}, nil
}
