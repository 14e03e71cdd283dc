package usecases

import (
	"context"

	"oficina/internal/application/client/dto"
	ticketdto "oficina/internal/application/ticket/dto"
	"oficina/internal/domain/ticket"
	"oficina/internal/shared/constants"
	"oficina/internal/shared/logger"
)

type GetClientQuery struct {
	AdminID     uint
	ClientID    uint
	TicketLimit int
}

type GetClientUseCase struct {
	access  ClientAccess
	tickets ticket.Repository
	logger  logger.Interface
}

func NewGetClientUseCase(access ClientAccess, tickets ticket.Repository, logger logger.Interface) *GetClientUseCase {
	return &GetClientUseCase{access: access, tickets: tickets, logger: logger}
}

// Execute returns the client with its newest tickets.
func (uc *GetClientUseCase) Execute(ctx context.Context, query GetClientQuery) (*dto.ClientDetailDTO, error) {
	c, err := uc.access.Client(ctx, query.AdminID, query.ClientID)
	if err != nil {
		return nil, err
	}

	limit := query.TicketLimit
	if limit <= 0 {
		limit = constants.DefaultClientTicketLimit
	}
	if limit > constants.MaxPageSize {
		limit = constants.MaxPageSize
	}
	tickets, _, err := uc.tickets.ListByClient(ctx, c.ID(), 1, limit)
	if err != nil {
		return nil, err
	}

	return &dto.ClientDetailDTO{
		Client:  dto.ToClientDTO(c),
		Tickets: ticketdto.ToTicketDTOs(tickets),
	}, nil
}

type ListClientTicketsQuery struct {
	AdminID  uint
	ClientID uint
	Page     int
	PageSize int
}

type ListClientTicketsResult struct {
	Items []*ticketdto.TicketDTO
	Total int64
}

type ListClientTicketsUseCase struct {
	access  ClientAccess
	tickets ticket.Repository
	logger  logger.Interface
}

func NewListClientTicketsUseCase(access ClientAccess, tickets ticket.Repository, logger logger.Interface) *ListClientTicketsUseCase {
	return &ListClientTicketsUseCase{access: access, tickets: tickets, logger: logger}
}

func (uc *ListClientTicketsUseCase) Execute(ctx context.Context, query ListClientTicketsQuery) (*ListClientTicketsResult, error) {
	c, err := uc.access.Client(ctx, query.AdminID, query.ClientID)
	if err != nil {
		return nil, err
	}
	tickets, total, err := uc.tickets.ListByClient(ctx, c.ID(), query.Page, query.PageSize)
	if err != nil {
		return nil, err
	}
	return &ListClientTicketsResult{Items: ticketdto.ToTicketDTOs(tickets), Total: total}, nil
}
