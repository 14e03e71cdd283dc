package usecases

import (
	"context"
	"strings"

	clientdto "oficina/internal/application/client/dto"
	"oficina/internal/application/ticket/dto"
	"oficina/internal/domain/ticket"
	"oficina/internal/domain/updatelog"
	"oficina/internal/shared/errors"
	"oficina/internal/shared/logger"
)

type GetTicketByCodeUseCase struct {
	access TicketAccess
	logger logger.Interface
}

func NewGetTicketByCodeUseCase(access TicketAccess, logger logger.Interface) *GetTicketByCodeUseCase {
	return &GetTicketByCodeUseCase{access: access, logger: logger}
}

func (uc *GetTicketByCodeUseCase) Execute(ctx context.Context, adminID uint, code string) (*dto.TicketDTO, error) {
	t, _, err := uc.access.TicketByCode(ctx, adminID, code)
	if err != nil {
		return nil, err
	}
	return dto.ToTicketDTO(t), nil
}

// TicketDetailDTO bundles a ticket with its client and history.
type TicketDetailDTO struct {
	Ticket *dto.TicketDTO       `json:"ficha"`
	Client *clientdto.ClientDTO `json:"cliente"`
	Logs   []*dto.UpdateLogDTO  `json:"logs"`
}

type GetTicketDetailUseCase struct {
	access TicketAccess
	logs   updatelog.Repository
	logger logger.Interface
}

func NewGetTicketDetailUseCase(access TicketAccess, logs updatelog.Repository, logger logger.Interface) *GetTicketDetailUseCase {
	return &GetTicketDetailUseCase{access: access, logs: logs, logger: logger}
}

func (uc *GetTicketDetailUseCase) Execute(ctx context.Context, adminID, ticketID uint) (*TicketDetailDTO, error) {
	t, c, err := uc.access.Ticket(ctx, adminID, ticketID)
	if err != nil {
		return nil, err
	}
	logs, err := uc.logs.ListByTicket(ctx, t.ID())
	if err != nil {
		return nil, err
	}
	return &TicketDetailDTO{
		Ticket: dto.ToTicketDTO(t),
		Client: clientdto.ToClientDTO(c),
		Logs:   dto.ToUpdateLogDTOs(logs),
	}, nil
}

// TrackTicketUseCase serves the public tracking page. It is not scoped to
// any admin and exposes only public fields.
type TrackTicketUseCase struct {
	tickets ticket.Repository
	logger  logger.Interface
}

func NewTrackTicketUseCase(tickets ticket.Repository, logger logger.Interface) *TrackTicketUseCase {
	return &TrackTicketUseCase{tickets: tickets, logger: logger}
}

func (uc *TrackTicketUseCase) Execute(ctx context.Context, code string) (*dto.TrackingDTO, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, errors.NewNotFoundError("Ticket not found")
	}
	t, err := uc.tickets.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("Ticket not found")
	}
	return dto.ToTrackingDTO(t), nil
}
