package usecases

import (
	"context"

	"oficina/internal/application/ticket/dto"
	"oficina/internal/domain/updatelog"
	"oficina/internal/shared/errors"
	"oficina/internal/shared/logger"
)

type AddUpdateLogCommand struct {
	AdminID     uint
	TicketID    uint
	Status      string
	Description string
}

type AddUpdateLogUseCase struct {
	access TicketAccess
	logs   updatelog.Repository
	logger logger.Interface
}

func NewAddUpdateLogUseCase(access TicketAccess, logs updatelog.Repository, logger logger.Interface) *AddUpdateLogUseCase {
	return &AddUpdateLogUseCase{access: access, logs: logs, logger: logger}
}

func (uc *AddUpdateLogUseCase) Execute(ctx context.Context, cmd AddUpdateLogCommand) (*dto.UpdateLogDTO, error) {
	t, _, err := uc.access.Ticket(ctx, cmd.AdminID, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	entry, err := updatelog.NewUpdateLog(t.ID(), cmd.Status, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.logs.Create(ctx, entry); err != nil {
		uc.logger.Errorw("failed to add update log", "ticket_id", t.ID(), "error", err)
		return nil, err
	}
	return dto.ToUpdateLogDTO(entry), nil
}

// ListUpdateLogsUseCase returns a ticket's history newest first. A ticket
// the admin cannot see yields an empty history rather than an error.
type ListUpdateLogsUseCase struct {
	access TicketAccess
	logs   updatelog.Repository
	logger logger.Interface
}

func NewListUpdateLogsUseCase(access TicketAccess, logs updatelog.Repository, logger logger.Interface) *ListUpdateLogsUseCase {
	return &ListUpdateLogsUseCase{access: access, logs: logs, logger: logger}
}

func (uc *ListUpdateLogsUseCase) Execute(ctx context.Context, adminID, ticketID uint) ([]*dto.UpdateLogDTO, error) {
	t, _, err := uc.access.Ticket(ctx, adminID, ticketID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return []*dto.UpdateLogDTO{}, nil
		}
		return nil, err
	}
	logs, err := uc.logs.ListByTicket(ctx, t.ID())
	if err != nil {
		return nil, err
	}
	return dto.ToUpdateLogDTOs(logs), nil
}
