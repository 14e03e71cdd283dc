package usecases

import (
	"context"

	"oficina/internal/application/ticket/dto"
	"oficina/internal/domain/ticket"
	"oficina/internal/domain/updatelog"
	"oficina/internal/shared/errors"
	"oficina/internal/shared/logger"
)

type UpdateTicketCommand struct {
	AdminID  uint
	TicketID uint
	Patch    ticket.Patch
}

type UpdateTicketUseCase struct {
	access  TicketAccess
	tickets ticket.Repository
	logs    updatelog.Repository
	logger  logger.Interface
}

func NewUpdateTicketUseCase(
	access TicketAccess,
	tickets ticket.Repository,
	logs updatelog.Repository,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{access: access, tickets: tickets, logs: logs, logger: logger}
}

// Execute applies the patch and records the changed fields in the ticket
// history. The history entry is best effort: failing to write it does not
// fail the update.
func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	t, _, err := uc.access.Ticket(ctx, cmd.AdminID, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	changes, err := t.Apply(cmd.Patch)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if len(changes) == 0 {
		return dto.ToTicketDTO(t), nil
	}

	if ticket.TrackingCodeChanged(changes) {
		taken, err := uc.tickets.ExistsByCode(ctx, t.TrackingCode())
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errors.NewConflictError("Tracking code already exists")
		}
	}

	if err := uc.tickets.Update(ctx, t); err != nil {
		return nil, err
	}

	uc.appendChangeLog(ctx, t.ID(), changes)
	uc.logger.Infow("ticket updated", "ticket_id", t.ID(), "admin_id", cmd.AdminID, "changes", len(changes))
	return dto.ToTicketDTO(t), nil
}

func (uc *UpdateTicketUseCase) appendChangeLog(ctx context.Context, ticketID uint, changes []ticket.Change) {
	entry, err := updatelog.NewChangeLog(ticketID, changes)
	if err == nil {
		err = uc.logs.Create(ctx, entry)
	}
	if err != nil {
		uc.logger.Warnw("failed to record ticket changes", "ticket_id", ticketID, "error", err)
	}
}
