package usecases

import (
	"context"

	"oficina/internal/application/ticket/dto"
	"oficina/internal/domain/ticket"
	vo "oficina/internal/domain/ticket/valueobjects"
	"oficina/internal/shared/errors"
	"oficina/internal/shared/logger"
)

type CreateTicketCommand struct {
	AdminID      uint
	ClientID     uint
	Details      ticket.Details
	Status       string
	TrackingCode string
}

type CreateTicketUseCase struct {
	access   TicketAccess
	tickets  ticket.Repository
	txMgr    TransactionRunner
	notifier CreationNotifier
	logger   logger.Interface
}

func NewCreateTicketUseCase(
	access TicketAccess,
	tickets ticket.Repository,
	txMgr TransactionRunner,
	notifier CreationNotifier,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		access:   access,
		tickets:  tickets,
		txMgr:    txMgr,
		notifier: notifier,
		logger:   logger,
	}
}

// Execute opens a ticket for a client visible to the admin. A blank
// tracking code is replaced by a generated one.
func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	c, err := uc.access.Client(ctx, cmd.AdminID, cmd.ClientID)
	if err != nil {
		return nil, err
	}

	var status vo.TicketStatus
	if cmd.Status != "" {
		if status, err = vo.ParseTicketStatus(cmd.Status); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	code, err := ticket.NormalizeTrackingCode(cmd.TrackingCode)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var created *ticket.Ticket
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if code == "" {
			generated, err := ticket.NewTrackingCodeGenerator(uc.tickets.ExistsByCode).Generate(txCtx)
			if err != nil {
				return err
			}
			code = generated
		} else {
			taken, err := uc.tickets.ExistsByCode(txCtx, code)
			if err != nil {
				return err
			}
			if taken {
				return errors.NewConflictError("Tracking code already exists")
			}
		}

		t, err := ticket.NewTicket(c.ID(), cmd.Details, status, code)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.tickets.Create(txCtx, t); err != nil {
			return err
		}
		created = t
		return nil
	})
	if err != nil {
		if errors.GetAppError(err) == nil {
			uc.logger.Errorw("failed to create ticket", "client_id", c.ID(), "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("ticket created",
		"ticket_id", created.ID(),
		"client_id", c.ID(),
		"admin_id", cmd.AdminID,
		"code", created.TrackingCode(),
	)

	if c.Email() != "" && uc.notifier != nil {
		uc.notifier.TicketCreated(c, created)
	}
	return dto.ToTicketDTO(created), nil
}
