package usecases

import (
	"context"

	"oficina/internal/infrastructure/email"
	"oficina/internal/shared/errors"
	"oficina/internal/shared/logger"
)

type EmailSender interface {
	Send(msg email.Message) error
	Enabled() bool
}

type SendUpdateEmailUseCase struct {
	templates *email.Templates
	sender    EmailSender
	logger    logger.Interface
}

func NewSendUpdateEmailUseCase(templates *email.Templates, sender EmailSender, logger logger.Interface) *SendUpdateEmailUseCase {
	return &SendUpdateEmailUseCase{templates: templates, sender: sender, logger: logger}
}

// Execute sends the "ticket updated" email to a comma separated recipient
// list. Nothing is sent when any recipient is invalid.
func (uc *SendUpdateEmailUseCase) Execute(ctx context.Context, adminID uint, recipients string) error {
	to, err := email.ParseRecipients(recipients)
	if err != nil {
		return errors.NewValidationError("Invalid recipients", err.Error())
	}
	if !uc.sender.Enabled() {
		return errors.NewInternalError("Failed to send email. Check the email server settings.")
	}

	msg, err := uc.templates.TicketUpdated(to)
	if err != nil {
		uc.logger.Errorw("failed to render update email", "error", err)
		return errors.NewInternalError("Failed to send email")
	}
	if err := uc.sender.Send(msg); err != nil {
		uc.logger.Errorw("failed to send update email", "admin_id", adminID, "recipients", len(to), "error", err)
		return errors.NewInternalError("Failed to send email. Check the email server settings.")
	}

	uc.logger.Infow("update email sent", "admin_id", adminID, "recipients", len(to))
	return nil
}
