package usecases

import (
	"context"
	"fmt"

	"oficina/internal/domain/accesslog"
	"oficina/internal/shared/logger"
)

// Receipt is a rendered PDF ready to download.
type Receipt struct {
	Filename string
	Content  []byte
}

type GenerateReceiptUseCase struct {
	access     TicketAccess
	renderer   ReceiptRenderer
	accessLogs accesslog.Repository
	logger     logger.Interface
}

func NewGenerateReceiptUseCase(
	access TicketAccess,
	renderer ReceiptRenderer,
	accessLogs accesslog.Repository,
	logger logger.Interface,
) *GenerateReceiptUseCase {
	return &GenerateReceiptUseCase{access: access, renderer: renderer, accessLogs: accessLogs, logger: logger}
}

func (uc *GenerateReceiptUseCase) Execute(ctx context.Context, adminID, ticketID uint) (*Receipt, error) {
	t, c, err := uc.access.Ticket(ctx, adminID, ticketID)
	if err != nil {
		return nil, err
	}

	content, err := uc.renderer.Render(t, c)
	if err != nil {
		uc.logger.Errorw("failed to render receipt", "ticket_id", t.ID(), "error", err)
		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}

	entry := accesslog.NewAccessLog(adminID, accesslog.ActionGeneratePDF, accesslog.TicketDetail(t.ID()))
	if err := uc.accessLogs.Create(ctx, entry); err != nil {
		uc.logger.Warnw("failed to record receipt access", "ticket_id", t.ID(), "error", err)
	}

	return &Receipt{
		Filename: fmt.Sprintf("ficha_%d.pdf", t.ID()),
		Content:  content,
	}, nil
}
