package updatelog

import "context"

type Repository interface {
	Create(ctx context.Context, l *UpdateLog) error
	// GetByID returns nil without error when the log does not exist.
	GetByID(ctx context.Context, id uint) (*UpdateLog, error)
	// ListByTicket returns logs newest first.
	ListByTicket(ctx context.Context, ticketID uint) ([]*UpdateLog, error)
}
