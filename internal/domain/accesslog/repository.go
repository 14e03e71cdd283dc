package accesslog

import "context"

type Repository interface {
	Create(ctx context.Context, l *AccessLog) error
	// ListByAdmin returns the admin's records newest first.
	ListByAdmin(ctx context.Context, adminID uint, page, pageSize int) ([]*AccessLog, int64, error)
}
