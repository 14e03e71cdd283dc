package handlers

import "context"

// Use case interface for NotificationHandler - enables unit testing with mocks.

type sendUpdateEmailUseCase interface {
	Execute(ctx context.Context, adminID uint, recipients string) error
}
