package admin

import "context"

type Repository interface {
	Create(ctx context.Context, a *Admin) error
	GetByID(ctx context.Context, id uint) (*Admin, error)
	GetByEmail(ctx context.Context, email string) (*Admin, error)
	UpdatePhoto(ctx context.Context, id uint, photoPath string) error
	// Delete removes the admin and clears the owner of its clients.
	Delete(ctx context.Context, id uint) error
}
