package usecases

import (
	"context"

	"oficina/internal/domain/admin"
	"oficina/internal/shared/errors"
	"oficina/internal/shared/logger"
)

// DeleteAdminUseCase removes an admin by email. Its clients become
// unowned and its access logs are kept.
type DeleteAdminUseCase struct {
	admins admin.Repository
	photos PhotoStorage
	logger logger.Interface
}

func NewDeleteAdminUseCase(admins admin.Repository, photos PhotoStorage, logger logger.Interface) *DeleteAdminUseCase {
	return &DeleteAdminUseCase{admins: admins, photos: photos, logger: logger}
}

func (uc *DeleteAdminUseCase) Execute(ctx context.Context, email string) error {
	a, err := uc.admins.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if a == nil {
		return errors.NewNotFoundError("Admin not found")
	}
	if err := uc.admins.Delete(ctx, a.ID()); err != nil {
		return err
	}
	if a.PhotoPath() != "" && uc.photos != nil {
		uc.photos.Remove(a.PhotoPath())
	}
	uc.logger.Infow("admin deleted", "admin_id", a.ID(), "email", a.Email())
	return nil
}
