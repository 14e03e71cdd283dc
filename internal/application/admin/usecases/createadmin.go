package usecases

import (
	"context"

	"oficina/internal/domain/admin"
	"oficina/internal/shared/errors"
	"oficina/internal/shared/logger"
)

const minPasswordLength = 8

type CreateAdminCommand struct {
	Email    string
	Password string
}

type CreateAdminUseCase struct {
	admins admin.Repository
	hasher PasswordHasher
	logger logger.Interface
}

func NewCreateAdminUseCase(admins admin.Repository, hasher PasswordHasher, logger logger.Interface) *CreateAdminUseCase {
	return &CreateAdminUseCase{admins: admins, hasher: hasher, logger: logger}
}

func (uc *CreateAdminUseCase) Execute(ctx context.Context, cmd CreateAdminCommand) (*admin.Admin, error) {
	if len(cmd.Password) < minPasswordLength {
		return nil, errors.NewValidationError("password must be at least 8 characters long")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("Failed to hash password")
	}

	a, err := admin.NewAdmin(cmd.Email, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.admins.Create(ctx, a); err != nil {
		return nil, err
	}

	uc.logger.Infow("admin created", "admin_id", a.ID(), "email", a.Email())
	return a, nil
}
