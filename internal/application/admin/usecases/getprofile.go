package usecases

import (
	"context"

	"github.com/guregu/null/v5"

	"oficina/internal/application/admin/dto"
	"oficina/internal/domain/admin"
	"oficina/internal/shared/errors"
	"oficina/internal/shared/logger"
)

type GetProfileUseCase struct {
	admins admin.Repository
	logger logger.Interface
}

func NewGetProfileUseCase(admins admin.Repository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{admins: admins, logger: logger}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, adminID uint) (*dto.ProfileDTO, error) {
	a, err := uc.admins.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, errors.NewNotFoundError("Admin not found")
	}
	return &dto.ProfileDTO{
		ID:        a.ID(),
		Email:     a.Email(),
		PhotoPath: null.NewString(a.PhotoPath(), a.PhotoPath() != ""),
	}, nil
}
