package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"oficina/internal/domain/admin"
	"oficina/internal/infrastructure/persistence/mappers"
	"oficina/internal/infrastructure/persistence/models"
	"oficina/internal/shared/db"
	apperrors "oficina/internal/shared/errors"
	"oficina/internal/shared/logger"
	"oficina/internal/shared/mapper"
)

type AdminRepository struct {
	db     *gorm.DB
	mapper mappers.AdminMapper
	logger logger.Interface
}

func NewAdminRepository(db *gorm.DB, logger logger.Interface) admin.Repository {
	return &AdminRepository{
		db:     db,
		mapper: mappers.NewAdminMapper(),
		logger: logger,
	}
}

func (r *AdminRepository) Create(ctx context.Context, a *admin.Admin) error {
	model := r.mapper.ToModel(a)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("Email already registered")
		}
		r.logger.Errorw("failed to create admin", "error", err)
		return fmt.Errorf("failed to create admin: %w", err)
	}

	if err := a.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set admin ID: %w", err)
	}

	r.logger.Infow("admin created", "id", model.ID, "email", model.Email)
	return nil
}

func (r *AdminRepository) GetByID(ctx context.Context, id uint) (*admin.Admin, error) {
	var model models.AdminModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get admin by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	var model models.AdminModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("email = ?", admin.NormalizeEmail(email)).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get admin by email", "error", err)
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *AdminRepository) UpdatePhoto(ctx context.Context, id uint, photoPath string) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.AdminModel{}).
		Where("id = ?", id).
		Update("foto_perfil", mapper.NilIfEmpty(photoPath))
	if result.Error != nil {
		r.logger.Errorw("failed to update admin photo", "id", id, "error", result.Error)
		return fmt.Errorf("failed to update admin photo: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Admin not found")
	}
	return nil
}

// Delete orphans the admin's clients before removing the admin. Access logs
// are kept.
func (r *AdminRepository) Delete(ctx context.Context, id uint) error {
	return db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.ClientModel{}).
			Where("admin_id = ?", id).
			Update("admin_id", nil).Error; err != nil {
			return fmt.Errorf("failed to orphan clients: %w", err)
		}

		result := tx.Delete(&models.AdminModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete admin: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError("Admin not found")
		}

		r.logger.Infow("admin deleted", "id", id)
		return nil
	})
}
