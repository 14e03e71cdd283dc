package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"oficina/internal/domain/updatelog"
	"oficina/internal/infrastructure/persistence/mappers"
	"oficina/internal/infrastructure/persistence/models"
	"oficina/internal/shared/db"
	"oficina/internal/shared/logger"
	"oficina/internal/shared/mapper"
)

type UpdateLogRepository struct {
	db     *gorm.DB
	mapper mappers.UpdateLogMapper
	logger logger.Interface
}

func NewUpdateLogRepository(db *gorm.DB, logger logger.Interface) updatelog.Repository {
	return &UpdateLogRepository{
		db:     db,
		mapper: mappers.NewUpdateLogMapper(),
		logger: logger,
	}
}

func (r *UpdateLogRepository) Create(ctx context.Context, l *updatelog.UpdateLog) error {
	model, err := r.mapper.ToModel(l)
	if err != nil {
		return err
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create update log", "ticket_id", l.TicketID(), "error", err)
		return fmt.Errorf("failed to create update log: %w", err)
	}
	l.SetID(model.ID)
	return nil
}

func (r *UpdateLogRepository) GetByID(ctx context.Context, id uint) (*updatelog.UpdateLog, error) {
	var model models.UpdateLogModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get update log: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *UpdateLogRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*updatelog.UpdateLog, error) {
	var rows []*models.UpdateLogModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("ficha_id = ?", ticketID).
		Order("data DESC").
		Order("id DESC").
		Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list update logs", "ticket_id", ticketID, "error", err)
		return nil, fmt.Errorf("failed to list update logs: %w", err)
	}
	return mapper.MapSliceWithError(rows, r.mapper.ToDomain)
}
