package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"oficina/internal/domain/accesslog"
	"oficina/internal/infrastructure/persistence/mappers"
	"oficina/internal/infrastructure/persistence/models"
	"oficina/internal/shared/db"
	"oficina/internal/shared/logger"
	"oficina/internal/shared/mapper"
)

type AccessLogRepository struct {
	db     *gorm.DB
	mapper mappers.AccessLogMapper
	logger logger.Interface
}

func NewAccessLogRepository(db *gorm.DB, logger logger.Interface) accesslog.Repository {
	return &AccessLogRepository{
		db:     db,
		mapper: mappers.NewAccessLogMapper(),
		logger: logger,
	}
}

func (r *AccessLogRepository) Create(ctx context.Context, l *accesslog.AccessLog) error {
	model := r.mapper.ToModel(l)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create access log", "admin_id", l.AdminID(), "error", err)
		return fmt.Errorf("failed to create access log: %w", err)
	}
	l.SetID(model.ID)
	return nil
}

func (r *AccessLogRepository) ListByAdmin(ctx context.Context, adminID uint, page, pageSize int) ([]*accesslog.AccessLog, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.AccessLogModel{}).
		Where("admin_id = ?", adminID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count access logs: %w", err)
	}

	var rows []*models.AccessLogModel
	if err := query.Order("id DESC").
		Scopes(db.Paginate(page, pageSize)).
		Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list access logs", "admin_id", adminID, "error", err)
		return nil, 0, fmt.Errorf("failed to list access logs: %w", err)
	}
	return mapper.MapSlice(rows, r.mapper.ToDomain), total, nil
}
