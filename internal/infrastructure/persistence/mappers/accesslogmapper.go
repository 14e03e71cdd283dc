package mappers

import (
	"oficina/internal/domain/accesslog"
	"oficina/internal/infrastructure/persistence/models"
	"oficina/internal/shared/mapper"
)

type AccessLogMapper interface {
	ToModel(l *accesslog.AccessLog) *models.AccessLogModel
	ToDomain(model *models.AccessLogModel) *accesslog.AccessLog
}

type AccessLogMapperImpl struct{}

func NewAccessLogMapper() AccessLogMapper {
	return &AccessLogMapperImpl{}
}

func (m *AccessLogMapperImpl) ToModel(l *accesslog.AccessLog) *models.AccessLogModel {
	return &models.AccessLogModel{
		ID:        l.ID(),
		AdminID:   l.AdminID(),
		Action:    l.Action(),
		Detail:    mapper.NilIfEmpty(l.Detail()),
		CreatedAt: l.CreatedAt(),
	}
}

func (m *AccessLogMapperImpl) ToDomain(model *models.AccessLogModel) *accesslog.AccessLog {
	return accesslog.ReconstructAccessLog(
		model.ID,
		model.AdminID,
		model.Action,
		mapper.Deref(model.Detail),
		model.CreatedAt.UTC(),
	)
}
