package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"oficina/internal/domain/ticket"
	"oficina/internal/domain/updatelog"
	"oficina/internal/infrastructure/persistence/models"
	"oficina/internal/shared/mapper"
)

// UpdateLogMapper stores the structured change list as a JSON column next to
// the rendered description.
type UpdateLogMapper interface {
	ToModel(l *updatelog.UpdateLog) (*models.UpdateLogModel, error)
	ToDomain(model *models.UpdateLogModel) (*updatelog.UpdateLog, error)
}

type UpdateLogMapperImpl struct{}

func NewUpdateLogMapper() UpdateLogMapper {
	return &UpdateLogMapperImpl{}
}

func (m *UpdateLogMapperImpl) ToModel(l *updatelog.UpdateLog) (*models.UpdateLogModel, error) {
	model := &models.UpdateLogModel{
		ID:          l.ID(),
		TicketID:    l.TicketID(),
		StatusLabel: l.StatusLabel(),
		Description: mapper.NilIfEmpty(l.Description()),
		CreatedAt:   l.CreatedAt(),
	}
	if len(l.Changes()) > 0 {
		raw, err := json.Marshal(l.Changes())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal log changes: %w", err)
		}
		model.Changes = datatypes.JSON(raw)
	}
	return model, nil
}

func (m *UpdateLogMapperImpl) ToDomain(model *models.UpdateLogModel) (*updatelog.UpdateLog, error) {
	var changes []ticket.Change
	if len(model.Changes) > 0 {
		if err := json.Unmarshal(model.Changes, &changes); err != nil {
			return nil, fmt.Errorf("failed to unmarshal log changes (id=%d): %w", model.ID, err)
		}
	}
	return updatelog.ReconstructUpdateLog(
		model.ID,
		model.TicketID,
		model.StatusLabel,
		mapper.Deref(model.Description),
		changes,
		model.CreatedAt.UTC(),
	), nil
}
