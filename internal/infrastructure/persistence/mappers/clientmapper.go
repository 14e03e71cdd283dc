package mappers

import (
	"oficina/internal/domain/client"
	"oficina/internal/domain/tenant"
	"oficina/internal/infrastructure/persistence/models"
	"oficina/internal/shared/mapper"
)

// ClientMapper converts between client entities and rows. The owner maps to
// the nullable admin_id column.
type ClientMapper interface {
	ToModel(c *client.Client) *models.ClientModel
	ToDomain(model *models.ClientModel) (*client.Client, error)
	ToDomainList(rows []*models.ClientModel) ([]*client.Client, error)
}

type ClientMapperImpl struct{}

func NewClientMapper() ClientMapper {
	return &ClientMapperImpl{}
}

func (m *ClientMapperImpl) ToModel(c *client.Client) *models.ClientModel {
	return &models.ClientModel{
		ID:        c.ID(),
		Name:      c.Name(),
		Phone:     c.Phone(),
		Email:     mapper.NilIfEmpty(c.Email()),
		Address:   mapper.NilIfEmpty(c.Address()),
		Number:    mapper.NilIfEmpty(c.Number()),
		District:  mapper.NilIfEmpty(c.District()),
		AdminID:   c.Owner().AdminID(),
		CreatedAt: c.CreatedAt(),
	}
}

func (m *ClientMapperImpl) ToDomain(model *models.ClientModel) (*client.Client, error) {
	return client.ReconstructClient(
		model.ID,
		client.Details{
			Name:     model.Name,
			Phone:    model.Phone,
			Email:    mapper.Deref(model.Email),
			Address:  mapper.Deref(model.Address),
			Number:   mapper.Deref(model.Number),
			District: mapper.Deref(model.District),
		},
		tenant.FromNullable(model.AdminID),
		model.CreatedAt.UTC(),
	)
}

func (m *ClientMapperImpl) ToDomainList(rows []*models.ClientModel) ([]*client.Client, error) {
	return mapper.MapSliceWithError(rows, m.ToDomain)
}
