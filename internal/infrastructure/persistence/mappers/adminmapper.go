package mappers

import (
	"oficina/internal/domain/admin"
	"oficina/internal/infrastructure/persistence/models"
	"oficina/internal/shared/mapper"
)

// AdminMapper converts between admin entities and rows.
type AdminMapper interface {
	ToModel(a *admin.Admin) *models.AdminModel
	ToDomain(model *models.AdminModel) (*admin.Admin, error)
}

type AdminMapperImpl struct{}

func NewAdminMapper() AdminMapper {
	return &AdminMapperImpl{}
}

func (m *AdminMapperImpl) ToModel(a *admin.Admin) *models.AdminModel {
	return &models.AdminModel{
		ID:           a.ID(),
		Email:        a.Email(),
		PasswordHash: a.PasswordHash(),
		PhotoPath:    mapper.NilIfEmpty(a.PhotoPath()),
		CreatedAt:    a.CreatedAt(),
	}
}

func (m *AdminMapperImpl) ToDomain(model *models.AdminModel) (*admin.Admin, error) {
	return admin.ReconstructAdmin(
		model.ID,
		model.Email,
		model.PasswordHash,
		mapper.Deref(model.PhotoPath),
		model.CreatedAt.UTC(),
	)
}
