package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"oficina/internal/domain/client"
	"oficina/internal/infrastructure/persistence/mappers"
	"oficina/internal/infrastructure/persistence/models"
	"oficina/internal/shared/db"
	apperrors "oficina/internal/shared/errors"
	"oficina/internal/shared/logger"
)

const clientOwnerColumn = "admin_id"

type ClientRepository struct {
	db     *gorm.DB
	mapper mappers.ClientMapper
	logger logger.Interface
}

func NewClientRepository(db *gorm.DB, logger logger.Interface) client.Repository {
	return &ClientRepository{
		db:     db,
		mapper: mappers.NewClientMapper(),
		logger: logger,
	}
}

func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	model := r.mapper.ToModel(c)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create client", "error", err)
		return fmt.Errorf("failed to create client: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set client ID: %w", err)
	}
	return nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id uint) (*client.Client, error) {
	var model models.ClientModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get client by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

// Update writes the editable columns. The owner is never changed here.
func (r *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	model := r.mapper.ToModel(c)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ClientModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"nome":     model.Name,
			"telefone": model.Phone,
			"email":    model.Email,
			"endereco": model.Address,
			"numero":   model.Number,
			"bairro":   model.District,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update client", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Client not found")
	}
	return nil
}

// Delete removes the client, its tickets and their logs in one transaction.
func (r *ClientRepository) Delete(ctx context.Context, id uint) error {
	return db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		ticketIDs := tx.Model(&models.TicketModel{}).Select("id").Where("cliente_id = ?", id)

		if err := tx.Where("ficha_id IN (?)", ticketIDs).Delete(&models.UpdateLogModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete ticket logs: %w", err)
		}
		if err := tx.Where("cliente_id = ?", id).Delete(&models.TicketModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete tickets: %w", err)
		}

		result := tx.Delete(&models.ClientModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete client: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError("Client not found")
		}

		r.logger.Infow("client deleted", "id", id)
		return nil
	})
}

func (r *ClientRepository) List(ctx context.Context, filter client.ListFilter) ([]*client.Client, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.ClientModel{}).
		Scopes(
			db.VisibleToAdmin(clientOwnerColumn, filter.AdminID),
			db.ContainsAny(filter.Query, "nome", "telefone"),
		)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count clients", "error", err)
		return nil, 0, fmt.Errorf("failed to count clients: %w", err)
	}

	var rows []*models.ClientModel
	if err := query.Order("id DESC").
		Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list clients", "error", err)
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}

	clients, err := r.mapper.ToDomainList(rows)
	if err != nil {
		return nil, 0, err
	}
	return clients, total, nil
}

// Search matches name or phone and orders by name for autocomplete.
func (r *ClientRepository) Search(ctx context.Context, adminID uint, query string, limit int) ([]*client.Client, error) {
	var rows []*models.ClientModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(
			db.VisibleToAdmin(clientOwnerColumn, adminID),
			db.ContainsAny(query, "nome", "telefone"),
		).
		Order("nome ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to search clients", "error", err)
		return nil, fmt.Errorf("failed to search clients: %w", err)
	}
	return r.mapper.ToDomainList(rows)
}
