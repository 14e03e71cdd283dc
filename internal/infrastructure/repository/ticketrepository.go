package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"oficina/internal/domain/ticket"
	"oficina/internal/infrastructure/persistence/mappers"
	"oficina/internal/infrastructure/persistence/models"
	"oficina/internal/shared/db"
	apperrors "oficina/internal/shared/errors"
	"oficina/internal/shared/logger"
)

const ticketsJoinClients = "JOIN clientes AS c ON c.id = f.cliente_id"

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewTicketRepository(db *gorm.DB, logger logger.Interface) ticket.Repository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		logger: logger,
	}
}

func duplicateCodeError() error {
	return apperrors.NewConflictError("Tracking code already exists")
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return duplicateCodeError()
		}
		r.logger.Errorw("failed to create ticket", "error", err)
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set ticket ID: %w", err)
	}

	r.logger.Infow("ticket created", "id", model.ID, "code", model.TrackingCode)
	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"descricao":          model.Description,
			"defeito":            model.Defect,
			"acessorios":         model.Accessories,
			"categoria":          model.Category,
			"marca":              model.Brand,
			"modelo":             model.Model,
			"serial":             model.Serial,
			"codigo_rastreio":    model.TrackingCode,
			"status":             model.Status,
			"observacao_publica": model.PublicNote,
			"observacao_privada": model.PrivateNote,
			"previsao_entrega":   model.DeliveryEstimate,
			"valor":              model.Value,
		})
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return duplicateCodeError()
		}
		r.logger.Errorw("failed to update ticket", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Ticket not found")
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *TicketRepository) GetByCode(ctx context.Context, code string) (*ticket.Ticket, error) {
	return r.first(ctx, "codigo_rastreio = ?", strings.TrimSpace(code))
}

func (r *TicketRepository) first(ctx context.Context, where string, arg interface{}) (*ticket.Ticket, error) {
	var model models.TicketModel
	if err := db.GetTxFromContext(ctx, r.db).Where(where, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get ticket", "where", where, "error", err)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.TicketModel{}).
		Where("codigo_rastreio = ?", code).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check tracking code: %w", err)
	}
	return count > 0, nil
}

// List joins the owning client so the ownership rule and the text search can
// both see client columns.
func (r *TicketRepository) List(ctx context.Context, filter ticket.ListFilter) ([]ticket.Summary, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Table("fichas AS f").
		Joins(ticketsJoinClients).
		Scopes(
			db.VisibleToAdmin("c.admin_id", filter.AdminID),
			db.ContainsAny(filter.Query, "f.codigo_rastreio", "c.nome", "f.marca", "f.modelo"),
		)

	if status := strings.TrimSpace(filter.Status); status != "" {
		query = query.Where("LOWER(f.status) LIKE ?", "%"+strings.ToLower(status)+"%")
	}
	if filter.CreatedFrom != nil {
		query = query.Where("f.data_criacao >= ?", filter.CreatedFrom.UTC())
	}
	if filter.CreatedTo != nil {
		query = query.Where("f.data_criacao < ?", filter.CreatedTo.UTC())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count tickets", "error", err)
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	var rows []*models.TicketSummaryRow
	if err := query.
		Select("f.*, c.nome AS cliente_nome").
		Order("f.id DESC").
		Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Scan(&rows).Error; err != nil {
		r.logger.Errorw("failed to list tickets", "error", err)
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	summaries := make([]ticket.Summary, 0, len(rows))
	for _, row := range rows {
		s, err := r.mapper.SummaryToDomain(row)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to map ticket %d: %w", row.ID, err)
		}
		summaries = append(summaries, s)
	}
	return summaries, total, nil
}

func (r *TicketRepository) ListByClient(ctx context.Context, clientID uint, page, pageSize int) ([]*ticket.Ticket, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.TicketModel{}).
		Where("cliente_id = ?", clientID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count client tickets: %w", err)
	}

	var rows []*models.TicketModel
	if err := query.Order("id DESC").
		Scopes(db.Paginate(page, pageSize)).
		Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list client tickets", "client_id", clientID, "error", err)
		return nil, 0, fmt.Errorf("failed to list client tickets: %w", err)
	}

	tickets, err := r.mapper.ToDomainList(rows)
	if err != nil {
		return nil, 0, err
	}
	return tickets, total, nil
}

func (r *TicketRepository) ListOwnedBy(ctx context.Context, adminID uint, limit int) ([]*ticket.Ticket, error) {
	var rows []*models.TicketModel
	if err := db.GetTxFromContext(ctx, r.db).
		Table("fichas AS f").
		Joins(ticketsJoinClients).
		Where("c.admin_id = ?", adminID).
		Select("f.*").
		Order("f.id DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		r.logger.Errorw("failed to list owned tickets", "admin_id", adminID, "error", err)
		return nil, fmt.Errorf("failed to list owned tickets: %w", err)
	}
	return r.mapper.ToDomainList(rows)
}

func (r *TicketRepository) CreatedSince(ctx context.Context, adminID uint, since time.Time) ([]time.Time, error) {
	var rows []struct {
		CreatedAt time.Time `gorm:"column:data_criacao"`
	}
	if err := db.GetTxFromContext(ctx, r.db).
		Table("fichas AS f").
		Joins(ticketsJoinClients).
		Where("c.admin_id = ?", adminID).
		Where("f.data_criacao >= ?", since.UTC()).
		Select("f.data_criacao").
		Scan(&rows).Error; err != nil {
		r.logger.Errorw("failed to load ticket dates", "admin_id", adminID, "error", err)
		return nil, fmt.Errorf("failed to load ticket dates: %w", err)
	}

	out := make([]time.Time, len(rows))
	for i, row := range rows {
		out[i] = row.CreatedAt.UTC()
	}
	return out, nil
}
