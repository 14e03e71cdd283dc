package mappers

import (
	"oficina/internal/domain/ticket"
	vo "oficina/internal/domain/ticket/valueobjects"
	"oficina/internal/infrastructure/persistence/models"
	"oficina/internal/shared/mapper"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	ToDomainList(rows []*models.TicketModel) ([]*ticket.Ticket, error)
	// SummaryToDomain converts a ticket row joined with its client's name.
	SummaryToDomain(row *models.TicketSummaryRow) (ticket.Summary, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	d := t.Details()
	return &models.TicketModel{
		ID:               t.ID(),
		ClientID:         t.ClientID(),
		Description:      d.Description,
		Defect:           d.Defect,
		Accessories:      mapper.NilIfEmpty(d.Accessories),
		Category:         d.Category,
		Brand:            d.Brand,
		Model:            d.Model,
		Serial:           mapper.NilIfEmpty(d.Serial),
		TrackingCode:     t.TrackingCode(),
		Status:           t.Status().String(),
		PublicNote:       mapper.NilIfEmpty(d.PublicNote),
		PrivateNote:      mapper.NilIfEmpty(d.PrivateNote),
		DeliveryEstimate: mapper.NilIfEmpty(d.DeliveryEstimate),
		Value:            d.Value,
		CreatedAt:        t.CreatedAt(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	return ticket.ReconstructTicket(
		model.ID,
		model.ClientID,
		ticket.Details{
			Description:      model.Description,
			Defect:           model.Defect,
			Accessories:      mapper.Deref(model.Accessories),
			Category:         model.Category,
			Brand:            model.Brand,
			Model:            model.Model,
			Serial:           mapper.Deref(model.Serial),
			PublicNote:       mapper.Deref(model.PublicNote),
			PrivateNote:      mapper.Deref(model.PrivateNote),
			DeliveryEstimate: mapper.Deref(model.DeliveryEstimate),
			Value:            model.Value,
		},
		model.TrackingCode,
		vo.TicketStatus(model.Status),
		model.CreatedAt.UTC(),
	)
}

func (m *TicketMapperImpl) ToDomainList(rows []*models.TicketModel) ([]*ticket.Ticket, error) {
	return mapper.MapSliceWithError(rows, m.ToDomain)
}

func (m *TicketMapperImpl) SummaryToDomain(row *models.TicketSummaryRow) (ticket.Summary, error) {
	t, err := m.ToDomain(&row.TicketModel)
	if err != nil {
		return ticket.Summary{}, err
	}
	return ticket.Summary{Ticket: t, ClientName: row.ClientName}, nil
}
