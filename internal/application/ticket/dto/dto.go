package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"oficina/internal/domain/ticket"
	"oficina/internal/domain/updatelog"
	"oficina/internal/shared/mapper"
)

type TicketDTO struct {
	ID               uint        `json:"id"`
	ClientID         uint        `json:"cliente_id"`
	Description      string      `json:"descricao"`
	Defect           string      `json:"defeito"`
	Accessories      null.String `json:"acessorios"`
	Category         string      `json:"categoria"`
	Brand            string      `json:"marca"`
	Model            string      `json:"modelo"`
	Serial           null.String `json:"serial"`
	TrackingCode     string      `json:"codigo_rastreio"`
	Status           string      `json:"status"`
	StatusLabel      string      `json:"status_label"`
	PublicNote       null.String `json:"observacao_publica"`
	PrivateNote      null.String `json:"observacao_privada"`
	DeliveryEstimate null.String `json:"previsao_entrega"`
	Value            null.Float  `json:"valor"`
	CreatedAt        time.Time   `json:"data_criacao"`
}

// TicketListItemDTO is a ticket row in listings, carrying its client's name.
type TicketListItemDTO struct {
	ID               uint        `json:"id"`
	Status           string      `json:"status"`
	ClientName       string      `json:"cliente"`
	Brand            string      `json:"marca"`
	Model            string      `json:"modelo"`
	Serial           null.String `json:"numero_serie"`
	CreatedAt        time.Time   `json:"criado_em"`
	Defect           string      `json:"defeito"`
	Accessories      null.String `json:"acessorios"`
	DeliveryEstimate null.String `json:"previsao_entrega"`
	Value            null.Float  `json:"valor"`
	Description      string      `json:"descricao"`
	TrackingCode     string      `json:"codigo_rastreio"`
}

// TrackingDTO is the public view of a ticket, without private fields.
type TrackingDTO struct {
	TrackingCode     string      `json:"codigo_rastreio"`
	Status           string      `json:"status"`
	StatusLabel      string      `json:"status_label"`
	Defect           string      `json:"defeito"`
	DeliveryEstimate null.String `json:"previsao_entrega"`
	PublicNote       null.String `json:"observacao_publica"`
	CreatedAt        time.Time   `json:"criado_em"`
}

type UpdateLogDTO struct {
	ID          uint            `json:"id"`
	TicketID    uint            `json:"ficha_id"`
	Status      string          `json:"status"`
	Description string          `json:"descricao"`
	Changes     []ticket.Change `json:"alteracoes,omitempty"`
	CreatedAt   time.Time       `json:"data"`
}

// MonthlyCountDTO is the number of tickets opened in one month.
type MonthlyCountDTO struct {
	Label string `json:"mes"`
	Key   string `json:"key"`
	Total int    `json:"total"`
}

func optional(s string) null.String {
	return null.NewString(s, s != "")
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}
	return &TicketDTO{
		ID:               t.ID(),
		ClientID:         t.ClientID(),
		Description:      t.Description(),
		Defect:           t.Defect(),
		Accessories:      optional(t.Accessories()),
		Category:         t.Category(),
		Brand:            t.Brand(),
		Model:            t.Model(),
		Serial:           optional(t.Serial()),
		TrackingCode:     t.TrackingCode(),
		Status:           t.Status().String(),
		StatusLabel:      t.Status().Label(),
		PublicNote:       optional(t.PublicNote()),
		PrivateNote:      optional(t.PrivateNote()),
		DeliveryEstimate: optional(t.DeliveryEstimate()),
		Value:            null.FloatFromPtr(t.Value()),
		CreatedAt:        t.CreatedAt(),
	}
}

// ToTicketDTOs never returns nil so empty lists encode as [].
func ToTicketDTOs(tickets []*ticket.Ticket) []*TicketDTO {
	if len(tickets) == 0 {
		return []*TicketDTO{}
	}
	return mapper.MapSlice(tickets, ToTicketDTO)
}

func ToTicketListItemDTO(s ticket.Summary) *TicketListItemDTO {
	t := s.Ticket
	return &TicketListItemDTO{
		ID:               t.ID(),
		Status:           t.Status().String(),
		ClientName:       s.ClientName,
		Brand:            t.Brand(),
		Model:            t.Model(),
		Serial:           optional(t.Serial()),
		CreatedAt:        t.CreatedAt(),
		Defect:           t.Defect(),
		Accessories:      optional(t.Accessories()),
		DeliveryEstimate: optional(t.DeliveryEstimate()),
		Value:            null.FloatFromPtr(t.Value()),
		Description:      t.Description(),
		TrackingCode:     t.TrackingCode(),
	}
}

func ToTrackingDTO(t *ticket.Ticket) *TrackingDTO {
	return &TrackingDTO{
		TrackingCode:     t.TrackingCode(),
		Status:           t.Status().String(),
		StatusLabel:      t.Status().Label(),
		Defect:           t.Defect(),
		DeliveryEstimate: optional(t.DeliveryEstimate()),
		PublicNote:       optional(t.PublicNote()),
		CreatedAt:        t.CreatedAt(),
	}
}

func ToUpdateLogDTO(l *updatelog.UpdateLog) *UpdateLogDTO {
	return &UpdateLogDTO{
		ID:          l.ID(),
		TicketID:    l.TicketID(),
		Status:      l.StatusLabel(),
		Description: l.Description(),
		Changes:     l.Changes(),
		CreatedAt:   l.CreatedAt(),
	}
}

func ToUpdateLogDTOs(logs []*updatelog.UpdateLog) []*UpdateLogDTO {
	if len(logs) == 0 {
		return []*UpdateLogDTO{}
	}
	return mapper.MapSlice(logs, ToUpdateLogDTO)
}

func ToTicketListItemDTOs(rows []ticket.Summary) []*TicketListItemDTO {
	if len(rows) == 0 {
		return []*TicketListItemDTO{}
	}
	return mapper.MapSlice(rows, ToTicketListItemDTO)
}
