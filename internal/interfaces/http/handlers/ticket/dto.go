package ticket

import (
	"oficina/internal/application/ticket/usecases"
	ticketdomain "oficina/internal/domain/ticket"
	vo "oficina/internal/domain/ticket/valueobjects"
	"oficina/internal/shared/errors"
)

type CreateTicketRequest struct {
	Category         string   `json:"categoria" binding:"max=128"`
	Brand            string   `json:"marca" binding:"max=128"`
	Model            string   `json:"modelo" binding:"max=128"`
	Serial           string   `json:"serial" binding:"max=128"`
	Description      string   `json:"descricao" binding:"max=512"`
	Status           string   `json:"status"`
	TrackingCode     string   `json:"codigo_rastreio" binding:"max=128"`
	Defect           string   `json:"defeito" binding:"required,max=2000"`
	Accessories      string   `json:"acessorios" binding:"max=2000"`
	DeliveryEstimate string   `json:"previsao_entrega" binding:"max=128"`
	Value            *float64 `json:"valor"`
}

func (r CreateTicketRequest) ToCommand(adminID, clientID uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		AdminID:  adminID,
		ClientID: clientID,
		Details: ticketdomain.Details{
			Description:      r.Description,
			Defect:           r.Defect,
			Accessories:      r.Accessories,
			Category:         r.Category,
			Brand:            r.Brand,
			Model:            r.Model,
			Serial:           r.Serial,
			DeliveryEstimate: r.DeliveryEstimate,
			Value:            r.Value,
		},
		Status:       r.Status,
		TrackingCode: r.TrackingCode,
	}
}

// UpdateTicketRequest carries optional fields; absent fields are not changed.
type UpdateTicketRequest struct {
	Category         *string  `json:"categoria"`
	Brand            *string  `json:"marca"`
	Model            *string  `json:"modelo"`
	Serial           *string  `json:"serial"`
	Description      *string  `json:"descricao"`
	Status           *string  `json:"status"`
	TrackingCode     *string  `json:"codigo_rastreio"`
	PublicNote       *string  `json:"observacao_publica"`
	PrivateNote      *string  `json:"observacao_privada"`
	DeliveryEstimate *string  `json:"previsao_entrega"`
	Value            *float64 `json:"valor"`
	Defect           *string  `json:"defeito"`
	Accessories      *string  `json:"acessorios"`
}

func (r UpdateTicketRequest) ToPatch() (ticketdomain.Patch, error) {
	p := ticketdomain.Patch{
		Description:      r.Description,
		Defect:           r.Defect,
		Accessories:      r.Accessories,
		Category:         r.Category,
		Brand:            r.Brand,
		Model:            r.Model,
		Serial:           r.Serial,
		TrackingCode:     r.TrackingCode,
		PublicNote:       r.PublicNote,
		PrivateNote:      r.PrivateNote,
		DeliveryEstimate: r.DeliveryEstimate,
		Value:            r.Value,
	}
	if r.Status != nil {
		status, err := vo.ParseTicketStatus(*r.Status)
		if err != nil {
			return p, errors.NewValidationError("Invalid status", err.Error())
		}
		p.Status = &status
	}
	return p, nil
}

type AddLogRequest struct {
	Status      string `json:"status" binding:"max=128"`
	Description string `json:"descricao" binding:"max=4000"`
}
