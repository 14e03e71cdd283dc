package dto

import (
	"time"

	"github.com/guregu/null/v5"

	ticketdto "oficina/internal/application/ticket/dto"
	"oficina/internal/domain/client"
	"oficina/internal/shared/mapper"
)

type ClientDTO struct {
	ID        uint        `json:"id"`
	Name      string      `json:"nome"`
	Phone     string      `json:"telefone"`
	Email     null.String `json:"email"`
	Address   null.String `json:"endereco"`
	Number    null.String `json:"numero"`
	District  null.String `json:"bairro"`
	AdminID   null.Int    `json:"admin_id"`
	CreatedAt time.Time   `json:"criado_em"`
}

// ClientDetailDTO is a client with its most recent tickets.
type ClientDetailDTO struct {
	Client  *ClientDTO             `json:"cliente"`
	Tickets []*ticketdto.TicketDTO `json:"fichas"`
}

func optional(s string) null.String {
	return null.NewString(s, s != "")
}

func ToClientDTO(c *client.Client) *ClientDTO {
	if c == nil {
		return nil
	}
	adminID := null.Int{}
	if id := c.Owner().AdminID(); id != nil {
		adminID = null.IntFrom(int64(*id))
	}
	return &ClientDTO{
		ID:        c.ID(),
		Name:      c.Name(),
		Phone:     c.Phone(),
		Email:     optional(c.Email()),
		Address:   optional(c.Address()),
		Number:    optional(c.Number()),
		District:  optional(c.District()),
		AdminID:   adminID,
		CreatedAt: c.CreatedAt(),
	}
}

// ToClientDTOs never returns nil so empty lists encode as [].
func ToClientDTOs(clients []*client.Client) []*ClientDTO {
	if len(clients) == 0 {
		return []*ClientDTO{}
	}
	return mapper.MapSlice(clients, ToClientDTO)
}
