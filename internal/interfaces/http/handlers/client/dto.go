package client

import (
	clientdomain "oficina/internal/domain/client"
)

type CreateClientRequest struct {
	Name     string `json:"nome" binding:"required,max=255"`
	Phone    string `json:"telefone" binding:"required,max=20"`
	Email    string `json:"email" binding:"omitempty,email"`
	Address  string `json:"endereco" binding:"max=512"`
	Number   string `json:"numero" binding:"max=64"`
	District string `json:"bairro" binding:"max=255"`
}

func (r CreateClientRequest) ToDetails() clientdomain.Details {
	return clientdomain.Details{
		Name:     r.Name,
		Phone:    r.Phone,
		Email:    r.Email,
		Address:  r.Address,
		Number:   r.Number,
		District: r.District,
	}
}

// UpdateClientRequest carries optional fields; absent fields are not changed.
type UpdateClientRequest struct {
	Name     *string `json:"nome" binding:"omitempty,max=255"`
	Phone    *string `json:"telefone" binding:"omitempty,max=20"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Address  *string `json:"endereco" binding:"omitempty,max=512"`
	Number   *string `json:"numero" binding:"omitempty,max=64"`
	District *string `json:"bairro" binding:"omitempty,max=255"`
}

func (r UpdateClientRequest) ToPatch() clientdomain.Patch {
	return clientdomain.Patch{
		Name:     r.Name,
		Phone:    r.Phone,
		Email:    r.Email,
		Address:  r.Address,
		Number:   r.Number,
		District: r.District,
	}
}
