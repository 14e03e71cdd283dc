package models

import "time"

// ClientModel keeps admin_id nullable: deleting an admin orphans its
// clients instead of removing them.
type ClientModel struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"column:nome;size:255;not null"`
	Phone     string    `gorm:"column:telefone;size:64;not null"`
	Email     *string   `gorm:"column:email;size:255"`
	Address   *string   `gorm:"column:endereco;size:512"`
	Number    *string   `gorm:"column:numero;size:64"`
	District  *string   `gorm:"column:bairro;size:255"`
	AdminID   *uint     `gorm:"column:admin_id;index"`
	CreatedAt time.Time `gorm:"column:criado_em;not null;index"`
}

func (ClientModel) TableName() string {
	return "clientes"
}
