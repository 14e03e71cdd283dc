package models

import "time"

type TicketModel struct {
	ID               uint      `gorm:"primaryKey"`
	ClientID         uint      `gorm:"column:cliente_id;not null;index"`
	Description      string    `gorm:"column:descricao;type:text;not null"`
	Defect           string    `gorm:"column:defeito;type:text;not null"`
	Accessories      *string   `gorm:"column:acessorios;type:text"`
	Category         string    `gorm:"column:categoria;size:128;not null"`
	Brand            string    `gorm:"column:marca;size:128;not null"`
	Model            string    `gorm:"column:modelo;size:128;not null"`
	Serial           *string   `gorm:"column:serial;size:128"`
	TrackingCode     string    `gorm:"column:codigo_rastreio;uniqueIndex;size:128;not null"`
	Status           string    `gorm:"column:status;size:64;not null;index"`
	PublicNote       *string   `gorm:"column:observacao_publica;type:text"`
	PrivateNote      *string   `gorm:"column:observacao_privada;type:text"`
	DeliveryEstimate *string   `gorm:"column:previsao_entrega;size:128"`
	Value            *float64  `gorm:"column:valor"`
	CreatedAt        time.Time `gorm:"column:data_criacao;not null;index"`
}

func (TicketModel) TableName() string {
	return "fichas"
}

// TicketSummaryRow is a ticket joined with its client's name.
type TicketSummaryRow struct {
	TicketModel
	ClientName string `gorm:"column:cliente_nome"`
}
