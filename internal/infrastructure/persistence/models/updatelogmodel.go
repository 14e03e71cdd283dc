package models

import (
	"time"

	"gorm.io/datatypes"
)

type UpdateLogModel struct {
	ID          uint           `gorm:"primaryKey"`
	TicketID    uint           `gorm:"column:ficha_id;not null;index"`
	StatusLabel string         `gorm:"column:status;size:128;not null;default:''"`
	Description *string        `gorm:"column:descricao;type:text"`
	Changes     datatypes.JSON `gorm:"column:alteracoes"`
	CreatedAt   time.Time      `gorm:"column:data;not null;index"`
}

func (UpdateLogModel) TableName() string {
	return "logs"
}
