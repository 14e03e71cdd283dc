package models

import "time"

// AccessLogModel has no foreign key on admin_id so audit rows outlive the
// admin.
type AccessLogModel struct {
	ID        uint      `gorm:"primaryKey"`
	AdminID   uint      `gorm:"column:admin_id;not null;index"`
	Action    string    `gorm:"column:acao;size:128;not null"`
	Detail    *string   `gorm:"column:detalhe;size:1024"`
	CreatedAt time.Time `gorm:"column:data;not null;index"`
}

func (AccessLogModel) TableName() string {
	return "logs_acesso"
}
