package models

import "time"

type AdminModel struct {
	ID           uint      `gorm:"primaryKey"`
	Email        string    `gorm:"column:email;uniqueIndex;size:255;not null"`
	PasswordHash string    `gorm:"column:hashed_password;size:255;not null"`
	PhotoPath    *string   `gorm:"column:foto_perfil;size:512"`
	CreatedAt    time.Time `gorm:"column:criado_em;not null"`
}

func (AdminModel) TableName() string {
	return "admins"
}
