package model

import (
	"time"
)

type User struct {
	ID           uint64  `gorm:"primaryKey"`
	Email        string  `gorm:"type:varchar(255);uniqueIndex:idx_email;not null"`
	PasswordHash string  `gorm:"type:varchar(255);not null"`
	Name         *string `gorm:"type:varchar(100)"`
	County       *string `gorm:"type:varchar(100)"`
	ShowRealName bool    `gorm:"type:tinyint(1);not null;default:0"`
	IsAdmin      bool    `gorm:"type:tinyint(1);not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string {
	return "users"
}
