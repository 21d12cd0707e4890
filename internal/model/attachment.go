package model

import (
	"time"
)

type Attachment struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	PostID    uint64    `gorm:"not null;index:idx_post_id" json:"post_id"`
	FilePath  string    `gorm:"type:varchar(512);not null" json:"file_path"`
	CreatedAt time.Time `json:"created_at"`
}

func (Attachment) TableName() string {
	return "attachments"
}
