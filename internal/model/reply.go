package model

import (
	"time"
)

type Reply struct {
	ID       uint64 `gorm:"primaryKey" json:"id"`
	PostID   uint64 `gorm:"not null;index:idx_post_id" json:"post_id"`
	AuthorID uint64 `gorm:"not null" json:"author_id"`
	Body     string `gorm:"type:varchar(500);not null" json:"body"`
	// Same snapshot rule as Post.DisplayName.
	DisplayName string    `gorm:"type:varchar(100);not null" json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Reply) TableName() string {
	return "replies"
}
