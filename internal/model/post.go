package model

import (
	"time"
)

// Moderation states. A post is created pending and is decided exactly once.
const (
	PostStatusPending  = "pending"
	PostStatusApproved = "approved"
	PostStatusRejected = "rejected"
)

type Post struct {
	ID           uint64     `gorm:"primaryKey" json:"id"`
	AuthorID     uint64     `gorm:"not null;index:idx_author_id" json:"author_id"`
	Title        *string    `gorm:"type:varchar(255)" json:"title"`
	Body         string     `gorm:"type:text;not null" json:"body"`
	UnitName     string     `gorm:"type:varchar(255);not null" json:"unit_name"`
	Locality     string     `gorm:"type:varchar(100);not null" json:"locality"`
	County       string     `gorm:"type:varchar(100);not null;index:idx_county" json:"county"`
	IncidentDate *time.Time `gorm:"type:date" json:"incident_date"`
	Status       string     `gorm:"type:varchar(16);not null;default:'pending';index:idx_status" json:"status"`
	// DisplayName is resolved once at submission time and never re-resolved,
	// so turning off show_real_name later does not rewrite published posts.
	DisplayName string    `gorm:"type:varchar(100);not null" json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Attachments []Attachment `gorm:"foreignKey:PostID;references:ID" json:"attachments"`
	Replies     []Reply      `gorm:"foreignKey:PostID;references:ID" json:"replies"`
}

func (Post) TableName() string {
	return "posts"
}
