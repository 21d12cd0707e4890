package dto

import "time"

// UserDTO is the public view of an account. The password hash never leaves
// the service layer.
type UserDTO struct {
	ID           uint64    `json:"id"`
	Email        string    `json:"email"`
	Name         *string   `json:"name"`
	County       *string   `json:"county"`
	ShowRealName bool      `json:"showRealName"`
	IsAdmin      bool      `json:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UpdateProfileDTO carries partial profile updates; nil fields are untouched.
type UpdateProfileDTO struct {
	Name         *string `json:"name,omitempty" binding:"omitempty,max=100"`
	County       *string `json:"county,omitempty" binding:"omitempty,max=100"`
	ShowRealName *bool   `json:"showRealName,omitempty"`
}
