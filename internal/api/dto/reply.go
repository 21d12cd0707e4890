package dto

import "time"

type CreateReplyDTO struct {
	Body        string `json:"body" binding:"required"`
	UseRealName bool   `json:"useRealName"`
}

type ReplyDTO struct {
	ID          uint64    `json:"id"`
	PostID      uint64    `json:"postId"`
	Body        string    `json:"body"`
	DisplayName string    `json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
}
