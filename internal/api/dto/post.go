package dto

import "time"

// CreatePostDTO arrives as multipart form fields alongside the image parts.
type CreatePostDTO struct {
	Title        string `form:"title"`
	Body         string `form:"body"`
	UnitName     string `form:"unitName"`
	Locality     string `form:"locality"`
	County       string `form:"county"`
	IncidentDate string `form:"incidentDate"`
	UseRealName  bool   `form:"useRealName"`
}

// UpdatePostDTO is the admin full-field edit payload.
type UpdatePostDTO struct {
	Title        string `json:"title"`
	Body         string `json:"body"`
	UnitName     string `json:"unitName"`
	Locality     string `json:"locality"`
	County       string `json:"county"`
	IncidentDate string `json:"incidentDate"`
}

// PostListQueryDTO filters the public listing.
type PostListQueryDTO struct {
	County   string `form:"county"`
	UnitName string `form:"unitName"`
	Limit    int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset   int    `form:"offset,default=0" binding:"omitempty,min=0"`
}

// PostSummaryDTO is one row of a listing; Body is truncated on public reads.
type PostSummaryDTO struct {
	ID              uint64     `json:"id"`
	Title           *string    `json:"title"`
	Body            string     `json:"body"`
	UnitName        string     `json:"unitName"`
	Locality        string     `json:"locality"`
	County          string     `json:"county"`
	IncidentDate    *time.Time `json:"incidentDate"`
	DisplayName     string     `json:"displayName"`
	CreatedAt       time.Time  `json:"createdAt"`
	ReplyCount      int64      `json:"replyCount"`
	AttachmentCount int64      `json:"attachmentCount"`
}

// PostDetailDTO is a full post with nested children.
type PostDetailDTO struct {
	ID           uint64           `json:"id"`
	AuthorID     uint64           `json:"authorId"`
	Title        *string          `json:"title"`
	Body         string           `json:"body"`
	UnitName     string           `json:"unitName"`
	Locality     string           `json:"locality"`
	County       string           `json:"county"`
	IncidentDate *time.Time       `json:"incidentDate"`
	Status       string           `json:"status"`
	DisplayName  string           `json:"displayName"`
	CreatedAt    time.Time        `json:"createdAt"`
	Attachments  []*AttachmentDTO `json:"attachments"`
	Replies      []*ReplyDTO      `json:"replies"`
}

// AttachmentDTO exposes the stored object key and its public URL.
type AttachmentDTO struct {
	ID        uint64    `json:"id"`
	FilePath  string    `json:"filePath"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}
