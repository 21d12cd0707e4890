package repository

import (
	"Implicate/internal/model"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// PostListRow is a post annotated with child-row counts, computed by
// aggregation rather than stored counters.
type PostListRow struct {
	model.Post
	ReplyCount      int64 `gorm:"column:reply_count"`
	AttachmentCount int64 `gorm:"column:attachment_count"`
}

// ApprovedFilter narrows the public listing.
type ApprovedFilter struct {
	County   string
	UnitName string
	Limit    int
	Offset   int
}

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post, attachments []*model.Attachment) error
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	GetPostWithChildren(ctx context.Context, id uint64) (*model.Post, error)
	GetApprovedPostWithChildren(ctx context.Context, id uint64) (*model.Post, error)
	ListApproved(ctx context.Context, filter ApprovedFilter) ([]*PostListRow, error)
	ListPending(ctx context.Context) ([]*PostListRow, error)
	UpdatePostStatus(ctx context.Context, id uint64, from, to string) (int64, error)
	UpdatePostContent(ctx context.Context, post *model.Post) error
	DeletePostCascade(ctx context.Context, id uint64) error
	AddAttachment(ctx context.Context, attachment *model.Attachment) error
	DeleteAttachment(ctx context.Context, postID, attachmentID uint64) (int64, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) PostRepo {
	return &PostRepoImpl{db: db}
}

// CreatePost persists the post and all its attachment rows atomically.
func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post, attachments []*model.Attachment) error {
	if len(attachments) == 0 {
		return s.db.WithContext(ctx).Create(post).Error
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		for _, attachment := range attachments {
			attachment.PostID = post.ID
		}
		if err := tx.Create(attachments).Error; err != nil {
			return err
		}
		return nil
	})
}

func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	post := &model.Post{}
	result := s.db.WithContext(ctx).First(post, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return post, nil
}

func (s *PostRepoImpl) GetPostWithChildren(ctx context.Context, id uint64) (*model.Post, error) {
	post := &model.Post{}
	result := s.db.WithContext(ctx).
		Preload("Attachments").
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(post, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return post, nil
}

func (s *PostRepoImpl) GetApprovedPostWithChildren(ctx context.Context, id uint64) (*model.Post, error) {
	post := &model.Post{}
	result := s.db.WithContext(ctx).
		Preload("Attachments").
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("id = ? AND status = ?", id, model.PostStatusApproved).
		First(post)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return post, nil
}

func (s *PostRepoImpl) ListApproved(ctx context.Context, filter ApprovedFilter) ([]*PostListRow, error) {
	rows := make([]*PostListRow, 0)

	query := s.db.WithContext(ctx).
		Table("posts").
		Select("posts.*, COUNT(DISTINCT replies.id) AS reply_count, COUNT(DISTINCT attachments.id) AS attachment_count").
		Joins("LEFT JOIN replies ON replies.post_id = posts.id").
		Joins("LEFT JOIN attachments ON attachments.post_id = posts.id").
		Where("posts.status = ?", model.PostStatusApproved)

	if filter.County != "" {
		query = query.Where("posts.county = ?", filter.County)
	}
	if filter.UnitName != "" {
		query = query.Where("LOWER(posts.unit_name) LIKE ?", "%"+strings.ToLower(filter.UnitName)+"%")
	}

	result := query.
		Group("posts.id").
		Order("posts.created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}

// ListPending returns the moderation queue, oldest first.
func (s *PostRepoImpl) ListPending(ctx context.Context) ([]*PostListRow, error) {
	rows := make([]*PostListRow, 0)

	result := s.db.WithContext(ctx).
		Table("posts").
		Select("posts.*, COUNT(DISTINCT attachments.id) AS attachment_count").
		Joins("LEFT JOIN attachments ON attachments.post_id = posts.id").
		Where("posts.status = ?", model.PostStatusPending).
		Group("posts.id").
		Order("posts.created_at ASC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}

// UpdatePostStatus transitions status only when the stored value still matches
// from. The affected-row count is the concurrency guard: two racing approvals
// get one row and zero rows respectively.
func (s *PostRepoImpl) UpdatePostStatus(ctx context.Context, id uint64, from, to string) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)

	return result.RowsAffected, result.Error
}

func (s *PostRepoImpl) UpdatePostContent(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ?", post.ID).
		Select("title", "body", "unit_name", "locality", "county", "incident_date").
		Updates(post).Error
}

// DeletePostCascade removes replies and attachments before the post itself,
// all inside one transaction.
func (s *PostRepoImpl) DeletePostCascade(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.Reply{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.Attachment{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Post{}, id).Error; err != nil {
			return err
		}
		return nil
	})
}

func (s *PostRepoImpl) AddAttachment(ctx context.Context, attachment *model.Attachment) error {
	return s.db.WithContext(ctx).Create(attachment).Error
}

// DeleteAttachment only deletes when the attachment belongs to the given post,
// so mismatched ids cannot remove another post's file.
func (s *PostRepoImpl) DeleteAttachment(ctx context.Context, postID, attachmentID uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("id = ? AND post_id = ?", attachmentID, postID).
		Delete(&model.Attachment{})

	return result.RowsAffected, result.Error
}
