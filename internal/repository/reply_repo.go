package repository

import (
	"Implicate/internal/model"
	"context"

	"gorm.io/gorm"
)

type ReplyRepo interface {
	CreateReply(ctx context.Context, reply *model.Reply) error
	ListByPostId(ctx context.Context, postID uint64) ([]*model.Reply, error)
}

type ReplyRepoImpl struct {
	db *gorm.DB
}

func NewReplyRepo(db *gorm.DB) ReplyRepo {
	return &ReplyRepoImpl{db: db}
}

func (s *ReplyRepoImpl) CreateReply(ctx context.Context, reply *model.Reply) error {
	return s.db.WithContext(ctx).Create(reply).Error
}

func (s *ReplyRepoImpl) ListByPostId(ctx context.Context, postID uint64) ([]*model.Reply, error) {
	replies := make([]*model.Reply, 0)
	result := s.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&replies)
	if result.Error != nil {
		return nil, result.Error
	}
	return replies, nil
}
