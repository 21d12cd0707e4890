package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"Implicate/internal/api/dto"
	"Implicate/internal/model"
	"Implicate/internal/repository"
)

const maxReplyRunes = 500

type ReplyService interface {
	CreateReply(ctx context.Context, userID, postID uint64, req *dto.CreateReplyDTO) (*dto.ReplyDTO, error)
	ListReplies(ctx context.Context, postID uint64) ([]*dto.ReplyDTO, error)
}

type replyServiceImpl struct {
	replyRepo repository.ReplyRepo
	postRepo  repository.PostRepo
	userRepo  repository.UserRepo
}

func NewReplyService(replyRepo repository.ReplyRepo, postRepo repository.PostRepo, userRepo repository.UserRepo) ReplyService {
	return &replyServiceImpl{
		replyRepo: replyRepo,
		postRepo:  postRepo,
		userRepo:  userRepo,
	}
}

// CreateReply only accepts replies on approved posts.
func (s *replyServiceImpl) CreateReply(ctx context.Context, userID, postID uint64, req *dto.CreateReplyDTO) (*dto.ReplyDTO, error) {
	body := strings.TrimSpace(req.Body)
	if body == "" {
		return nil, ErrReplyEmpty
	}
	if utf8.RuneCountInString(body) > maxReplyRunes {
		return nil, ErrReplyTooLong
	}

	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.Status != model.PostStatusApproved {
		return nil, ErrPostNotApproved
	}

	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	reply := &model.Reply{
		PostID:      postID,
		AuthorID:    userID,
		Body:        body,
		DisplayName: ResolveDisplayName(user, req.UseRealName),
	}
	if err := s.replyRepo.CreateReply(ctx, reply); err != nil {
		return nil, err
	}

	return toReplyDTO(reply), nil
}

func (s *replyServiceImpl) ListReplies(ctx context.Context, postID uint64) ([]*dto.ReplyDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil || post.Status != model.PostStatusApproved {
		return nil, ErrPostNotFound
	}

	replies, err := s.replyRepo.ListByPostId(ctx, postID)
	if err != nil {
		return nil, err
	}

	replyDTOs := make([]*dto.ReplyDTO, 0, len(replies))
	for _, reply := range replies {
		replyDTOs = append(replyDTOs, toReplyDTO(reply))
	}
	return replyDTOs, nil
}

func toReplyDTO(reply *model.Reply) *dto.ReplyDTO {
	return &dto.ReplyDTO{
		ID:          reply.ID,
		PostID:      reply.PostID,
		Body:        reply.Body,
		DisplayName: reply.DisplayName,
		CreatedAt:   reply.CreatedAt,
	}
}
