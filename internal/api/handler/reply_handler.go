package handler

import (
	"github.com/gin-gonic/gin"

	"Implicate/internal/api/dto"
	"Implicate/internal/pkg/response"
	"Implicate/internal/service"
)

type ReplyHandler struct {
	replySvc service.ReplyService
}

func NewReplyHandler(replySvc service.ReplyService) *ReplyHandler {
	return &ReplyHandler{
		replySvc: replySvc,
	}
}

func (s *ReplyHandler) CreateReply(c *gin.Context) {
	userID := c.GetUint64("user_id")

	postID, err := parseID(c, "post_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.CreateReplyDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	reply, err := s.replySvc.CreateReply(c.Request.Context(), userID, postID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, reply)
}

func (s *ReplyHandler) ListReplies(c *gin.Context) {
	postID, err := parseID(c, "post_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	replies, err := s.replySvc.ListReplies(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, replies)
}
