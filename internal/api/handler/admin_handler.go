package handler

import (
	"github.com/gin-gonic/gin"

	"Implicate/internal/api/dto"
	"Implicate/internal/pkg/response"
	"Implicate/internal/pkg/util"
	"Implicate/internal/service"
)

// AdminHandler covers the moderation surface: the pending queue, approval
// decisions and full-content editing of any post.
type AdminHandler struct {
	postSvc service.PostService
}

func NewAdminHandler(postSvc service.PostService) *AdminHandler {
	return &AdminHandler{
		postSvc: postSvc,
	}
}

func (s *AdminHandler) ListPending(c *gin.Context) {
	posts, err := s.postSvc.ListPending(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *AdminHandler) GetPost(c *gin.Context) {
	postID, err := parseID(c, "post_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	post, err := s.postSvc.GetPostForEdit(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *AdminHandler) ApprovePost(c *gin.Context) {
	postID, err := parseID(c, "post_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.postSvc.ApprovePost(c.Request.Context(), postID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) RejectPost(c *gin.Context) {
	postID, err := parseID(c, "post_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.postSvc.RejectPost(c.Request.Context(), postID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) UpdatePost(c *gin.Context) {
	postID, err := parseID(c, "post_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.UpdatePostDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.postSvc.UpdatePost(c.Request.Context(), postID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) DeletePost(c *gin.Context) {
	postID, err := parseID(c, "post_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.postSvc.DeletePost(c.Request.Context(), postID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) AddAttachment(c *gin.Context) {
	postID, err := parseID(c, "post_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		response.Error(c, service.ErrFileRequired)
		return
	}

	reader, err := header.Open()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer func() { _ = reader.Close() }()

	contentType, err := util.GetSafeContentType(reader)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	attachment, err := s.postSvc.AddAttachment(c.Request.Context(), postID, &service.Upload{
		Filename:    header.Filename,
		Size:        header.Size,
		ContentType: contentType,
		Reader:      reader,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, attachment)
}

func (s *AdminHandler) RemoveAttachment(c *gin.Context) {
	postID, err := parseID(c, "post_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	attachmentID, err := parseID(c, "attachment_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.postSvc.RemoveAttachment(c.Request.Context(), postID, attachmentID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
