package handler

import (
	"mime/multipart"
	"strconv"

	"github.com/gin-gonic/gin"

	"Implicate/internal/api/dto"
	"Implicate/internal/pkg/response"
	"Implicate/internal/pkg/util"
	"Implicate/internal/service"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

// CreatePost accepts a multipart form: text fields plus up to the configured
// number of image parts under the "images" key.
func (s *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.CreatePostDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	files, closeFiles, err := openUploads(form.File["images"])
	if err != nil {
		response.Error(c, err)
		return
	}
	defer closeFiles()

	post, err := s.postSvc.CreatePost(c.Request.Context(), userID, &req, files)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) ListApproved(c *gin.Context) {
	var query dto.PostListQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	posts, err := s.postSvc.ListApproved(c.Request.Context(), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) GetPost(c *gin.Context) {
	postID, err := parseID(c, "post_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	post, err := s.postSvc.GetApprovedById(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

// openUploads opens every multipart file header and sniffs its real content
// type. The returned closer releases all opened readers.
func openUploads(headers []*multipart.FileHeader) ([]*service.Upload, func(), error) {
	uploads := make([]*service.Upload, 0, len(headers))
	readers := make([]multipart.File, 0, len(headers))
	closeAll := func() {
		for _, reader := range readers {
			_ = reader.Close()
		}
	}

	for _, header := range headers {
		reader, err := header.Open()
		if err != nil {
			closeAll()
			return nil, nil, service.ErrParamInvalid
		}
		readers = append(readers, reader)

		contentType, err := util.GetSafeContentType(reader)
		if err != nil {
			closeAll()
			return nil, nil, service.ErrParamInvalid
		}

		uploads = append(uploads, &service.Upload{
			Filename:    header.Filename,
			Size:        header.Size,
			ContentType: contentType,
			Reader:      reader,
		})
	}
	return uploads, closeAll, nil
}

func parseID(c *gin.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}
