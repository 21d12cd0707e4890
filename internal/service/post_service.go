package service

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"Implicate/internal/api/config"
	"Implicate/internal/api/dto"
	"Implicate/internal/model"
	"Implicate/internal/pkg/consts"
	"Implicate/internal/pkg/storage"
	"Implicate/internal/repository"
)

const (
	minBodyRunes     = 30
	summaryBodyRunes = 200
)

// Upload is one incoming file, already sniffed for its real content type.
type Upload struct {
	Filename    string
	Size        int64
	ContentType string
	Reader      io.Reader
}

type PostService interface {
	CreatePost(ctx context.Context, userID uint64, req *dto.CreatePostDTO, files []*Upload) (*dto.PostDetailDTO, error)
	ListApproved(ctx context.Context, query *dto.PostListQueryDTO) ([]*dto.PostSummaryDTO, error)
	GetApprovedById(ctx context.Context, id uint64) (*dto.PostDetailDTO, error)
	ListPending(ctx context.Context) ([]*dto.PostSummaryDTO, error)
	GetPostForEdit(ctx context.Context, id uint64) (*dto.PostDetailDTO, error)
	ApprovePost(ctx context.Context, id uint64) error
	RejectPost(ctx context.Context, id uint64) error
	UpdatePost(ctx context.Context, id uint64, req *dto.UpdatePostDTO) error
	DeletePost(ctx context.Context, id uint64) error
	AddAttachment(ctx context.Context, postID uint64, file *Upload) (*dto.AttachmentDTO, error)
	RemoveAttachment(ctx context.Context, postID, attachmentID uint64) error
}

type postServiceImpl struct {
	postRepo  repository.PostRepo
	userRepo  repository.UserRepo
	blob      storage.BlobStore
	uploadCfg config.UploadConfig
}

func NewPostService(postRepo repository.PostRepo, userRepo repository.UserRepo, blob storage.BlobStore, uploadCfg config.UploadConfig) PostService {
	return &postServiceImpl{
		postRepo:  postRepo,
		userRepo:  userRepo,
		blob:      blob,
		uploadCfg: uploadCfg,
	}
}

// CreatePost validates everything before any file leaves the request, uploads
// blobs, then writes the post and attachment rows in one transaction. A failed
// transaction triggers best-effort removal of the already uploaded blobs.
func (s *postServiceImpl) CreatePost(ctx context.Context, userID uint64, req *dto.CreatePostDTO, files []*Upload) (*dto.PostDetailDTO, error) {
	body := strings.TrimSpace(req.Body)
	if utf8.RuneCountInString(body) < minBodyRunes {
		return nil, ErrBodyTooShort
	}
	unitName := strings.TrimSpace(req.UnitName)
	locality := strings.TrimSpace(req.Locality)
	county := strings.TrimSpace(req.County)
	if unitName == "" || locality == "" || county == "" {
		return nil, ErrLocationRequired
	}

	var incidentDate *time.Time
	if req.IncidentDate != "" {
		parsed, err := time.Parse("2006-01-02", req.IncidentDate)
		if err != nil {
			return nil, ErrParamInvalid
		}
		incidentDate = &parsed
	}

	if len(files) > s.uploadCfg.MaxFileCount {
		return nil, ErrTooManyFiles
	}
	for _, file := range files {
		if err := s.checkUpload(file); err != nil {
			return nil, err
		}
	}

	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	objectNames, err := s.putBlobs(ctx, files)
	if err != nil {
		return nil, err
	}

	post := &model.Post{
		AuthorID:     userID,
		Body:         body,
		UnitName:     unitName,
		Locality:     locality,
		County:       county,
		IncidentDate: incidentDate,
		Status:       model.PostStatusPending,
		DisplayName:  ResolveDisplayName(user, req.UseRealName),
	}
	if title := strings.TrimSpace(req.Title); title != "" {
		post.Title = &title
	}

	attachments := make([]*model.Attachment, 0, len(objectNames))
	for _, name := range objectNames {
		attachments = append(attachments, &model.Attachment{FilePath: name})
	}

	if err := s.postRepo.CreatePost(ctx, post, attachments); err != nil {
		s.removeBlobs(ctx, objectNames)
		return nil, err
	}

	for _, attachment := range attachments {
		post.Attachments = append(post.Attachments, *attachment)
	}
	return s.toDetailDTO(post)
}

func (s *postServiceImpl) ListApproved(ctx context.Context, query *dto.PostListQueryDTO) ([]*dto.PostSummaryDTO, error) {
	rows, err := s.postRepo.ListApproved(ctx, repository.ApprovedFilter{
		County:   strings.TrimSpace(query.County),
		UnitName: strings.TrimSpace(query.UnitName),
		Limit:    query.Limit,
		Offset:   query.Offset,
	})
	if err != nil {
		return nil, err
	}

	summaries := make([]*dto.PostSummaryDTO, 0, len(rows))
	for _, row := range rows {
		summary, err := s.toSummaryDTO(row)
		if err != nil {
			return nil, err
		}
		summary.Body = truncateBody(summary.Body)
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *postServiceImpl) GetApprovedById(ctx context.Context, id uint64) (*dto.PostDetailDTO, error) {
	post, err := s.postRepo.GetApprovedPostWithChildren(ctx, id)
	if err != nil {
		return nil, err
	}
	// Pending and rejected posts look identical to missing ones here.
	if post == nil {
		return nil, ErrPostNotFound
	}
	return s.toDetailDTO(post)
}

func (s *postServiceImpl) ListPending(ctx context.Context) ([]*dto.PostSummaryDTO, error) {
	rows, err := s.postRepo.ListPending(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]*dto.PostSummaryDTO, 0, len(rows))
	for _, row := range rows {
		summary, err := s.toSummaryDTO(row)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *postServiceImpl) GetPostForEdit(ctx context.Context, id uint64) (*dto.PostDetailDTO, error) {
	post, err := s.postRepo.GetPostWithChildren(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return s.toDetailDTO(post)
}

func (s *postServiceImpl) ApprovePost(ctx context.Context, id uint64) error {
	return s.decidePost(ctx, id, model.PostStatusApproved)
}

func (s *postServiceImpl) RejectPost(ctx context.Context, id uint64) error {
	return s.decidePost(ctx, id, model.PostStatusRejected)
}

func (s *postServiceImpl) decidePost(ctx context.Context, id uint64, to string) error {
	rows, err := s.postRepo.UpdatePostStatus(ctx, id, model.PostStatusPending, to)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrPostNotFoundOrDecided
	}
	return nil
}

func (s *postServiceImpl) UpdatePost(ctx context.Context, id uint64, req *dto.UpdatePostDTO) error {
	body := strings.TrimSpace(req.Body)
	if utf8.RuneCountInString(body) < minBodyRunes {
		return ErrBodyTooShort
	}
	unitName := strings.TrimSpace(req.UnitName)
	locality := strings.TrimSpace(req.Locality)
	county := strings.TrimSpace(req.County)
	if unitName == "" || locality == "" || county == "" {
		return ErrLocationRequired
	}

	var incidentDate *time.Time
	if req.IncidentDate != "" {
		parsed, err := time.Parse("2006-01-02", req.IncidentDate)
		if err != nil {
			return ErrParamInvalid
		}
		incidentDate = &parsed
	}

	existing, err := s.postRepo.GetPost(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPostNotFound
	}

	post := &model.Post{
		ID:           id,
		Body:         body,
		UnitName:     unitName,
		Locality:     locality,
		County:       county,
		IncidentDate: incidentDate,
	}
	if title := strings.TrimSpace(req.Title); title != "" {
		post.Title = &title
	}
	return s.postRepo.UpdatePostContent(ctx, post)
}

// DeletePost removes the post row and its children. Stored blobs are left in
// place; the rows are the source of truth and physical cleanup is deferred.
func (s *postServiceImpl) DeletePost(ctx context.Context, id uint64) error {
	post, err := s.postRepo.GetPost(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	return s.postRepo.DeletePostCascade(ctx, id)
}

func (s *postServiceImpl) AddAttachment(ctx context.Context, postID uint64, file *Upload) (*dto.AttachmentDTO, error) {
	if file == nil {
		return nil, ErrFileRequired
	}
	if err := s.checkUpload(file); err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	objectName := newObjectName(file.Filename)
	if _, err := s.blob.Put(ctx, objectName, file.Reader, file.Size, file.ContentType); err != nil {
		return nil, err
	}

	attachment := &model.Attachment{PostID: postID, FilePath: objectName}
	if err := s.postRepo.AddAttachment(ctx, attachment); err != nil {
		if removeErr := s.blob.Remove(ctx, objectName); removeErr != nil {
			slog.Warn("failed to remove orphaned blob", "object", objectName, "err", removeErr)
		}
		return nil, err
	}

	return &dto.AttachmentDTO{
		ID:        attachment.ID,
		FilePath:  attachment.FilePath,
		URL:       s.blob.PublicURL(attachment.FilePath),
		CreatedAt: attachment.CreatedAt,
	}, nil
}

// RemoveAttachment deletes the attachment row; the blob itself stays behind.
func (s *postServiceImpl) RemoveAttachment(ctx context.Context, postID, attachmentID uint64) error {
	rows, err := s.postRepo.DeleteAttachment(ctx, postID, attachmentID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrAttachmentNotFound
	}
	return nil
}

func (s *postServiceImpl) checkUpload(file *Upload) error {
	if file.ContentType != consts.MimeImageJPEG && file.ContentType != consts.MimeImagePNG {
		return ErrFileNotSupported
	}
	if file.Size > s.uploadCfg.MaxFileSize {
		return ErrFileTooLarge
	}
	return nil
}

func (s *postServiceImpl) putBlobs(ctx context.Context, files []*Upload) ([]string, error) {
	objectNames := make([]string, 0, len(files))
	for _, file := range files {
		objectName := newObjectName(file.Filename)
		if _, err := s.blob.Put(ctx, objectName, file.Reader, file.Size, file.ContentType); err != nil {
			s.removeBlobs(ctx, objectNames)
			return nil, err
		}
		objectNames = append(objectNames, objectName)
	}
	return objectNames, nil
}

func (s *postServiceImpl) removeBlobs(ctx context.Context, objectNames []string) {
	for _, name := range objectNames {
		if err := s.blob.Remove(ctx, name); err != nil {
			slog.Warn("failed to remove orphaned blob", "object", name, "err", err)
		}
	}
}

func (s *postServiceImpl) toSummaryDTO(row *repository.PostListRow) (*dto.PostSummaryDTO, error) {
	summary := &dto.PostSummaryDTO{}
	if err := copier.Copy(summary, &row.Post); err != nil {
		return nil, err
	}
	summary.ReplyCount = row.ReplyCount
	summary.AttachmentCount = row.AttachmentCount
	return summary, nil
}

func (s *postServiceImpl) toDetailDTO(post *model.Post) (*dto.PostDetailDTO, error) {
	detail := &dto.PostDetailDTO{}
	if err := copier.Copy(detail, post); err != nil {
		return nil, err
	}
	detail.Attachments = make([]*dto.AttachmentDTO, 0, len(post.Attachments))
	for _, attachment := range post.Attachments {
		detail.Attachments = append(detail.Attachments, &dto.AttachmentDTO{
			ID:        attachment.ID,
			FilePath:  attachment.FilePath,
			URL:       s.blob.PublicURL(attachment.FilePath),
			CreatedAt: attachment.CreatedAt,
		})
	}
	detail.Replies = make([]*dto.ReplyDTO, 0, len(post.Replies))
	for _, reply := range post.Replies {
		detail.Replies = append(detail.Replies, &dto.ReplyDTO{
			ID:          reply.ID,
			PostID:      reply.PostID,
			Body:        reply.Body,
			DisplayName: reply.DisplayName,
			CreatedAt:   reply.CreatedAt,
		})
	}
	return detail, nil
}

// truncateBody shortens a listing body to its first runes, marking the cut.
func truncateBody(body string) string {
	if utf8.RuneCountInString(body) <= summaryBodyRunes {
		return body
	}
	runes := []rune(body)
	return string(runes[:summaryBodyRunes]) + "..."
}

// newObjectName buckets uploads by day and keeps the original extension.
func newObjectName(filename string) string {
	return time.Now().Format("2006/01/02/") + uuid.NewString() + strings.ToLower(path.Ext(filename))
}
