package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"time"

	"Implicate/internal/model"
	"Implicate/internal/repository"
)

// In-memory repository fakes backing the service tests. They reproduce the
// query semantics of the real implementations closely enough for behavioral
// assertions without a database.

type mockUserRepo struct {
	users  map[uint64]*model.User
	nextID uint64
	err    error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uint64]*model.User)}
}

func (m *mockUserRepo) addUser(user *model.User) *model.User {
	if user.ID == 0 {
		m.nextID++
		user.ID = m.nextID
	} else if user.ID > m.nextID {
		m.nextID = user.ID
	}
	m.users[user.ID] = user
	return user
}

func (m *mockUserRepo) CreateUser(_ context.Context, user *model.User) error {
	if m.err != nil {
		return m.err
	}
	user.CreatedAt = time.Now()
	m.addUser(user)
	return nil
}

func (m *mockUserRepo) GetUserById(_ context.Context, id uint64) (*model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.users[id], nil
}

func (m *mockUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) UpdateProfile(_ context.Context, user *model.User) error {
	if m.err != nil {
		return m.err
	}
	stored, ok := m.users[user.ID]
	if !ok {
		return errors.New("no such user")
	}
	stored.Name = user.Name
	stored.County = user.County
	stored.ShowRealName = user.ShowRealName
	return nil
}

func (m *mockUserRepo) UpdatePassword(_ context.Context, id uint64, passwordHash string) error {
	if m.err != nil {
		return m.err
	}
	stored, ok := m.users[id]
	if !ok {
		return errors.New("no such user")
	}
	stored.PasswordHash = passwordHash
	return nil
}

type mockPostRepo struct {
	posts            map[uint64]*model.Post
	attachments      map[uint64]*model.Attachment
	replies          map[uint64]*model.Reply
	nextPostID       uint64
	nextAttachmentID uint64
	nextReplyID      uint64
	createErr        error
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{
		posts:       make(map[uint64]*model.Post),
		attachments: make(map[uint64]*model.Attachment),
		replies:     make(map[uint64]*model.Reply),
	}
}

func (m *mockPostRepo) addPost(post *model.Post) *model.Post {
	if post.ID == 0 {
		m.nextPostID++
		post.ID = m.nextPostID
	} else if post.ID > m.nextPostID {
		m.nextPostID = post.ID
	}
	if post.Status == "" {
		post.Status = model.PostStatusPending
	}
	m.posts[post.ID] = post
	return post
}

func (m *mockPostRepo) addAttachment(attachment *model.Attachment) *model.Attachment {
	if attachment.ID == 0 {
		m.nextAttachmentID++
		attachment.ID = m.nextAttachmentID
	}
	m.attachments[attachment.ID] = attachment
	return attachment
}

func (m *mockPostRepo) addReply(reply *model.Reply) *model.Reply {
	if reply.ID == 0 {
		m.nextReplyID++
		reply.ID = m.nextReplyID
	}
	m.replies[reply.ID] = reply
	return reply
}

func (m *mockPostRepo) CreatePost(_ context.Context, post *model.Post, attachments []*model.Attachment) error {
	if m.createErr != nil {
		return m.createErr
	}
	post.CreatedAt = time.Now()
	m.addPost(post)
	for _, attachment := range attachments {
		attachment.PostID = post.ID
		attachment.CreatedAt = time.Now()
		m.addAttachment(attachment)
	}
	return nil
}

func (m *mockPostRepo) GetPost(_ context.Context, id uint64) (*model.Post, error) {
	return m.posts[id], nil
}

func (m *mockPostRepo) withChildren(post *model.Post) *model.Post {
	clone := *post
	clone.Attachments = nil
	clone.Replies = nil
	for _, attachment := range m.attachments {
		if attachment.PostID == post.ID {
			clone.Attachments = append(clone.Attachments, *attachment)
		}
	}
	for _, reply := range m.replies {
		if reply.PostID == post.ID {
			clone.Replies = append(clone.Replies, *reply)
		}
	}
	sort.Slice(clone.Replies, func(i, j int) bool {
		return clone.Replies[i].CreatedAt.Before(clone.Replies[j].CreatedAt)
	})
	return &clone
}

func (m *mockPostRepo) GetPostWithChildren(_ context.Context, id uint64) (*model.Post, error) {
	post, ok := m.posts[id]
	if !ok {
		return nil, nil
	}
	return m.withChildren(post), nil
}

func (m *mockPostRepo) GetApprovedPostWithChildren(_ context.Context, id uint64) (*model.Post, error) {
	post, ok := m.posts[id]
	if !ok || post.Status != model.PostStatusApproved {
		return nil, nil
	}
	return m.withChildren(post), nil
}

func (m *mockPostRepo) counts(postID uint64) (replies, attachments int64) {
	for _, reply := range m.replies {
		if reply.PostID == postID {
			replies++
		}
	}
	for _, attachment := range m.attachments {
		if attachment.PostID == postID {
			attachments++
		}
	}
	return replies, attachments
}

func (m *mockPostRepo) ListApproved(_ context.Context, filter repository.ApprovedFilter) ([]*repository.PostListRow, error) {
	rows := make([]*repository.PostListRow, 0)
	for _, post := range m.posts {
		if post.Status != model.PostStatusApproved {
			continue
		}
		if filter.County != "" && post.County != filter.County {
			continue
		}
		if filter.UnitName != "" &&
			!strings.Contains(strings.ToLower(post.UnitName), strings.ToLower(filter.UnitName)) {
			continue
		}
		replyCount, attachmentCount := m.counts(post.ID)
		rows = append(rows, &repository.PostListRow{
			Post:            *post,
			ReplyCount:      replyCount,
			AttachmentCount: attachmentCount,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})
	if filter.Offset > 0 {
		if filter.Offset >= len(rows) {
			return nil, nil
		}
		rows = rows[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(rows) {
		rows = rows[:filter.Limit]
	}
	return rows, nil
}

func (m *mockPostRepo) ListPending(_ context.Context) ([]*repository.PostListRow, error) {
	rows := make([]*repository.PostListRow, 0)
	for _, post := range m.posts {
		if post.Status != model.PostStatusPending {
			continue
		}
		_, attachmentCount := m.counts(post.ID)
		rows = append(rows, &repository.PostListRow{
			Post:            *post,
			AttachmentCount: attachmentCount,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].CreatedAt.Before(rows[j].CreatedAt)
	})
	return rows, nil
}

func (m *mockPostRepo) UpdatePostStatus(_ context.Context, id uint64, from, to string) (int64, error) {
	post, ok := m.posts[id]
	if !ok || post.Status != from {
		return 0, nil
	}
	post.Status = to
	return 1, nil
}

func (m *mockPostRepo) UpdatePostContent(_ context.Context, post *model.Post) error {
	stored, ok := m.posts[post.ID]
	if !ok {
		return nil
	}
	stored.Title = post.Title
	stored.Body = post.Body
	stored.UnitName = post.UnitName
	stored.Locality = post.Locality
	stored.County = post.County
	stored.IncidentDate = post.IncidentDate
	return nil
}

func (m *mockPostRepo) DeletePostCascade(_ context.Context, id uint64) error {
	for replyID, reply := range m.replies {
		if reply.PostID == id {
			delete(m.replies, replyID)
		}
	}
	for attachmentID, attachment := range m.attachments {
		if attachment.PostID == id {
			delete(m.attachments, attachmentID)
		}
	}
	delete(m.posts, id)
	return nil
}

func (m *mockPostRepo) AddAttachment(_ context.Context, attachment *model.Attachment) error {
	attachment.CreatedAt = time.Now()
	m.addAttachment(attachment)
	return nil
}

func (m *mockPostRepo) DeleteAttachment(_ context.Context, postID, attachmentID uint64) (int64, error) {
	attachment, ok := m.attachments[attachmentID]
	if !ok || attachment.PostID != postID {
		return 0, nil
	}
	delete(m.attachments, attachmentID)
	return 1, nil
}

type mockReplyRepo struct {
	postRepo *mockPostRepo
}

func newMockReplyRepo(postRepo *mockPostRepo) *mockReplyRepo {
	return &mockReplyRepo{postRepo: postRepo}
}

func (m *mockReplyRepo) CreateReply(_ context.Context, reply *model.Reply) error {
	reply.CreatedAt = time.Now()
	m.postRepo.addReply(reply)
	return nil
}

func (m *mockReplyRepo) ListByPostId(_ context.Context, postID uint64) ([]*model.Reply, error) {
	replies := make([]*model.Reply, 0)
	for _, reply := range m.postRepo.replies {
		if reply.PostID == postID {
			replies = append(replies, reply)
		}
	}
	sort.Slice(replies, func(i, j int) bool {
		return replies[i].CreatedAt.Before(replies[j].CreatedAt)
	})
	return replies, nil
}

type mockBlobStore struct {
	objects map[string][]byte
	putErr  error
	// failAt makes Put fail on the Nth call only (1-based); zero fails every
	// call once putErr is set.
	failAt int
	puts   int
}

func newMockBlobStore() *mockBlobStore {
	return &mockBlobStore{objects: make(map[string][]byte)}
}

func (m *mockBlobStore) Put(_ context.Context, objectName string, reader io.Reader, _ int64, _ string) (string, error) {
	m.puts++
	if m.putErr != nil && (m.failAt == 0 || m.puts == m.failAt) {
		return "", m.putErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	m.objects[objectName] = data
	return objectName, nil
}

func (m *mockBlobStore) Remove(_ context.Context, objectName string) error {
	delete(m.objects, objectName)
	return nil
}

func (m *mockBlobStore) PublicURL(objectName string) string {
	return "http://blob.local/" + objectName
}

func newUpload(name, contentType, content string) *Upload {
	return &Upload{
		Filename:    name,
		Size:        int64(len(content)),
		ContentType: contentType,
		Reader:      bytes.NewBufferString(content),
	}
}
