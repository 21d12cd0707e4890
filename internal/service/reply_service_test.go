package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"Implicate/internal/api/dto"
	"Implicate/internal/model"
	"Implicate/internal/pkg/consts"
)

func newReplyFixture() (ReplyService, *mockPostRepo, *mockUserRepo) {
	postRepo := newMockPostRepo()
	userRepo := newMockUserRepo()
	replyRepo := newMockReplyRepo(postRepo)
	return NewReplyService(replyRepo, postRepo, userRepo), postRepo, userRepo
}

func approvedPost(postRepo *mockPostRepo, authorID uint64) *model.Post {
	return postRepo.addPost(&model.Post{
		AuthorID: authorID, Body: strings.Repeat("x", 40), UnitName: "U", Locality: "L", County: "C",
		Status: model.PostStatusApproved, DisplayName: consts.AnonymousName,
	})
}

func TestCreateReply(t *testing.T) {
	svc, postRepo, userRepo := newReplyFixture()
	author := userRepo.addUser(&model.User{Email: "ana@example.com"})
	post := approvedPost(postRepo, author.ID)

	reply, err := svc.CreateReply(context.Background(), author.ID, post.ID, &dto.CreateReplyDTO{
		Body: "  I saw the same thing.  ",
	})
	if err != nil {
		t.Fatalf("CreateReply() error = %v", err)
	}
	if reply.Body != "I saw the same thing." {
		t.Errorf("body = %q, want trimmed", reply.Body)
	}
	if reply.DisplayName != consts.AnonymousName {
		t.Errorf("display name = %q, want anonymous", reply.DisplayName)
	}
	if reply.PostID != post.ID {
		t.Errorf("post id = %d, want %d", reply.PostID, post.ID)
	}
}

func TestCreateReplyValidation(t *testing.T) {
	svc, postRepo, userRepo := newReplyFixture()
	author := userRepo.addUser(&model.User{Email: "ana@example.com"})
	post := approvedPost(postRepo, author.ID)

	if _, err := svc.CreateReply(context.Background(), author.ID, post.ID, &dto.CreateReplyDTO{Body: "   "}); !errors.Is(err, ErrReplyEmpty) {
		t.Errorf("blank body: error = %v, want ErrReplyEmpty", err)
	}
	if _, err := svc.CreateReply(context.Background(), author.ID, post.ID, &dto.CreateReplyDTO{Body: strings.Repeat("a", 501)}); !errors.Is(err, ErrReplyTooLong) {
		t.Errorf("501 chars: error = %v, want ErrReplyTooLong", err)
	}
	if _, err := svc.CreateReply(context.Background(), author.ID, post.ID, &dto.CreateReplyDTO{Body: strings.Repeat("a", 500)}); err != nil {
		t.Errorf("500 chars: error = %v", err)
	}
}

func TestCreateReplyModerationGate(t *testing.T) {
	svc, postRepo, userRepo := newReplyFixture()
	author := userRepo.addUser(&model.User{Email: "ana@example.com"})

	pending := postRepo.addPost(&model.Post{
		AuthorID: author.ID, Body: strings.Repeat("x", 40), UnitName: "U", Locality: "L", County: "C",
		Status: model.PostStatusPending, DisplayName: consts.AnonymousName,
	})
	rejected := postRepo.addPost(&model.Post{
		AuthorID: author.ID, Body: strings.Repeat("x", 40), UnitName: "U", Locality: "L", County: "C",
		Status: model.PostStatusRejected, DisplayName: consts.AnonymousName,
	})

	if _, err := svc.CreateReply(context.Background(), author.ID, pending.ID, &dto.CreateReplyDTO{Body: "hello"}); !errors.Is(err, ErrPostNotApproved) {
		t.Errorf("pending post: error = %v, want ErrPostNotApproved", err)
	}
	if _, err := svc.CreateReply(context.Background(), author.ID, rejected.ID, &dto.CreateReplyDTO{Body: "hello"}); !errors.Is(err, ErrPostNotApproved) {
		t.Errorf("rejected post: error = %v, want ErrPostNotApproved", err)
	}
	if _, err := svc.CreateReply(context.Background(), author.ID, 9999, &dto.CreateReplyDTO{Body: "hello"}); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("missing post: error = %v, want ErrPostNotFound", err)
	}
}

func TestCreateReplyRealName(t *testing.T) {
	svc, postRepo, userRepo := newReplyFixture()
	name := "Maria Ionescu"
	author := userRepo.addUser(&model.User{Email: "maria@example.com", Name: &name, ShowRealName: true})
	post := approvedPost(postRepo, author.ID)

	reply, err := svc.CreateReply(context.Background(), author.ID, post.ID, &dto.CreateReplyDTO{
		Body:        "hello",
		UseRealName: true,
	})
	if err != nil {
		t.Fatalf("CreateReply() error = %v", err)
	}
	if reply.DisplayName != name {
		t.Errorf("display name = %q, want %q", reply.DisplayName, name)
	}
}

func TestListReplies(t *testing.T) {
	svc, postRepo, userRepo := newReplyFixture()
	author := userRepo.addUser(&model.User{Email: "ana@example.com"})
	post := approvedPost(postRepo, author.ID)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	postRepo.addReply(&model.Reply{
		PostID: post.ID, AuthorID: author.ID, Body: "second",
		DisplayName: consts.AnonymousName, CreatedAt: base.Add(time.Minute),
	})
	postRepo.addReply(&model.Reply{
		PostID: post.ID, AuthorID: author.ID, Body: "first",
		DisplayName: consts.AnonymousName, CreatedAt: base,
	})

	replies, err := svc.ListReplies(context.Background(), post.ID)
	if err != nil {
		t.Fatalf("ListReplies() error = %v", err)
	}
	if len(replies) != 2 {
		t.Fatalf("len = %d, want 2", len(replies))
	}
	if replies[0].Body != "first" || replies[1].Body != "second" {
		t.Errorf("order = [%q %q], want chronological", replies[0].Body, replies[1].Body)
	}
}

func TestListRepliesHidesUnapprovedPosts(t *testing.T) {
	svc, postRepo, userRepo := newReplyFixture()
	author := userRepo.addUser(&model.User{Email: "ana@example.com"})

	pending := postRepo.addPost(&model.Post{
		AuthorID: author.ID, Body: strings.Repeat("x", 40), UnitName: "U", Locality: "L", County: "C",
		Status: model.PostStatusPending, DisplayName: consts.AnonymousName,
	})

	if _, err := svc.ListReplies(context.Background(), pending.ID); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("pending post: error = %v, want ErrPostNotFound", err)
	}
	if _, err := svc.ListReplies(context.Background(), 9999); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("missing post: error = %v, want ErrPostNotFound", err)
	}
}
