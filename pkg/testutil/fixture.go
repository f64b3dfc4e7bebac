package testutil

import (
	"context"
	"time"

	"github.com/hive-community/backend/internal/entity"
	"github.com/hive-community/backend/internal/repository"
	"github.com/hive-community/backend/pkg/crypto"
)

const PlainPassword = "hunter2secret"

var (
	User1 = &entity.User{
		Base:       entity.Base{ID: "user1"},
		Email:      "alice@example.com",
		FirstName:  "Alice",
		LastName:   "Nguyen",
		IsMentor:   true,
		IsActive:   true,
		Expertise:  entity.Array[string]{"golang", "mentoring"},
		PostsCount: 1,
	}

	User2 = &entity.User{
		Base:            entity.Base{ID: "user2"},
		Email:           "bob@example.com",
		FirstName:       "Bob",
		LastName:        "Tran",
		IsMentor:        false,
		IsSeekingMentor: true,
		IsActive:        true,
		Goals:           entity.Array[string]{"career change"},
		RepliesCount:    1,
	}

	User3 = &entity.User{
		Base:      entity.Base{ID: "user3"},
		Email:     "carol@example.com",
		FirstName: "Carol",
		LastName:  "Le",
		IsActive:  true,
	}

	Thread1 = &entity.Thread{
		Base:         entity.Base{ID: "thread1"},
		Title:        "Welcome to the community",
		Description:  "Introduce yourself here",
		Category:     entity.ThreadGeneral,
		Type:         entity.ThreadTypeDiscussion,
		AuthorID:     User1.ID,
		Status:       entity.ThreadActive,
		PostsCount:   1,
		LastActivity: time.Now(),
	}

	Post1 = &entity.Post{
		Base:         entity.Base{ID: "post1"},
		ThreadID:     Thread1.ID,
		AuthorID:     User1.ID,
		Content:      "Hello everyone, happy to be here",
		Type:         entity.PostTypeDiscussion,
		Status:       entity.PostActive,
		RepliesCount: 1,
	}

	Reply1 = &entity.Reply{
		Base:     entity.Base{ID: "reply1"},
		PostID:   Post1.ID,
		AuthorID: User2.ID,
		Content:  "Welcome Alice",
		Type:     entity.ReplyTypeReply,
		Status:   entity.ReplyActive,
	}
)

func InsertFixtures(ctx context.Context) {
	InsertUsers(ctx)
	InsertThreads(ctx)
	InsertPosts(ctx)
	InsertReplies(ctx)
}

func InsertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository()

	hashed, err := crypto.HashPassword(PlainPassword, 0)
	if err != nil {
		panic(err)
	}

	for _, user := range []*entity.User{User1, User2, User3} {
		record := *user
		record.Password = hashed
		if err := userRepo.Create(ctx, &record); err != nil {
			panic(err)
		}
	}
}

func InsertThreads(ctx context.Context) {
	threadRepo := repository.NewThreadRepository()
	record := *Thread1
	if err := threadRepo.Create(ctx, &record); err != nil {
		panic(err)
	}
}

func InsertPosts(ctx context.Context) {
	postRepo := repository.NewPostRepository()
	record := *Post1
	if err := postRepo.Create(ctx, &record); err != nil {
		panic(err)
	}
}

func InsertReplies(ctx context.Context) {
	replyRepo := repository.NewReplyRepository()
	record := *Reply1
	if err := replyRepo.Create(ctx, &record); err != nil {
		panic(err)
	}
}
