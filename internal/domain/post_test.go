package domain

import (
	"testing"

	"github.com/hive-community/backend/internal/model"
	"github.com/hive-community/backend/internal/repository"
	"github.com/hive-community/backend/pkg/errorx"
	"github.com/hive-community/backend/pkg/testutil"
	"github.com/hive-community/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newPostDomain() PostDomain {
	return NewPostDomain(
		repository.NewPostRepository(),
		repository.NewThreadRepository(),
		repository.NewUserRepository(),
	)
}

func Test_postDomain_CreatePost_CascadesCounters(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User2.ID)
	domain := newPostDomain()

	createResp, err := domain.CreatePost(ctx, &model.CreatePostRequest{
		ThreadID: testutil.Thread1.ID,
		Content:  "I reached my first milestone",
		Type:     "milestone",
		Milestone: &model.Milestone{
			Title:    "First month done",
			Category: "personal",
			IsPublic: true,
		},
	})
	require.NoError(t, err)
	require.NotNil(t, createResp.Post.Milestone)

	thread, err := repository.NewThreadRepository().GetByID(ctx, testutil.Thread1.ID)
	require.NoError(t, err)
	require.Equal(t, testutil.Thread1.PostsCount+1, thread.PostsCount)

	user, err := repository.NewUserRepository().GetByID(ctx, testutil.User2.ID)
	require.NoError(t, err)
	require.Equal(t, 1, user.PostsCount)
	require.Equal(t, 1, user.MilestonesCount)
}

func Test_postDomain_CreatePost_MissingThread(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User2.ID)
	domain := newPostDomain()

	_, err := domain.CreatePost(ctx, &model.CreatePostRequest{
		ThreadID: "no-such-thread",
		Content:  "hello",
	})

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)
}

func Test_postDomain_DeletePost_Idempotence(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	domain := newPostDomain()
	threadRepo := repository.NewThreadRepository()
	userRepo := repository.NewUserRepository()

	before, err := threadRepo.GetByID(ctx, testutil.Thread1.ID)
	require.NoError(t, err)

	_, err = domain.DeletePost(ctx, &model.DeletePostRequest{ID: testutil.Post1.ID})
	require.NoError(t, err)

	after, err := threadRepo.GetByID(ctx, testutil.Thread1.ID)
	require.NoError(t, err)
	require.Equal(t, before.PostsCount-1, after.PostsCount)

	userAfter, err := userRepo.GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, -1+testutil.User1.PostsCount, userAfter.PostsCount)

	// A second delete finds nothing and decrements nothing.
	var errx errorx.Error
	_, err = domain.DeletePost(ctx, &model.DeletePostRequest{ID: testutil.Post1.ID})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)

	again, err := threadRepo.GetByID(ctx, testutil.Thread1.ID)
	require.NoError(t, err)
	require.Equal(t, after.PostsCount, again.PostsCount)
}

func Test_postDomain_LikeDislike_MutualExclusion(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User2.ID)
	domain := newPostDomain()

	// Like, then dislike: the dislike replaces the like.
	likeResp, err := domain.LikePost(ctx, &model.LikePostRequest{ID: testutil.Post1.ID})
	require.NoError(t, err)
	require.Equal(t, 1, likeResp.LikeCount)
	require.Equal(t, 0, likeResp.DislikeCount)
	require.Equal(t, 1, likeResp.Score)

	dislikeResp, err := domain.DislikePost(ctx, &model.DislikePostRequest{ID: testutil.Post1.ID})
	require.NoError(t, err)
	require.Equal(t, 0, dislikeResp.LikeCount)
	require.Equal(t, 1, dislikeResp.DislikeCount)
	require.Equal(t, -1, dislikeResp.Score)

	// A second dislike toggles it off.
	dislikeResp, err = domain.DislikePost(ctx, &model.DislikePostRequest{ID: testutil.Post1.ID})
	require.NoError(t, err)
	require.Equal(t, 0, dislikeResp.LikeCount)
	require.Equal(t, 0, dislikeResp.DislikeCount)
	require.Equal(t, 0, dislikeResp.Score)
}

func Test_postDomain_AcceptAnswer_Authorization(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User2.ID)
	domain := newPostDomain()

	answerResp, err := domain.CreatePost(ctx, &model.CreatePostRequest{
		ThreadID: testutil.Thread1.ID,
		Content:  "Have you tried turning it off and on again?",
		Type:     "answer",
	})
	require.NoError(t, err)

	// The answer author cannot accept their own answer on a foreign thread.
	var errx errorx.Error
	_, err = domain.AcceptAnswer(ctx, &model.AcceptAnswerRequest{ID: answerResp.Post.ID})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)

	// A non-answer post cannot be accepted at all.
	ctxAuthor := xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	_, err = domain.AcceptAnswer(ctxAuthor, &model.AcceptAnswerRequest{ID: testutil.Post1.ID})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)

	// The thread author accepting an answer post succeeds.
	acceptResp, err := domain.AcceptAnswer(ctxAuthor, &model.AcceptAnswerRequest{ID: answerResp.Post.ID})
	require.NoError(t, err)
	require.True(t, acceptResp.Post.IsAcceptedAnswer)
}

func Test_postDomain_UpdatePost_OnlyAuthor(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User2.ID)
	domain := newPostDomain()

	content := "edited content"
	_, err := domain.UpdatePost(ctx, &model.UpdatePostRequest{
		ID:      testutil.Post1.ID,
		Content: &content,
	})

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)
}
