package domain

import (
	"testing"

	"github.com/hive-community/backend/internal/common"
	"github.com/hive-community/backend/internal/entity"
	"github.com/hive-community/backend/internal/model"
	"github.com/hive-community/backend/internal/repository"
	"github.com/hive-community/backend/pkg/errorx"
	"github.com/hive-community/backend/pkg/testutil"
	"github.com/hive-community/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newThreadDomain() ThreadDomain {
	return NewThreadDomain(
		repository.NewThreadRepository(),
		common.NewModeratorVerifier(repository.NewUserRepository()),
	)
}

func Test_threadDomain_CreateAndGet(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	domain := newThreadDomain()

	createResp, err := domain.CreateThread(ctx, &model.CreateThreadRequest{
		Title:       "Looking for a golang mentor",
		Description: "I want to level up my backend skills",
		Category:    "mentorship",
		Type:        "mentorship",
		Tags:        []string{"golang", "mentorship"},
	})
	require.NoError(t, err)
	require.Equal(t, testutil.User1.ID, createResp.Thread.AuthorID)
	require.Equal(t, "active", createResp.Thread.Status)

	getResp, err := domain.GetThread(ctx, &model.GetThreadRequest{ID: createResp.Thread.ID})
	require.NoError(t, err)
	require.Equal(t, createResp.Thread.ID, getResp.Thread.ID)
	require.Equal(t, 1, getResp.Thread.Views)
}

func Test_threadDomain_CreateThread_Validation(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	domain := newThreadDomain()

	_, err := domain.CreateThread(ctx, &model.CreateThreadRequest{
		Title:       "",
		Description: "desc",
		Category:    "not-a-category",
	})

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
	require.Contains(t, errx.Fields, "title")
	require.Contains(t, errx.Fields, "category")
}

func Test_threadDomain_PrivateThreadAccess(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	domain := newThreadDomain()

	createResp, err := domain.CreateThread(ctx, &model.CreateThreadRequest{
		Title:          "Private mentoring circle",
		Description:    "Invite only",
		IsPrivate:      true,
		AllowedUserIDs: []string{testutil.User2.ID},
	})
	require.NoError(t, err)

	// The author and an allowed user can read it.
	_, err = domain.GetThread(ctx, &model.GetThreadRequest{ID: createResp.Thread.ID})
	require.NoError(t, err)

	ctxUser2 := xcontext.WithRequestUserID(ctx, testutil.User2.ID)
	_, err = domain.GetThread(ctxUser2, &model.GetThreadRequest{ID: createResp.Thread.ID})
	require.NoError(t, err)

	// Everyone else is rejected.
	ctxUser3 := xcontext.WithRequestUserID(ctx, testutil.User3.ID)
	_, err = domain.GetThread(ctxUser3, &model.GetThreadRequest{ID: createResp.Thread.ID})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)
}

func Test_threadDomain_DeleteThread_Idempotence(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	domain := newThreadDomain()

	_, err := domain.DeleteThread(ctx, &model.DeleteThreadRequest{ID: testutil.Thread1.ID})
	require.NoError(t, err)

	// A deleted thread behaves like a missing one.
	var errx errorx.Error
	_, err = domain.GetThread(ctx, &model.GetThreadRequest{ID: testutil.Thread1.ID})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)

	_, err = domain.DeleteThread(ctx, &model.DeleteThreadRequest{ID: testutil.Thread1.ID})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)
}

func Test_threadDomain_DeleteThread_OnlyAuthorOrModerator(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User2.ID)
	domain := newThreadDomain()

	_, err := domain.DeleteThread(ctx, &model.DeleteThreadRequest{ID: testutil.Thread1.ID})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)
}

func Test_threadDomain_DeleteThread_ReputationModerator(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User3.ID)
	domain := newThreadDomain()

	// User3 is neither the author nor a listed moderator.
	_, err := domain.DeleteThread(ctx, &model.DeleteThreadRequest{ID: testutil.Thread1.ID})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)

	// Crossing the reputation threshold grants moderator rights.
	userRepo := repository.NewUserRepository()
	require.NoError(t, userRepo.AddReputation(ctx, testutil.User3.ID, 100))

	_, err = domain.DeleteThread(ctx, &model.DeleteThreadRequest{ID: testutil.Thread1.ID})
	require.NoError(t, err)
}

func Test_threadDomain_GetThreads_ExcludesDeleted(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	threadRepo := repository.NewThreadRepository()
	domain := NewThreadDomain(threadRepo, common.NewModeratorVerifier(repository.NewUserRepository()))

	require.NoError(t, threadRepo.UpdateStatus(ctx, testutil.Thread1.ID, entity.ThreadDeleted))

	listResp, err := domain.GetThreads(ctx, &model.GetThreadsRequest{})
	require.NoError(t, err)
	require.Empty(t, listResp.Threads)
	require.Equal(t, int64(0), listResp.Pagination.Total)
}
