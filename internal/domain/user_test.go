package domain

import (
	"testing"

	"github.com/hive-community/backend/internal/model"
	"github.com/hive-community/backend/internal/repository"
	"github.com/hive-community/backend/pkg/errorx"
	"github.com/hive-community/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_userDomain_GetUsers_Filters(t *testing.T) {
	ctx := testutil.MockContext()
	domain := NewUserDomain(repository.NewUserRepository())

	resp, err := domain.GetUsers(ctx, &model.GetUsersRequest{IsMentor: "true"})
	require.NoError(t, err)
	require.Len(t, resp.Users, 1)
	require.Equal(t, testutil.User1.ID, resp.Users[0].ID)

	resp, err = domain.GetUsers(ctx, &model.GetUsersRequest{Q: "Bob"})
	require.NoError(t, err)
	require.Len(t, resp.Users, 1)
	require.Equal(t, testutil.User2.ID, resp.Users[0].ID)
}

func Test_userDomain_GetUsers_Pagination(t *testing.T) {
	ctx := testutil.MockContext()
	domain := NewUserDomain(repository.NewUserRepository())

	resp, err := domain.GetUsers(ctx, &model.GetUsersRequest{Page: 1, Limit: 2})
	require.NoError(t, err)
	require.Len(t, resp.Users, 2)
	require.Equal(t, int64(3), resp.Pagination.Total)
	require.Equal(t, 2, resp.Pagination.Pages)

	resp, err = domain.GetUsers(ctx, &model.GetUsersRequest{Page: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, resp.Users, 1)
}

func Test_userDomain_GetUser_HidesEmailAndInactive(t *testing.T) {
	ctx := testutil.MockContext()
	userRepo := repository.NewUserRepository()
	domain := NewUserDomain(userRepo)

	resp, err := domain.GetUser(ctx, &model.GetUserRequest{ID: testutil.User1.ID})
	require.NoError(t, err)
	require.Empty(t, resp.User.Email)

	require.NoError(t, userRepo.Update(ctx, testutil.User1.ID, map[string]any{"is_active": false}))

	var errx errorx.Error
	_, err = domain.GetUser(ctx, &model.GetUserRequest{ID: testutil.User1.ID})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)
}

func Test_userDomain_GetMentorsAndMentees(t *testing.T) {
	ctx := testutil.MockContext()
	domain := NewUserDomain(repository.NewUserRepository())

	mentors, err := domain.GetMentors(ctx, &model.GetMentorsRequest{})
	require.NoError(t, err)
	require.Len(t, mentors.Users, 1)
	require.Equal(t, testutil.User1.ID, mentors.Users[0].ID)

	mentees, err := domain.GetMentees(ctx, &model.GetMenteesRequest{})
	require.NoError(t, err)
	require.Len(t, mentees.Users, 1)
	require.Equal(t, testutil.User2.ID, mentees.Users[0].ID)
}

func Test_userDomain_UpdateReputation_Actions(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	domain := NewUserDomain(repository.NewUserRepository())

	resp, err := domain.UpdateReputation(ctx, &model.UpdateReputationRequest{
		UserID: testutil.User2.ID,
		Action: "upvote",
	})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Reputation)

	resp, err = domain.UpdateReputation(ctx, &model.UpdateReputationRequest{
		UserID: testutil.User2.ID,
		Action: "milestone",
	})
	require.NoError(t, err)
	require.Equal(t, 6, resp.Reputation)

	resp, err = domain.UpdateReputation(ctx, &model.UpdateReputationRequest{
		UserID: testutil.User2.ID,
		Action: "downvote",
	})
	require.NoError(t, err)
	require.Equal(t, 5, resp.Reputation)

	var errx errorx.Error
	_, err = domain.UpdateReputation(ctx, &model.UpdateReputationRequest{
		UserID: testutil.User2.ID,
		Action: "invalid",
	})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}

func Test_userDomain_GetUserStats(t *testing.T) {
	ctx := testutil.MockContext()
	domain := NewUserDomain(repository.NewUserRepository())

	resp, err := domain.GetUserStats(ctx, &model.GetUserStatsRequest{ID: testutil.User1.ID})
	require.NoError(t, err)
	require.Equal(t, testutil.User1.PostsCount, resp.Stats.PostsCount)
	require.GreaterOrEqual(t, resp.Stats.DaysSinceJoined, 1)
}
