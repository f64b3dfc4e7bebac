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

func newReplyDomain() ReplyDomain {
	return NewReplyDomain(
		repository.NewReplyRepository(),
		repository.NewPostRepository(),
		repository.NewUserRepository(),
	)
}

func Test_replyDomain_CreateReply_CascadesCounters(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User3.ID)
	domain := newReplyDomain()

	createResp, err := domain.CreateReply(ctx, &model.CreateReplyRequest{
		PostID:  testutil.Post1.ID,
		Content: "Great to have you here",
	})
	require.NoError(t, err)
	require.Equal(t, "reply", createResp.Reply.Type)

	post, err := repository.NewPostRepository().GetByID(ctx, testutil.Post1.ID)
	require.NoError(t, err)
	require.Equal(t, testutil.Post1.RepliesCount+1, post.RepliesCount)

	user, err := repository.NewUserRepository().GetByID(ctx, testutil.User3.ID)
	require.NoError(t, err)
	require.Equal(t, 1, user.RepliesCount)
}

func Test_replyDomain_CreateReply_ParentMustMatchPost(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User3.ID)
	domain := newReplyDomain()
	postDomain := newPostDomain()

	otherPost, err := postDomain.CreatePost(ctx, &model.CreatePostRequest{
		ThreadID: testutil.Thread1.ID,
		Content:  "Another post",
	})
	require.NoError(t, err)

	// Reply1 belongs to Post1, not to the new post.
	_, err = domain.CreateReply(ctx, &model.CreateReplyRequest{
		PostID:        otherPost.Post.ID,
		Content:       "nested",
		ParentReplyID: testutil.Reply1.ID,
	})

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)

	// With the right parent it succeeds.
	nested, err := domain.CreateReply(ctx, &model.CreateReplyRequest{
		PostID:        testutil.Post1.ID,
		Content:       "nested",
		ParentReplyID: testutil.Reply1.ID,
	})
	require.NoError(t, err)
	require.Equal(t, testutil.Reply1.ID, nested.Reply.ParentReplyID)
}

func Test_replyDomain_DeleteReply_Idempotence(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User2.ID)
	domain := newReplyDomain()
	postRepo := repository.NewPostRepository()

	_, err := domain.DeleteReply(ctx, &model.DeleteReplyRequest{ID: testutil.Reply1.ID})
	require.NoError(t, err)

	post, err := postRepo.GetByID(ctx, testutil.Post1.ID)
	require.NoError(t, err)
	require.Equal(t, testutil.Post1.RepliesCount-1, post.RepliesCount)

	var errx errorx.Error
	_, err = domain.DeleteReply(ctx, &model.DeleteReplyRequest{ID: testutil.Reply1.ID})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)

	again, err := postRepo.GetByID(ctx, testutil.Post1.ID)
	require.NoError(t, err)
	require.Equal(t, post.RepliesCount, again.RepliesCount)
}

func Test_replyDomain_LikeDislike_MutualExclusion(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	domain := newReplyDomain()

	likeResp, err := domain.LikeReply(ctx, &model.LikeReplyRequest{ID: testutil.Reply1.ID})
	require.NoError(t, err)
	require.Equal(t, 1, likeResp.LikeCount)

	dislikeResp, err := domain.DislikeReply(ctx, &model.DislikeReplyRequest{ID: testutil.Reply1.ID})
	require.NoError(t, err)
	require.Equal(t, 0, dislikeResp.LikeCount)
	require.Equal(t, 1, dislikeResp.DislikeCount)

	likeResp, err = domain.LikeReply(ctx, &model.LikeReplyRequest{ID: testutil.Reply1.ID})
	require.NoError(t, err)
	require.Equal(t, 1, likeResp.LikeCount)
	require.Equal(t, 0, likeResp.DislikeCount)
}

func Test_replyDomain_MarkHelpful_RewardsAuthor(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	domain := newReplyDomain()
	userRepo := repository.NewUserRepository()

	markResp, err := domain.MarkHelpful(ctx, &model.MarkHelpfulRequest{ID: testutil.Reply1.ID})
	require.NoError(t, err)
	require.True(t, markResp.Reply.IsHelpful)
	require.Equal(t, 1, markResp.Reply.HelpfulCount)

	author, err := userRepo.GetByID(ctx, testutil.Reply1.AuthorID)
	require.NoError(t, err)
	require.Equal(t, 3, author.Reputation)

	// Marking twice does not double the reward.
	markResp, err = domain.MarkHelpful(ctx, &model.MarkHelpfulRequest{ID: testutil.Reply1.ID})
	require.NoError(t, err)
	require.Equal(t, 1, markResp.Reply.HelpfulCount)

	author, err = userRepo.GetByID(ctx, testutil.Reply1.AuthorID)
	require.NoError(t, err)
	require.Equal(t, 3, author.Reputation)

	unmarkResp, err := domain.UnmarkHelpful(ctx, &model.UnmarkHelpfulRequest{ID: testutil.Reply1.ID})
	require.NoError(t, err)
	require.False(t, unmarkResp.Reply.IsHelpful)
	require.Equal(t, 0, unmarkResp.Reply.HelpfulCount)
}

func Test_replyDomain_UpdateReply_OnlyAuthor(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	domain := newReplyDomain()

	content := "edited"
	_, err := domain.UpdateReply(ctx, &model.UpdateReplyRequest{
		ID:      testutil.Reply1.ID,
		Content: &content,
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)

	ctxAuthor := xcontext.WithRequestUserID(ctx, testutil.User2.ID)
	updateResp, err := domain.UpdateReply(ctxAuthor, &model.UpdateReplyRequest{
		ID:      testutil.Reply1.ID,
		Content: &content,
	})
	require.NoError(t, err)
	require.Equal(t, "edited", updateResp.Reply.Content)
}
