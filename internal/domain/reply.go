package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hive-community/backend/internal/entity"
	"github.com/hive-community/backend/internal/model"
	"github.com/hive-community/backend/internal/repository"
	"github.com/hive-community/backend/pkg/errorx"
	"github.com/hive-community/backend/pkg/xcontext"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

const maxReplyContentLength = 2000

const helpfulReputationBonus = 3

type ReplyDomain interface {
	GetReplies(ctx context.Context, req *model.GetRepliesRequest) (*model.GetRepliesResponse, error)
	GetReply(ctx context.Context, req *model.GetReplyRequest) (*model.GetReplyResponse, error)
	CreateReply(ctx context.Context, req *model.CreateReplyRequest) (*model.CreateReplyResponse, error)
	UpdateReply(ctx context.Context, req *model.UpdateReplyRequest) (*model.UpdateReplyResponse, error)
	DeleteReply(ctx context.Context, req *model.DeleteReplyRequest) (*model.DeleteReplyResponse, error)
	LikeReply(ctx context.Context, req *model.LikeReplyRequest) (*model.LikeReplyResponse, error)
	DislikeReply(ctx context.Context, req *model.DislikeReplyRequest) (*model.DislikeReplyResponse, error)
	MarkHelpful(ctx context.Context, req *model.MarkHelpfulRequest) (*model.MarkHelpfulResponse, error)
	UnmarkHelpful(ctx context.Context, req *model.UnmarkHelpfulRequest) (*model.UnmarkHelpfulResponse, error)
}

type replyDomain struct {
	replyRepo repository.ReplyRepository
	postRepo  repository.PostRepository
	userRepo  repository.UserRepository
}

func NewReplyDomain(
	replyRepo repository.ReplyRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) ReplyDomain {
	return &replyDomain{
		replyRepo: replyRepo,
		postRepo:  postRepo,
		userRepo:  userRepo,
	}
}

func (d *replyDomain) GetReplies(
	ctx context.Context, req *model.GetRepliesRequest,
) (*model.GetRepliesResponse, error) {
	if req.PostID == "" {
		return nil, errorx.New(errorx.BadRequest, "Post id is required")
	}

	page, limit, offset := normalizePagination(ctx, req.Page, req.Limit)

	filter := repository.ReplyFilter{
		PostID: req.PostID,
		Offset: offset,
		Limit:  limit,
	}

	records, err := d.replyRepo.GetListByPost(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get replies: %v", err)
		return nil, errorx.Unknown
	}

	total, err := d.replyRepo.Count(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count replies: %v", err)
		return nil, errorx.Unknown
	}

	replies := []model.Reply{}
	for i := range records {
		replies = append(replies, model.ConvertReply(&records[i]))
	}

	return &model.GetRepliesResponse{
		Replies:    replies,
		Pagination: paginationOf(page, limit, total),
	}, nil
}

func (d *replyDomain) GetReply(
	ctx context.Context, req *model.GetReplyRequest,
) (*model.GetReplyResponse, error) {
	reply, err := d.getActiveReply(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	return &model.GetReplyResponse{Reply: model.ConvertReply(reply)}, nil
}

func (d *replyDomain) CreateReply(
	ctx context.Context, req *model.CreateReplyRequest,
) (*model.CreateReplyResponse, error) {
	fields := map[string]string{}
	if req.Content == "" || len(req.Content) > maxReplyContentLength {
		fields["content"] = "Content must be between 1 and 2000 characters"
	}

	replyType := entity.ReplyType(req.Type)
	if replyType == "" {
		replyType = entity.ReplyTypeReply
	} else if !slices.Contains(entity.ReplyTypes, replyType) {
		fields["type"] = "Invalid reply type"
	}

	if len(fields) > 0 {
		return nil, errorx.NewValidation(fields)
	}

	post, err := d.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Post not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get post: %v", err)
		return nil, errorx.Unknown
	}

	if post.Status != entity.PostActive {
		return nil, errorx.New(errorx.NotFound, "Post not found")
	}

	if req.ParentReplyID != "" {
		parent, err := d.replyRepo.GetByID(ctx, req.ParentReplyID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errorx.New(errorx.NotFound, "Parent reply not found")
			}

			xcontext.Logger(ctx).Errorf("Cannot get parent reply: %v", err)
			return nil, errorx.Unknown
		}

		if parent.PostID != post.ID {
			return nil, errorx.New(errorx.BadRequest, "Parent reply belongs to another post")
		}
	}

	userID := xcontext.RequestUserID(ctx)
	reply := &entity.Reply{
		Base:          entity.Base{ID: uuid.NewString()},
		PostID:        post.ID,
		AuthorID:      userID,
		ParentReplyID: req.ParentReplyID,
		Content:       req.Content,
		Type:          replyType,
		Status:        entity.ReplyActive,
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.replyRepo.Create(ctx, reply); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create reply: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.postRepo.IncreaseReplyCount(ctx, post.ID, 1); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot increase post reply count: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.userRepo.IncreaseReplyCount(ctx, userID, 1); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot increase user reply count: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)

	created, err := d.replyRepo.GetByID(ctx, reply.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get created reply: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateReplyResponse{Reply: model.ConvertReply(created)}, nil
}

func (d *replyDomain) UpdateReply(
	ctx context.Context, req *model.UpdateReplyRequest,
) (*model.UpdateReplyResponse, error) {
	reply, err := d.getActiveReply(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if reply.AuthorID != xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.PermissionDenied, "Only the author can update this reply")
	}

	if req.Content != nil {
		if *req.Content == "" || len(*req.Content) > maxReplyContentLength {
			return nil, errorx.New(errorx.BadRequest, "Content must be between 1 and 2000 characters")
		}

		err := d.replyRepo.Update(ctx, reply.ID, map[string]any{"content": *req.Content})
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot update reply: %v", err)
			return nil, errorx.Unknown
		}
	}

	updated, err := d.replyRepo.GetByID(ctx, reply.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get updated reply: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateReplyResponse{Reply: model.ConvertReply(updated)}, nil
}

func (d *replyDomain) DeleteReply(
	ctx context.Context, req *model.DeleteReplyRequest,
) (*model.DeleteReplyResponse, error) {
	reply, err := d.getActiveReply(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if reply.AuthorID != xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.PermissionDenied, "Only the author can delete this reply")
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.replyRepo.UpdateStatus(ctx, reply.ID, entity.ReplyDeleted); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete reply: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.postRepo.IncreaseReplyCount(ctx, reply.PostID, -1); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot decrease post reply count: %v", err)
			return nil, errorx.Unknown
		}
	}

	if err := d.userRepo.IncreaseReplyCount(ctx, reply.AuthorID, -1); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decrease user reply count: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)

	return &model.DeleteReplyResponse{}, nil
}

func (d *replyDomain) LikeReply(
	ctx context.Context, req *model.LikeReplyRequest,
) (*model.LikeReplyResponse, error) {
	reply, err := d.react(ctx, req.ID, true)
	if err != nil {
		return nil, err
	}

	return &model.LikeReplyResponse{
		LikeCount:    len(reply.Likes),
		DislikeCount: len(reply.Dislikes),
		Score:        len(reply.Likes) - len(reply.Dislikes),
	}, nil
}

func (d *replyDomain) DislikeReply(
	ctx context.Context, req *model.DislikeReplyRequest,
) (*model.DislikeReplyResponse, error) {
	reply, err := d.react(ctx, req.ID, false)
	if err != nil {
		return nil, err
	}

	return &model.DislikeReplyResponse{
		LikeCount:    len(reply.Likes),
		DislikeCount: len(reply.Dislikes),
		Score:        len(reply.Likes) - len(reply.Dislikes),
	}, nil
}

func (d *replyDomain) MarkHelpful(
	ctx context.Context, req *model.MarkHelpfulRequest,
) (*model.MarkHelpfulResponse, error) {
	reply, err := d.getActiveReply(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if reply.IsHelpful {
		return &model.MarkHelpfulResponse{Reply: model.ConvertReply(reply)}, nil
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.replyRepo.SetHelpful(ctx, reply.ID, true, reply.HelpfulCount+1); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot mark reply as helpful: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.userRepo.AddReputation(ctx, reply.AuthorID, helpfulReputationBonus); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot reward reply author: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)

	updated, err := d.replyRepo.GetByID(ctx, reply.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get marked reply: %v", err)
		return nil, errorx.Unknown
	}

	return &model.MarkHelpfulResponse{Reply: model.ConvertReply(updated)}, nil
}

func (d *replyDomain) UnmarkHelpful(
	ctx context.Context, req *model.UnmarkHelpfulRequest,
) (*model.UnmarkHelpfulResponse, error) {
	reply, err := d.getActiveReply(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if !reply.IsHelpful {
		return &model.UnmarkHelpfulResponse{Reply: model.ConvertReply(reply)}, nil
	}

	count := reply.HelpfulCount - 1
	if count < 0 {
		count = 0
	}

	if err := d.replyRepo.SetHelpful(ctx, reply.ID, false, count); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot unmark reply as helpful: %v", err)
		return nil, errorx.Unknown
	}

	updated, err := d.replyRepo.GetByID(ctx, reply.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get unmarked reply: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UnmarkHelpfulResponse{Reply: model.ConvertReply(updated)}, nil
}

func (d *replyDomain) react(ctx context.Context, id string, like bool) (*entity.Reply, error) {
	reply, err := d.getActiveReply(ctx, id)
	if err != nil {
		return nil, err
	}

	userID := xcontext.RequestUserID(ctx)
	likes, dislikes := toggleReaction(reply.Likes, reply.Dislikes, userID, like)

	if err := d.replyRepo.SetReactions(ctx, reply.ID, likes, dislikes); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot store reply reactions: %v", err)
		return nil, errorx.Unknown
	}

	reply.Likes = likes
	reply.Dislikes = dislikes
	return reply, nil
}

func (d *replyDomain) getActiveReply(ctx context.Context, id string) (*entity.Reply, error) {
	if id == "" {
		return nil, errorx.New(errorx.BadRequest, "Reply id is required")
	}

	reply, err := d.replyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Reply not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get reply: %v", err)
		return nil, errorx.Unknown
	}

	if reply.Status != entity.ReplyActive {
		return nil, errorx.New(errorx.NotFound, "Reply not found")
	}

	return reply, nil
}
