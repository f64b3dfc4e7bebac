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

const maxPostContentLength = 5000

type PostDomain interface {
	GetPosts(ctx context.Context, req *model.GetPostsRequest) (*model.GetPostsResponse, error)
	GetPost(ctx context.Context, req *model.GetPostRequest) (*model.GetPostResponse, error)
	CreatePost(ctx context.Context, req *model.CreatePostRequest) (*model.CreatePostResponse, error)
	UpdatePost(ctx context.Context, req *model.UpdatePostRequest) (*model.UpdatePostResponse, error)
	DeletePost(ctx context.Context, req *model.DeletePostRequest) (*model.DeletePostResponse, error)
	LikePost(ctx context.Context, req *model.LikePostRequest) (*model.LikePostResponse, error)
	DislikePost(ctx context.Context, req *model.DislikePostRequest) (*model.DislikePostResponse, error)
	AcceptAnswer(ctx context.Context, req *model.AcceptAnswerRequest) (*model.AcceptAnswerResponse, error)
}

type postDomain struct {
	postRepo   repository.PostRepository
	threadRepo repository.ThreadRepository
	userRepo   repository.UserRepository
}

func NewPostDomain(
	postRepo repository.PostRepository,
	threadRepo repository.ThreadRepository,
	userRepo repository.UserRepository,
) PostDomain {
	return &postDomain{
		postRepo:   postRepo,
		threadRepo: threadRepo,
		userRepo:   userRepo,
	}
}

func (d *postDomain) GetPosts(
	ctx context.Context, req *model.GetPostsRequest,
) (*model.GetPostsResponse, error) {
	if req.ThreadID == "" {
		return nil, errorx.New(errorx.BadRequest, "Thread id is required")
	}

	page, limit, offset := normalizePagination(ctx, req.Page, req.Limit)

	filter := repository.PostFilter{
		ThreadID: req.ThreadID,
		Offset:   offset,
		Limit:    limit,
	}

	records, err := d.postRepo.GetListByThread(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get posts: %v", err)
		return nil, errorx.Unknown
	}

	total, err := d.postRepo.Count(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count posts: %v", err)
		return nil, errorx.Unknown
	}

	posts := []model.Post{}
	for i := range records {
		posts = append(posts, model.ConvertPost(&records[i]))
	}

	return &model.GetPostsResponse{
		Posts:      posts,
		Pagination: paginationOf(page, limit, total),
	}, nil
}

func (d *postDomain) GetPost(
	ctx context.Context, req *model.GetPostRequest,
) (*model.GetPostResponse, error) {
	post, err := d.getActivePost(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := d.postRepo.IncrementViews(ctx, post.ID); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot increment post views: %v", err)
	} else {
		post.Views++
	}

	return &model.GetPostResponse{Post: model.ConvertPost(post)}, nil
}

func (d *postDomain) CreatePost(
	ctx context.Context, req *model.CreatePostRequest,
) (*model.CreatePostResponse, error) {
	fields := map[string]string{}
	if req.Content == "" || len(req.Content) > maxPostContentLength {
		fields["content"] = "Content must be between 1 and 5000 characters"
	}

	postType := entity.PostType(req.Type)
	if postType == "" {
		postType = entity.PostTypeDiscussion
	} else if !slices.Contains(entity.PostTypes, postType) {
		fields["type"] = "Invalid post type"
	}

	if len(fields) > 0 {
		return nil, errorx.NewValidation(fields)
	}

	thread, err := d.threadRepo.GetByID(ctx, req.ThreadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Thread not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get thread: %v", err)
		return nil, errorx.Unknown
	}

	if thread.Status == entity.ThreadDeleted {
		return nil, errorx.New(errorx.NotFound, "Thread not found")
	}

	if thread.Status == entity.ThreadClosed || thread.Status == entity.ThreadArchived {
		return nil, errorx.New(errorx.BadRequest, "This thread no longer accepts posts")
	}

	userID := xcontext.RequestUserID(ctx)
	post := &entity.Post{
		Base:     entity.Base{ID: uuid.NewString()},
		ThreadID: thread.ID,
		AuthorID: userID,
		Content:  req.Content,
		Type:     postType,
		Status:   entity.PostActive,
		Tags:     req.Tags,
	}

	if postType == entity.PostTypeMilestone && req.Milestone != nil {
		post.Milestone = entity.Milestone{
			Title:       req.Milestone.Title,
			Description: req.Milestone.Description,
			Category:    req.Milestone.Category,
			IsPublic:    req.Milestone.IsPublic,
		}
	}

	if postType == entity.PostTypeMentorship && req.MentorshipRequest != nil {
		post.MentorshipRequest = entity.MentorshipRequest{
			Topic:               req.MentorshipRequest.Topic,
			Description:         req.MentorshipRequest.Description,
			PreferredMentorType: req.MentorshipRequest.PreferredMentorType,
			Timeline:            req.MentorshipRequest.Timeline,
			IsOpen:              req.MentorshipRequest.IsOpen,
		}
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.postRepo.Create(ctx, post); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create post: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.threadRepo.IncreasePostCount(ctx, thread.ID, 1); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot increase thread post count: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.userRepo.IncreasePostCount(ctx, userID, 1); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot increase user post count: %v", err)
		return nil, errorx.Unknown
	}

	if postType == entity.PostTypeMilestone {
		if err := d.userRepo.IncreaseMilestoneCount(ctx, userID, 1); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot increase milestone count: %v", err)
			return nil, errorx.Unknown
		}
	}

	xcontext.WithCommitDBTransaction(ctx)

	created, err := d.postRepo.GetByID(ctx, post.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get created post: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreatePostResponse{Post: model.ConvertPost(created)}, nil
}

func (d *postDomain) UpdatePost(
	ctx context.Context, req *model.UpdatePostRequest,
) (*model.UpdatePostResponse, error) {
	post, err := d.getActivePost(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.PermissionDenied, "Only the author can update this post")
	}

	updates := map[string]any{}

	if req.Content != nil {
		if *req.Content == "" || len(*req.Content) > maxPostContentLength {
			return nil, errorx.New(errorx.BadRequest, "Content must be between 1 and 5000 characters")
		}
		updates["content"] = *req.Content
	}

	if req.Tags != nil {
		updates["tags"] = entity.Array[string](*req.Tags)
	}

	if len(updates) > 0 {
		if err := d.postRepo.Update(ctx, post.ID, updates); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot update post: %v", err)
			return nil, errorx.Unknown
		}
	}

	updated, err := d.postRepo.GetByID(ctx, post.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get updated post: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdatePostResponse{Post: model.ConvertPost(updated)}, nil
}

func (d *postDomain) DeletePost(
	ctx context.Context, req *model.DeletePostRequest,
) (*model.DeletePostResponse, error) {
	post, err := d.getActivePost(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.PermissionDenied, "Only the author can delete this post")
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.postRepo.UpdateStatus(ctx, post.ID, entity.PostDeleted); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete post: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.threadRepo.IncreasePostCount(ctx, post.ThreadID, -1); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot decrease thread post count: %v", err)
			return nil, errorx.Unknown
		}
	}

	if err := d.userRepo.IncreasePostCount(ctx, post.AuthorID, -1); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decrease user post count: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)

	return &model.DeletePostResponse{}, nil
}

func (d *postDomain) LikePost(
	ctx context.Context, req *model.LikePostRequest,
) (*model.LikePostResponse, error) {
	post, err := d.react(ctx, req.ID, true)
	if err != nil {
		return nil, err
	}

	return &model.LikePostResponse{
		LikeCount:    len(post.Likes),
		DislikeCount: len(post.Dislikes),
		Score:        len(post.Likes) - len(post.Dislikes),
	}, nil
}

func (d *postDomain) DislikePost(
	ctx context.Context, req *model.DislikePostRequest,
) (*model.DislikePostResponse, error) {
	post, err := d.react(ctx, req.ID, false)
	if err != nil {
		return nil, err
	}

	return &model.DislikePostResponse{
		LikeCount:    len(post.Likes),
		DislikeCount: len(post.Dislikes),
		Score:        len(post.Likes) - len(post.Dislikes),
	}, nil
}

func (d *postDomain) AcceptAnswer(
	ctx context.Context, req *model.AcceptAnswerRequest,
) (*model.AcceptAnswerResponse, error) {
	post, err := d.getActivePost(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if post.Type != entity.PostTypeAnswer {
		return nil, errorx.New(errorx.BadRequest, "Only answer posts can be accepted")
	}

	thread, err := d.threadRepo.GetByID(ctx, post.ThreadID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get thread of post: %v", err)
		return nil, errorx.Unknown
	}

	if thread.AuthorID != xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.PermissionDenied, "Only the thread author can accept an answer")
	}

	if err := d.postRepo.SetAcceptedAnswer(ctx, post.ID, true); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot accept answer: %v", err)
		return nil, errorx.Unknown
	}

	accepted, err := d.postRepo.GetByID(ctx, post.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get accepted post: %v", err)
		return nil, errorx.Unknown
	}

	return &model.AcceptAnswerResponse{Post: model.ConvertPost(accepted)}, nil
}

// react toggles the caller in the likes or dislikes set, keeping the two
// mutually exclusive. The read-modify-write is not atomic, concurrent
// reactions from the same user may lose one toggle.
func (d *postDomain) react(ctx context.Context, id string, like bool) (*entity.Post, error) {
	post, err := d.getActivePost(ctx, id)
	if err != nil {
		return nil, err
	}

	userID := xcontext.RequestUserID(ctx)
	likes, dislikes := toggleReaction(post.Likes, post.Dislikes, userID, like)

	if err := d.postRepo.SetReactions(ctx, post.ID, likes, dislikes); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot store post reactions: %v", err)
		return nil, errorx.Unknown
	}

	post.Likes = likes
	post.Dislikes = dislikes
	return post, nil
}

func (d *postDomain) getActivePost(ctx context.Context, id string) (*entity.Post, error) {
	if id == "" {
		return nil, errorx.New(errorx.BadRequest, "Post id is required")
	}

	post, err := d.postRepo.GetByID(ctx, id)
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

	return post, nil
}

// toggleReaction implements the mutually-exclusive like/dislike toggle: a
// second identical reaction removes it, an opposite reaction replaces it.
func toggleReaction(likes, dislikes []string, userID string, like bool) ([]string, []string) {
	target, other := likes, dislikes
	if !like {
		target, other = dislikes, likes
	}

	if idx := slices.Index(target, userID); idx >= 0 {
		target = slices.Delete(slices.Clone(target), idx, idx+1)
	} else {
		target = append(slices.Clone(target), userID)
		if idx := slices.Index(other, userID); idx >= 0 {
			other = slices.Delete(slices.Clone(other), idx, idx+1)
		}
	}

	if like {
		return target, other
	}

	return other, target
}
