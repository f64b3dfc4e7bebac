package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hive-community/backend/internal/common"
	"github.com/hive-community/backend/internal/entity"
	"github.com/hive-community/backend/internal/model"
	"github.com/hive-community/backend/internal/repository"
	"github.com/hive-community/backend/pkg/errorx"
	"github.com/hive-community/backend/pkg/xcontext"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

const (
	maxThreadTitleLength       = 200
	maxThreadDescriptionLength = 1000

	defaultFeaturedLimit = 5
)

type ThreadDomain interface {
	GetThreads(ctx context.Context, req *model.GetThreadsRequest) (*model.GetThreadsResponse, error)
	GetThread(ctx context.Context, req *model.GetThreadRequest) (*model.GetThreadResponse, error)
	GetFeaturedThreads(ctx context.Context, req *model.GetFeaturedThreadsRequest) (*model.GetFeaturedThreadsResponse, error)
	CreateThread(ctx context.Context, req *model.CreateThreadRequest) (*model.CreateThreadResponse, error)
	UpdateThread(ctx context.Context, req *model.UpdateThreadRequest) (*model.UpdateThreadResponse, error)
	DeleteThread(ctx context.Context, req *model.DeleteThreadRequest) (*model.DeleteThreadResponse, error)
}

type threadDomain struct {
	threadRepo   repository.ThreadRepository
	roleVerifier *common.ModeratorVerifier
}

func NewThreadDomain(
	threadRepo repository.ThreadRepository,
	roleVerifier *common.ModeratorVerifier,
) ThreadDomain {
	return &threadDomain{threadRepo: threadRepo, roleVerifier: roleVerifier}
}

func (d *threadDomain) GetThreads(
	ctx context.Context, req *model.GetThreadsRequest,
) (*model.GetThreadsResponse, error) {
	page, limit, offset := normalizePagination(ctx, req.Page, req.Limit)

	filter := repository.ThreadFilter{
		Category: req.Category,
		Type:     req.Type,
		Status:   req.Status,
		Q:        req.Q,
		SortBy:   req.SortBy,
		Offset:   offset,
		Limit:    limit,
	}

	records, err := d.threadRepo.GetList(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get threads: %v", err)
		return nil, errorx.Unknown
	}

	total, err := d.threadRepo.Count(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count threads: %v", err)
		return nil, errorx.Unknown
	}

	threads := []model.Thread{}
	for i := range records {
		threads = append(threads, model.ConvertThread(&records[i]))
	}

	return &model.GetThreadsResponse{
		Threads:    threads,
		Pagination: paginationOf(page, limit, total),
	}, nil
}

func (d *threadDomain) GetThread(
	ctx context.Context, req *model.GetThreadRequest,
) (*model.GetThreadResponse, error) {
	thread, err := d.getVisibleThread(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if thread.IsPrivate && !d.canAccessPrivate(ctx, thread) {
		return nil, errorx.New(errorx.PermissionDenied, "This thread is private")
	}

	if err := d.threadRepo.IncrementViews(ctx, thread.ID); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot increment thread views: %v", err)
	} else {
		thread.Views++
	}

	return &model.GetThreadResponse{Thread: model.ConvertThread(thread)}, nil
}

func (d *threadDomain) GetFeaturedThreads(
	ctx context.Context, req *model.GetFeaturedThreadsRequest,
) (*model.GetFeaturedThreadsResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultFeaturedLimit
	}

	if maxLimit := xcontext.Configs(ctx).ApiServer.MaxLimit; limit > maxLimit {
		limit = maxLimit
	}

	records, err := d.threadRepo.GetFeatured(ctx, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get featured threads: %v", err)
		return nil, errorx.Unknown
	}

	threads := []model.Thread{}
	for i := range records {
		threads = append(threads, model.ConvertThread(&records[i]))
	}

	return &model.GetFeaturedThreadsResponse{Threads: threads}, nil
}

func (d *threadDomain) CreateThread(
	ctx context.Context, req *model.CreateThreadRequest,
) (*model.CreateThreadResponse, error) {
	fields := map[string]string{}
	if req.Title == "" || len(req.Title) > maxThreadTitleLength {
		fields["title"] = "Title must be between 1 and 200 characters"
	}

	if req.Description == "" || len(req.Description) > maxThreadDescriptionLength {
		fields["description"] = "Description must be between 1 and 1000 characters"
	}

	category := entity.ThreadCategory(req.Category)
	if category == "" {
		category = entity.ThreadGeneral
	} else if !slices.Contains(entity.ThreadCategories, category) {
		fields["category"] = "Invalid thread category"
	}

	threadType := entity.ThreadType(req.Type)
	if threadType == "" {
		threadType = entity.ThreadTypeDiscussion
	} else if !slices.Contains(entity.ThreadTypes, threadType) {
		fields["type"] = "Invalid thread type"
	}

	if len(fields) > 0 {
		return nil, errorx.NewValidation(fields)
	}

	thread := &entity.Thread{
		Base:           entity.Base{ID: uuid.NewString()},
		Title:          req.Title,
		Description:    req.Description,
		Category:       category,
		Type:           threadType,
		Tags:           req.Tags,
		AuthorID:       xcontext.RequestUserID(ctx),
		Status:         entity.ThreadActive,
		LastActivity:   time.Now(),
		IsPrivate:      req.IsPrivate,
		AllowedUserIDs: req.AllowedUserIDs,
	}

	if err := d.threadRepo.Create(ctx, thread); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create thread: %v", err)
		return nil, errorx.Unknown
	}

	created, err := d.threadRepo.GetByID(ctx, thread.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get created thread: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateThreadResponse{Thread: model.ConvertThread(created)}, nil
}

func (d *threadDomain) UpdateThread(
	ctx context.Context, req *model.UpdateThreadRequest,
) (*model.UpdateThreadResponse, error) {
	thread, err := d.getVisibleThread(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if !d.canModerate(ctx, thread) {
		return nil, errorx.New(errorx.PermissionDenied, "Only the author or a moderator can update this thread")
	}

	updates := map[string]any{}

	if req.Title != nil {
		if *req.Title == "" || len(*req.Title) > maxThreadTitleLength {
			return nil, errorx.New(errorx.BadRequest, "Title must be between 1 and 200 characters")
		}
		updates["title"] = *req.Title
	}

	if req.Description != nil {
		if *req.Description == "" || len(*req.Description) > maxThreadDescriptionLength {
			return nil, errorx.New(errorx.BadRequest, "Description must be between 1 and 1000 characters")
		}
		updates["description"] = *req.Description
	}

	if req.Category != nil {
		if !slices.Contains(entity.ThreadCategories, entity.ThreadCategory(*req.Category)) {
			return nil, errorx.New(errorx.BadRequest, "Invalid thread category")
		}
		updates["category"] = *req.Category
	}

	if req.Tags != nil {
		updates["tags"] = entity.Array[string](*req.Tags)
	}

	if req.Status != nil {
		status := entity.ThreadStatus(*req.Status)
		switch status {
		case entity.ThreadActive, entity.ThreadClosed, entity.ThreadPinned, entity.ThreadArchived:
		default:
			return nil, errorx.New(errorx.BadRequest, "Invalid thread status")
		}
		updates["status"] = status
	}

	if req.IsPrivate != nil {
		updates["is_private"] = *req.IsPrivate
	}

	if req.AllowedUserIDs != nil {
		updates["allowed_user_ids"] = entity.Array[string](*req.AllowedUserIDs)
	}

	if len(updates) > 0 {
		if err := d.threadRepo.Update(ctx, thread.ID, updates); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot update thread: %v", err)
			return nil, errorx.Unknown
		}
	}

	updated, err := d.threadRepo.GetByID(ctx, thread.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get updated thread: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateThreadResponse{Thread: model.ConvertThread(updated)}, nil
}

func (d *threadDomain) DeleteThread(
	ctx context.Context, req *model.DeleteThreadRequest,
) (*model.DeleteThreadResponse, error) {
	thread, err := d.getVisibleThread(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if !d.canModerate(ctx, thread) {
		return nil, errorx.New(errorx.PermissionDenied, "Only the author or a moderator can delete this thread")
	}

	if err := d.threadRepo.UpdateStatus(ctx, thread.ID, entity.ThreadDeleted); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete thread: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteThreadResponse{}, nil
}

// getVisibleThread loads a thread, treating deleted ones as absent.
func (d *threadDomain) getVisibleThread(ctx context.Context, id string) (*entity.Thread, error) {
	if id == "" {
		return nil, errorx.New(errorx.BadRequest, "Thread id is required")
	}

	thread, err := d.threadRepo.GetByID(ctx, id)
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

	return thread, nil
}

func (d *threadDomain) canAccessPrivate(ctx context.Context, thread *entity.Thread) bool {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return false
	}

	if userID == thread.AuthorID {
		return true
	}

	return slices.Contains(thread.AllowedUserIDs, userID)
}

func (d *threadDomain) canModerate(ctx context.Context, thread *entity.Thread) bool {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return false
	}

	if userID == thread.AuthorID {
		return true
	}

	if slices.Contains(thread.ModeratorIDs, userID) {
		return true
	}

	return d.roleVerifier.Verify(ctx) == nil
}
