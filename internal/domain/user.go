package domain

import (
	"context"
	"errors"
	"time"

	"github.com/hive-community/backend/internal/model"
	"github.com/hive-community/backend/internal/repository"
	"github.com/hive-community/backend/pkg/errorx"
	"github.com/hive-community/backend/pkg/xcontext"
	"gorm.io/gorm"
)

var reputationActions = map[string]int{
	"upvote":    1,
	"downvote":  -1,
	"milestone": 5,
	"helpful":   3,
}

type UserDomain interface {
	GetUsers(ctx context.Context, req *model.GetUsersRequest) (*model.GetUsersResponse, error)
	GetUser(ctx context.Context, req *model.GetUserRequest) (*model.GetUserResponse, error)
	SearchUsers(ctx context.Context, req *model.SearchUsersRequest) (*model.SearchUsersResponse, error)
	GetMentors(ctx context.Context, req *model.GetMentorsRequest) (*model.GetMentorsResponse, error)
	GetMentees(ctx context.Context, req *model.GetMenteesRequest) (*model.GetMenteesResponse, error)
	UpdateReputation(ctx context.Context, req *model.UpdateReputationRequest) (*model.UpdateReputationResponse, error)
	GetUserStats(ctx context.Context, req *model.GetUserStatsRequest) (*model.GetUserStatsResponse, error)
}

type userDomain struct {
	userRepo repository.UserRepository
}

func NewUserDomain(userRepo repository.UserRepository) UserDomain {
	return &userDomain{userRepo: userRepo}
}

func (d *userDomain) GetUsers(
	ctx context.Context, req *model.GetUsersRequest,
) (*model.GetUsersResponse, error) {
	page, limit, offset := normalizePagination(ctx, req.Page, req.Limit)

	filter := repository.UserFilter{
		Q:               req.Q,
		IsMentor:        parseBool(req.IsMentor),
		IsSeekingMentor: parseBool(req.IsSeekingMentor),
		Expertise:       req.Expertise,
		Goals:           req.Goals,
		Interests:       req.Interests,
		SortBy:          req.SortBy,
		Offset:          offset,
		Limit:           limit,
	}

	users, total, err := d.listUsers(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &model.GetUsersResponse{
		Users:      users,
		Pagination: paginationOf(page, limit, total),
	}, nil
}

func (d *userDomain) GetUser(
	ctx context.Context, req *model.GetUserRequest,
) (*model.GetUserResponse, error) {
	user, err := d.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "User not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	if !user.IsActive {
		return nil, errorx.New(errorx.NotFound, "User not found")
	}

	includeSensitive := user.ID == xcontext.RequestUserID(ctx)
	return &model.GetUserResponse{User: model.ConvertUser(user, includeSensitive)}, nil
}

func (d *userDomain) SearchUsers(
	ctx context.Context, req *model.SearchUsersRequest,
) (*model.SearchUsersResponse, error) {
	page, limit, offset := normalizePagination(ctx, req.Page, req.Limit)

	filter := repository.UserFilter{
		Q:         req.Q,
		Expertise: req.Expertise,
		Goals:     req.Goals,
		Interests: req.Interests,
		Offset:    offset,
		Limit:     limit,
	}

	users, total, err := d.listUsers(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &model.SearchUsersResponse{
		Users:      users,
		Pagination: paginationOf(page, limit, total),
	}, nil
}

func (d *userDomain) GetMentors(
	ctx context.Context, req *model.GetMentorsRequest,
) (*model.GetMentorsResponse, error) {
	page, limit, offset := normalizePagination(ctx, req.Page, req.Limit)

	isMentor := true
	filter := repository.UserFilter{
		IsMentor:  &isMentor,
		Expertise: req.Expertise,
		SortBy:    "reputation",
		Offset:    offset,
		Limit:     limit,
	}

	users, total, err := d.listUsers(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &model.GetMentorsResponse{
		Users:      users,
		Pagination: paginationOf(page, limit, total),
	}, nil
}

func (d *userDomain) GetMentees(
	ctx context.Context, req *model.GetMenteesRequest,
) (*model.GetMenteesResponse, error) {
	page, limit, offset := normalizePagination(ctx, req.Page, req.Limit)

	isSeeking := true
	filter := repository.UserFilter{
		IsSeekingMentor: &isSeeking,
		Goals:           req.Goals,
		Offset:          offset,
		Limit:           limit,
	}

	users, total, err := d.listUsers(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &model.GetMenteesResponse{
		Users:      users,
		Pagination: paginationOf(page, limit, total),
	}, nil
}

func (d *userDomain) UpdateReputation(
	ctx context.Context, req *model.UpdateReputationRequest,
) (*model.UpdateReputationResponse, error) {
	delta, ok := reputationActions[req.Action]
	if !ok {
		return nil, errorx.New(errorx.BadRequest, "Invalid reputation action")
	}

	if req.UserID == "" {
		return nil, errorx.New(errorx.BadRequest, "User id is required")
	}

	if err := d.userRepo.AddReputation(ctx, req.UserID, delta); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "User not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot update reputation: %v", err)
		return nil, errorx.Unknown
	}

	user, err := d.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user after reputation update: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateReputationResponse{Reputation: user.Reputation}, nil
}

func (d *userDomain) GetUserStats(
	ctx context.Context, req *model.GetUserStatsRequest,
) (*model.GetUserStatsResponse, error) {
	user, err := d.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "User not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	days := int(time.Since(user.CreatedAt).Hours() / 24)
	if days < 1 {
		days = 1
	}

	return &model.GetUserStatsResponse{
		Stats: model.UserStats{
			Reputation:          user.Reputation,
			PostsCount:          user.PostsCount,
			RepliesCount:        user.RepliesCount,
			MilestonesCount:     user.MilestonesCount,
			DaysSinceJoined:     days,
			AvgReputationPerDay: float64(user.Reputation) / float64(days),
		},
	}, nil
}

func (d *userDomain) listUsers(
	ctx context.Context, filter repository.UserFilter,
) ([]model.User, int64, error) {
	records, err := d.userRepo.GetList(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get users: %v", err)
		return nil, 0, errorx.Unknown
	}

	total, err := d.userRepo.Count(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count users: %v", err)
		return nil, 0, errorx.Unknown
	}

	users := []model.User{}
	for i := range records {
		users = append(users, model.ConvertUser(&records[i], false))
	}

	return users, total, nil
}
