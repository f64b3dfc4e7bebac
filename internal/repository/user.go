package repository

import (
	"context"
	"time"

	"github.com/hive-community/backend/internal/entity"
	"github.com/hive-community/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type UserFilter struct {
	Q               string
	IsMentor        *bool
	IsSeekingMentor *bool
	Expertise       string
	Goals           string
	Interests       string
	SortBy          string
	Offset          int
	Limit           int
}

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByResetToken(ctx context.Context, token string) (*entity.User, error)
	Update(ctx context.Context, id string, data map[string]any) error
	UpdateLastSeen(ctx context.Context, id string) error
	AddReputation(ctx context.Context, id string, delta int) error
	IncreasePostCount(ctx context.Context, id string, delta int) error
	IncreaseReplyCount(ctx context.Context, id string, delta int) error
	IncreaseMilestoneCount(ctx context.Context, id string, delta int) error
	GetList(ctx context.Context, filter UserFilter) ([]entity.User, error)
	Count(ctx context.Context, filter UserFilter) (int64, error)
}

type userRepository struct{}

func NewUserRepository() *userRepository {
	return &userRepository{}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return xcontext.DB(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var result entity.User
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var result entity.User
	if err := xcontext.DB(ctx).Take(&result, "email=?", email).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *userRepository) GetByResetToken(ctx context.Context, token string) (*entity.User, error) {
	var result entity.User
	err := xcontext.DB(ctx).Take(&result, "reset_password_token=?", token).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *userRepository) Update(ctx context.Context, id string, data map[string]any) error {
	return xcontext.DB(ctx).
		Model(&entity.User{}).
		Where("id=?", id).
		Updates(data).Error
}

func (r *userRepository) UpdateLastSeen(ctx context.Context, id string) error {
	return xcontext.DB(ctx).
		Model(&entity.User{}).
		Where("id=?", id).
		Update("last_seen", time.Now()).Error
}

func (r *userRepository) AddReputation(ctx context.Context, id string, delta int) error {
	tx := xcontext.DB(ctx).
		Model(&entity.User{}).
		Where("id=?", id).
		Update("reputation", gorm.Expr("reputation+?", delta))

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *userRepository) IncreasePostCount(ctx context.Context, id string, delta int) error {
	return r.increase(ctx, id, "posts_count", delta)
}

func (r *userRepository) IncreaseReplyCount(ctx context.Context, id string, delta int) error {
	return r.increase(ctx, id, "replies_count", delta)
}

func (r *userRepository) IncreaseMilestoneCount(ctx context.Context, id string, delta int) error {
	return r.increase(ctx, id, "milestones_count", delta)
}

func (r *userRepository) increase(ctx context.Context, id, column string, delta int) error {
	tx := xcontext.DB(ctx).
		Model(&entity.User{}).
		Where("id=?", id).
		Update(column, gorm.Expr(column+"+?", delta))

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *userRepository) GetList(ctx context.Context, filter UserFilter) ([]entity.User, error) {
	tx := r.applyFilter(xcontext.DB(ctx), filter).
		Offset(filter.Offset).
		Limit(filter.Limit)

	switch filter.SortBy {
	case "reputation":
		tx = tx.Order("reputation DESC")
	case "createdAt":
		tx = tx.Order("created_at DESC")
	default:
		tx = tx.Order("last_seen DESC")
	}

	var result []entity.User
	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *userRepository) Count(ctx context.Context, filter UserFilter) (int64, error) {
	var count int64
	err := r.applyFilter(xcontext.DB(ctx), filter).Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *userRepository) applyFilter(db *gorm.DB, filter UserFilter) *gorm.DB {
	tx := db.Model(&entity.User{}).Where("is_active=?", true)

	if filter.Q != "" {
		q := "%" + filter.Q + "%"
		tx = tx.Where(
			"first_name LIKE ? OR last_name LIKE ? OR bio LIKE ?", q, q, q)
	}

	if filter.IsMentor != nil {
		tx = tx.Where("is_mentor=?", *filter.IsMentor)
	}

	if filter.IsSeekingMentor != nil {
		tx = tx.Where("is_seeking_mentor=?", *filter.IsSeekingMentor)
	}

	// Array columns are stored as JSON text, substring match is enough for
	// the filter surface we expose.
	if filter.Expertise != "" {
		tx = tx.Where("expertise LIKE ?", "%"+filter.Expertise+"%")
	}

	if filter.Goals != "" {
		tx = tx.Where("goals LIKE ?", "%"+filter.Goals+"%")
	}

	if filter.Interests != "" {
		tx = tx.Where("interests LIKE ?", "%"+filter.Interests+"%")
	}

	return tx
}
