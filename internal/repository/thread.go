package repository

import (
	"context"
	"time"

	"github.com/hive-community/backend/internal/entity"
	"github.com/hive-community/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ThreadFilter struct {
	Category string
	Type     string
	Status   string
	Q        string
	SortBy   string
	Offset   int
	Limit    int
}

type ThreadRepository interface {
	Create(ctx context.Context, thread *entity.Thread) error
	GetByID(ctx context.Context, id string) (*entity.Thread, error)
	Update(ctx context.Context, id string, data map[string]any) error
	UpdateStatus(ctx context.Context, id string, status entity.ThreadStatus) error
	IncrementViews(ctx context.Context, id string) error
	IncreasePostCount(ctx context.Context, id string, delta int) error
	GetList(ctx context.Context, filter ThreadFilter) ([]entity.Thread, error)
	GetFeatured(ctx context.Context, limit int) ([]entity.Thread, error)
	Count(ctx context.Context, filter ThreadFilter) (int64, error)
}

type threadRepository struct{}

func NewThreadRepository() *threadRepository {
	return &threadRepository{}
}

func (r *threadRepository) Create(ctx context.Context, thread *entity.Thread) error {
	return xcontext.DB(ctx).Create(thread).Error
}

func (r *threadRepository) GetByID(ctx context.Context, id string) (*entity.Thread, error) {
	var result entity.Thread
	err := xcontext.DB(ctx).Preload("Author").Take(&result, "id=?", id).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *threadRepository) Update(ctx context.Context, id string, data map[string]any) error {
	return xcontext.DB(ctx).
		Model(&entity.Thread{}).
		Where("id=?", id).
		Updates(data).Error
}

func (r *threadRepository) UpdateStatus(ctx context.Context, id string, status entity.ThreadStatus) error {
	return xcontext.DB(ctx).
		Model(&entity.Thread{}).
		Where("id=?", id).
		Update("status", status).Error
}

func (r *threadRepository) IncrementViews(ctx context.Context, id string) error {
	return xcontext.DB(ctx).
		Model(&entity.Thread{}).
		Where("id=?", id).
		Update("views", gorm.Expr("views+1")).Error
}

// IncreasePostCount moves the post counter by delta and touches
// last_activity. Negative delta is used when a post is soft-deleted.
func (r *threadRepository) IncreasePostCount(ctx context.Context, id string, delta int) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Thread{}).
		Where("id=?", id).
		Updates(map[string]any{
			"posts_count":   gorm.Expr("posts_count+?", delta),
			"last_activity": time.Now(),
		})

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *threadRepository) GetList(ctx context.Context, filter ThreadFilter) ([]entity.Thread, error) {
	tx := r.applyFilter(xcontext.DB(ctx), filter).
		Preload("Author").
		Offset(filter.Offset).
		Limit(filter.Limit)

	switch filter.SortBy {
	case "createdAt":
		tx = tx.Order("created_at DESC")
	case "postsCount":
		tx = tx.Order("posts_count DESC")
	case "views":
		tx = tx.Order("views DESC")
	default:
		tx = tx.Order("last_activity DESC")
	}

	var result []entity.Thread
	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *threadRepository) GetFeatured(ctx context.Context, limit int) ([]entity.Thread, error) {
	var result []entity.Thread
	err := xcontext.DB(ctx).
		Preload("Author").
		Where("is_featured=? AND status<>?", true, entity.ThreadDeleted).
		Order("featured_at DESC").
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *threadRepository) Count(ctx context.Context, filter ThreadFilter) (int64, error) {
	var count int64
	err := r.applyFilter(xcontext.DB(ctx), filter).Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *threadRepository) applyFilter(db *gorm.DB, filter ThreadFilter) *gorm.DB {
	tx := db.Model(&entity.Thread{})

	if filter.Status != "" {
		tx = tx.Where("status=?", filter.Status)
	} else {
		tx = tx.Where("status<>?", entity.ThreadDeleted)
	}

	if filter.Category != "" {
		tx = tx.Where("category=?", filter.Category)
	}

	if filter.Type != "" {
		tx = tx.Where("type=?", filter.Type)
	}

	if filter.Q != "" {
		q := "%" + filter.Q + "%"
		tx = tx.Where("title LIKE ? OR description LIKE ?", q, q)
	}

	return tx
}
