package repository

import (
	"context"

	"github.com/hive-community/backend/internal/entity"
	"github.com/hive-community/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type PostFilter struct {
	ThreadID string
	Offset   int
	Limit    int
}

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	Update(ctx context.Context, id string, data map[string]any) error
	UpdateStatus(ctx context.Context, id string, status entity.PostStatus) error
	IncrementViews(ctx context.Context, id string) error
	SetReactions(ctx context.Context, id string, likes, dislikes []string) error
	SetAcceptedAnswer(ctx context.Context, id string, accepted bool) error
	IncreaseReplyCount(ctx context.Context, id string, delta int) error
	GetListByThread(ctx context.Context, filter PostFilter) ([]entity.Post, error)
	Count(ctx context.Context, filter PostFilter) (int64, error)
}

type postRepository struct{}

func NewPostRepository() *postRepository {
	return &postRepository{}
}

func (r *postRepository) Create(ctx context.Context, post *entity.Post) error {
	return xcontext.DB(ctx).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	var result entity.Post
	err := xcontext.DB(ctx).Preload("Author").Take(&result, "id=?", id).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *postRepository) Update(ctx context.Context, id string, data map[string]any) error {
	return xcontext.DB(ctx).
		Model(&entity.Post{}).
		Where("id=?", id).
		Updates(data).Error
}

func (r *postRepository) UpdateStatus(ctx context.Context, id string, status entity.PostStatus) error {
	return xcontext.DB(ctx).
		Model(&entity.Post{}).
		Where("id=?", id).
		Update("status", status).Error
}

func (r *postRepository) IncrementViews(ctx context.Context, id string) error {
	return xcontext.DB(ctx).
		Model(&entity.Post{}).
		Where("id=?", id).
		Update("views", gorm.Expr("views+1")).Error
}

func (r *postRepository) SetReactions(ctx context.Context, id string, likes, dislikes []string) error {
	return xcontext.DB(ctx).
		Model(&entity.Post{}).
		Where("id=?", id).
		Updates(map[string]any{
			"likes":    entity.Array[string](likes),
			"dislikes": entity.Array[string](dislikes),
		}).Error
}

func (r *postRepository) SetAcceptedAnswer(ctx context.Context, id string, accepted bool) error {
	return xcontext.DB(ctx).
		Model(&entity.Post{}).
		Where("id=?", id).
		Update("is_accepted_answer", accepted).Error
}

func (r *postRepository) IncreaseReplyCount(ctx context.Context, id string, delta int) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Post{}).
		Where("id=?", id).
		Update("replies_count", gorm.Expr("replies_count+?", delta))

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *postRepository) GetListByThread(ctx context.Context, filter PostFilter) ([]entity.Post, error) {
	var result []entity.Post
	err := r.applyFilter(xcontext.DB(ctx), filter).
		Preload("Author").
		Order("created_at ASC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *postRepository) Count(ctx context.Context, filter PostFilter) (int64, error) {
	var count int64
	err := r.applyFilter(xcontext.DB(ctx), filter).Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *postRepository) applyFilter(db *gorm.DB, filter PostFilter) *gorm.DB {
	tx := db.Model(&entity.Post{}).Where("status=?", entity.PostActive)

	if filter.ThreadID != "" {
		tx = tx.Where("thread_id=?", filter.ThreadID)
	}

	return tx
}
