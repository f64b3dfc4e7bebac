package repository

import (
	"context"

	"github.com/hive-community/backend/internal/entity"
	"github.com/hive-community/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ReplyFilter struct {
	PostID string
	Offset int
	Limit  int
}

type ReplyRepository interface {
	Create(ctx context.Context, reply *entity.Reply) error
	GetByID(ctx context.Context, id string) (*entity.Reply, error)
	Update(ctx context.Context, id string, data map[string]any) error
	UpdateStatus(ctx context.Context, id string, status entity.ReplyStatus) error
	SetReactions(ctx context.Context, id string, likes, dislikes []string) error
	SetHelpful(ctx context.Context, id string, helpful bool, count int) error
	GetListByPost(ctx context.Context, filter ReplyFilter) ([]entity.Reply, error)
	Count(ctx context.Context, filter ReplyFilter) (int64, error)
}

type replyRepository struct{}

func NewReplyRepository() *replyRepository {
	return &replyRepository{}
}

func (r *replyRepository) Create(ctx context.Context, reply *entity.Reply) error {
	return xcontext.DB(ctx).Create(reply).Error
}

func (r *replyRepository) GetByID(ctx context.Context, id string) (*entity.Reply, error) {
	var result entity.Reply
	err := xcontext.DB(ctx).Preload("Author").Take(&result, "id=?", id).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *replyRepository) Update(ctx context.Context, id string, data map[string]any) error {
	return xcontext.DB(ctx).
		Model(&entity.Reply{}).
		Where("id=?", id).
		Updates(data).Error
}

func (r *replyRepository) UpdateStatus(ctx context.Context, id string, status entity.ReplyStatus) error {
	return xcontext.DB(ctx).
		Model(&entity.Reply{}).
		Where("id=?", id).
		Update("status", status).Error
}

func (r *replyRepository) SetReactions(ctx context.Context, id string, likes, dislikes []string) error {
	return xcontext.DB(ctx).
		Model(&entity.Reply{}).
		Where("id=?", id).
		Updates(map[string]any{
			"likes":    entity.Array[string](likes),
			"dislikes": entity.Array[string](dislikes),
		}).Error
}

func (r *replyRepository) SetHelpful(ctx context.Context, id string, helpful bool, count int) error {
	return xcontext.DB(ctx).
		Model(&entity.Reply{}).
		Where("id=?", id).
		Updates(map[string]any{
			"is_helpful":    helpful,
			"helpful_count": count,
		}).Error
}

func (r *replyRepository) GetListByPost(ctx context.Context, filter ReplyFilter) ([]entity.Reply, error) {
	var result []entity.Reply
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

func (r *replyRepository) Count(ctx context.Context, filter ReplyFilter) (int64, error) {
	var count int64
	err := r.applyFilter(xcontext.DB(ctx), filter).Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *replyRepository) applyFilter(db *gorm.DB, filter ReplyFilter) *gorm.DB {
	tx := db.Model(&entity.Reply{}).Where("status=?", entity.ReplyActive)

	if filter.PostID != "" {
		tx = tx.Where("post_id=?", filter.PostID)
	}

	return tx
}
