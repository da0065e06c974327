package repository

import (
	"community_bbs/internal/domain/comment/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	LastByTopic(ctx context.Context, tid int64) (*model.Comment, error)
	ListByTopic(ctx context.Context, tid int64, offset, limit int) ([]model.Comment, int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// LastByTopic 最新一条评论，同一秒内按 cid 取最大
func (r *commentRepository) LastByTopic(ctx context.Context, tid int64) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.WithContext(ctx).
		Where("tid = ?", tid).
		Order("create_time desc, cid desc").
		First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

// ListByTopic 按时间正序分页
func (r *commentRepository) ListByTopic(ctx context.Context, tid int64, offset, limit int) ([]model.Comment, int64, error) {
	var comments []model.Comment
	var total int64

	query := r.db.WithContext(ctx).Model(&model.Comment{}).Where("tid = ?", tid)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("create_time asc, cid asc").Offset(offset).Limit(limit).Find(&comments).Error; err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}
