package repository

import (
	"community_bbs/internal/domain/topiccount/model"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type TopicCountRepository interface {
	Create(ctx context.Context, count *model.TopicCount) error
	GetByTID(ctx context.Context, tid int64) (*model.TopicCount, error)
	Incr(ctx context.Context, tid int64, column string, delta int) error
}

type topicCountRepository struct {
	db *gorm.DB
}

func NewTopicCountRepository(db *gorm.DB) TopicCountRepository {
	return &topicCountRepository{db: db}
}

func (r *topicCountRepository) Create(ctx context.Context, count *model.TopicCount) error {
	return r.db.WithContext(ctx).Create(count).Error
}

func (r *topicCountRepository) GetByTID(ctx context.Context, tid int64) (*model.TopicCount, error) {
	var count model.TopicCount
	if err := r.db.WithContext(ctx).Where("tid = ?", tid).First(&count).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &count, nil
}

// Incr column = column + delta；计数行不存在时返回 gorm.ErrRecordNotFound
func (r *topicCountRepository) Incr(ctx context.Context, tid int64, column string, delta int) error {
	if !model.ValidKind(column) {
		return fmt.Errorf("unknown topic count column %q", column)
	}
	result := r.db.WithContext(ctx).Model(&model.TopicCount{}).
		Where("tid = ?", tid).
		UpdateColumn(column, gorm.Expr(column+" + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
