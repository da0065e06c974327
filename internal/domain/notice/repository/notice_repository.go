package repository

import (
	"community_bbs/internal/domain/notice/model"
	"context"

	"gorm.io/gorm"
)

type NoticeRepository interface {
	Create(ctx context.Context, notice *model.Notice) error
	ListByUser(ctx context.Context, uid int64, offset, limit int) ([]model.Notice, int64, error)
}

type noticeRepository struct {
	db *gorm.DB
}

func NewNoticeRepository(db *gorm.DB) NoticeRepository {
	return &noticeRepository{db: db}
}

func (r *noticeRepository) Create(ctx context.Context, notice *model.Notice) error {
	return r.db.WithContext(ctx).Create(notice).Error
}

func (r *noticeRepository) ListByUser(ctx context.Context, uid int64, offset, limit int) ([]model.Notice, int64, error) {
	var notices []model.Notice
	var total int64

	query := r.db.WithContext(ctx).Model(&model.Notice{}).Where("to_uid = ?", uid)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("create_time desc, id desc").Offset(offset).Limit(limit).Find(&notices).Error; err != nil {
		return nil, 0, err
	}
	return notices, total, nil
}
