package repository

import (
	"community_bbs/internal/domain/topic/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// TopicRepository 查不到记录时返回 (nil, nil)
type TopicRepository interface {
	Create(ctx context.Context, topic *model.Topic) error
	GetByID(ctx context.Context, tid int64) (*model.Topic, error)
	UpdateStatus(ctx context.Context, tid int64, status int) error
	UpdateWeight(ctx context.Context, tid int64, weight float64) error
	UpdateEssence(ctx context.Context, tid int64, essence int) error
	UpdateContent(ctx context.Context, tid, nid int64, title, content string, updateTime int64) error
	CountActiveByUser(ctx context.Context, uid int64) (int64, error)
	LastByUser(ctx context.Context, uid int64) (*model.Topic, error)
	ListActiveIDs(ctx context.Context) ([]int64, error)
	List(ctx context.Context, q model.ListQuery) ([]model.Topic, int64, error)
}

type topicRepository struct {
	db *gorm.DB
}

func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) Create(ctx context.Context, topic *model.Topic) error {
	return r.db.WithContext(ctx).Create(topic).Error
}

func (r *topicRepository) GetByID(ctx context.Context, tid int64) (*model.Topic, error) {
	var topic model.Topic
	if err := r.db.WithContext(ctx).Where("tid = ?", tid).First(&topic).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &topic, nil
}

func (r *topicRepository) UpdateStatus(ctx context.Context, tid int64, status int) error {
	return r.updateColumn(ctx, tid, "status", status)
}

func (r *topicRepository) UpdateWeight(ctx context.Context, tid int64, weight float64) error {
	return r.updateColumn(ctx, tid, "weight", weight)
}

func (r *topicRepository) UpdateEssence(ctx context.Context, tid int64, essence int) error {
	return r.updateColumn(ctx, tid, "is_essence", essence)
}

// UpdateContent 编辑帖子，不影响 weight 与 status
func (r *topicRepository) UpdateContent(ctx context.Context, tid, nid int64, title, content string, updateTime int64) error {
	result := r.db.WithContext(ctx).Model(&model.Topic{}).
		Where("tid = ?", tid).
		UpdateColumns(map[string]interface{}{
			"nid":         nid,
			"title":       title,
			"content":     content,
			"update_time": updateTime,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *topicRepository) CountActiveByUser(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Topic{}).
		Where("uid = ? AND status = ?", uid, model.StatusActive).
		Count(&count).Error
	return count, err
}

// LastByUser 用户最近创建的帖子 (不区分状态)
func (r *topicRepository) LastByUser(ctx context.Context, uid int64) (*model.Topic, error) {
	var topic model.Topic
	err := r.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("create_time desc, tid desc").
		First(&topic).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &topic, nil
}

// ListActiveIDs 所有正常状态帖子的 tid，用于全量刷新权重
func (r *topicRepository) ListActiveIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&model.Topic{}).
		Where("status = ?", model.StatusActive).
		Order("tid asc").
		Pluck("tid", &ids).Error
	return ids, err
}

// List 分页查询正常状态的帖子
func (r *topicRepository) List(ctx context.Context, q model.ListQuery) ([]model.Topic, int64, error) {
	var topics []model.Topic
	var total int64

	query := r.db.WithContext(ctx).Model(&model.Topic{}).Where("status = ?", model.StatusActive)
	if q.NID > 0 {
		query = query.Where("nid = ?", q.NID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "create_time desc, tid desc"
	if q.Order == model.OrderHot {
		order = "weight desc, tid desc"
	}
	if err := query.Order(order).Offset(q.Offset).Limit(q.Limit).Find(&topics).Error; err != nil {
		return nil, 0, err
	}
	return topics, total, nil
}

func (r *topicRepository) updateColumn(ctx context.Context, tid int64, column string, value interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.Topic{}).Where("tid = ?", tid).UpdateColumn(column, value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
