package service

import (
	"community_bbs/internal/domain/topiccount/model"
	"community_bbs/internal/domain/topiccount/repository"
	"context"
	"fmt"
)

type CountService interface {
	Save(ctx context.Context, tid, createTime int64) error
	GetCount(ctx context.Context, tid int64) (*model.TopicCount, error)
	Update(ctx context.Context, kind string, tid int64, delta int) error
}

type countService struct {
	repo repository.TopicCountRepository
}

func NewCountService(repo repository.TopicCountRepository) CountService {
	return &countService{repo: repo}
}

// Save 初始化计数行，所有计数为 0
func (s *countService) Save(ctx context.Context, tid, createTime int64) error {
	return s.repo.Create(ctx, &model.TopicCount{TID: tid, CreateTime: createTime})
}

// GetCount 计数行不存在时返回 (nil, nil)
func (s *countService) GetCount(ctx context.Context, tid int64) (*model.TopicCount, error) {
	return s.repo.GetByTID(ctx, tid)
}

func (s *countService) Update(ctx context.Context, kind string, tid int64, delta int) error {
	if !model.ValidKind(kind) {
		return fmt.Errorf("unknown topic count kind %q", kind)
	}
	return s.repo.Incr(ctx, tid, kind, delta)
}
