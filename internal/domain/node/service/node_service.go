package service

import (
	"community_bbs/internal/domain/node/model"
	"community_bbs/internal/domain/node/repository"
	"community_bbs/pkg/cache"
	"context"
)

type NodeService interface {
	GetNode(ctx context.Context, nid int64) (*model.Node, error)
	UpdateCount(ctx context.Context, nid int64, kind string, delta int) error
}

type nodeService struct {
	repo  repository.NodeRepository
	local *cache.LocalCache[int64, model.Node]
}

// NewNodeService local 为空时不缓存
func NewNodeService(repo repository.NodeRepository, local *cache.LocalCache[int64, model.Node]) NodeService {
	return &nodeService{repo: repo, local: local}
}

// GetNode 节点不存在时返回 (nil, nil)
func (s *nodeService) GetNode(ctx context.Context, nid int64) (*model.Node, error) {
	if nid <= 0 {
		return nil, nil
	}
	if s.local != nil {
		if node, ok := s.local.Get(nid); ok {
			return &node, nil
		}
	}

	node, err := s.repo.GetByID(ctx, nid)
	if err != nil || node == nil {
		return node, err
	}
	if s.local != nil {
		s.local.Set(nid, *node)
	}
	return node, nil
}

// UpdateCount 计数变化不影响标题/slug，缓存中的计数允许短暂过期
func (s *nodeService) UpdateCount(ctx context.Context, nid int64, kind string, delta int) error {
	return s.repo.IncrCount(ctx, nid, kind, delta)
}
