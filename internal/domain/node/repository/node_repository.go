package repository

import (
	"community_bbs/internal/domain/node/model"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// 允许原子更新的计数列，防止拼接任意列名
var countColumns = map[string]bool{
	model.CountTopics: true,
}

type NodeRepository interface {
	GetByID(ctx context.Context, nid int64) (*model.Node, error)
	IncrCount(ctx context.Context, nid int64, column string, delta int) error
}

type nodeRepository struct {
	db *gorm.DB
}

func NewNodeRepository(db *gorm.DB) NodeRepository {
	return &nodeRepository{db: db}
}

func (r *nodeRepository) GetByID(ctx context.Context, nid int64) (*model.Node, error) {
	var node model.Node
	if err := r.db.WithContext(ctx).Where("nid = ?", nid).First(&node).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &node, nil
}

// IncrCount column = column + delta，单条语句完成
func (r *nodeRepository) IncrCount(ctx context.Context, nid int64, column string, delta int) error {
	if !countColumns[column] {
		return fmt.Errorf("unknown node count column %q", column)
	}
	return r.db.WithContext(ctx).Model(&model.Node{}).
		Where("nid = ?", nid).
		UpdateColumn(column, gorm.Expr(column+" + ?", delta)).Error
}
