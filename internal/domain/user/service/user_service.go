package service

import (
	"community_bbs/internal/domain/user/model"
	"community_bbs/internal/domain/user/repository"
	"context"
)

// UserService 用户查询服务，用户不存在时返回 (nil, nil)
type UserService interface {
	GetUser(ctx context.Context, uid int64) (*model.User, error)
	GetUserByLoginName(ctx context.Context, loginName string) (*model.User, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService 创建用户服务
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// GetUser 获取单个用户
func (s *userService) GetUser(ctx context.Context, uid int64) (*model.User, error) {
	if uid <= 0 {
		return nil, nil
	}
	return s.repo.GetByID(ctx, uid)
}

// GetUserByLoginName 按登录名获取用户
func (s *userService) GetUserByLoginName(ctx context.Context, loginName string) (*model.User, error) {
	if loginName == "" {
		return nil, nil
	}
	return s.repo.GetByLoginName(ctx, loginName)
}
