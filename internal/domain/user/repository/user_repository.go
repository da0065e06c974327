package repository

import (
	"community_bbs/internal/domain/user/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// UserRepository 接口定义，查不到记录时返回 (nil, nil)
type UserRepository interface {
	GetByID(ctx context.Context, uid int64) (*model.User, error)
	GetByLoginName(ctx context.Context, loginName string) (*model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建新的仓库实例
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// GetByID 根据ID获取用户
func (r *userRepository) GetByID(ctx context.Context, uid int64) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("uid = ?", uid).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetByLoginName 根据登录名获取用户
func (r *userRepository) GetByLoginName(ctx context.Context, loginName string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("login_name = ?", loginName).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
