package service

import (
	"community_bbs/internal/domain/user/model"
	"community_bbs/pkg/cache"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// 缓存键常量
const (
	UserCacheKeyPrefix      = "user:"
	UserLoginCacheKeyPrefix = "user_login:"
	DefaultUserCacheTTL     = time.Hour * 2
)

// CachedUserService 带缓存的用户服务，列表页渲染时同一作者会被反复查询
type CachedUserService struct {
	next  UserService
	cache cache.CacheService
	ttl   time.Duration
	group singleflight.Group
	log   *zap.Logger
}

// NewCachedUserService 创建带缓存的用户服务
func NewCachedUserService(next UserService, c cache.CacheService, ttl time.Duration, log *zap.Logger) *CachedUserService {
	if ttl <= 0 {
		ttl = DefaultUserCacheTTL
	}
	return &CachedUserService{
		next:  next,
		cache: c,
		ttl:   ttl,
		log:   log,
	}
}

func (s *CachedUserService) getUserCacheKey(uid int64) string {
	return fmt.Sprintf("%s%d", UserCacheKeyPrefix, uid)
}

func (s *CachedUserService) getLoginCacheKey(loginName string) string {
	return UserLoginCacheKeyPrefix + loginName
}

// GetUser 获取单个用户（带缓存）
func (s *CachedUserService) GetUser(ctx context.Context, uid int64) (*model.User, error) {
	if uid <= 0 {
		return nil, nil
	}
	return s.load(ctx, s.getUserCacheKey(uid), func() (*model.User, error) {
		return s.next.GetUser(ctx, uid)
	})
}

// GetUserByLoginName 按登录名获取用户（带缓存）
func (s *CachedUserService) GetUserByLoginName(ctx context.Context, loginName string) (*model.User, error) {
	if loginName == "" {
		return nil, nil
	}
	return s.load(ctx, s.getLoginCacheKey(loginName), func() (*model.User, error) {
		return s.next.GetUserByLoginName(ctx, loginName)
	})
}

// Invalidate 用户资料变更后清除缓存
func (s *CachedUserService) Invalidate(ctx context.Context, user *model.User) {
	if user == nil {
		return
	}
	if err := s.cache.Delete(ctx, s.getUserCacheKey(user.UID)); err != nil {
		s.log.Warn("invalidate user cache failed", zap.Int64("uid", user.UID), zap.Error(err))
	}
	if err := s.cache.Delete(ctx, s.getLoginCacheKey(user.LoginName)); err != nil {
		s.log.Warn("invalidate user cache failed", zap.String("login_name", user.LoginName), zap.Error(err))
	}
}

func (s *CachedUserService) load(ctx context.Context, key string, fetch func() (*model.User, error)) (*model.User, error) {
	var user model.User
	err := s.cache.Get(ctx, key, &user)
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		// 缓存失败不影响业务逻辑，只记录日志
		s.log.Warn("user cache get failed", zap.String("key", key), zap.Error(err))
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		u, err := fetch()
		if err != nil || u == nil {
			return u, err
		}
		if err := s.cache.Set(ctx, key, u, s.ttl); err != nil {
			s.log.Warn("user cache set failed", zap.String("key", key), zap.Error(err))
		}
		return u, nil
	})
	if err != nil {
		return nil, err
	}
	u, _ := v.(*model.User)
	return u, nil
}
