package cache

import (
	"time"

	"github.com/bluele/gcache"
)

// LocalCache 进程内 LRU 缓存，用于很少变化的数据 (如节点信息)
type LocalCache[K comparable, V any] struct {
	lru gcache.Cache
	ttl time.Duration
}

// NewLocalCache size 为最大条目数，ttl 为 0 表示不过期
func NewLocalCache[K comparable, V any](size int, ttl time.Duration) *LocalCache[K, V] {
	if size <= 0 {
		size = 128
	}
	return &LocalCache[K, V]{
		lru: gcache.New(size).LRU().Build(),
		ttl: ttl,
	}
}

// Get 命中返回 true
func (c *LocalCache[K, V]) Get(key K) (V, bool) {
	var zero V
	val, err := c.lru.Get(key)
	if err != nil {
		return zero, false
	}
	v, ok := val.(V)
	if !ok {
		return zero, false
	}
	return v, true
}

func (c *LocalCache[K, V]) Set(key K, value V) {
	if c.ttl > 0 {
		_ = c.lru.SetWithExpire(key, value, c.ttl)
		return
	}
	_ = c.lru.Set(key, value)
}

func (c *LocalCache[K, V]) Remove(key K) {
	c.lru.Remove(key)
}
