package repo

import (
	"context"
	"sync"
	"time"

	"blog-server/internal/platform/cache"

	"github.com/redis/go-redis/v9"
)

// MemoryRevocationStore 进程内吊销表，Redis 不可用时使用
type MemoryRevocationStore struct {
	entries sync.Map // jti -> time.Time (过期时间)
}

func NewMemoryRevocationStore() *MemoryRevocationStore {
	return &MemoryRevocationStore{}
}

func (s *MemoryRevocationStore) Revoke(_ context.Context, id string, ttl time.Duration) error {
	if id == "" || ttl <= 0 {
		return nil
	}
	s.entries.Store(id, time.Now().Add(ttl))
	s.sweep()
	return nil
}

func (s *MemoryRevocationStore) IsRevoked(_ context.Context, id string) (bool, error) {
	v, ok := s.entries.Load(id)
	if !ok {
		return false, nil
	}
	if time.Now().After(v.(time.Time)) {
		s.entries.Delete(id)
		return false, nil
	}
	return true, nil
}

func (s *MemoryRevocationStore) sweep() {
	now := time.Now()
	s.entries.Range(func(key, value any) bool {
		if now.After(value.(time.Time)) {
			s.entries.Delete(key)
		}
		return true
	})
}

type RedisRevocationStore struct {
	client *redis.Client
	prefix string
}

func NewRedisRevocationStore(client *redis.Client, prefix string) *RedisRevocationStore {
	return &RedisRevocationStore{client: client, prefix: prefix}
}

func (s *RedisRevocationStore) key(id string) string {
	return cache.Key(s.prefix, "session", "revoked", id)
}

func (s *RedisRevocationStore) Revoke(ctx context.Context, id string, ttl time.Duration) error {
	if id == "" || ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, s.key(id), "1", ttl).Err()
}

func (s *RedisRevocationStore) IsRevoked(ctx context.Context, id string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(id)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// NewRevocationStore Redis 客户端为 nil 时降级为内存实现
func NewRevocationStore(client *redis.Client, prefix string) RevocationStore {
	if client == nil {
		return NewMemoryRevocationStore()
	}
	return NewRedisRevocationStore(client, prefix)
}
