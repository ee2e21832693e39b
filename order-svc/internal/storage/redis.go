package storage

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) FeedbackMarkerKey(orderID string) string {
	return "feedback:order:" + orderID
}

func (c *RedisCache) Exists(ctx context.Context, key string) (bool, error) {
	res, err := c.Client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return res > 0, nil
}

func (c *RedisCache) SetMarker(ctx context.Context, key string) error {
	return c.Client.Set(ctx, key, "1", c.TTL).Err()
}

// MemoryMarkers stands in for Redis when it is not configured. Markers never expire.
type MemoryMarkers struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

func NewMemoryMarkers() *MemoryMarkers {
	return &MemoryMarkers{keys: make(map[string]struct{})}
}

func (m *MemoryMarkers) FeedbackMarkerKey(orderID string) string {
	return "feedback:order:" + orderID
}

func (m *MemoryMarkers) Exists(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.keys[key]
	return ok, nil
}

func (m *MemoryMarkers) SetMarker(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys[key] = struct{}{}
	return nil
}
