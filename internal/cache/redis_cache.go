package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clothingmenvy-dot/menvy-client/internal/config"
	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// redisCache shares one Redis with other services, so every key is namespaced
// with the configured prefix.
type redisCache struct {
	client     *redis.Client
	prefix     string
	defaultTTL time.Duration
}

func NewRedisCache(client *redis.Client, cfg *config.CacheConfig) Cache {
	c := &redisCache{client: client, defaultTTL: cfg.DefaultTTL}
	if cfg.Prefix != "" {
		c.prefix = cfg.Prefix + ":"
	}

	return c
}

func (r *redisCache) key(key string) string {
	return r.prefix + key
}

func (r *redisCache) Get(ctx context.Context, key string, value any) (bool, error) {

	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s from redis: %w", key, err)
	}

	if err := json.Unmarshal(data, value); err != nil {
		return false, fmt.Errorf("decoding cached %s: %w", key, err)
	}

	return true, nil
}

func (r *redisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s for cache: %w", key, err)
	}

	if ttl <= 0 {
		ttl = r.defaultTTL
	}

	if err := r.client.Set(ctx, r.key(key), data, ttl).Err(); err != nil {
		return fmt.Errorf("writing %s to redis: %w", key, err)
	}

	return nil
}

// Delete removes all keys with a single DEL.
func (r *redisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	namespaced := make([]string, len(keys))
	for i, k := range keys {
		namespaced[i] = r.key(k)
	}

	if err := r.client.Del(ctx, namespaced...).Err(); err != nil {
		return fmt.Errorf("deleting %v from redis: %w", keys, err)
	}

	return nil
}

// Close leaves the shared client open; main owns its lifetime.
func (r *redisCache) Close() error {
	return nil
}
