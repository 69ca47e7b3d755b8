package cache

import (
	"context"
	"time"
)

// Cache stores JSON-encoded values with a time to live. A ttl <= 0 means the
// implementation's default.
type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

func Key(prefix string, parts ...string) string {
	key := prefix
	for _, part := range parts {
		key += ":" + part
	}
	return key
}

const (
	GateKeyPrefix      = "gate"
	DashboardKeyPrefix = "dashboard"
)
