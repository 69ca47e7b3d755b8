package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/clothingmenvy-dot/menvy-client/internal/config"
	"github.com/goccy/go-json"
)

type entry struct {
	data      []byte
	expiresAt time.Time
}

// memoryCache backs a single console process when no Redis is configured.
// Values are stored encoded so callers never share memory with the cache.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string]entry
	cfg     *config.CacheConfig
	now     func() time.Time
}

func NewMemoryCache(cfg *config.CacheConfig) Cache {
	return newMemoryCache(cfg, time.Now)
}

func newMemoryCache(cfg *config.CacheConfig, now func() time.Time) *memoryCache {
	return &memoryCache{
		entries: make(map[string]entry),
		cfg:     cfg,
		now:     now,
	}
}

func (m *memoryCache) Get(_ context.Context, key string, value any) (bool, error) {
	m.mu.Lock()
	e, ok := m.entries[key]
	if ok && !m.now().Before(e.expiresAt) {
		delete(m.entries, key)
		ok = false
	}
	m.mu.Unlock()

	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(e.data, value); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache data for key %s: %w", key, err)
	}

	return true, nil
}

func (m *memoryCache) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	if ttl <= 0 {
		ttl = m.cfg.DefaultTTL
	}

	m.mu.Lock()
	m.entries[key] = entry{data: data, expiresAt: m.now().Add(ttl)}
	m.mu.Unlock()

	return nil
}

func (m *memoryCache) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	for _, key := range keys {
		delete(m.entries, key)
	}
	m.mu.Unlock()

	return nil
}

func (m *memoryCache) Close() error {
	m.mu.Lock()
	clear(m.entries)
	m.mu.Unlock()

	return nil
}
