package cache

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryAdapter implements the Cache interface with an in-process go-cache store.
// Used when no Redis URL is configured.
type MemoryAdapter struct {
	store *gocache.Cache
}

// NewMemoryAdapter creates an in-memory cache.
// cleanupInterval is how often expired items are purged.
func NewMemoryAdapter(cleanupInterval time.Duration) *MemoryAdapter {
	return &MemoryAdapter{
		store: gocache.New(gocache.NoExpiration, cleanupInterval),
	}
}

// Get retrieves a copy of the stored bytes.
func (m *MemoryAdapter) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m.store.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCacheMiss, key)
	}
	b, ok := v.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected value type %T for key %s", v, key)
	}
	return append([]byte(nil), b...), nil
}

// Set stores a copy of value. A zero ttl never expires.
func (m *MemoryAdapter) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	m.store.Set(key, append([]byte(nil), value...), ttl)
	return nil
}

// Delete removes a value by key.
func (m *MemoryAdapter) Delete(_ context.Context, key string) error {
	m.store.Delete(key)
	return nil
}

// Ping always succeeds for the in-process store.
func (m *MemoryAdapter) Ping(_ context.Context) error {
	return nil
}

// Close flushes all items.
func (m *MemoryAdapter) Close() error {
	m.store.Flush()
	return nil
}
