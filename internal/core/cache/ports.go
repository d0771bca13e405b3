package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when the key does not exist or has expired.
var ErrCacheMiss = errors.New("key not found")

// Cache defines the caching operations interface.
// Implementations back the order snapshot cache and the tracking record store.
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns an error wrapping ErrCacheMiss when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the specified key and TTL.
	// TTL of 0 means no expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	Delete(ctx context.Context, key string) error

	// Ping checks if the cache service is reachable.
	Ping(ctx context.Context) error

	// Close closes the cache connection.
	Close() error
}

// New returns a Redis-backed cache when redisURL is set, otherwise an in-memory cache.
func New(redisURL string) (Cache, error) {
	if redisURL == "" {
		return NewMemoryAdapter(10 * time.Minute), nil
	}
	return NewRedisAdapter(redisURL)
}
