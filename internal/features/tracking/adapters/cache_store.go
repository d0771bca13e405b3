package adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment-admin/internal/core/cache"
	"fulfillment-admin/internal/features/tracking/domain"

	"github.com/goccy/go-json"
)

const trackingKeyPrefix = "tracking:order:"

// CacheTrackingStore implements ports.TrackingStore on top of the cache port.
// Records are stored whole; Replace never merges with what was there.
type CacheTrackingStore struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewCacheTrackingStore creates a store whose entries live for ttl (0 = no expiry).
func NewCacheTrackingStore(c cache.Cache, ttl time.Duration) *CacheTrackingStore {
	return &CacheTrackingStore{cache: c, ttl: ttl}
}

// Get returns the stored record or (nil, nil) on a miss.
func (s *CacheTrackingStore) Get(ctx context.Context, orderID string) (*domain.TrackingRecord, error) {
	data, err := s.cache.Get(ctx, trackingKeyPrefix+orderID)
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tracking from cache: %w", err)
	}

	var rec domain.TrackingRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tracking: %w", err)
	}
	return &rec, nil
}

// Replace overwrites the record stored for orderID.
func (s *CacheTrackingStore) Replace(ctx context.Context, orderID string, rec *domain.TrackingRecord) error {
	if rec == nil {
		return errors.New("cannot store nil tracking record")
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal tracking: %w", err)
	}

	if err := s.cache.Set(ctx, trackingKeyPrefix+orderID, data, s.ttl); err != nil {
		return fmt.Errorf("failed to save tracking to cache: %w", err)
	}
	return nil
}

// Delete drops the record stored for orderID. Deleting a missing key is not an error.
func (s *CacheTrackingStore) Delete(ctx context.Context, orderID string) error {
	if err := s.cache.Delete(ctx, trackingKeyPrefix+orderID); err != nil {
		return fmt.Errorf("failed to delete tracking from cache: %w", err)
	}
	return nil
}
