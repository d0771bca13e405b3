package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment-admin/internal/core/cache"
	"fulfillment-admin/internal/core/logger"
	"fulfillment-admin/internal/features/orders/domain"
	"fulfillment-admin/internal/features/orders/ports"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// ErrOrderNotFound is returned when the order does not exist.
var ErrOrderNotFound = domain.ErrOrderNotFound

// ErrOrderIDRequired is returned when an empty order ID is requested.
var ErrOrderIDRequired = errors.New("order ID is required")

const orderKeyPrefix = "order:"

// OrderService loads the read-only order snapshot and caches it for the session.
type OrderService struct {
	// provider is the interface for fetching order data from the remote service.
	provider ports.OrderProvider
	// cache keeps snapshots so the status rules do not refetch on every decision.
	cache cache.Cache
	// ttl is the lifetime of a cached snapshot.
	ttl time.Duration
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(provider ports.OrderProvider, c cache.Cache, ttl time.Duration) *OrderService {
	return &OrderService{
		provider: provider,
		cache:    c,
		ttl:      ttl,
	}
}

// GetOrder returns the snapshot for orderID, from cache when present.
func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrOrderIDRequired
	}

	if order := s.cached(ctx, orderID); order != nil {
		return order, nil
	}

	order, err := s.provider.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}

	s.store(ctx, orderID, order)
	return order, nil
}

// Invalidate drops the cached snapshot so the next GetOrder refetches it.
func (s *OrderService) Invalidate(ctx context.Context, orderID string) error {
	if err := s.cache.Delete(ctx, orderKeyPrefix+orderID); err != nil {
		return fmt.Errorf("failed to invalidate order %s: %w", orderID, err)
	}
	return nil
}

// HealthCheck verifies the remote order service.
func (s *OrderService) HealthCheck(ctx context.Context) error {
	return s.provider.HealthCheck(ctx)
}

func (s *OrderService) cached(ctx context.Context, orderID string) *domain.Order {
	data, err := s.cache.Get(ctx, orderKeyPrefix+orderID)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			logger.Get().Warn("Order cache read failed", zap.String("order_id", orderID), zap.Error(err))
		}
		return nil
	}

	var order domain.Order
	if err := json.Unmarshal(data, &order); err != nil {
		logger.Get().Warn("Discarding corrupt cached order", zap.String("order_id", orderID), zap.Error(err))
		return nil
	}
	return &order
}

// store is best effort; a cache failure never fails the read.
func (s *OrderService) store(ctx context.Context, orderID string, order *domain.Order) {
	data, err := json.Marshal(order)
	if err != nil {
		logger.Get().Warn("Failed to encode order for cache", zap.String("order_id", orderID), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, orderKeyPrefix+orderID, data, s.ttl); err != nil {
		logger.Get().Warn("Order cache write failed", zap.String("order_id", orderID), zap.Error(err))
	}
}
