package ports

import (
	"context"

	"fulfillment-admin/internal/features/orders/domain"
)

// OrderProvider defines the interface for retrieving order snapshots from the remote service.
// This is a Secondary Port (Driven Port).
type OrderProvider interface {
	// GetOrder retrieves an order by its identifier.
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	// HealthCheck verifies the remote service is reachable with the configured credentials.
	HealthCheck(ctx context.Context) error
}
