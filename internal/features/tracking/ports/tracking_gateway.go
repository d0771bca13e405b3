package ports

import (
	"context"

	orderdomain "fulfillment-admin/internal/features/orders/domain"
	"fulfillment-admin/internal/features/tracking/domain"
)

// TrackingGateway is the driven port to the remote order/tracking service.
// The remote service validates again and owns history entries and timestamps.
type TrackingGateway interface {
	// GetTracking returns the order's record or an error wrapping domain.ErrTrackingNotFound.
	GetTracking(ctx context.Context, orderID string) (*domain.TrackingRecord, error)
	// CreateTracking attaches tracking to an order that has none.
	CreateTracking(ctx context.Context, req domain.NewTracking) (*domain.TrackingRecord, error)
	// UpdateStatus requests a status change; the remote appends the history entry.
	UpdateStatus(ctx context.Context, orderID string, status domain.Status, notes string) (*domain.TrackingRecord, error)
	// ResetTracking reverts the record to the remote's initial state.
	ResetTracking(ctx context.Context, orderID string) (*domain.TrackingRecord, error)
}

// TrackingStore holds the operator's local copy of each order's tracking record.
type TrackingStore interface {
	// Get returns the stored record, or (nil, nil) when nothing is stored.
	Get(ctx context.Context, orderID string) (*domain.TrackingRecord, error)
	// Replace overwrites the record stored for orderID with rec.
	Replace(ctx context.Context, orderID string, rec *domain.TrackingRecord) error
	// Delete drops the stored record so the next read goes to the remote service.
	Delete(ctx context.Context, orderID string) error
}

// OrderReader provides the order snapshot the status rules depend on.
type OrderReader interface {
	GetOrder(ctx context.Context, orderID string) (*orderdomain.Order, error)
}
