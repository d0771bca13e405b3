package service

import (
	"context"

	"fulfillment-admin/internal/core/logger"
	"fulfillment-admin/internal/features/tracking/domain"
	"fulfillment-admin/internal/features/tracking/ports"

	"go.uber.org/zap"
)

// TrackingCreator attaches the first tracking record to an order.
type TrackingCreator struct {
	gateway ports.TrackingGateway
	store   ports.TrackingStore
}

// NewTrackingCreator creates a new TrackingCreator.
func NewTrackingCreator(gateway ports.TrackingGateway, store ports.TrackingStore) *TrackingCreator {
	return &TrackingCreator{gateway: gateway, store: store}
}

// Create validates input locally, without any network call, then creates the
// record remotely and stores the answer.
func (c *TrackingCreator) Create(ctx context.Context, req domain.NewTracking) (*domain.TrackingRecord, error) {
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	rec, err := c.gateway.CreateTracking(ctx, req)
	if err != nil {
		logger.Named("creator").Error("Tracking creation rejected", zap.String("order_id", req.OrderID), zap.Error(err))
		return nil, remoteFailure("create tracking", err, fallbackCreateMessage)
	}

	if err := storeAnswer(ctx, c.store, req.OrderID, rec, logger.Named("creator")); err != nil {
		return nil, err
	}

	return rec, nil
}
