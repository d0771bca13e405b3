package service

import (
	"context"

	"fulfillment-admin/internal/core/logger"
	"fulfillment-admin/internal/features/tracking/domain"
	"fulfillment-admin/internal/features/tracking/ports"

	"go.uber.org/zap"
)

// ResetController reverts a tracking record to the remote's initial state.
// It does not check the current status; callers guard terminal orders.
type ResetController struct {
	gateway ports.TrackingGateway
	store   ports.TrackingStore
}

// NewResetController creates a new ResetController.
func NewResetController(gateway ports.TrackingGateway, store ports.TrackingStore) *ResetController {
	return &ResetController{gateway: gateway, store: store}
}

// Reset calls the reset endpoint and replaces the stored record. Repeating it is harmless.
func (c *ResetController) Reset(ctx context.Context, orderID string) (*domain.TrackingRecord, error) {
	rec, err := c.gateway.ResetTracking(ctx, orderID)
	if err != nil {
		logger.Named("reset").Error("Tracking reset rejected", zap.String("order_id", orderID), zap.Error(err))
		return nil, remoteFailure("reset tracking", err, fallbackResetMessage)
	}

	if err := storeAnswer(ctx, c.store, orderID, rec, logger.Named("reset")); err != nil {
		return nil, err
	}

	return rec, nil
}
