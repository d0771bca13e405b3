package service

import (
	"context"
	"errors"
	"fmt"

	"fulfillment-admin/internal/features/tracking/domain"
	"fulfillment-admin/internal/features/tracking/ports"

	"go.uber.org/zap"
)

// storeAnswer mirrors a successful remote answer into the store. The write
// outlives ctx because the remote has already applied the change. If the write
// fails the stored entry is dropped, so the next read refetches from the remote.
func storeAnswer(ctx context.Context, store ports.TrackingStore, orderID string, rec *domain.TrackingRecord, log *zap.Logger) error {
	ctx = context.WithoutCancel(ctx)

	err := store.Replace(ctx, orderID, rec)
	if err == nil {
		return nil
	}

	log.Warn("Failed to store tracking, dropping stored copy", zap.String("order_id", orderID), zap.Error(err))
	if delErr := store.Delete(ctx, orderID); delErr != nil {
		return fmt.Errorf("service: failed to store tracking: %w", errors.Join(err, delErr))
	}
	return nil
}
