package service

import (
	"context"
	"fmt"

	"fulfillment-admin/internal/core/logger"
	"fulfillment-admin/internal/features/tracking/domain"
	"fulfillment-admin/internal/features/tracking/ports"

	"go.uber.org/zap"
)

// TransitionExecutor applies accepted transitions through the remote service.
type TransitionExecutor struct {
	gateway ports.TrackingGateway
	store   ports.TrackingStore
}

// NewTransitionExecutor creates a new TransitionExecutor.
func NewTransitionExecutor(gateway ports.TrackingGateway, store ports.TrackingStore) *TransitionExecutor {
	return &TransitionExecutor{gateway: gateway, store: store}
}

// StatusChangeNote is the history note recorded for operator-driven changes.
func StatusChangeNote(target domain.Status) string {
	return fmt.Sprintf("Status changed to %s by admin", target)
}

// Execute sends the from -> target change and replaces the stored record with
// the server's answer. The caller must already have obtained confirmation when
// decision.RequiresConfirmation is set. On a remote failure the stored record is untouched.
func (e *TransitionExecutor) Execute(ctx context.Context, orderID string, from, target domain.Status, decision domain.Decision) (*domain.TrackingRecord, error) {
	if !decision.Valid {
		return nil, decision.Err(from, target)
	}

	log := logger.Named("executor").With(zap.String("order_id", orderID), zap.String("target", target.String()))

	previous, err := e.store.Get(ctx, orderID)
	if err != nil {
		log.Warn("Could not read stored tracking before update", zap.Error(err))
	}

	rec, err := e.gateway.UpdateStatus(ctx, orderID, target, StatusChangeNote(target))
	if err != nil {
		log.Error("Status update rejected", zap.Error(err))
		return nil, remoteFailure("update status", err, fallbackUpdateMessage)
	}

	if previous != nil && len(rec.StatusHistory) < len(previous.StatusHistory) {
		log.Warn("Remote returned a shorter status history",
			zap.Int("previous", len(previous.StatusHistory)),
			zap.Int("current", len(rec.StatusHistory)),
		)
	}

	if err := storeAnswer(ctx, e.store, orderID, rec, log); err != nil {
		return nil, err
	}

	log.Info("Tracking status updated", zap.String("status", rec.Status.String()))
	return rec, nil
}
