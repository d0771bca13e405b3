package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"fulfillment-admin/internal/core/httpclient"
	"fulfillment-admin/internal/features/tracking/domain"
)

// RemoteTrackingGateway implements ports.TrackingGateway against the remote admin API.
type RemoteTrackingGateway struct {
	api *httpclient.APIClient
}

// NewRemoteTrackingGateway creates a new RemoteTrackingGateway.
func NewRemoteTrackingGateway(api *httpclient.APIClient) *RemoteTrackingGateway {
	return &RemoteTrackingGateway{api: api}
}

type updateStatusRequest struct {
	Status domain.Status `json:"status"`
	Notes  string        `json:"notes"`
}

// GetTracking fetches GET /tracking/order/{orderID}.
func (g *RemoteTrackingGateway) GetTracking(ctx context.Context, orderID string) (*domain.TrackingRecord, error) {
	var rec domain.TrackingRecord
	if err := g.api.Do(ctx, http.MethodGet, orderPath(orderID, ""), nil, &rec); err != nil {
		var remote *httpclient.RemoteError
		if errors.As(err, &remote) && remote.NotFound() {
			return nil, fmt.Errorf("%w: order %s", domain.ErrTrackingNotFound, orderID)
		}
		return nil, err
	}
	return &rec, nil
}

// CreateTracking posts to /tracking-details.
func (g *RemoteTrackingGateway) CreateTracking(ctx context.Context, req domain.NewTracking) (*domain.TrackingRecord, error) {
	var rec domain.TrackingRecord
	if err := g.api.Do(ctx, http.MethodPost, "/tracking-details", req, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// UpdateStatus patches /tracking/order/{orderID}/status.
func (g *RemoteTrackingGateway) UpdateStatus(ctx context.Context, orderID string, status domain.Status, notes string) (*domain.TrackingRecord, error) {
	var rec domain.TrackingRecord
	body := updateStatusRequest{Status: status, Notes: notes}
	if err := g.api.Do(ctx, http.MethodPatch, orderPath(orderID, "/status"), body, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// ResetTracking posts to /tracking/order/{orderID}/reset.
func (g *RemoteTrackingGateway) ResetTracking(ctx context.Context, orderID string) (*domain.TrackingRecord, error) {
	var rec domain.TrackingRecord
	if err := g.api.Do(ctx, http.MethodPost, orderPath(orderID, "/reset"), nil, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func orderPath(orderID, suffix string) string {
	return "/tracking/order/" + url.PathEscape(orderID) + suffix
}
