package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"fulfillment-admin/internal/core/httpclient"
	"fulfillment-admin/internal/features/orders/domain"
)

// RemoteOrderAdapter implements the OrderProvider interface using the remote admin API.
type RemoteOrderAdapter struct {
	api *httpclient.APIClient
}

// NewRemoteOrderAdapter creates a new instance of RemoteOrderAdapter.
func NewRemoteOrderAdapter(api *httpclient.APIClient) *RemoteOrderAdapter {
	return &RemoteOrderAdapter{api: api}
}

// GetOrder fetches GET /orders/{id}.
func (a *RemoteOrderAdapter) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	var order domain.Order
	if err := a.api.Do(ctx, http.MethodGet, "/orders/"+url.PathEscape(orderID), nil, &order); err != nil {
		var remote *httpclient.RemoteError
		if errors.As(err, &remote) && remote.NotFound() {
			return nil, fmt.Errorf("%w: %s", domain.ErrOrderNotFound, orderID)
		}
		return nil, fmt.Errorf("failed to fetch order %s: %w", orderID, err)
	}

	if order.ID == "" {
		order.ID = orderID
	}
	return &order, nil
}

// HealthCheck verifies that the remote API is reachable and the token is accepted.
func (a *RemoteOrderAdapter) HealthCheck(ctx context.Context) error {
	if err := a.api.Do(ctx, http.MethodGet, "/orders?limit=1", nil, nil); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	return nil
}
