package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"fulfillment-admin/internal/features/orders/domain"
	"fulfillment-admin/internal/features/orders/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderReader struct {
	mock.Mock
}

func (m *MockOrderReader) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderReader) Invalidate(ctx context.Context, orderID string) error {
	return m.Called(orderID).Error(0)
}

func setupApp(reader OrderReader) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	app.Get("/orders/:id", NewOrderHandler(reader).GetOrder)
	return app
}

func TestGetOrder_Success(t *testing.T) {
	reader := new(MockOrderReader)
	reader.On("GetOrder", "123").Return(&domain.Order{ID: "123", PaymentStatus: domain.PaymentStatusPaid}, nil)

	resp, err := setupApp(reader).Test(httptest.NewRequest(http.MethodGet, "/orders/123", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var order domain.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&order))
	assert.Equal(t, "123", order.ID)
	assert.Equal(t, domain.PaymentStatusPaid, order.PaymentStatus)
	reader.AssertNotCalled(t, "Invalidate", mock.Anything)
}

func TestGetOrder_Refresh(t *testing.T) {
	reader := new(MockOrderReader)
	reader.On("Invalidate", "123").Return(nil).Once()
	reader.On("GetOrder", "123").Return(&domain.Order{ID: "123"}, nil)

	resp, err := setupApp(reader).Test(httptest.NewRequest(http.MethodGet, "/orders/123?refresh=true", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	reader.AssertExpectations(t)
}

func TestGetOrder_Errors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "not found",
			err:            fmt.Errorf("%w: 9", service.ErrOrderNotFound),
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Order not found",
		},
		{
			name:           "remote failure",
			err:            errors.New("remote service returned 500"),
			expectedStatus: http.StatusBadGateway,
			expectedMsg:    "remote service returned 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := new(MockOrderReader)
			reader.On("GetOrder", "9").Return(nil, tt.err)

			resp, err := setupApp(reader).Test(httptest.NewRequest(http.MethodGet, "/orders/9", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			var body ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.expectedMsg, body.Message)
			assert.Equal(t, "test-ray-id", body.RayID)
		})
	}
}
