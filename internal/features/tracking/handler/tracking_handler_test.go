package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fulfillment-admin/internal/core/httpclient"
	orderdomain "fulfillment-admin/internal/features/orders/domain"
	"fulfillment-admin/internal/features/tracking/domain"
	"fulfillment-admin/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockWorkflow is a mock implementation of Workflow.
type MockWorkflow struct {
	mock.Mock
}

func (m *MockWorkflow) Load(ctx context.Context, orderID string) (*service.TrackingView, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TrackingView), args.Error(1)
}

func (m *MockWorkflow) Propose(ctx context.Context, orderID string, next domain.Status) (domain.Decision, *domain.TrackingRecord, error) {
	args := m.Called(orderID, next)
	rec, _ := args.Get(1).(*domain.TrackingRecord)
	return args.Get(0).(domain.Decision), rec, args.Error(2)
}

func (m *MockWorkflow) Apply(ctx context.Context, orderID string, next domain.Status, confirmed bool) (*domain.TrackingRecord, domain.Decision, error) {
	args := m.Called(orderID, next, confirmed)
	rec, _ := args.Get(0).(*domain.TrackingRecord)
	return rec, args.Get(1).(domain.Decision), args.Error(2)
}

func (m *MockWorkflow) Reset(ctx context.Context, orderID string) (*domain.TrackingRecord, error) {
	args := m.Called(orderID)
	rec, _ := args.Get(0).(*domain.TrackingRecord)
	return rec, args.Error(1)
}

func (m *MockWorkflow) Create(ctx context.Context, req domain.NewTracking) (*domain.TrackingRecord, error) {
	args := m.Called(req)
	rec, _ := args.Get(0).(*domain.TrackingRecord)
	return rec, args.Error(1)
}

func setupApp(w Workflow) *fiber.App {
	h := NewTrackingHandler(w)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	app.Get("/orders/:id/tracking", h.GetTracking)
	app.Post("/orders/:id/tracking", h.CreateTracking)
	app.Post("/orders/:id/tracking/decisions", h.ProposeStatus)
	app.Patch("/orders/:id/tracking/status", h.UpdateStatus)
	app.Post("/orders/:id/tracking/reset", h.ResetTracking)
	app.Get("/tracking/statuses", h.ListStatuses)
	return app
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(t *testing.T, body io.Reader) ErrorResponse {
	t.Helper()
	var out ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestGetTracking_NoTrackingYet(t *testing.T) {
	wf := new(MockWorkflow)
	wf.On("Load", "o1").Return(&service.TrackingView{
		Order:     &orderdomain.Order{ID: "o1"},
		CanCreate: true,
	}, nil)

	resp, err := setupApp(wf).Test(httptest.NewRequest(http.MethodGet, "/orders/o1/tracking", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Nil(t, body["tracking"])
	assert.Equal(t, true, body["can_create"])
}

func TestGetTracking_OrderNotFound(t *testing.T) {
	wf := new(MockWorkflow)
	wf.On("Load", "nope").Return(nil, orderdomain.ErrOrderNotFound)

	resp, err := setupApp(wf).Test(httptest.NewRequest(http.MethodGet, "/orders/nope/tracking", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "test-ray-id", decodeError(t, resp.Body).RayID)
}

func TestCreateTracking(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		wf := new(MockWorkflow)
		want := domain.NewTracking{OrderID: "o1", Carrier: "DHL", TrackingNumber: "JD1"}
		wf.On("Create", want).Return(&domain.TrackingRecord{OrderID: "o1", Carrier: "DHL", TrackingNumber: "JD1", Status: domain.StatusOrderPlaced}, nil)

		resp, err := setupApp(wf).Test(jsonRequest(http.MethodPost, "/orders/o1/tracking", `{"carrier":"DHL","tracking_number":"JD1"}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		wf.AssertExpectations(t)
	})

	t.Run("missing carrier", func(t *testing.T) {
		wf := new(MockWorkflow)
		wf.On("Create", mock.Anything).Return(nil, domain.ErrCarrierRequired)

		resp, err := setupApp(wf).Test(jsonRequest(http.MethodPost, "/orders/o1/tracking", `{"tracking_number":"JD1"}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "carrier is required", decodeError(t, resp.Body).Message)
	})

	t.Run("already exists", func(t *testing.T) {
		wf := new(MockWorkflow)
		wf.On("Create", mock.Anything).Return(nil, service.ErrTrackingExists)

		resp, err := setupApp(wf).Test(jsonRequest(http.MethodPost, "/orders/o1/tracking", `{"carrier":"DHL","tracking_number":"JD1"}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("malformed body", func(t *testing.T) {
		resp, err := setupApp(new(MockWorkflow)).Test(jsonRequest(http.MethodPost, "/orders/o1/tracking", `{`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestProposeStatus(t *testing.T) {
	wf := new(MockWorkflow)
	decision := domain.Decision{Valid: true, RequiresConfirmation: true, WarningMessage: "Are you sure?"}
	wf.On("Propose", "o1", domain.StatusProcessing).Return(decision, &domain.TrackingRecord{Status: domain.StatusOrderPlaced}, nil)

	resp, err := setupApp(wf).Test(jsonRequest(http.MethodPost, "/orders/o1/tracking/decisions", `{"status":"processing"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body DecisionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, domain.StatusOrderPlaced, body.Current)
	assert.Equal(t, domain.StatusProcessing, body.Next)
	assert.Equal(t, decision, body.Decision)
}

func TestProposeStatus_UnknownStatus(t *testing.T) {
	wf := new(MockWorkflow)

	resp, err := setupApp(wf).Test(jsonRequest(http.MethodPost, "/orders/o1/tracking/decisions", `{"status":"teleported"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	wf.AssertNotCalled(t, "Propose", mock.Anything, mock.Anything)
}

func TestUpdateStatus(t *testing.T) {
	confirmDecision := domain.Decision{Valid: true, RequiresConfirmation: true, WarningMessage: "hard to reverse"}
	rejected := domain.Decision{Valid: false, Message: "Cannot change status from Order Placed to Shipped"}

	tests := []struct {
		name           string
		body           string
		next           domain.Status
		confirmed      bool
		rec            *domain.TrackingRecord
		decision       domain.Decision
		err            error
		expectedStatus int
		expectedMsg    string
		echoDecision   bool
	}{
		{
			name:           "applied",
			body:           `{"status":"delivered","confirmed":true}`,
			next:           domain.StatusDelivered,
			confirmed:      true,
			rec:            &domain.TrackingRecord{Status: domain.StatusDelivered},
			decision:       confirmDecision,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "confirmation missing",
			body:           `{"status":"delivered"}`,
			next:           domain.StatusDelivered,
			decision:       confirmDecision,
			err:            service.ErrConfirmationRequired,
			expectedStatus: http.StatusConflict,
			expectedMsg:    service.ErrConfirmationRequired.Error(),
			echoDecision:   true,
		},
		{
			name:           "rejected locally",
			body:           `{"status":"shipped","confirmed":true}`,
			next:           domain.StatusShipped,
			confirmed:      true,
			decision:       rejected,
			err:            rejected.Err(domain.StatusOrderPlaced, domain.StatusShipped),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedMsg:    rejected.Message,
			echoDecision:   true,
		},
		{
			name:           "mutation in flight",
			body:           `{"status":"delivered","confirmed":true}`,
			next:           domain.StatusDelivered,
			confirmed:      true,
			err:            service.ErrMutationInFlight,
			expectedStatus: http.StatusConflict,
			expectedMsg:    service.ErrMutationInFlight.Error(),
		},
		{
			name:           "remote rejection shows server message",
			body:           `{"status":"delivered","confirmed":true}`,
			next:           domain.StatusDelivered,
			confirmed:      true,
			decision:       confirmDecision,
			err:            &service.RemoteFailure{Op: "update status", Message: "Courier has not scanned the parcel", Err: &httpclient.RemoteError{StatusCode: 400}},
			expectedStatus: http.StatusBadGateway,
			expectedMsg:    "Courier has not scanned the parcel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wf := new(MockWorkflow)
			wf.On("Apply", "o1", tt.next, tt.confirmed).Return(tt.rec, tt.decision, tt.err)

			resp, err := setupApp(wf).Test(jsonRequest(http.MethodPatch, "/orders/o1/tracking/status", tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.err == nil {
				var body TrackingResponse
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
				assert.Equal(t, tt.rec.Status, body.Tracking.Status)
				return
			}

			body := decodeError(t, resp.Body)
			assert.Equal(t, tt.expectedMsg, body.Message)
			if tt.echoDecision {
				require.NotNil(t, body.Decision)
				assert.Equal(t, tt.decision, *body.Decision)
			} else {
				assert.Nil(t, body.Decision)
			}
		})
	}
}

func TestResetTracking(t *testing.T) {
	tests := []struct {
		name           string
		rec            *domain.TrackingRecord
		err            error
		expectedStatus int
	}{
		{name: "reset", rec: &domain.TrackingRecord{Status: domain.StatusOrderPlaced}, expectedStatus: http.StatusOK},
		{name: "terminal", err: service.ErrResetNotAllowed, expectedStatus: http.StatusUnprocessableEntity},
		{name: "no tracking", err: service.ErrNoTracking, expectedStatus: http.StatusNotFound},
		{name: "unexpected", err: errors.New("store unavailable"), expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wf := new(MockWorkflow)
			wf.On("Reset", "o1").Return(tt.rec, tt.err)

			resp, err := setupApp(wf).Test(httptest.NewRequest(http.MethodPost, "/orders/o1/tracking/reset", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestListStatuses(t *testing.T) {
	resp, err := setupApp(new(MockWorkflow)).Test(httptest.NewRequest(http.MethodGet, "/tracking/statuses", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var statuses []StatusInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&statuses))
	require.Len(t, statuses, len(domain.AllStatuses()))

	assert.Equal(t, domain.StatusOrderPlaced, statuses[0].Value)
	assert.Equal(t, "Order Placed", statuses[0].Label)
	for _, s := range statuses {
		if s.Value == domain.StatusCancelled {
			assert.True(t, s.Terminal)
			assert.Empty(t, s.Next)
		}
	}
}
