package service

import (
	"context"
	"errors"
	"testing"

	"fulfillment-admin/internal/core/httpclient"
	"fulfillment-admin/internal/features/tracking/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStatusChangeNote(t *testing.T) {
	assert.Equal(t, "Status changed to in_transit by admin", StatusChangeNote(domain.StatusInTransit))
}

func TestExecute_ReplacesStoreWithServerAnswer(t *testing.T) {
	ctx := context.Background()
	gw := new(MockGateway)
	store := newMemoryStore()
	store.records["o1"] = record("o1", domain.StatusOrderPlaced, domain.StatusProcessing)

	answer := record("o1", domain.StatusOrderPlaced, domain.StatusProcessing, domain.StatusReadyToShip)
	gw.On("UpdateStatus", ctx, "o1", domain.StatusReadyToShip, "Status changed to ready_to_ship by admin").Return(answer, nil)

	rec, err := NewTransitionExecutor(gw, store).Execute(ctx, "o1", domain.StatusProcessing, domain.StatusReadyToShip, domain.Decision{Valid: true})
	require.NoError(t, err)

	assert.Same(t, answer, rec)
	assert.Same(t, answer, store.records["o1"])
	assert.GreaterOrEqual(t, len(rec.StatusHistory), 3)
	gw.AssertExpectations(t)
}

func TestExecute_InvalidDecisionMakesNoCall(t *testing.T) {
	gw := new(MockGateway)
	store := newMemoryStore()

	_, err := NewTransitionExecutor(gw, store).Execute(context.Background(), "o1", domain.StatusInTransit, domain.StatusDelivered, domain.Decision{Message: "nope"})

	var invalid *domain.ErrInvalidTransition
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, domain.StatusInTransit, invalid.From)
	assert.Equal(t, domain.StatusDelivered, invalid.To)
	assert.Equal(t, "nope", invalid.Reason)
	assert.EqualError(t, err, "invalid status transition from in_transit to delivered: nope")
	gw.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	assert.Zero(t, store.writes)
}

func TestExecute_RemoteFailureLeavesStoreUntouched(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		expectedMsg string
	}{
		{
			name:        "server message shown verbatim",
			err:         &httpclient.RemoteError{StatusCode: 400, Message: "Tracking number is not active"},
			expectedMsg: "Tracking number is not active",
		},
		{
			name:        "generic fallback",
			err:         errors.New("connection refused"),
			expectedMsg: "Failed to update tracking status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			gw := new(MockGateway)
			store := newMemoryStore()
			before := record("o1", domain.StatusOrderPlaced)
			store.records["o1"] = before

			gw.On("UpdateStatus", ctx, "o1", domain.StatusProcessing, mock.Anything).Return(nil, tt.err)

			_, err := NewTransitionExecutor(gw, store).Execute(ctx, "o1", domain.StatusOrderPlaced, domain.StatusProcessing, domain.Decision{Valid: true})

			var failure *RemoteFailure
			require.ErrorAs(t, err, &failure)
			assert.Equal(t, tt.expectedMsg, failure.Error())
			assert.ErrorIs(t, err, tt.err)
			assert.Same(t, before, store.records["o1"])
			assert.Zero(t, store.writes)
		})
	}
}
