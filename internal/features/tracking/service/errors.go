package service

import (
	"errors"

	"fulfillment-admin/internal/core/httpclient"
)

var (
	// ErrNoTracking is returned when an operation needs a tracking record and the order has none.
	ErrNoTracking = errors.New("order has no tracking yet")
	// ErrTrackingExists is returned when creating tracking for an order that already has it.
	ErrTrackingExists = errors.New("tracking already exists for this order")
	// ErrConfirmationRequired is returned when a transition needs operator confirmation that was not given.
	ErrConfirmationRequired = errors.New("transition requires confirmation")
	// ErrMutationInFlight is returned when another mutation for the same order has not finished.
	ErrMutationInFlight = errors.New("another update for this order is in progress")
	// ErrResetNotAllowed is returned when resetting an order in a terminal status.
	ErrResetNotAllowed = errors.New("tracking cannot be reset once the order is delivered, cancelled or returned")
)

const (
	fallbackCreateMessage = "Failed to create tracking"
	fallbackUpdateMessage = "Failed to update tracking status"
	fallbackResetMessage  = "Failed to reset tracking"
)

// RemoteFailure is a remote rejection or transport failure, carrying the
// message to show the operator.
type RemoteFailure struct {
	// Op names the attempted operation.
	Op string
	// Message is the server's message verbatim, or a generic fallback.
	Message string
	// Err is the underlying error.
	Err error
}

func (e *RemoteFailure) Error() string {
	return e.Message
}

func (e *RemoteFailure) Unwrap() error {
	return e.Err
}

func remoteFailure(op string, err error, fallback string) *RemoteFailure {
	msg := fallback
	var remote *httpclient.RemoteError
	if errors.As(err, &remote) && remote.Message != "" {
		msg = remote.Message
	}
	return &RemoteFailure{Op: op, Message: msg, Err: err}
}
