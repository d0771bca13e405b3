package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownStatus is returned when a value is outside the status vocabulary.
	ErrUnknownStatus = errors.New("unknown tracking status")
	// ErrCarrierRequired is returned when creating tracking without a carrier.
	ErrCarrierRequired = errors.New("carrier is required")
	// ErrTrackingNumberRequired is returned when creating tracking without a tracking number.
	ErrTrackingNumberRequired = errors.New("tracking number is required")
	// ErrMissingShippingData is returned when both carrier and tracking number are missing.
	ErrMissingShippingData = errors.New("carrier and tracking number are required")
)

// ErrInvalidTransition is returned when a proposed status change is rejected locally.
type ErrInvalidTransition struct {
	From   Status
	To     Status
	Reason string
}

func (e *ErrInvalidTransition) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid status transition from %s to %s: %s", e.From, e.To, e.Reason)
	}
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

// ErrTrackingNotFound means the order has no tracking yet. It is a normal state, not a failure.
var ErrTrackingNotFound = errors.New("tracking not found")
