package domain

import (
	"fmt"
	"strings"
)

// Status is the delivery-tracking status of an order.
// The string values are the wire vocabulary shared with the remote tracking service.
type Status string

const (
	// StatusOrderPlaced is the initial status assigned by the remote service.
	StatusOrderPlaced Status = "order_placed"
	// StatusProcessing indicates the order is being prepared.
	StatusProcessing Status = "processing"
	// StatusReadyToShip indicates the parcel is packed and labeled.
	StatusReadyToShip Status = "ready_to_ship"
	// StatusShipped indicates the parcel was handed to the carrier.
	StatusShipped Status = "shipped"
	// StatusInTransit indicates the carrier is moving the parcel.
	StatusInTransit Status = "in_transit"
	// StatusOutForDelivery indicates the parcel is on the last-mile vehicle.
	StatusOutForDelivery Status = "out_for_delivery"
	// StatusDelivered indicates the customer received the parcel.
	StatusDelivered Status = "delivered"
	// StatusCancelled indicates the order was cancelled.
	StatusCancelled Status = "cancelled"
	// StatusFailedDelivery indicates a delivery attempt did not succeed.
	StatusFailedDelivery Status = "failed_delivery"
	// StatusReturned indicates the parcel came back to the store.
	StatusReturned Status = "returned"
)

// canonicalFlow is the main line of the workflow, in order.
var canonicalFlow = []Status{
	StatusOrderPlaced,
	StatusProcessing,
	StatusReadyToShip,
	StatusShipped,
	StatusInTransit,
	StatusOutForDelivery,
	StatusDelivered,
}

var statusLabels = map[Status]string{
	StatusOrderPlaced:    "Order Placed",
	StatusProcessing:     "Processing",
	StatusReadyToShip:    "Ready to Ship",
	StatusShipped:        "Shipped",
	StatusInTransit:      "In Transit",
	StatusOutForDelivery: "Out for Delivery",
	StatusDelivered:      "Delivered",
	StatusCancelled:      "Cancelled",
	StatusFailedDelivery: "Failed Delivery",
	StatusReturned:       "Returned",
}

// AllStatuses returns every known status: the canonical flow followed by the side branches.
func AllStatuses() []Status {
	all := make([]Status, 0, len(statusLabels))
	all = append(all, canonicalFlow...)
	return append(all, StatusCancelled, StatusFailedDelivery, StatusReturned)
}

// ParseStatus converts a wire value into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(strings.TrimSpace(s))
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return status, nil
}

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	_, ok := statusLabels[s]
	return ok
}

// IsTerminal reports whether s ends the workflow.
// Delivered is terminal even though it still accepts a return.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusDelivered, StatusCancelled, StatusReturned:
		return true
	default:
		return false
	}
}

// Label returns the operator-facing name of the status.
func (s Status) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s), nil
}

// UnmarshalText rejects values outside the shared vocabulary.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
