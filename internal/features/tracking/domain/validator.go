package domain

import "fmt"

// Payment values the validator understands. Anything else is treated as unconfirmed.
const (
	PaymentStatusPaid           = "paid"
	PaymentMethodCashOnDelivery = "cash_on_delivery"
)

// OrderContext is the slice of the order snapshot that status rules depend on.
type OrderContext struct {
	PaymentStatus string
	PaymentMethod string
}

// PaymentConfirmed reports whether the order may enter processing.
func (o OrderContext) PaymentConfirmed() bool {
	return o.PaymentStatus == PaymentStatusPaid || o.PaymentMethod == PaymentMethodCashOnDelivery
}

// Decision is the verdict on a proposed status change. It is never persisted.
type Decision struct {
	Valid                bool   `json:"valid"`
	Message              string `json:"message,omitempty"`
	RequiresConfirmation bool   `json:"requires_confirmation"`
	WarningMessage       string `json:"warning_message,omitempty"`
}

func reject(msg string) Decision {
	return Decision{Valid: false, Message: msg}
}

func confirm(warning string) Decision {
	return Decision{Valid: true, RequiresConfirmation: true, WarningMessage: warning}
}

// Err converts a rejected decision into an *ErrInvalidTransition; it returns nil for valid ones.
func (d Decision) Err(from, to Status) error {
	if d.Valid {
		return nil
	}
	return &ErrInvalidTransition{From: from, To: to, Reason: d.Message}
}

// Validate decides whether current -> next is allowed for the given order and
// tracking record. Rules are evaluated in order and the first rejection wins.
// tracking may be nil when no record exists yet.
func Validate(current, next Status, order OrderContext, tracking *TrackingRecord) Decision {
	if !CanTransition(current, next) {
		return reject(fmt.Sprintf("Cannot change status from %s to %s", current.Label(), next.Label()))
	}

	if current == StatusDelivered && next != StatusReturned {
		return reject("Delivered orders can only be marked as returned")
	}

	if current == StatusCancelled {
		return reject("Cancelled orders cannot be updated")
	}

	switch next {
	case StatusShipped:
		if !tracking.HasShippingData() {
			return reject("Tracking number and carrier are required before marking the order as shipped")
		}
		return confirm(fmt.Sprintf(
			"The order will be marked as shipped with %s (tracking number %s). Please double-check the carrier details.",
			tracking.Carrier, tracking.TrackingNumber,
		))

	case StatusInTransit:
		if current != StatusShipped {
			return reject("Order must be shipped before it can be marked as in transit")
		}

	case StatusOutForDelivery:
		if current != StatusInTransit && current != StatusFailedDelivery {
			return reject("Order must be in transit or have a failed delivery before going out for delivery")
		}
		return confirm("The order will be marked as out for delivery.")

	case StatusDelivered:
		if current != StatusOutForDelivery {
			return reject("Order must be out for delivery before it can be marked as delivered")
		}
		return confirm("Marking the order as delivered is hard to reverse: afterwards only a return can be recorded.")

	case StatusCancelled:
		switch current {
		case StatusDelivered:
			return reject("Delivered orders cannot be cancelled, use the return flow instead")
		case StatusShipped, StatusInTransit, StatusOutForDelivery:
			return confirm("This order is already in the shipping phase. Cancelling now may require recalling the parcel from the carrier. Cancel anyway?")
		default:
			return confirm("Are you sure you want to cancel this order? This cannot be undone.")
		}

	case StatusReturned:
		if current != StatusDelivered && current != StatusFailedDelivery {
			return reject("Only delivered orders or failed deliveries can be marked as returned")
		}
		return confirm("The order will be marked as returned.")

	case StatusFailedDelivery:
		if current != StatusOutForDelivery {
			return reject("Only orders out for delivery can be marked as failed delivery")
		}
		return confirm("The delivery attempt will be recorded as failed.")

	case StatusProcessing:
		if !order.PaymentConfirmed() {
			return reject("Payment not confirmed: only paid or cash on delivery orders can be processed")
		}

	case StatusReadyToShip:
		return confirm("Make sure the order is packed and labeled before marking it ready to ship.")

	case StatusOrderPlaced:
		// never a target in the table; rule 1 has already rejected it
	}

	return confirm(fmt.Sprintf("Are you sure you want to change the status to %s?", next.Label()))
}
