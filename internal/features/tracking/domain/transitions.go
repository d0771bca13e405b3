package domain

// transitions lists the statuses directly reachable from each status.
// An edge here is necessary but not sufficient: Validate layers business rules on top.
var transitions = map[Status][]Status{
	StatusOrderPlaced:    {StatusProcessing, StatusCancelled, StatusFailedDelivery},
	StatusProcessing:     {StatusReadyToShip, StatusCancelled, StatusFailedDelivery},
	StatusReadyToShip:    {StatusShipped, StatusCancelled, StatusFailedDelivery},
	StatusShipped:        {StatusInTransit, StatusCancelled, StatusFailedDelivery},
	StatusInTransit:      {StatusOutForDelivery, StatusCancelled, StatusFailedDelivery},
	StatusOutForDelivery: {StatusDelivered, StatusFailedDelivery, StatusCancelled},
	StatusFailedDelivery: {StatusOutForDelivery, StatusReturned, StatusCancelled},
	StatusDelivered:      {StatusReturned},
	StatusCancelled:      {},
	StatusReturned:       {},
}

// AllowedNext returns a copy of the edge set of from.
func AllowedNext(from Status) []Status {
	next := transitions[from]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// CanTransition reports whether from -> to is an edge of the transition table.
func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// RemainingStatuses builds the operator picklist for current: every canonical
// status after current plus the side branches that apply to it. The list may
// include statuses that Validate later rejects (e.g. skipping ahead in the flow).
func RemainingStatuses(current Status) []Status {
	var out []Status
	for i, s := range canonicalFlow {
		if s == current {
			out = append(out, canonicalFlow[i+1:]...)
			break
		}
	}

	switch current {
	case StatusOutForDelivery:
		out = append(out, StatusFailedDelivery)
	case StatusDelivered:
		out = append(out, StatusReturned)
	case StatusFailedDelivery:
		out = append(out, StatusOutForDelivery, StatusReturned)
	}

	if current.IsValid() && !current.IsTerminal() {
		out = append(out, StatusCancelled)
	}

	return out
}
