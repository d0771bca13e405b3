package domain

import (
	"strings"
	"time"
)

// TrackingRecord is the shipment tracking entity attached to one order.
// The remote tracking service is authoritative; local copies are replaced, never merged.
type TrackingRecord struct {
	// ID is the remote identifier of the record.
	ID string `json:"id"`
	// OrderID is the owning order.
	OrderID string `json:"orderId"`
	// Carrier is the shipping company name.
	Carrier string `json:"carrier"`
	// TrackingNumber is the carrier-issued tracking identifier.
	TrackingNumber string `json:"trackingNumber"`
	// TrackingURL is an optional public tracking page.
	TrackingURL string `json:"trackingUrl,omitempty"`
	// Status is the current workflow status.
	Status Status `json:"status"`
	// StatusHistory is append-only and ordered chronologically.
	StatusHistory []StatusHistoryEntry `json:"statusHistory"`
	// UpdatedAt is the last time the remote service changed the record.
	UpdatedAt time.Time `json:"updatedAt"`
}

// StatusHistoryEntry records one accepted transition.
type StatusHistoryEntry struct {
	Status    Status    `json:"status"`
	Notes     string    `json:"notes"`
	Timestamp time.Time `json:"timestamp"`
}

// HasShippingData reports whether both carrier and tracking number are present.
func (r *TrackingRecord) HasShippingData() bool {
	return r != nil &&
		strings.TrimSpace(r.Carrier) != "" &&
		strings.TrimSpace(r.TrackingNumber) != ""
}

// LatestEntry returns the most recent history entry, if any.
func (r *TrackingRecord) LatestEntry() (StatusHistoryEntry, bool) {
	if r == nil || len(r.StatusHistory) == 0 {
		return StatusHistoryEntry{}, false
	}
	return r.StatusHistory[len(r.StatusHistory)-1], true
}

// IsConsistent reports whether Status matches the latest history entry.
// A record without history is consistent by definition.
func (r *TrackingRecord) IsConsistent() bool {
	last, ok := r.LatestEntry()
	return !ok || last.Status == r.Status
}

// NewTracking holds the data needed to attach tracking to an order.
type NewTracking struct {
	OrderID        string `json:"orderId"`
	Carrier        string `json:"carrier"`
	TrackingNumber string `json:"trackingNumber"`
	TrackingURL    string `json:"trackingUrl,omitempty"`
}

// Normalize trims all fields.
func (n NewTracking) Normalize() NewTracking {
	return NewTracking{
		OrderID:        strings.TrimSpace(n.OrderID),
		Carrier:        strings.TrimSpace(n.Carrier),
		TrackingNumber: strings.TrimSpace(n.TrackingNumber),
		TrackingURL:    strings.TrimSpace(n.TrackingURL),
	}
}

// Validate checks the fields required to create tracking.
func (n NewTracking) Validate() error {
	n = n.Normalize()
	switch {
	case n.Carrier == "" && n.TrackingNumber == "":
		return ErrMissingShippingData
	case n.Carrier == "":
		return ErrCarrierRequired
	case n.TrackingNumber == "":
		return ErrTrackingNumberRequired
	}
	return nil
}
