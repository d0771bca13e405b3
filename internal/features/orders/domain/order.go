package domain

import (
	"errors"
	"time"
)

// PaymentStatus is the payment state reported by the remote order service.
type PaymentStatus string

const (
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// PaymentMethod is how the customer pays.
type PaymentMethod string

const (
	PaymentMethodCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentMethodOnline         PaymentMethod = "online"
)

// Order is the read-only order snapshot used by the admin console.
// It is fetched once per session and never modified locally.
type Order struct {
	// ID is the unique identifier for the order.
	ID string `json:"id"`
	// PaymentStatus is the current payment state.
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	// PaymentMethod is the payment method chosen at checkout.
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	// TotalAmount is the order total.
	TotalAmount float64 `json:"totalAmount"`
	// Items contains the products included in the order.
	Items []OrderItem `json:"items"`
	// ShippingAddress is where the parcel goes.
	ShippingAddress Address `json:"shippingAddress"`
	// CreatedAt is the timestamp when the order was placed.
	CreatedAt time.Time `json:"createdAt"`
}

// OrderItem represents an individual item within an order.
type OrderItem struct {
	// ProductID identifies the purchased product.
	ProductID string `json:"productId"`
	// Name is the descriptive name of the product.
	Name string `json:"name"`
	// Quantity is the number of units purchased.
	Quantity int `json:"quantity"`
	// Price is the unit price at purchase time.
	Price float64 `json:"price"`
}

// Address is a shipping address.
type Address struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

// ErrOrderNotFound is returned when the remote service does not know the order.
var ErrOrderNotFound = errors.New("order not found")
