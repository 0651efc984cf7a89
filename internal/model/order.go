package model

import "time"

// Order statuses as shown on the admin dashboard.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Payment methods accepted by the checkout wizard.
const (
	PaymentMethodCard = "Card"
	PaymentMethodUPI  = "UPI"
	PaymentMethodCOD  = "COD"
)

// ShippingAddress is transient checkout form state. It is scoped to one
// pass through the wizard and is never persisted on its own.
type ShippingAddress struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// OrderSummary is the totals block shared by the cart summary and the
// checkout summary. Shipping is always free; tax is a flat 10% of the
// subtotal.
type OrderSummary struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// NewOrderSummary derives the totals from a cart subtotal. Both summaries
// must go through here so the numbers can never disagree.
func NewOrderSummary(subtotal float64) OrderSummary {
	return OrderSummary{
		Subtotal: subtotal,
		Shipping: 0,
		Tax:      subtotal * 0.10,
		Total:    subtotal * 1.10,
	}
}

// Order is the record produced when the checkout wizard completes. Orders
// live in memory only; "persistence" of an order is simulated.
type Order struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customer_id"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	Items         []CartLine      `json:"items"`
	Shipping      ShippingAddress `json:"shipping"`
	PaymentMethod string          `json:"payment_method"`
	Summary       OrderSummary    `json:"summary"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}
