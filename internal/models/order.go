package models

import "time"

// OrderStatus is an enumerated progression, not a single terminal state:
// "paid" is written when the checkout session completes, and
// "payment_succeeded" when the payment intent confirmation arrives.
type OrderStatus string

const (
	OrderStatusPaid             OrderStatus = "paid"
	OrderStatusPaymentSucceeded OrderStatus = "payment_succeeded"
)

// Rank orders statuses along the settlement progression. A status must
// never be overwritten by one of lower rank.
func (s OrderStatus) Rank() int {
	switch s {
	case OrderStatusPaid:
		return 1
	case OrderStatusPaymentSucceeded:
		return 2
	}
	return 0
}

// Order is the durable record materialized from Stripe settlement events.
// Its ID equals the CheckoutIntent id, propagated through session metadata.
type Order struct {
	ID              string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Status          OrderStatus `json:"status" gorm:"type:varchar(30)"`
	StripeSessionID string      `json:"stripe_session_id" gorm:"type:varchar(255)"`
	PaymentIntentID string      `json:"payment_intent_id,omitempty" gorm:"type:varchar(255)"`
	Amount          int64       `json:"amount"` // smallest currency unit, as reported by Stripe
	CustomerEmail   string      `json:"customer_email"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}
