package models

import "time"

// IntentStatus tracks the lifecycle of a CheckoutIntent. An intent starts
// pending and is written exactly once to a terminal state by the fulfiller.
type IntentStatus string

const (
	IntentStatusPending  IntentStatus = "pending"
	IntentStatusResolved IntentStatus = "resolved"
	IntentStatusErrored  IntentStatus = "errored"
)

// IsTerminal reports whether the intent has been finalized.
func (s IntentStatus) IsTerminal() bool {
	return s == IntentStatusResolved || s == IntentStatusErrored
}

// IntentItem is one checkout line item, keyed by the Stripe price id.
type IntentItem struct {
	PriceID  string `json:"price_id"`
	Quantity int64  `json:"quantity"`
}

// CheckoutIntent is the persisted record mediating between the client-facing
// checkout request and the asynchronous Stripe session creation. The items
// and URLs are fixed at creation; only the fulfiller may set SessionID,
// SessionURL or Error, and only while the status is still pending.
type CheckoutIntent struct {
	ID         string       `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Items      []IntentItem `json:"items" gorm:"serializer:json"`
	SuccessURL string       `json:"success_url"`
	CancelURL  string       `json:"cancel_url"`
	Status     IntentStatus `json:"status" gorm:"type:varchar(20);default:pending"`
	SessionID  string       `json:"session_id,omitempty"`
	SessionURL string       `json:"session_url,omitempty"`
	Error      string       `json:"error,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}
