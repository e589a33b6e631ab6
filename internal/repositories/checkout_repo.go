package repositories

import (
	"errors"

	"caremarket/internal/models"
)

// ErrIntentFinalized is returned when a terminal write is attempted against
// an intent that already carries a session id or an error.
var ErrIntentFinalized = errors.New("checkout intent already finalized")

// CheckoutIntentRepository defines the interface for checkout-intent data
// access. Resolve and Fail are the only mutations and each succeeds at most
// once per intent: whichever lands first wins, the other gets
// ErrIntentFinalized.
type CheckoutIntentRepository interface {
	Create(intent *models.CheckoutIntent) error
	GetByID(id string) (*models.CheckoutIntent, error)
	Resolve(id, sessionID, sessionURL string) error
	Fail(id, message string) error
}
