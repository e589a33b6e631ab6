package repositories

import (
	"errors"

	"caremarket/internal/models"
)

// ErrOrderNotFound is returned when a targeted update references an order
// that has not been materialized yet.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order data access. Upsert is a
// full overwrite keyed by the deterministic order id, so duplicate webhook
// deliveries are safe. AttachPaymentIntent is a targeted update and fails
// with ErrOrderNotFound if the order does not exist.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	Upsert(order *models.Order) error
	AttachPaymentIntent(id, paymentIntentID string, status models.OrderStatus) error
}
