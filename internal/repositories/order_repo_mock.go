package repositories

import (
	"sync"
	"time"

	"caremarket/internal/models"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
type MockOrderRepository struct {
	orders map[string]models.Order
	mu     sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[string]models.Order),
	}
}

// GetAll returns all orders.
func (r *MockOrderRepository) GetAll() ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orderList = append(orderList, order)
	}
	return orderList, nil
}

// GetByID returns an order by its ID.
func (r *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return &order, nil
}

// Upsert writes the order, preserving CreatedAt on overwrite.
func (r *MockOrderRepository) Upsert(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if existing, ok := r.orders[order.ID]; ok {
		order.CreatedAt = existing.CreatedAt
	} else {
		order.CreatedAt = now
	}
	order.UpdatedAt = now
	r.orders[order.ID] = *order
	return nil
}

// AttachPaymentIntent records the payment intent id and advances the status
// of an existing order.
func (r *MockOrderRepository) AttachPaymentIntent(id, paymentIntentID string, status models.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return ErrOrderNotFound
	}
	order.PaymentIntentID = paymentIntentID
	order.Status = status
	order.UpdatedAt = time.Now()
	r.orders[id] = order
	return nil
}
