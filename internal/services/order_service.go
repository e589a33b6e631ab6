package services

import (
	"fmt"
	"log"

	"caremarket/internal/models"
	"caremarket/internal/repositories"
)

// OrderEventPublisher publishes settlement notifications for downstream
// consumers. A nil publisher is tolerated.
type OrderEventPublisher interface {
	PublishOrderSettled(orderData map[string]interface{}) error
}

// SettledSession carries the fields captured from a completed checkout
// session event.
type SettledSession struct {
	OrderID       string
	SessionID     string
	Amount        int64
	CustomerEmail string
}

// OrderService materializes orders from Stripe settlement events and serves
// order queries.
type OrderService struct {
	orderRepo repositories.OrderRepository
	publisher OrderEventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, publisher OrderEventPublisher) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		publisher: publisher,
	}
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// RecordSessionCompleted upserts the order for a completed checkout session.
// Keyed by the deterministic order id, so duplicate delivery of the same
// event lands on the same final state. The status of an order that already
// progressed past "paid" is preserved, never regressed.
func (s *OrderService) RecordSessionCompleted(settled SettledSession) error {
	if settled.OrderID == "" {
		// Session without our metadata; nothing to correlate against.
		log.Printf("Ignoring completed session %s with no order id metadata", settled.SessionID)
		return nil
	}

	order := &models.Order{
		ID:              settled.OrderID,
		Status:          models.OrderStatusPaid,
		StripeSessionID: settled.SessionID,
		Amount:          settled.Amount,
		CustomerEmail:   settled.CustomerEmail,
	}

	existing, err := s.orderRepo.GetByID(settled.OrderID)
	if err == nil && existing.Status.Rank() > order.Status.Rank() {
		order.Status = existing.Status
		order.PaymentIntentID = existing.PaymentIntentID
	}

	if err := s.orderRepo.Upsert(order); err != nil {
		return fmt.Errorf("failed to record completed session for order %s: %w", settled.OrderID, err)
	}

	if s.publisher != nil {
		event := map[string]interface{}{
			"order_id": order.ID,
			"status":   string(order.Status),
			"amount":   order.Amount,
		}
		if err := s.publisher.PublishOrderSettled(event); err != nil {
			log.Printf("Warning: Failed to publish settlement event for order %s: %v", order.ID, err)
		}
	}

	return nil
}

// RecordPaymentIntentSucceeded attaches the payment intent to an existing
// order and advances its status. An unknown order id is an error: creating a
// partial order here would leave a record with no amount or customer, so the
// update fails loudly and the provider retries after the session event lands.
func (s *OrderService) RecordPaymentIntentSucceeded(orderID, paymentIntentID string) error {
	if orderID == "" {
		return fmt.Errorf("payment intent %s carries no order id metadata", paymentIntentID)
	}
	if err := s.orderRepo.AttachPaymentIntent(orderID, paymentIntentID, models.OrderStatusPaymentSucceeded); err != nil {
		return fmt.Errorf("failed to attach payment intent %s to order %s: %w", paymentIntentID, orderID, err)
	}
	return nil
}
