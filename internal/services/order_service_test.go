package services_test

import (
	"testing"

	"caremarket/internal/models"
	"caremarket/internal/repositories"
	"caremarket/internal/services"

	"github.com/stretchr/testify/assert"
)

func settledSession() services.SettledSession {
	return services.SettledSession{
		OrderID:       "X",
		SessionID:     "cs_test_123",
		Amount:        4999,
		CustomerEmail: "a@b.com",
	}
}

func TestOrderService_RecordSessionCompleted(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	service := services.NewOrderService(repo, nil)

	assert.NoError(t, service.RecordSessionCompleted(settledSession()))

	order, err := repo.GetByID("X")
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusPaid, order.Status)
	assert.Equal(t, "cs_test_123", order.StripeSessionID)
	assert.Equal(t, int64(4999), order.Amount)
	assert.Equal(t, "a@b.com", order.CustomerEmail)
}

func TestOrderService_DuplicateSessionCompletedIsIdempotent(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	service := services.NewOrderService(repo, nil)

	assert.NoError(t, service.RecordSessionCompleted(settledSession()))
	first, err := repo.GetByID("X")
	assert.NoError(t, err)

	assert.NoError(t, service.RecordSessionCompleted(settledSession()))
	second, err := repo.GetByID("X")
	assert.NoError(t, err)

	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.Amount, second.Amount)
	assert.Equal(t, first.CustomerEmail, second.CustomerEmail)
	assert.Equal(t, first.StripeSessionID, second.StripeSessionID)

	orders, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestOrderService_PaymentIntentSucceededAdvancesStatus(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	service := services.NewOrderService(repo, nil)

	assert.NoError(t, service.RecordSessionCompleted(settledSession()))
	assert.NoError(t, service.RecordPaymentIntentSucceeded("X", "pi_test_456"))

	order, err := repo.GetByID("X")
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusPaymentSucceeded, order.Status)
	assert.Equal(t, "pi_test_456", order.PaymentIntentID)
	// Fields from the session event are untouched.
	assert.Equal(t, int64(4999), order.Amount)
	assert.Equal(t, "a@b.com", order.CustomerEmail)
}

func TestOrderService_PaymentIntentForUnknownOrderFailsLoudly(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	service := services.NewOrderService(repo, nil)

	err := service.RecordPaymentIntentSucceeded("never-created", "pi_test_456")
	assert.Error(t, err)
	assert.ErrorIs(t, err, repositories.ErrOrderNotFound)

	// No partial order materialized.
	orders, getErr := repo.GetAll()
	assert.NoError(t, getErr)
	assert.Empty(t, orders)
}

func TestOrderService_StatusNeverRegresses(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	service := services.NewOrderService(repo, nil)

	assert.NoError(t, service.RecordSessionCompleted(settledSession()))
	assert.NoError(t, service.RecordPaymentIntentSucceeded("X", "pi_test_456"))

	// A late duplicate of the session event must not pull the order back to
	// "paid" or drop the payment intent linkage.
	assert.NoError(t, service.RecordSessionCompleted(settledSession()))

	order, err := repo.GetByID("X")
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusPaymentSucceeded, order.Status)
	assert.Equal(t, "pi_test_456", order.PaymentIntentID)
}

func TestOrderService_SessionWithoutOrderIDIsIgnored(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	service := services.NewOrderService(repo, nil)

	settled := settledSession()
	settled.OrderID = ""
	assert.NoError(t, service.RecordSessionCompleted(settled))

	orders, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_PaymentIntentWithoutOrderIDIsRejected(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	service := services.NewOrderService(repo, nil)

	err := service.RecordPaymentIntentSucceeded("", "pi_test_456")
	assert.Error(t, err)
}
