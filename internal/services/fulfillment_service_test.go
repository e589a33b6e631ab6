package services_test

import (
	"context"
	"fmt"
	"testing"

	"caremarket/internal/models"
	"caremarket/internal/payments"
	"caremarket/internal/repositories"
	"caremarket/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSessionCreator is a mock implementation of payments.SessionCreator
type MockSessionCreator struct {
	mock.Mock
}

func (m *MockSessionCreator) CreateCheckoutSession(ctx context.Context, intent *models.CheckoutIntent) (*payments.Session, error) {
	args := m.Called(ctx, intent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.Session), args.Error(1)
}

func createPendingIntent(t *testing.T, repo repositories.CheckoutIntentRepository) *models.CheckoutIntent {
	t.Helper()
	intent := &models.CheckoutIntent{
		Items:      []models.IntentItem{{PriceID: "price_123", Quantity: 2}},
		SuccessURL: "https://example.com/checkout/success",
		CancelURL:  "https://example.com/cart",
	}
	assert.NoError(t, repo.Create(intent))
	return intent
}

func TestFulfillmentService_ResolvesPendingIntent(t *testing.T) {
	repo := repositories.NewMockCheckoutIntentRepository()
	sessions := new(MockSessionCreator)
	service := services.NewFulfillmentService(repo, sessions)

	intent := createPendingIntent(t, repo)
	sessions.On("CreateCheckoutSession", mock.Anything, mock.AnythingOfType("*models.CheckoutIntent")).
		Return(&payments.Session{ID: "cs_test_123", URL: "https://checkout.stripe.com/pay/cs_test_123"}, nil).Once()

	err := service.Fulfill(context.Background(), intent.ID)
	assert.NoError(t, err)

	stored, err := repo.GetByID(intent.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.IntentStatusResolved, stored.Status)
	assert.Equal(t, "cs_test_123", stored.SessionID)
	assert.Equal(t, "https://checkout.stripe.com/pay/cs_test_123", stored.SessionURL)
	assert.Empty(t, stored.Error)
	sessions.AssertExpectations(t)
}

func TestFulfillmentService_RecordsProviderErrorAndPropagates(t *testing.T) {
	repo := repositories.NewMockCheckoutIntentRepository()
	sessions := new(MockSessionCreator)
	service := services.NewFulfillmentService(repo, sessions)

	intent := createPendingIntent(t, repo)
	sessions.On("CreateCheckoutSession", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("No such price: 'price_123'")).Once()

	err := service.Fulfill(context.Background(), intent.ID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "No such price")

	// The error is visible to the polling client through the document.
	stored, getErr := repo.GetByID(intent.ID)
	assert.NoError(t, getErr)
	assert.Equal(t, models.IntentStatusErrored, stored.Status)
	assert.Contains(t, stored.Error, "No such price")
	assert.Empty(t, stored.SessionID)
	sessions.AssertExpectations(t)
}

func TestFulfillmentService_SkipsTerminalIntent(t *testing.T) {
	repo := repositories.NewMockCheckoutIntentRepository()
	sessions := new(MockSessionCreator)
	service := services.NewFulfillmentService(repo, sessions)

	intent := createPendingIntent(t, repo)
	assert.NoError(t, repo.Resolve(intent.ID, "cs_test_123", "https://checkout.stripe.com/pay/cs_test_123"))

	// Redelivered event: no second provider call, no error.
	err := service.Fulfill(context.Background(), intent.ID)
	assert.NoError(t, err)
	sessions.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything, mock.Anything)
}

func TestFulfillmentService_UnknownIntent(t *testing.T) {
	repo := repositories.NewMockCheckoutIntentRepository()
	sessions := new(MockSessionCreator)
	service := services.NewFulfillmentService(repo, sessions)

	err := service.Fulfill(context.Background(), "missing")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	sessions.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything, mock.Anything)
}
