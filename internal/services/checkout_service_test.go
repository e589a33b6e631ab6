package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"caremarket/internal/models"
	"caremarket/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockIntentRepository is a mock implementation of repositories.CheckoutIntentRepository
type MockIntentRepository struct {
	mock.Mock
}

func (m *MockIntentRepository) Create(intent *models.CheckoutIntent) error {
	args := m.Called(intent)
	return args.Error(0)
}

func (m *MockIntentRepository) GetByID(id string) (*models.CheckoutIntent, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CheckoutIntent), args.Error(1)
}

func (m *MockIntentRepository) Resolve(id, sessionID, sessionURL string) error {
	args := m.Called(id, sessionID, sessionURL)
	return args.Error(0)
}

func (m *MockIntentRepository) Fail(id, message string) error {
	args := m.Called(id, message)
	return args.Error(0)
}

// MockIntentPublisher is a mock implementation of services.IntentPublisher
type MockIntentPublisher struct {
	mock.Mock
}

func (m *MockIntentPublisher) PublishIntentCreated(intentID string) error {
	args := m.Called(intentID)
	return args.Error(0)
}

func testCartItems() []models.CartItem {
	return []models.CartItem{
		{Product: models.Product{ID: "prod-1", Price: 49.99, StripePriceID: "price_123"}, Quantity: 2},
	}
}

func testCheckoutConfig() services.CheckoutConfig {
	return services.CheckoutConfig{
		SuccessURL:   "https://example.com/checkout/success",
		CancelURL:    "https://example.com/cart",
		PollInterval: 10 * time.Millisecond,
		MaxAttempts:  5,
	}
}

func TestCheckoutService_ResolvesWithinTwoPolls(t *testing.T) {
	mockRepo := new(MockIntentRepository)
	mockPub := new(MockIntentPublisher)
	service := services.NewCheckoutService(mockRepo, mockPub, testCheckoutConfig())

	mockRepo.On("Create", mock.AnythingOfType("*models.CheckoutIntent")).Run(func(args mock.Arguments) {
		intent := args.Get(0).(*models.CheckoutIntent)
		intent.ID = "intent-1"
		intent.Status = models.IntentStatusPending
	}).Return(nil).Once()
	mockPub.On("PublishIntentCreated", "intent-1").Return(nil).Once()

	pending := &models.CheckoutIntent{ID: "intent-1", Status: models.IntentStatusPending}
	resolved := &models.CheckoutIntent{
		ID:         "intent-1",
		Status:     models.IntentStatusResolved,
		SessionID:  "cs_test_123",
		SessionURL: "https://checkout.stripe.com/pay/cs_test_123",
	}
	mockRepo.On("GetByID", "intent-1").Return(pending, nil).Once()
	mockRepo.On("GetByID", "intent-1").Return(resolved, nil).Once()

	result, err := service.CreateCheckoutSession(context.Background(), testCartItems())

	assert.NoError(t, err)
	assert.Equal(t, "cs_test_123", result.SessionID)
	assert.Equal(t, "https://checkout.stripe.com/pay/cs_test_123", result.SessionURL)
	assert.Equal(t, "intent-1", result.IntentID)
	mockRepo.AssertExpectations(t)
	mockPub.AssertExpectations(t)
}

func TestCheckoutService_TimesOutAfterMaxAttempts(t *testing.T) {
	mockRepo := new(MockIntentRepository)
	mockPub := new(MockIntentPublisher)
	cfg := testCheckoutConfig()
	service := services.NewCheckoutService(mockRepo, mockPub, cfg)

	mockRepo.On("Create", mock.AnythingOfType("*models.CheckoutIntent")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.CheckoutIntent).ID = "intent-2"
	}).Return(nil).Once()
	mockPub.On("PublishIntentCreated", "intent-2").Return(nil).Once()

	pending := &models.CheckoutIntent{ID: "intent-2", Status: models.IntentStatusPending}
	mockRepo.On("GetByID", "intent-2").Return(pending, nil).Times(cfg.MaxAttempts)

	start := time.Now()
	result, err := service.CreateCheckoutSession(context.Background(), testCartItems())
	elapsed := time.Since(start)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, services.ErrCheckoutTimeout)
	// One suspend per attempt, so the whole wait is roughly attempts * interval.
	assert.GreaterOrEqual(t, elapsed, time.Duration(cfg.MaxAttempts)*cfg.PollInterval)
	mockRepo.AssertExpectations(t)
}

func TestCheckoutService_PropagatesFulfillmentError(t *testing.T) {
	mockRepo := new(MockIntentRepository)
	mockPub := new(MockIntentPublisher)
	service := services.NewCheckoutService(mockRepo, mockPub, testCheckoutConfig())

	mockRepo.On("Create", mock.AnythingOfType("*models.CheckoutIntent")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.CheckoutIntent).ID = "intent-3"
	}).Return(nil).Once()
	mockPub.On("PublishIntentCreated", "intent-3").Return(nil).Once()

	errored := &models.CheckoutIntent{
		ID:     "intent-3",
		Status: models.IntentStatusErrored,
		Error:  "No such price: 'price_123'",
	}
	mockRepo.On("GetByID", "intent-3").Return(errored, nil).Once()

	result, err := service.CreateCheckoutSession(context.Background(), testCartItems())

	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "No such price")
	mockRepo.AssertExpectations(t)
}

func TestCheckoutService_FailsFastWhenPublishFails(t *testing.T) {
	mockRepo := new(MockIntentRepository)
	mockPub := new(MockIntentPublisher)
	service := services.NewCheckoutService(mockRepo, mockPub, testCheckoutConfig())

	mockRepo.On("Create", mock.AnythingOfType("*models.CheckoutIntent")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.CheckoutIntent).ID = "intent-5"
	}).Return(nil).Once()
	mockPub.On("PublishIntentCreated", "intent-5").Return(fmt.Errorf("broker unavailable")).Once()

	start := time.Now()
	result, err := service.CreateCheckoutSession(context.Background(), testCartItems())
	elapsed := time.Since(start)

	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "broker unavailable")
	// No fulfiller will ever see the intent, so there is nothing to poll for.
	assert.Less(t, elapsed, testCheckoutConfig().PollInterval)
	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything)
	mockPub.AssertExpectations(t)
}

func TestCheckoutService_RejectsMissingPriceIDBeforeAnyWrite(t *testing.T) {
	mockRepo := new(MockIntentRepository)
	mockPub := new(MockIntentPublisher)
	service := services.NewCheckoutService(mockRepo, mockPub, testCheckoutConfig())

	items := []models.CartItem{
		{Product: models.Product{ID: "prod-1", StripePriceID: "price_123"}, Quantity: 1},
		{Product: models.Product{ID: "prod-2"}, Quantity: 1}, // no price id
	}

	result, err := service.CreateCheckoutSession(context.Background(), items)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, services.ErrMissingPriceID)
	// Fail fast: no intent persisted, nothing announced.
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockPub.AssertNotCalled(t, "PublishIntentCreated", mock.Anything)
}

func TestCheckoutService_RejectsEmptyCart(t *testing.T) {
	mockRepo := new(MockIntentRepository)
	service := services.NewCheckoutService(mockRepo, nil, testCheckoutConfig())

	result, err := service.CreateCheckoutSession(context.Background(), nil)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, services.ErrEmptyCart)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCheckoutService_ContextCancelStopsPolling(t *testing.T) {
	mockRepo := new(MockIntentRepository)
	cfg := testCheckoutConfig()
	cfg.PollInterval = 50 * time.Millisecond
	service := services.NewCheckoutService(mockRepo, nil, cfg)

	mockRepo.On("Create", mock.AnythingOfType("*models.CheckoutIntent")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.CheckoutIntent).ID = "intent-4"
	}).Return(nil).Once()

	pending := &models.CheckoutIntent{ID: "intent-4", Status: models.IntentStatusPending}
	mockRepo.On("GetByID", "intent-4").Return(pending, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	result, err := service.CreateCheckoutSession(ctx, testCartItems())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
