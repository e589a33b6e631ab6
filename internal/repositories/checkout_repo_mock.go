package repositories

import (
	"fmt"
	"sync"
	"time"

	"caremarket/internal/models"

	"github.com/google/uuid"
)

// MockCheckoutIntentRepository is an in-memory implementation of
// CheckoutIntentRepository.
type MockCheckoutIntentRepository struct {
	intents map[string]models.CheckoutIntent
	mu      sync.RWMutex
}

// NewMockCheckoutIntentRepository creates a new instance of MockCheckoutIntentRepository.
func NewMockCheckoutIntentRepository() *MockCheckoutIntentRepository {
	return &MockCheckoutIntentRepository{
		intents: make(map[string]models.CheckoutIntent),
	}
}

// Create stores a new checkout intent with a pending status.
func (r *MockCheckoutIntentRepository) Create(intent *models.CheckoutIntent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if intent.ID == "" {
		intent.ID = uuid.New().String()
	}
	intent.Status = models.IntentStatusPending
	intent.CreatedAt = time.Now()
	intent.UpdatedAt = time.Now()
	r.intents[intent.ID] = *intent
	return nil
}

// GetByID returns a checkout intent by its ID.
func (r *MockCheckoutIntentRepository) GetByID(id string) (*models.CheckoutIntent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	intent, ok := r.intents[id]
	if !ok {
		return nil, fmt.Errorf("checkout intent with ID %s not found", id)
	}
	return &intent, nil
}

// Resolve writes the Stripe session onto a pending intent.
func (r *MockCheckoutIntentRepository) Resolve(id, sessionID, sessionURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	intent, ok := r.intents[id]
	if !ok {
		return fmt.Errorf("checkout intent with ID %s not found", id)
	}
	if intent.Status.IsTerminal() {
		return ErrIntentFinalized
	}
	intent.Status = models.IntentStatusResolved
	intent.SessionID = sessionID
	intent.SessionURL = sessionURL
	intent.UpdatedAt = time.Now()
	r.intents[id] = intent
	return nil
}

// Fail writes a fulfillment error onto a pending intent.
func (r *MockCheckoutIntentRepository) Fail(id, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	intent, ok := r.intents[id]
	if !ok {
		return fmt.Errorf("checkout intent with ID %s not found", id)
	}
	if intent.Status.IsTerminal() {
		return ErrIntentFinalized
	}
	intent.Status = models.IntentStatusErrored
	intent.Error = message
	intent.UpdatedAt = time.Now()
	r.intents[id] = intent
	return nil
}
