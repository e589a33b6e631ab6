package repositories

import (
	"fmt"

	"caremarket/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCheckoutIntentRepository is a GORM implementation of CheckoutIntentRepository.
type GORMCheckoutIntentRepository struct {
	db *gorm.DB
}

// NewGORMCheckoutIntentRepository creates a new instance of GORMCheckoutIntentRepository.
func NewGORMCheckoutIntentRepository(db *gorm.DB) *GORMCheckoutIntentRepository {
	return &GORMCheckoutIntentRepository{
		db: db,
	}
}

// Create creates a new checkout intent in the database.
func (r *GORMCheckoutIntentRepository) Create(intent *models.CheckoutIntent) error {
	if intent.ID == "" {
		intent.ID = uuid.New().String()
	}
	intent.Status = models.IntentStatusPending
	if err := r.db.Create(intent).Error; err != nil {
		return fmt.Errorf("failed to create checkout intent: %w", err)
	}
	return nil
}

// GetByID retrieves a single checkout intent by its ID from the database.
func (r *GORMCheckoutIntentRepository) GetByID(id string) (*models.CheckoutIntent, error) {
	var intent models.CheckoutIntent
	if err := r.db.First(&intent, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("checkout intent with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get checkout intent by ID %s: %w", id, err)
	}
	return &intent, nil
}

// Resolve writes the Stripe session onto a pending intent. The status guard
// in the WHERE clause makes the terminal write first-wins under concurrent
// fulfiller invocations.
func (r *GORMCheckoutIntentRepository) Resolve(id, sessionID, sessionURL string) error {
	return r.finalize(id, map[string]interface{}{
		"status":      models.IntentStatusResolved,
		"session_id":  sessionID,
		"session_url": sessionURL,
	})
}

// Fail writes a fulfillment error onto a pending intent.
func (r *GORMCheckoutIntentRepository) Fail(id, message string) error {
	return r.finalize(id, map[string]interface{}{
		"status": models.IntentStatusErrored,
		"error":  message,
	})
}

func (r *GORMCheckoutIntentRepository) finalize(id string, updates map[string]interface{}) error {
	res := r.db.Model(&models.CheckoutIntent{}).
		Where("id = ? AND status = ?", id, models.IntentStatusPending).
		Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("failed to finalize checkout intent %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		// Either the intent does not exist or it was already finalized.
		if _, err := r.GetByID(id); err != nil {
			return err
		}
		return ErrIntentFinalized
	}
	return nil
}
