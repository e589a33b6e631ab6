package repositories

import (
	"fmt"

	"caremarket/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCareRecipientRepository is a GORM implementation of CareRecipientRepository.
type GORMCareRecipientRepository struct {
	db *gorm.DB
}

// NewGORMCareRecipientRepository creates a new instance of GORMCareRecipientRepository.
func NewGORMCareRecipientRepository(db *gorm.DB) *GORMCareRecipientRepository {
	return &GORMCareRecipientRepository{
		db: db,
	}
}

// GetByUserID retrieves the care recipient attached to a user.
func (r *GORMCareRecipientRepository) GetByUserID(userID string) (*models.CareRecipient, error) {
	var recipient models.CareRecipient
	if err := r.db.First(&recipient, "user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("care recipient for user %s not found", userID)
		}
		return nil, fmt.Errorf("failed to get care recipient for user %s: %w", userID, err)
	}
	return &recipient, nil
}

// Save creates or overwrites the care recipient for a user.
func (r *GORMCareRecipientRepository) Save(recipient *models.CareRecipient) error {
	var existing models.CareRecipient
	err := r.db.First(&existing, "user_id = ?", recipient.UserID).Error
	if err == gorm.ErrRecordNotFound {
		if recipient.ID == "" {
			recipient.ID = uuid.New().String()
		}
		if createErr := r.db.Create(recipient).Error; createErr != nil {
			return fmt.Errorf("failed to create care recipient: %w", createErr)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up care recipient for user %s: %w", recipient.UserID, err)
	}

	recipient.ID = existing.ID
	recipient.CreatedAt = existing.CreatedAt
	if saveErr := r.db.Save(recipient).Error; saveErr != nil {
		return fmt.Errorf("failed to update care recipient: %w", saveErr)
	}
	return nil
}
