package repositories

import "caremarket/internal/models"

// CareRecipientRepository defines the interface for care-recipient data
// access. Each user has at most one record; Save overwrites an existing one.
type CareRecipientRepository interface {
	GetByUserID(userID string) (*models.CareRecipient, error)
	Save(recipient *models.CareRecipient) error
}
