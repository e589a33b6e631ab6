package services

import (
	"fmt"

	"caremarket/internal/models"
	"caremarket/internal/repositories"
)

// ProfileService serves the caregiver profile and the attached care
// recipient record.
type ProfileService struct {
	userRepo      repositories.UserRepository
	recipientRepo repositories.CareRecipientRepository
}

// NewProfileService creates a new ProfileService.
func NewProfileService(userRepo repositories.UserRepository, recipientRepo repositories.CareRecipientRepository) *ProfileService {
	return &ProfileService{
		userRepo:      userRepo,
		recipientRepo: recipientRepo,
	}
}

// GetProfile retrieves the user's account and profile fields.
func (s *ProfileService) GetProfile(userID string) (*models.User, error) {
	return s.userRepo.GetByID(userID)
}

// UpdateProfile saves the caregiver profile fields. Credentials and role are
// not touched here.
func (s *ProfileService) UpdateProfile(userID string, profile models.User) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	user.FullName = profile.FullName
	user.PhoneNumber = profile.PhoneNumber
	user.CaregiverRole = profile.CaregiverRole
	user.Relationship = profile.Relationship
	user.YearsExperience = profile.YearsExperience
	user.PreferredContact = profile.PreferredContact
	user.Timezone = profile.Timezone

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update profile for user %s: %w", userID, err)
	}
	return user, nil
}

// GetCareRecipient retrieves the user's primary care recipient record.
func (s *ProfileService) GetCareRecipient(userID string) (*models.CareRecipient, error) {
	return s.recipientRepo.GetByUserID(userID)
}

// SaveCareRecipient creates or overwrites the user's care recipient record.
func (s *ProfileService) SaveCareRecipient(userID string, recipient *models.CareRecipient) error {
	recipient.UserID = userID
	if err := s.recipientRepo.Save(recipient); err != nil {
		return fmt.Errorf("failed to save care recipient for user %s: %w", userID, err)
	}
	return nil
}
