package models

import "gorm.io/gorm"

// CareRecipient holds the primary care-recipient record attached to a user
// profile. One record per user; saving again overwrites the existing one.
type CareRecipient struct {
	ID                string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID            string `json:"user_id" gorm:"uniqueIndex;type:varchar(36)" validate:"required"`
	Name              string `json:"name" validate:"omitempty,max=200"`
	Relationship      string `json:"relationship" validate:"omitempty,max=100"`
	Age               string `json:"age" validate:"omitempty,max=10"`
	PrimaryConditions string `json:"primary_conditions" validate:"omitempty,max=500"`
	CareNeeds         string `json:"care_needs" validate:"omitempty,max=500"`
	Medications       string `json:"medications" validate:"omitempty,max=500"`
	Allergies         string `json:"allergies" validate:"omitempty,max=500"`
	EmergencyContact  string `json:"emergency_contact" validate:"omitempty,max=200"`
	Notes             string `json:"notes" validate:"omitempty,max=1000"`
	gorm.Model
}
