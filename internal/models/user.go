package models

import "gorm.io/gorm"

// User roles. Admins may manage products, posts and orders.
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// User represents a caregiver account. The profile fields beyond the
// credentials are optional and filled in from the profile page.
type User struct {
	ID       string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email    string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password string `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	Role     string `json:"role" gorm:"type:varchar(20);default:member" validate:"omitempty,oneof=member admin"`

	// Caregiver profile
	FullName         string `json:"full_name" validate:"omitempty,max=200"`
	PhoneNumber      string `json:"phone_number" validate:"omitempty,max=30"`
	CaregiverRole    string `json:"caregiver_role" validate:"omitempty,max=100"`
	Relationship     string `json:"relationship" validate:"omitempty,max=100"`
	YearsExperience  string `json:"years_experience" validate:"omitempty,max=20"`
	PreferredContact string `json:"preferred_contact" validate:"omitempty,oneof=email phone both"`
	Timezone         string `json:"timezone" validate:"omitempty,max=60"`

	gorm.Model // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
