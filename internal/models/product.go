package models

import "gorm.io/gorm"

// Product represents a product or service offered in the store.
// StripePriceID is the provider-side price identifier used when building
// checkout line items; a product without one cannot be checked out.
type Product struct {
	ID            string   `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name          string   `json:"name" validate:"required,min=3,max=100"`
	Description   string   `json:"description" validate:"omitempty,max=500"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	Category      string   `json:"category" validate:"omitempty,oneof=Product Service"`
	Subcategory   string   `json:"subcategory" validate:"omitempty,max=100"`
	Images        []string `json:"images" gorm:"serializer:json"`
	Stock         int      `json:"stock" validate:"gte=0"`
	StripePriceID string   `json:"stripe_price_id" gorm:"type:varchar(64)"`
	gorm.Model             // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
