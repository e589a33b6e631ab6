package models

import "gorm.io/gorm"

// Post is a content-library article. Unpublished posts are only visible
// through the admin surface.
type Post struct {
	ID            string   `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title         string   `json:"title" validate:"required,min=3,max=200"`
	Content       string   `json:"content" validate:"required"`
	AuthorID      string   `json:"author_id" gorm:"type:varchar(36)"`
	AuthorName    string   `json:"author_name" validate:"omitempty,max=200"`
	Published     bool     `json:"published"`
	Category      string   `json:"category" validate:"omitempty,max=100"`
	Tags          []string `json:"tags" gorm:"serializer:json"`
	FeaturedImage string   `json:"featured_image" validate:"omitempty,max=500"`
	gorm.Model
}
