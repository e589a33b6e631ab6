package repositories

import "caremarket/internal/models"

// PostRepository defines the interface for content-library post data access.
type PostRepository interface {
	GetAll() ([]models.Post, error)
	GetPublished() ([]models.Post, error)
	GetByID(id string) (*models.Post, error)
	Create(post *models.Post) error
	Update(post *models.Post) error
	Delete(id string) error
}
