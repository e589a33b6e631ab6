package repositories

import "caremarket/internal/models"

// GroupRepository defines the interface for community group data access.
type GroupRepository interface {
	GetAll() ([]models.Group, error)
	GetByID(id string) (*models.Group, error)
	Create(group *models.Group) error
	GetPosts(groupID string) ([]models.GroupPost, error)
	GetPost(groupID, postID string) (*models.GroupPost, error)
	AddPost(post *models.GroupPost) error
	DeletePost(groupID, postID string) error
}
