package services

import (
	"caremarket/internal/models"
	"caremarket/internal/repositories"
)

// PostService handles business logic for content-library posts.
type PostService struct {
	repo repositories.PostRepository
}

// NewPostService creates a new PostService.
func NewPostService(repo repositories.PostRepository) *PostService {
	return &PostService{
		repo: repo,
	}
}

// GetPublishedPosts retrieves the posts visible to members.
func (s *PostService) GetPublishedPosts() ([]models.Post, error) {
	return s.repo.GetPublished()
}

// GetAllPosts retrieves every post, drafts included. Admin surface only.
func (s *PostService) GetAllPosts() ([]models.Post, error) {
	return s.repo.GetAll()
}

// GetPostByID retrieves a single post by its ID.
func (s *PostService) GetPostByID(id string) (*models.Post, error) {
	return s.repo.GetByID(id)
}

// CreatePost creates a new post.
func (s *PostService) CreatePost(post *models.Post) error {
	return s.repo.Create(post)
}

// UpdatePost updates an existing post.
func (s *PostService) UpdatePost(post *models.Post) error {
	return s.repo.Update(post)
}

// DeletePost deletes a post by its ID.
func (s *PostService) DeletePost(id string) error {
	return s.repo.Delete(id)
}
