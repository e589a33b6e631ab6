package services

import (
	"errors"
	"fmt"

	"caremarket/internal/models"
	"caremarket/internal/repositories"
)

// ErrNotPostAuthor is returned when a member tries to delete somebody
// else's group post.
var ErrNotPostAuthor = errors.New("only the author may delete this post")

// GroupService handles business logic for community groups and their posts.
type GroupService struct {
	repo repositories.GroupRepository
}

// NewGroupService creates a new GroupService.
func NewGroupService(repo repositories.GroupRepository) *GroupService {
	return &GroupService{
		repo: repo,
	}
}

// GetAllGroups retrieves every group, newest first.
func (s *GroupService) GetAllGroups() ([]models.Group, error) {
	return s.repo.GetAll()
}

// GetGroup retrieves a single group by its ID.
func (s *GroupService) GetGroup(id string) (*models.Group, error) {
	return s.repo.GetByID(id)
}

// CreateGroup creates a new group owned by the given user.
func (s *GroupService) CreateGroup(group *models.Group, creatorID string) error {
	if creatorID == "" {
		return fmt.Errorf("must be logged in to create a group")
	}
	group.CreatedBy = creatorID
	return s.repo.Create(group)
}

// GetGroupPosts retrieves a group's posts, newest first. The group must
// exist.
func (s *GroupService) GetGroupPosts(groupID string) ([]models.GroupPost, error) {
	if _, err := s.repo.GetByID(groupID); err != nil {
		return nil, err
	}
	return s.repo.GetPosts(groupID)
}

// AddGroupPost stores a new post in the group on behalf of the author.
func (s *GroupService) AddGroupPost(post *models.GroupPost) error {
	return s.repo.AddPost(post)
}

// DeleteGroupPost removes a post. Members may only delete their own posts;
// admins may delete any.
func (s *GroupService) DeleteGroupPost(groupID, postID, requesterID, requesterRole string) error {
	post, err := s.repo.GetPost(groupID, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != requesterID && requesterRole != models.RoleAdmin {
		return ErrNotPostAuthor
	}
	return s.repo.DeletePost(groupID, postID)
}
