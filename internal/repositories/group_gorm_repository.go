package repositories

import (
	"fmt"

	"caremarket/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMGroupRepository is a GORM implementation of GroupRepository.
type GORMGroupRepository struct {
	db *gorm.DB
}

// NewGORMGroupRepository creates a new instance of GORMGroupRepository.
func NewGORMGroupRepository(db *gorm.DB) *GORMGroupRepository {
	return &GORMGroupRepository{
		db: db,
	}
}

// GetAll retrieves all groups, newest first.
func (r *GORMGroupRepository) GetAll() ([]models.Group, error) {
	var groups []models.Group
	if err := r.db.Order("created_at DESC").Find(&groups).Error; err != nil {
		return nil, fmt.Errorf("failed to get all groups: %w", err)
	}
	return groups, nil
}

// GetByID retrieves a single group by its ID.
func (r *GORMGroupRepository) GetByID(id string) (*models.Group, error) {
	var group models.Group
	if err := r.db.First(&group, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("group with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get group by ID %s: %w", id, err)
	}
	return &group, nil
}

// Create creates a new group. The creator counts as the first member.
func (r *GORMGroupRepository) Create(group *models.Group) error {
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	group.MemberCount = 1
	group.PostCount = 0
	if err := r.db.Create(group).Error; err != nil {
		return fmt.Errorf("failed to create group: %w", err)
	}
	return nil
}

// GetPosts retrieves a group's posts, newest first.
func (r *GORMGroupRepository) GetPosts(groupID string) ([]models.GroupPost, error) {
	var posts []models.GroupPost
	if err := r.db.Where("group_id = ?", groupID).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to get posts for group %s: %w", groupID, err)
	}
	return posts, nil
}

// GetPost retrieves a single group post.
func (r *GORMGroupRepository) GetPost(groupID, postID string) (*models.GroupPost, error) {
	var post models.GroupPost
	if err := r.db.First(&post, "id = ? AND group_id = ?", postID, groupID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("post with ID %s not found in group %s", postID, groupID)
		}
		return nil, fmt.Errorf("failed to get post %s in group %s: %w", postID, groupID, err)
	}
	return &post, nil
}

// AddPost stores a new group post and bumps the group's post counter in the
// same transaction.
func (r *GORMGroupRepository) AddPost(post *models.GroupPost) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Group{}).Where("id = ?", post.GroupID).
			Update("post_count", gorm.Expr("post_count + 1"))
		if res.Error != nil {
			return fmt.Errorf("failed to update post count for group %s: %w", post.GroupID, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("group with ID %s not found", post.GroupID)
		}
		if err := tx.Create(post).Error; err != nil {
			return fmt.Errorf("failed to create group post: %w", err)
		}
		return nil
	})
}

// DeletePost removes a group post and decrements the group's post counter.
func (r *GORMGroupRepository) DeletePost(groupID, postID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.GroupPost{}, "id = ? AND group_id = ?", postID, groupID)
		if res.Error != nil {
			return fmt.Errorf("failed to delete post %s in group %s: %w", postID, groupID, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("post with ID %s not found in group %s", postID, groupID)
		}
		if err := tx.Model(&models.Group{}).Where("id = ?", groupID).
			Update("post_count", gorm.Expr("post_count - 1")).Error; err != nil {
			return fmt.Errorf("failed to update post count for group %s: %w", groupID, err)
		}
		return nil
	})
}
