package repositories

import (
	"fmt"
	"time"

	"caremarket/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCarePlanRepository is a GORM implementation of CarePlanRepository.
type GORMCarePlanRepository struct {
	db *gorm.DB
}

// NewGORMCarePlanRepository creates a new instance of GORMCarePlanRepository.
func NewGORMCarePlanRepository(db *gorm.DB) *GORMCarePlanRepository {
	return &GORMCarePlanRepository{
		db: db,
	}
}

// GetAll retrieves every care plan, drafts included, newest first.
func (r *GORMCarePlanRepository) GetAll() ([]models.CarePlan, error) {
	var plans []models.CarePlan
	if err := r.db.Order("created_at DESC").Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("failed to get all care plans: %w", err)
	}
	return plans, nil
}

// GetPublished retrieves published care plans, newest first.
func (r *GORMCarePlanRepository) GetPublished() ([]models.CarePlan, error) {
	var plans []models.CarePlan
	if err := r.db.Where("published = ?", true).Order("created_at DESC").Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("failed to get published care plans: %w", err)
	}
	return plans, nil
}

// GetByID retrieves a single care plan by its ID.
func (r *GORMCarePlanRepository) GetByID(id string) (*models.CarePlan, error) {
	var plan models.CarePlan
	if err := r.db.First(&plan, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("care plan with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get care plan by ID %s: %w", id, err)
	}
	return &plan, nil
}

// Create creates a new care plan in the database.
func (r *GORMCarePlanRepository) Create(plan *models.CarePlan) error {
	if plan.ID == "" {
		plan.ID = uuid.New().String()
	}
	if err := r.db.Create(plan).Error; err != nil {
		return fmt.Errorf("failed to create care plan: %w", err)
	}
	return nil
}

// Update updates an existing care plan in the database.
func (r *GORMCarePlanRepository) Update(plan *models.CarePlan) error {
	res := r.db.Save(plan)
	if res.Error != nil {
		return fmt.Errorf("failed to update care plan: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("care plan with ID %s not found for update", plan.ID)
	}
	return nil
}

// Assign records that a user started following a care plan.
func (r *GORMCarePlanRepository) Assign(assignment *models.CarePlanAssignment) error {
	if assignment.ID == "" {
		assignment.ID = uuid.New().String()
	}
	if assignment.StartDate.IsZero() {
		assignment.StartDate = time.Now()
	}
	if err := r.db.Create(assignment).Error; err != nil {
		return fmt.Errorf("failed to assign care plan: %w", err)
	}
	return nil
}

// GetAssignmentsByUserID retrieves the care plans a user is following,
// most recently started first.
func (r *GORMCarePlanRepository) GetAssignmentsByUserID(userID string) ([]models.CarePlanAssignment, error) {
	var assignments []models.CarePlanAssignment
	if err := r.db.Where("user_id = ?", userID).Order("start_date DESC").Find(&assignments).Error; err != nil {
		return nil, fmt.Errorf("failed to get care plans for user %s: %w", userID, err)
	}
	return assignments, nil
}
