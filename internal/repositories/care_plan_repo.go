package repositories

import "caremarket/internal/models"

// CarePlanRepository defines the interface for care plan data access.
type CarePlanRepository interface {
	GetAll() ([]models.CarePlan, error)
	GetPublished() ([]models.CarePlan, error)
	GetByID(id string) (*models.CarePlan, error)
	Create(plan *models.CarePlan) error
	Update(plan *models.CarePlan) error
	Assign(assignment *models.CarePlanAssignment) error
	GetAssignmentsByUserID(userID string) ([]models.CarePlanAssignment, error)
}
