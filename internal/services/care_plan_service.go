package services

import (
	"caremarket/internal/models"
	"caremarket/internal/repositories"
)

// CarePlanService handles business logic for care plans and their
// assignments to users.
type CarePlanService struct {
	repo repositories.CarePlanRepository
}

// NewCarePlanService creates a new CarePlanService.
func NewCarePlanService(repo repositories.CarePlanRepository) *CarePlanService {
	return &CarePlanService{
		repo: repo,
	}
}

// GetPublishedCarePlans retrieves the care plans visible to members.
func (s *CarePlanService) GetPublishedCarePlans() ([]models.CarePlan, error) {
	return s.repo.GetPublished()
}

// GetAllCarePlans retrieves every care plan, drafts included. Admin surface only.
func (s *CarePlanService) GetAllCarePlans() ([]models.CarePlan, error) {
	return s.repo.GetAll()
}

// GetCarePlanByID retrieves a single care plan by its ID.
func (s *CarePlanService) GetCarePlanByID(id string) (*models.CarePlan, error) {
	return s.repo.GetByID(id)
}

// CreateCarePlan creates a new care plan.
func (s *CarePlanService) CreateCarePlan(plan *models.CarePlan) error {
	return s.repo.Create(plan)
}

// UpdateCarePlan updates an existing care plan.
func (s *CarePlanService) UpdateCarePlan(plan *models.CarePlan) error {
	return s.repo.Update(plan)
}

// AssignCarePlan starts the user on the given plan at zero progress. The
// plan must exist.
func (s *CarePlanService) AssignCarePlan(userID, planID string) (*models.CarePlanAssignment, error) {
	if _, err := s.repo.GetByID(planID); err != nil {
		return nil, err
	}
	assignment := &models.CarePlanAssignment{
		UserID:   userID,
		PlanID:   planID,
		Progress: 0,
	}
	if err := s.repo.Assign(assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

// GetUserCarePlans retrieves the care plans the user is following.
func (s *CarePlanService) GetUserCarePlans(userID string) ([]models.CarePlanAssignment, error) {
	return s.repo.GetAssignmentsByUserID(userID)
}
