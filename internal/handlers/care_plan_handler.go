package handlers

import (
	"log"
	"strings"

	"caremarket/internal/models"
	"caremarket/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CarePlanHandler handles HTTP requests for care plans. Members browse
// published plans and assign them to themselves; authoring is registered
// separately behind the admin middleware.
type CarePlanHandler struct {
	service  *services.CarePlanService
	validate *validator.Validate
}

// NewCarePlanHandler creates a new CarePlanHandler.
func NewCarePlanHandler(service *services.CarePlanService) *CarePlanHandler {
	return &CarePlanHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the member-facing care plan routes.
func (h *CarePlanHandler) RegisterRoutes(router fiber.Router) {
	planRoutes := router.Group("/care-plans")
	planRoutes.Get("/", h.HandleGetPublishedCarePlans)
	planRoutes.Get("/mine", h.HandleGetMyCarePlans)
	planRoutes.Post("/:id/assign", h.HandleAssignCarePlan)
}

// RegisterAdminRoutes registers the care plan authoring routes behind the
// given admin gate, attached per route.
func (h *CarePlanHandler) RegisterAdminRoutes(router fiber.Router, adminOnly fiber.Handler) {
	planRoutes := router.Group("/care-plans")
	planRoutes.Get("/all", adminOnly, h.HandleGetAllCarePlans)
	planRoutes.Post("/", adminOnly, h.HandleCreateCarePlan)
	planRoutes.Put("/:id", adminOnly, h.HandleUpdateCarePlan)
}

// HandleGetPublishedCarePlans lists the care plans visible to members.
func (h *CarePlanHandler) HandleGetPublishedCarePlans(c *fiber.Ctx) error {
	plans, err := h.service.GetPublishedCarePlans()
	if err != nil {
		log.Printf("Error getting published care plans: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve care plans",
			"error":   err.Error(),
		})
	}
	return c.JSON(plans)
}

// HandleGetMyCarePlans lists the requester's assigned care plans.
func (h *CarePlanHandler) HandleGetMyCarePlans(c *fiber.Ctx) error {
	uid := userID(c)
	assignments, err := h.service.GetUserCarePlans(uid)
	if err != nil {
		log.Printf("Error getting care plans for user %s: %v", uid, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve your care plans",
			"error":   err.Error(),
		})
	}
	return c.JSON(assignments)
}

// HandleAssignCarePlan starts the requester on a care plan.
func (h *CarePlanHandler) HandleAssignCarePlan(c *fiber.Ctx) error {
	planID := c.Params("id")
	assignment, err := h.service.AssignCarePlan(userID(c), planID)
	if err != nil {
		log.Printf("Error assigning care plan %s: %v", planID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Care plan not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not assign care plan",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(assignment)
}

// HandleGetAllCarePlans lists every care plan, drafts included.
func (h *CarePlanHandler) HandleGetAllCarePlans(c *fiber.Ctx) error {
	plans, err := h.service.GetAllCarePlans()
	if err != nil {
		log.Printf("Error getting all care plans: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve care plans",
			"error":   err.Error(),
		})
	}
	return c.JSON(plans)
}

// HandleCreateCarePlan creates a new care plan.
func (h *CarePlanHandler) HandleCreateCarePlan(c *fiber.Ctx) error {
	var plan models.CarePlan
	if err := c.BodyParser(&plan); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(plan); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = e.Tag()
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	if err := h.service.CreateCarePlan(&plan); err != nil {
		log.Printf("Error creating care plan: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create care plan",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(plan)
}

// HandleUpdateCarePlan updates an existing care plan.
func (h *CarePlanHandler) HandleUpdateCarePlan(c *fiber.Ctx) error {
	var plan models.CarePlan
	if err := c.BodyParser(&plan); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	plan.ID = c.Params("id")

	if err := h.service.UpdateCarePlan(&plan); err != nil {
		log.Printf("Error updating care plan %s: %v", plan.ID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Care plan not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update care plan",
			"error":   err.Error(),
		})
	}

	return c.JSON(plan)
}
