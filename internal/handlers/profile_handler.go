package handlers

import (
	"log"
	"strings"

	"caremarket/internal/models"
	"caremarket/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProfileHandler handles HTTP requests for the caregiver profile and the
// attached care recipient record.
type ProfileHandler struct {
	service  *services.ProfileService
	validate *validator.Validate
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(service *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the profile routes with the Fiber app.
func (h *ProfileHandler) RegisterRoutes(router fiber.Router) {
	profileRoutes := router.Group("/profile")
	profileRoutes.Get("/", h.HandleGetProfile)
	profileRoutes.Put("/", h.HandleUpdateProfile)
	profileRoutes.Get("/care-recipient", h.HandleGetCareRecipient)
	profileRoutes.Put("/care-recipient", h.HandleSaveCareRecipient)
}

// HandleGetProfile returns the authenticated user's profile.
func (h *ProfileHandler) HandleGetProfile(c *fiber.Ctx) error {
	uid := userID(c)
	user, err := h.service.GetProfile(uid)
	if err != nil {
		log.Printf("Error getting profile for user %s: %v", uid, err)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Profile not found",
		})
	}
	return c.JSON(user)
}

// HandleUpdateProfile saves the caregiver profile fields.
func (h *ProfileHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var profile models.User
	if err := c.BodyParser(&profile); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	uid := userID(c)
	user, err := h.service.UpdateProfile(uid, profile)
	if err != nil {
		log.Printf("Error updating profile for user %s: %v", uid, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Profile not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update profile",
			"error":   err.Error(),
		})
	}
	return c.JSON(user)
}

// HandleGetCareRecipient returns the user's primary care recipient record.
func (h *ProfileHandler) HandleGetCareRecipient(c *fiber.Ctx) error {
	uid := userID(c)
	recipient, err := h.service.GetCareRecipient(uid)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "No care recipient information added yet",
		})
	}
	return c.JSON(recipient)
}

// HandleSaveCareRecipient creates or overwrites the care recipient record.
func (h *ProfileHandler) HandleSaveCareRecipient(c *fiber.Ctx) error {
	var recipient models.CareRecipient
	if err := c.BodyParser(&recipient); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	uid := userID(c)
	recipient.UserID = uid
	if err := h.validate.Struct(recipient); err != nil {
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

	if err := h.service.SaveCareRecipient(uid, &recipient); err != nil {
		log.Printf("Error saving care recipient for user %s: %v", uid, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not save care recipient information",
			"error":   err.Error(),
		})
	}
	return c.JSON(recipient)
}
