package handlers

import (
	"errors"
	"log"
	"strings"

	"caremarket/internal/models"
	"caremarket/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// GroupHandler handles HTTP requests for community groups. Any authenticated
// member may browse groups, create one and post in them.
type GroupHandler struct {
	service  *services.GroupService
	validate *validator.Validate
}

// NewGroupHandler creates a new GroupHandler.
func NewGroupHandler(service *services.GroupService) *GroupHandler {
	return &GroupHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the group routes with the Fiber app.
func (h *GroupHandler) RegisterRoutes(router fiber.Router) {
	groupRoutes := router.Group("/groups")
	groupRoutes.Get("/", h.HandleGetGroups)
	groupRoutes.Post("/", h.HandleCreateGroup)
	groupRoutes.Get("/:id", h.HandleGetGroup)
	groupRoutes.Post("/:id/posts", h.HandleAddPost)
	groupRoutes.Delete("/:id/posts/:postId", h.HandleDeletePost)
}

// HandleGetGroups lists all groups, newest first.
func (h *GroupHandler) HandleGetGroups(c *fiber.Ctx) error {
	groups, err := h.service.GetAllGroups()
	if err != nil {
		log.Printf("Error getting groups: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve groups",
			"error":   err.Error(),
		})
	}
	return c.JSON(groups)
}

// HandleCreateGroup creates a new group owned by the requester.
func (h *GroupHandler) HandleCreateGroup(c *fiber.Ctx) error {
	var group models.Group
	if err := c.BodyParser(&group); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(group); err != nil {
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

	if err := h.service.CreateGroup(&group, userID(c)); err != nil {
		log.Printf("Error creating group: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create group",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(group)
}

// HandleGetGroup returns a group together with its posts, newest first.
func (h *GroupHandler) HandleGetGroup(c *fiber.Ctx) error {
	groupID := c.Params("id")
	group, err := h.service.GetGroup(groupID)
	if err != nil {
		log.Printf("Error getting group %s: %v", groupID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Group not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve group",
			"error":   err.Error(),
		})
	}

	posts, err := h.service.GetGroupPosts(groupID)
	if err != nil {
		log.Printf("Error getting posts for group %s: %v", groupID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve group posts",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"group": group,
		"posts": posts,
	})
}

// HandleAddPost stores a new post in the group. Author identity comes from
// the JWT claims, never from the request body.
func (h *GroupHandler) HandleAddPost(c *fiber.Ctx) error {
	var post models.GroupPost
	if err := c.BodyParser(&post); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	post.GroupID = c.Params("id")
	post.AuthorID = userID(c)
	if name, ok := c.Locals("username").(string); ok {
		post.AuthorName = name
	}

	if err := h.validate.Struct(post); err != nil {
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

	if err := h.service.AddGroupPost(&post); err != nil {
		log.Printf("Error adding post to group %s: %v", post.GroupID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Group not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add post",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// HandleDeletePost removes a post. Only the author or an admin may delete.
func (h *GroupHandler) HandleDeletePost(c *fiber.Ctx) error {
	groupID := c.Params("id")
	postID := c.Params("postId")
	role, _ := c.Locals("role").(string)

	if err := h.service.DeleteGroupPost(groupID, postID, userID(c), role); err != nil {
		log.Printf("Error deleting post %s in group %s: %v", postID, groupID, err)
		if errors.Is(err, services.ErrNotPostAuthor) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Only the author may delete this post",
			})
		}
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Post not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete post",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Post deleted successfully",
	})
}
