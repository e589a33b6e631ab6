package handlers

import (
	"log"
	"strings"

	"caremarket/internal/models"
	"caremarket/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// PostHandler handles HTTP requests for content-library posts. Members see
// published posts; drafts and mutations live behind the admin middleware.
type PostHandler struct {
	service  *services.PostService
	validate *validator.Validate
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(service *services.PostService) *PostHandler {
	return &PostHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the member-facing post routes.
func (h *PostHandler) RegisterRoutes(router fiber.Router) {
	postRoutes := router.Group("/posts")
	postRoutes.Get("/", h.HandleGetPublishedPosts)
	postRoutes.Get("/:id", h.HandleGetPostByID)
}

// RegisterAdminRoutes registers the post mutation and draft-listing routes
// behind the given admin gate, attached per route.
func (h *PostHandler) RegisterAdminRoutes(router fiber.Router, adminOnly fiber.Handler) {
	postRoutes := router.Group("/posts")
	postRoutes.Get("/all", adminOnly, h.HandleGetAllPosts)
	postRoutes.Post("/", adminOnly, h.HandleCreatePost)
	postRoutes.Put("/:id", adminOnly, h.HandleUpdatePost)
	postRoutes.Delete("/:id", adminOnly, h.HandleDeletePost)
}

// HandleGetPublishedPosts retrieves the published posts.
func (h *PostHandler) HandleGetPublishedPosts(c *fiber.Ctx) error {
	posts, err := h.service.GetPublishedPosts()
	if err != nil {
		log.Printf("Error getting published posts: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve posts",
			"error":   err.Error(),
		})
	}
	return c.JSON(posts)
}

// HandleGetAllPosts retrieves every post, drafts included.
func (h *PostHandler) HandleGetAllPosts(c *fiber.Ctx) error {
	posts, err := h.service.GetAllPosts()
	if err != nil {
		log.Printf("Error getting all posts: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve posts",
			"error":   err.Error(),
		})
	}
	return c.JSON(posts)
}

// HandleGetPostByID retrieves a single post by its ID.
func (h *PostHandler) HandleGetPostByID(c *fiber.Ctx) error {
	postID := c.Params("id")
	post, err := h.service.GetPostByID(postID)
	if err != nil {
		log.Printf("Error getting post by ID %s: %v", postID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Post not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve post",
			"error":   err.Error(),
		})
	}
	return c.JSON(post)
}

// HandleCreatePost creates a new post authored by the current admin.
func (h *PostHandler) HandleCreatePost(c *fiber.Ctx) error {
	var post models.Post
	if err := c.BodyParser(&post); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	post.AuthorID = userID(c)
	if username, ok := c.Locals("username").(string); ok && post.AuthorName == "" {
		post.AuthorName = username
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

	if err := h.service.CreatePost(&post); err != nil {
		log.Printf("Error creating post: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create post",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// HandleUpdatePost updates an existing post.
func (h *PostHandler) HandleUpdatePost(c *fiber.Ctx) error {
	var post models.Post
	if err := c.BodyParser(&post); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	post.ID = c.Params("id")

	if err := h.service.UpdatePost(&post); err != nil {
		log.Printf("Error updating post %s: %v", post.ID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Post not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update post",
			"error":   err.Error(),
		})
	}
	return c.JSON(post)
}

// HandleDeletePost deletes a post by its ID.
func (h *PostHandler) HandleDeletePost(c *fiber.Ctx) error {
	postID := c.Params("id")
	if err := h.service.DeletePost(postID); err != nil {
		log.Printf("Error deleting post %s: %v", postID, err)
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
