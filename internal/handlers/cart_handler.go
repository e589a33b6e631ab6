package handlers

import (
	"log"

	"caremarket/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the user's cart.
type CartHandler struct {
	cart *services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cart *services.CartService) *CartHandler {
	return &CartHandler{
		cart: cart,
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Patch("/items/:productId", h.HandleUpdateQuantity)
	cartRoutes.Delete("/items/:productId", h.HandleRemoveItem)
	cartRoutes.Delete("/", h.HandleClearCart)
}

func userID(c *fiber.Ctx) string {
	id, _ := c.Locals("user_id").(string)
	return id
}

// HandleGetCart returns the cart items and the running total.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	uid := userID(c)
	return c.JSON(fiber.Map{
		"items": h.cart.Items(uid),
		"total": h.cart.Total(uid),
	})
}

// HandleAddItem adds a product to the cart.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.ProductID == "" || req.Quantity < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "product_id and a quantity of at least 1 are required",
		})
	}

	uid := userID(c)
	if err := h.cart.AddItem(uid, req.ProductID, req.Quantity); err != nil {
		log.Printf("Error adding item to cart for user %s: %v", uid, err)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Could not add item to cart",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"items": h.cart.Items(uid),
		"total": h.cart.Total(uid),
	})
}

// HandleUpdateQuantity sets the quantity of a cart entry. Quantities below 1
// are ignored; use DELETE to remove an item.
func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	uid := userID(c)
	h.cart.UpdateQuantity(uid, c.Params("productId"), req.Quantity)
	return c.JSON(fiber.Map{
		"items": h.cart.Items(uid),
		"total": h.cart.Total(uid),
	})
}

// HandleRemoveItem removes a cart entry. Removing an absent item is not an error.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	uid := userID(c)
	h.cart.RemoveItem(uid, c.Params("productId"))
	return c.JSON(fiber.Map{
		"items": h.cart.Items(uid),
		"total": h.cart.Total(uid),
	})
}

// HandleClearCart empties the cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	h.cart.Clear(userID(c))
	return c.JSON(fiber.Map{
		"message": "Cart cleared",
	})
}
