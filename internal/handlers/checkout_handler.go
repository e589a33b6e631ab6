package handlers

import (
	"errors"
	"log"

	"caremarket/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CheckoutHandler handles HTTP requests for starting a checkout.
type CheckoutHandler struct {
	checkout *services.CheckoutService
	cart     *services.CartService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(checkout *services.CheckoutService, cart *services.CartService) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		cart:     cart,
	}
}

// RegisterRoutes registers the checkout routes with the Fiber app.
func (h *CheckoutHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/checkout", h.HandleCreateCheckoutSession)
	router.Post("/checkout/success", h.HandleCheckoutSuccess)
}

// HandleCreateCheckoutSession turns the user's cart into a Stripe checkout
// session and returns the hosted checkout URL. The cart is left untouched:
// the user may still cancel on the hosted page and come back to it. It is
// cleared by the success confirmation after payment.
func (h *CheckoutHandler) HandleCreateCheckoutSession(c *fiber.Ctx) error {
	uid := userID(c)
	items := h.cart.Items(uid)

	result, err := h.checkout.CreateCheckoutSession(c.Context(), items)
	if err != nil {
		log.Printf("Checkout failed for user %s: %v", uid, err)
		switch {
		case errors.Is(err, services.ErrEmptyCart), errors.Is(err, services.ErrMissingPriceID):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "One or more cart items cannot be checked out",
				"error":   err.Error(),
			})
		case errors.Is(err, services.ErrCheckoutTimeout):
			return c.Status(fiber.StatusGatewayTimeout).JSON(fiber.Map{
				"message": "Failed to create checkout session",
				"error":   err.Error(),
			})
		default:
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"message": "Could not start checkout",
				"error":   err.Error(),
			})
		}
	}

	return c.JSON(result)
}

// HandleCheckoutSuccess is called by the client when it lands on the
// post-payment success page. Only then is the cart emptied.
func (h *CheckoutHandler) HandleCheckoutSuccess(c *fiber.Ctx) error {
	h.cart.Clear(userID(c))
	return c.JSON(fiber.Map{
		"message": "Checkout complete",
	})
}
