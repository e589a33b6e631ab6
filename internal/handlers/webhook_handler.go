package handlers

import (
	"encoding/json"
	"fmt"
	"log"

	"caremarket/internal/payments"
	"caremarket/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stripe/stripe-go/v79"
)

// WebhookHandler consumes Stripe's asynchronous event stream and hands
// settlements to the order service. Deliveries can arrive concurrently,
// duplicated and out of order; all coordination happens through the order
// repository.
type WebhookHandler struct {
	orders        *services.OrderService
	webhookSecret string
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(orders *services.OrderService, webhookSecret string) *WebhookHandler {
	return &WebhookHandler{
		orders:        orders,
		webhookSecret: webhookSecret,
	}
}

// RegisterRoutes registers the webhook endpoint with the Fiber app. This
// route must stay outside the JWT middleware: Stripe authenticates with the
// signature header instead.
func (h *WebhookHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/webhooks/stripe", h.HandleStripeWebhook)
}

// HandleStripeWebhook verifies and dispatches a Stripe event. Verification
// or processing failures answer 400 so Stripe retries the delivery; event
// types this system does not care about are acknowledged and ignored so the
// provider does not retry-storm them.
func (h *WebhookHandler) HandleStripeWebhook(c *fiber.Ctx) error {
	event, err := payments.VerifyWebhookEvent(c.Body(), c.Get("Stripe-Signature"), h.webhookSecret)
	if err != nil {
		log.Printf("Webhook Error: %v", err)
		return c.Status(fiber.StatusBadRequest).SendString(fmt.Sprintf("Webhook Error: %s", err.Error()))
	}

	if err := h.processEvent(event); err != nil {
		log.Printf("Webhook Error: %v", err)
		return c.Status(fiber.StatusBadRequest).SendString(fmt.Sprintf("Webhook Error: %s", err.Error()))
	}

	return c.JSON(fiber.Map{
		"received": true,
	})
}

func (h *WebhookHandler) processEvent(event stripe.Event) error {
	switch event.Type {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return fmt.Errorf("failed to parse checkout session payload: %w", err)
		}
		return h.orders.RecordSessionCompleted(services.SettledSession{
			OrderID:       session.Metadata["orderId"],
			SessionID:     session.ID,
			Amount:        session.AmountTotal,
			CustomerEmail: session.CustomerEmail,
		})
	case "payment_intent.succeeded":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return fmt.Errorf("failed to parse payment intent payload: %w", err)
		}
		return h.orders.RecordPaymentIntentSucceeded(intent.Metadata["orderId"], intent.ID)
	default:
		log.Printf("Ignoring stripe event type %s", event.Type)
		return nil
	}
}
