package payments

import (
	"context"
	"fmt"

	"caremarket/internal/models"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"
)

// Session is the subset of a Stripe checkout session the fulfiller writes
// back onto the intent.
type Session struct {
	ID  string
	URL string
}

// SessionCreator abstracts the provider call so the fulfiller can be tested
// without hitting Stripe.
type SessionCreator interface {
	CreateCheckoutSession(ctx context.Context, intent *models.CheckoutIntent) (*Session, error)
}

// StripeGateway creates hosted checkout sessions through the Stripe API.
// The client handle is injected here rather than relying on the package
// global stripe key.
type StripeGateway struct {
	api *client.API
}

// NewStripeGateway creates a gateway bound to the given secret key.
func NewStripeGateway(secretKey string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{
		api: api,
	}
}

// CreateCheckoutSession mints a payment-mode checkout session for the
// intent. The intent id rides along twice: as metadata (so the webhook can
// correlate the settlement back to an order) and as the idempotency key (so
// a redelivered trigger cannot mint a second session).
func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, intent *models.CheckoutIntent) (*Session, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(intent.SuccessURL),
		CancelURL:          stripe.String(intent.CancelURL),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	for _, item := range intent.Items {
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			Price:    stripe.String(item.PriceID),
			Quantity: stripe.Int64(item.Quantity),
		})
	}
	params.Context = ctx
	params.AddMetadata("orderId", intent.ID)
	params.SetIdempotencyKey(intent.ID)

	session, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create stripe checkout session: %w", err)
	}

	return &Session{
		ID:  session.ID,
		URL: session.URL,
	}, nil
}

// VerifyWebhookEvent checks the Stripe-Signature header against the webhook
// secret and returns the parsed event. Any verification failure (missing
// header, bad signature, malformed payload) surfaces as a single error class.
func VerifyWebhookEvent(payload []byte, signatureHeader, webhookSecret string) (stripe.Event, error) {
	if signatureHeader == "" || webhookSecret == "" {
		return stripe.Event{}, fmt.Errorf("missing stripe signature or webhook secret")
	}
	return webhook.ConstructEvent(payload, signatureHeader, webhookSecret)
}
