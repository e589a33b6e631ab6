package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"caremarket/internal/payments"
	"caremarket/internal/repositories"
	"caremarket/pkg/rabbitmq"

	"github.com/streadway/amqp"
)

// FulfillmentService bridges newly created checkout intents to Stripe. It is
// the only writer of an intent's session id and error fields. Delivery of
// intent-created events is at-least-once, so Fulfill must be safe to run
// more than once for the same intent.
type FulfillmentService struct {
	intentRepo repositories.CheckoutIntentRepository
	sessions   payments.SessionCreator
}

// NewFulfillmentService creates a new FulfillmentService.
func NewFulfillmentService(intentRepo repositories.CheckoutIntentRepository, sessions payments.SessionCreator) *FulfillmentService {
	return &FulfillmentService{
		intentRepo: intentRepo,
		sessions:   sessions,
	}
}

// Fulfill mints a Stripe session for a pending intent and writes the result
// back onto the document. On a provider failure the error message is
// recorded on the intent and the failure is also returned to the caller.
func (s *FulfillmentService) Fulfill(ctx context.Context, intentID string) error {
	intent, err := s.intentRepo.GetByID(intentID)
	if err != nil {
		return fmt.Errorf("failed to load checkout intent %s: %w", intentID, err)
	}

	// Redelivered event for an intent that already settled one way or the
	// other. The idempotency key on the Stripe call covers the narrower race
	// where two invocations run concurrently.
	if intent.Status.IsTerminal() {
		log.Printf("Checkout intent %s already %s, skipping fulfillment", intentID, intent.Status)
		return nil
	}

	session, err := s.sessions.CreateCheckoutSession(ctx, intent)
	if err != nil {
		if failErr := s.intentRepo.Fail(intentID, err.Error()); failErr != nil {
			log.Printf("Failed to record fulfillment error on intent %s: %v", intentID, failErr)
		}
		return fmt.Errorf("failed to fulfill checkout intent %s: %w", intentID, err)
	}

	if err := s.intentRepo.Resolve(intentID, session.ID, session.URL); err != nil {
		return fmt.Errorf("failed to resolve checkout intent %s: %w", intentID, err)
	}

	log.Printf("Checkout intent %s resolved with session %s", intentID, session.ID)
	return nil
}

// HandleIntentMessage adapts Fulfill to the RabbitMQ consumer callback.
func (s *FulfillmentService) HandleIntentMessage(msg amqp.Delivery) error {
	var event rabbitmq.IntentCreatedEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		return fmt.Errorf("failed to unmarshal intent event: %w", err)
	}
	if event.IntentID == "" {
		return fmt.Errorf("intent event with empty intent id")
	}
	return s.Fulfill(context.Background(), event.IntentID)
}
