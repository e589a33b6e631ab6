package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"caremarket/internal/models"
	"caremarket/internal/repositories"
)

// ErrCheckoutTimeout is returned when polling exhausts every attempt without
// the fulfiller writing a session or an error onto the intent. The intent
// may still resolve later; the user is expected to retry manually.
var ErrCheckoutTimeout = errors.New("failed to create checkout session")

// ErrMissingPriceID is returned when a cart item's product carries no Stripe
// price id. Checked before any write, so no partial intent is persisted.
var ErrMissingPriceID = errors.New("product has no stripe price id")

// ErrEmptyCart is returned when checkout is attempted with no items.
var ErrEmptyCart = errors.New("cart is empty")

// IntentPublisher announces checkout-intent creation to the fulfiller. A nil
// publisher is tolerated (useful in tests where the repository is seeded).
type IntentPublisher interface {
	PublishIntentCreated(intentID string) error
}

// CheckoutConfig carries the polling knobs and redirect URLs.
type CheckoutConfig struct {
	SuccessURL   string
	CancelURL    string
	PollInterval time.Duration
	MaxAttempts  int
}

// CheckoutResult is handed to the caller exactly once when the intent
// resolves; SessionURL is the hosted checkout page to redirect to.
type CheckoutResult struct {
	IntentID   string `json:"intent_id"`
	SessionID  string `json:"session_id"`
	SessionURL string `json:"checkout_url"`
}

// CheckoutService translates a cart into a Stripe checkout session. It
// persists a CheckoutIntent, announces it, then polls the same document
// until the fulfiller writes back a session id or an error, or the attempt
// budget runs out.
type CheckoutService struct {
	intentRepo repositories.CheckoutIntentRepository
	publisher  IntentPublisher
	cfg        CheckoutConfig
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(intentRepo repositories.CheckoutIntentRepository, publisher IntentPublisher, cfg CheckoutConfig) *CheckoutService {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Second
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}
	return &CheckoutService{
		intentRepo: intentRepo,
		publisher:  publisher,
		cfg:        cfg,
	}
}

// CreateCheckoutSession runs the full intent-writer flow for the given cart
// items. Every item must carry a Stripe price id; otherwise the whole
// request is rejected before anything is written.
func (s *CheckoutService) CreateCheckoutSession(ctx context.Context, items []models.CartItem) (*CheckoutResult, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	intentItems := make([]models.IntentItem, 0, len(items))
	for _, item := range items {
		if item.Product.StripePriceID == "" {
			return nil, fmt.Errorf("product %s: %w", item.Product.ID, ErrMissingPriceID)
		}
		intentItems = append(intentItems, models.IntentItem{
			PriceID:  item.Product.StripePriceID,
			Quantity: int64(item.Quantity),
		})
	}

	intent := &models.CheckoutIntent{
		Items:      intentItems,
		SuccessURL: s.cfg.SuccessURL,
		CancelURL:  s.cfg.CancelURL,
	}
	if err := s.intentRepo.Create(intent); err != nil {
		return nil, fmt.Errorf("failed to create checkout intent: %w", err)
	}

	// Without the event no fulfiller will ever pick the intent up, so a
	// publish failure fails the request instead of letting the caller poll
	// into a guaranteed timeout.
	if s.publisher != nil {
		if err := s.publisher.PublishIntentCreated(intent.ID); err != nil {
			return nil, fmt.Errorf("failed to announce checkout intent %s: %w", intent.ID, err)
		}
	} else {
		log.Println("Intent publisher is not initialized. Skipping event publication.")
	}

	return s.awaitSession(ctx, intent.ID)
}

// awaitSession polls the intent until it turns terminal or the attempt
// budget is spent. The wait between attempts is a timer suspend, not a busy
// loop, and the caller's context cancels it early.
func (s *CheckoutService) awaitSession(ctx context.Context, intentID string) (*CheckoutResult, error) {
	for attempt := 0; attempt < s.cfg.MaxAttempts; attempt++ {
		intent, err := s.intentRepo.GetByID(intentID)
		if err != nil {
			return nil, fmt.Errorf("failed to read checkout intent %s: %w", intentID, err)
		}

		switch intent.Status {
		case models.IntentStatusResolved:
			return &CheckoutResult{
				IntentID:   intent.ID,
				SessionID:  intent.SessionID,
				SessionURL: intent.SessionURL,
			}, nil
		case models.IntentStatusErrored:
			return nil, fmt.Errorf("checkout session creation failed: %s", intent.Error)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.cfg.PollInterval):
		}
	}

	return nil, ErrCheckoutTimeout
}
