package usecase

import (
	"context"
	"erdbeergourmet/internal/domain/entities"
	"erdbeergourmet/internal/usecase/interfaces"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrWebhookPersistence marks a delivery that failed before its effect was
// durable. The provider is expected to retry it.
var ErrWebhookPersistence = errors.New("webhook persistence failure")

type WebhookOutcome string

const (
	WebhookOutcomeProcessed WebhookOutcome = "processed"
	WebhookOutcomeDuplicate WebhookOutcome = "duplicate"
	WebhookOutcomeIgnored   WebhookOutcome = "ignored"
	// WebhookOutcomeDeferred is a completed checkout still waiting for funds.
	WebhookOutcomeDeferred WebhookOutcome = "deferred"
)

type WebhookResult struct {
	EventID   string
	EventType string
	Kind      entities.WebhookEventKind
	SessionID string
	Outcome   WebhookOutcome
}

// IWebhookUseCase reconciles one provider delivery.
//
// Flow:
//   - verify the signature (ErrInvalidSignature on failure, nothing written)
//   - claim the event id (duplicates short-circuit with no side effect)
//   - route on the event kind and persist the purchase transition
//   - notify the purchaser once the purchase is durable
//
// Only ErrInvalidSignature and ErrWebhookPersistence are returned as errors.
type IWebhookUseCase interface {
	HandleDelivery(ctx context.Context, payload []byte, signatureHeader string) (WebhookResult, error)
}

type WebhookUseCase struct {
	verifier  interfaces.ISignatureVerifier
	guard     IEventGuard
	purchases interfaces.IPurchaseRepository
	customers interfaces.ICustomerRepository
	tokens    interfaces.ITokenIssuer
	notifier  interfaces.INotifier
	logger    *zap.Logger
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(
	verifier interfaces.ISignatureVerifier,
	guard IEventGuard,
	purchases interfaces.IPurchaseRepository,
	customers interfaces.ICustomerRepository,
	tokens interfaces.ITokenIssuer,
	notifier interfaces.INotifier,
	logger *zap.Logger,
) *WebhookUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WebhookUseCase{
		verifier:  verifier,
		guard:     guard,
		purchases: purchases,
		customers: customers,
		tokens:    tokens,
		notifier:  notifier,
		logger:    logger.Named("webhook"),
	}
}

func (u *WebhookUseCase) HandleDelivery(ctx context.Context, payload []byte, signatureHeader string) (WebhookResult, error) {
	event, err := u.verifier.Verify(payload, signatureHeader)
	if err != nil {
		u.logger.Warn("signature rejected", zap.Int("payload_len", len(payload)), zap.Error(err))
		return WebhookResult{}, err
	}

	result := WebhookResult{EventID: event.ID, EventType: event.Type, Kind: event.Kind}
	if event.Checkout != nil {
		result.SessionID = event.Checkout.ID
	}
	log := u.logger.With(zap.String("event_id", event.ID), zap.String("event_type", event.Type))

	claimed, err := u.guard.MarkSeen(ctx, event.ID, event.Type)
	if errors.Is(err, ErrInvalidEventID) {
		log.Warn("event without id, ignoring")
		result.Outcome = WebhookOutcomeIgnored
		return result, nil
	}
	if err != nil {
		log.Error("event claim failed", zap.Error(err))
		return result, fmt.Errorf("%w: %w", ErrWebhookPersistence, err)
	}
	if !claimed {
		log.Info("duplicate delivery skipped")
		result.Outcome = WebhookOutcomeDuplicate
		return result, nil
	}

	outcome, err := u.route(ctx, log, event)
	if err != nil {
		log.Error("event processing failed", zap.Error(err))
		if relErr := u.guard.Release(ctx, event.ID); relErr != nil {
			log.Error("event claim release failed", zap.Error(relErr))
		}
		return result, fmt.Errorf("%w: %w", ErrWebhookPersistence, err)
	}
	result.Outcome = outcome

	if err := u.guard.MarkProcessed(ctx, event.ID); err != nil {
		// The claim stays, so a retry is still recognized as a duplicate.
		log.Warn("mark processed failed", zap.Error(err))
	}
	log.Info("event handled", zap.String("outcome", string(outcome)), zap.Stringer("kind", event.Kind))
	return result, nil
}

func (u *WebhookUseCase) route(ctx context.Context, log *zap.Logger, event entities.WebhookEvent) (WebhookOutcome, error) {
	switch event.Kind {
	case entities.WebhookEventCheckoutCompleted, entities.WebhookEventCheckoutAsyncPaymentSucceeded:
		return u.onCheckoutCompleted(ctx, log, event.Checkout)
	case entities.WebhookEventCheckoutAsyncPaymentFailed:
		return u.onCheckoutFailed(ctx, log, event.Checkout)
	case entities.WebhookEventCheckoutExpired:
		return u.onCheckoutExpired(ctx, log, event.Checkout)
	case entities.WebhookEventPaymentIntentFailed:
		return u.onPaymentIntentFailed(ctx, log, event.PaymentIntent)
	case entities.WebhookEventUnhandled:
		log.Info("unhandled event type accepted")
		return WebhookOutcomeIgnored, nil
	}
	return "", fmt.Errorf("unroutable event kind %d", event.Kind)
}

func (u *WebhookUseCase) onCheckoutCompleted(ctx context.Context, log *zap.Logger, s *entities.CheckoutSessionPayload) (WebhookOutcome, error) {
	if s == nil || !s.IsEbook() {
		log.Info("checkout is not an ebook purchase")
		return WebhookOutcomeIgnored, nil
	}
	log = log.With(zap.String("session_id", s.ID))

	customer := u.resolveCustomer(ctx, log, s)

	if !s.IsPaid() {
		log.Info("checkout completed without funds", zap.String("payment_status", s.PaymentStatus))
		if s.PaymentIntentID == "" {
			return WebhookOutcomeDeferred, nil
		}
		_, err := u.purchases.AttachPaymentIntent(ctx, s.ID, s.PaymentIntentID)
		switch {
		case errors.Is(err, entities.ErrPurchaseNotFound):
			log.Info("untracked session")
			return WebhookOutcomeIgnored, nil
		case errors.Is(err, entities.ErrInvalidStatusTransition):
			log.Warn("purchase already terminal, payment intent not attached")
			return WebhookOutcomeIgnored, nil
		case err != nil:
			return "", err
		}
		return WebhookOutcomeDeferred, nil
	}

	purchase, err := completeWithFreshToken(ctx, u.purchases, u.tokens, log, s.ID, s.PaymentIntentID)
	switch {
	case errors.Is(err, entities.ErrPurchaseNotFound):
		log.Info("untracked session")
		return WebhookOutcomeIgnored, nil
	case errors.Is(err, entities.ErrPurchaseAlreadyCompleted):
		// The access e-mail went out with the first completion; it is not re-sent.
		log.Info("purchase already completed", zap.String("token_prefix", tokenPrefix(purchase.AccessToken)))
		return WebhookOutcomeDuplicate, nil
	case errors.Is(err, entities.ErrInvalidStatusTransition):
		log.Warn("completion refused for terminal purchase", zap.String("status", string(purchase.Status)))
		return WebhookOutcomeIgnored, nil
	case err != nil:
		return "", err
	}
	log.Info("purchase completed", zap.String("token_prefix", tokenPrefix(purchase.AccessToken)))

	// Past this point the purchase is durable; nothing below may fail the delivery.
	u.notify(ctx, log, s, customer, purchase)
	return WebhookOutcomeProcessed, nil
}

func (u *WebhookUseCase) onCheckoutFailed(ctx context.Context, log *zap.Logger, s *entities.CheckoutSessionPayload) (WebhookOutcome, error) {
	if s == nil || s.ID == "" {
		log.Warn("failed checkout without session")
		return WebhookOutcomeIgnored, nil
	}
	return u.finishTerminal(log.With(zap.String("session_id", s.ID)), func() (entities.Purchase, error) {
		return u.purchases.MarkFailed(ctx, s.ID)
	})
}

func (u *WebhookUseCase) onCheckoutExpired(ctx context.Context, log *zap.Logger, s *entities.CheckoutSessionPayload) (WebhookOutcome, error) {
	if s == nil || !s.IsEbook() {
		log.Info("expired checkout is not an ebook purchase")
		return WebhookOutcomeIgnored, nil
	}
	return u.finishTerminal(log.With(zap.String("session_id", s.ID)), func() (entities.Purchase, error) {
		return u.purchases.MarkExpired(ctx, s.ID)
	})
}

func (u *WebhookUseCase) onPaymentIntentFailed(ctx context.Context, log *zap.Logger, pi *entities.PaymentIntentPayload) (WebhookOutcome, error) {
	if pi == nil || pi.ID == "" {
		log.Warn("failed payment without payment intent")
		return WebhookOutcomeIgnored, nil
	}
	log = log.With(zap.String("payment_intent_id", pi.ID))
	p, err := u.purchases.FindByPaymentIntentID(ctx, pi.ID)
	if errors.Is(err, entities.ErrPurchaseNotFound) {
		log.Info("no purchase for payment intent")
		return WebhookOutcomeIgnored, nil
	}
	if err != nil {
		return "", err
	}
	log = log.With(zap.String("session_id", p.SessionID), zap.String("failure_code", pi.LastErrorCode))
	return u.finishTerminal(log, func() (entities.Purchase, error) {
		return u.purchases.MarkFailed(ctx, p.SessionID)
	})
}

// finishTerminal runs a pending -> terminal write and classifies the
// tolerated outcomes.
func (u *WebhookUseCase) finishTerminal(log *zap.Logger, write func() (entities.Purchase, error)) (WebhookOutcome, error) {
	p, err := write()
	switch {
	case errors.Is(err, entities.ErrPurchaseNotFound):
		log.Info("untracked session")
		return WebhookOutcomeIgnored, nil
	case errors.Is(err, entities.ErrInvalidStatusTransition):
		log.Warn("purchase already terminal, status kept")
		return WebhookOutcomeIgnored, nil
	case err != nil:
		return "", err
	}
	log.Info("purchase closed", zap.String("status", string(p.Status)))
	return WebhookOutcomeProcessed, nil
}

// resolveCustomer finds the purchaser, creating it when the session carries
// an email nobody registered yet. Failures only cost the notification a
// fallback address.
func (u *WebhookUseCase) resolveCustomer(ctx context.Context, log *zap.Logger, s *entities.CheckoutSessionPayload) *entities.Customer {
	if u.customers == nil {
		return nil
	}
	var (
		c   entities.Customer
		err error
	)
	if id := s.Metadata[entities.MetadataCustomerID]; id != "" {
		c, err = u.customers.GetByID(ctx, id)
	} else {
		err = entities.ErrCustomerNotFound
	}
	if errors.Is(err, entities.ErrCustomerNotFound) && s.CustomerEmail != "" {
		var created bool
		c, created, err = u.customers.FindOrCreate(ctx, entities.NewCustomer(s.CustomerEmail, s.CustomerName, nowUTC()))
		if err == nil && created {
			log.Info("customer created from checkout", zap.String("customer_id", c.ID))
		}
	}
	if err != nil {
		if !errors.Is(err, entities.ErrCustomerNotFound) {
			log.Warn("customer lookup failed", zap.Error(err))
		}
		return nil
	}

	first, last := entities.SplitName(s.CustomerName)
	identity := entities.Customer{FirstName: first, LastName: last, ProviderCustomerID: s.CustomerID}
	if updated, bErr := u.customers.BackfillIdentity(ctx, c.ID, identity); bErr != nil {
		log.Warn("customer backfill failed", zap.String("customer_id", c.ID), zap.Error(bErr))
	} else {
		c = updated
	}
	return &c
}

func (u *WebhookUseCase) notify(ctx context.Context, log *zap.Logger, s *entities.CheckoutSessionPayload, c *entities.Customer, p entities.Purchase) {
	to, name := s.CustomerEmail, s.CustomerName
	if c != nil {
		if to == "" {
			to = c.Email
		}
		if name == "" {
			name = c.FullName()
		}
	}
	if to == "" {
		log.Warn("no purchaser email, access email not sent")
		return
	}
	if u.notifier == nil {
		log.Warn("notifier not configured, access email not sent")
		return
	}
	if err := u.notifier.SendAccessEmail(ctx, to, name, p.AccessToken); err != nil {
		log.Warn("access email failed", zap.Error(err))
		return
	}
	log.Info("access email sent")
}
