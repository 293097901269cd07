package payments

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"erdbeergourmet/internal/domain/entities"
	"erdbeergourmet/internal/usecase/interfaces"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
)

// DefaultWebhookTolerance is the accepted age of a signed delivery.
const DefaultWebhookTolerance = 5 * time.Minute

var ErrMissingWebhookSecret = errors.New("missing STRIPE_WEBHOOK_SECRET")

// StripeVerifier checks the Stripe-Signature header (t=timestamp, one or
// more v1=hex HMAC-SHA256 digests over "timestamp.payload") and decodes the
// event object into the domain payload for its kind.
type StripeVerifier struct {
	secret    string
	tolerance time.Duration
}

var _ interfaces.ISignatureVerifier = (*StripeVerifier)(nil)

func NewStripeVerifier(secret string, tolerance time.Duration) *StripeVerifier {
	if tolerance <= 0 {
		tolerance = DefaultWebhookTolerance
	}
	return &StripeVerifier{secret: secret, tolerance: tolerance}
}

func (v *StripeVerifier) Verify(payload []byte, signatureHeader string) (entities.WebhookEvent, error) {
	if v.secret == "" {
		return entities.WebhookEvent{}, fmt.Errorf("%w: %v", entities.ErrInvalidSignature, ErrMissingWebhookSecret)
	}
	if strings.TrimSpace(signatureHeader) == "" {
		return entities.WebhookEvent{}, fmt.Errorf("%w: missing signature header", entities.ErrInvalidSignature)
	}

	evt, err := webhook.ConstructEventWithOptions(payload, signatureHeader, v.secret, webhook.ConstructEventOptions{
		Tolerance:                v.tolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return entities.WebhookEvent{}, fmt.Errorf("%w: %v", entities.ErrInvalidSignature, err)
	}

	out := entities.WebhookEvent{
		ID:        evt.ID,
		Type:      string(evt.Type),
		Kind:      entities.ParseWebhookEventKind(string(evt.Type)),
		CreatedAt: time.Unix(evt.Created, 0).UTC(),
	}
	if evt.Data == nil {
		return out, nil
	}

	switch out.Kind {
	case entities.WebhookEventCheckoutCompleted,
		entities.WebhookEventCheckoutAsyncPaymentSucceeded,
		entities.WebhookEventCheckoutAsyncPaymentFailed,
		entities.WebhookEventCheckoutExpired:
		var s stripe.CheckoutSession
		if err := json.Unmarshal(evt.Data.Raw, &s); err != nil {
			return entities.WebhookEvent{}, fmt.Errorf("%w: decode checkout session: %v", entities.ErrInvalidSignature, err)
		}
		out.Checkout = toCheckoutPayload(&s)
	case entities.WebhookEventPaymentIntentFailed:
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(evt.Data.Raw, &pi); err != nil {
			return entities.WebhookEvent{}, fmt.Errorf("%w: decode payment intent: %v", entities.ErrInvalidSignature, err)
		}
		out.PaymentIntent = toPaymentIntentPayload(&pi)
	case entities.WebhookEventUnhandled:
	}
	return out, nil
}
