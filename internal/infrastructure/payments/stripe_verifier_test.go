package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"erdbeergourmet/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "whsec_test"

func signPayload(payload []byte, secret string, at time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", at.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", at.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

const checkoutCompletedPayload = `{
  "id": "evt_1",
  "object": "event",
  "api_version": "2020-08-27",
  "created": 1760000000,
  "type": "checkout.session.completed",
  "data": {
    "object": {
      "id": "cs_test_1",
      "object": "checkout.session",
      "status": "complete",
      "payment_status": "paid",
      "payment_intent": "pi_1",
      "customer": "cus_1",
      "customer_email": "old@example.com",
      "customer_details": {"email": "ana@example.com", "name": "Ana Souza"},
      "amount_total": 4700,
      "currency": "brl",
      "metadata": {"product_type": "ebook", "customer_id": "cust-1"}
    }
  }
}`

const paymentFailedPayload = `{
  "id": "evt_2",
  "object": "event",
  "created": 1760000000,
  "type": "payment_intent.payment_failed",
  "data": {
    "object": {
      "id": "pi_1",
      "object": "payment_intent",
      "status": "requires_payment_method",
      "last_payment_error": {"code": "card_declined", "message": "Your card was declined."}
    }
  }
}`

func TestStripeVerifier_Verify(t *testing.T) {
	v := NewStripeVerifier(testSecret, time.Minute)
	payload := []byte(checkoutCompletedPayload)

	t.Run("valid checkout event", func(t *testing.T) {
		evt, err := v.Verify(payload, signPayload(payload, testSecret, time.Now()))
		require.NoError(t, err)
		assert.Equal(t, "evt_1", evt.ID)
		assert.Equal(t, entities.WebhookEventCheckoutCompleted, evt.Kind)
		require.NotNil(t, evt.Checkout)
		assert.Nil(t, evt.PaymentIntent)
		assert.Equal(t, "cs_test_1", evt.Checkout.ID)
		assert.Equal(t, "pi_1", evt.Checkout.PaymentIntentID)
		assert.Equal(t, "cus_1", evt.Checkout.CustomerID)
		assert.Equal(t, "ana@example.com", evt.Checkout.CustomerEmail)
		assert.Equal(t, "Ana Souza", evt.Checkout.CustomerName)
		assert.True(t, evt.Checkout.IsEbook())
		assert.True(t, evt.Checkout.IsPaid())
		assert.Equal(t, time.Unix(1760000000, 0).UTC(), evt.CreatedAt)
	})

	t.Run("payment intent event", func(t *testing.T) {
		raw := []byte(paymentFailedPayload)
		evt, err := v.Verify(raw, signPayload(raw, testSecret, time.Now()))
		require.NoError(t, err)
		assert.Equal(t, entities.WebhookEventPaymentIntentFailed, evt.Kind)
		require.NotNil(t, evt.PaymentIntent)
		assert.Equal(t, "pi_1", evt.PaymentIntent.ID)
		assert.Equal(t, "card_declined", evt.PaymentIntent.LastErrorCode)
	})

	rejected := map[string]struct {
		payload []byte
		header  string
	}{
		"tampered body":    {append([]byte(checkoutCompletedPayload), ' '), signPayload(payload, testSecret, time.Now())},
		"wrong secret":     {payload, signPayload(payload, "whsec_other", time.Now())},
		"stale timestamp":  {payload, signPayload(payload, testSecret, time.Now().Add(-10*time.Minute))},
		"missing header":   {payload, ""},
		"malformed header": {payload, "v1=abc"},
	}
	for name, tc := range rejected {
		t.Run(name, func(t *testing.T) {
			_, err := v.Verify(tc.payload, tc.header)
			assert.ErrorIs(t, err, entities.ErrInvalidSignature)
		})
	}

	t.Run("missing secret", func(t *testing.T) {
		_, err := NewStripeVerifier("", 0).Verify(payload, signPayload(payload, "", time.Now()))
		assert.ErrorIs(t, err, entities.ErrInvalidSignature)
		assert.ErrorContains(t, err, ErrMissingWebhookSecret.Error())
	})
}

func TestNewStripeVerifier_DefaultTolerance(t *testing.T) {
	assert.Equal(t, DefaultWebhookTolerance, NewStripeVerifier(testSecret, 0).tolerance)
}
