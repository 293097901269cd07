package entities

import "time"

// WebhookEventKind is the closed set of provider events the service acts on.
// Every provider type string maps to exactly one kind; unknown types map to
// WebhookEventUnhandled.
type WebhookEventKind int

const (
	WebhookEventUnhandled WebhookEventKind = iota
	WebhookEventCheckoutCompleted
	WebhookEventCheckoutAsyncPaymentSucceeded
	WebhookEventCheckoutAsyncPaymentFailed
	WebhookEventCheckoutExpired
	WebhookEventPaymentIntentFailed
)

// Provider event type strings.
const (
	EventTypeCheckoutSessionCompleted             = "checkout.session.completed"
	EventTypeCheckoutSessionAsyncPaymentSucceeded = "checkout.session.async_payment_succeeded"
	EventTypeCheckoutSessionAsyncPaymentFailed    = "checkout.session.async_payment_failed"
	EventTypeCheckoutSessionExpired               = "checkout.session.expired"
	EventTypePaymentIntentPaymentFailed           = "payment_intent.payment_failed"
)

// ParseWebhookEventKind maps a provider type string onto a kind.
func ParseWebhookEventKind(eventType string) WebhookEventKind {
	switch eventType {
	case EventTypeCheckoutSessionCompleted:
		return WebhookEventCheckoutCompleted
	case EventTypeCheckoutSessionAsyncPaymentSucceeded:
		return WebhookEventCheckoutAsyncPaymentSucceeded
	case EventTypeCheckoutSessionAsyncPaymentFailed:
		return WebhookEventCheckoutAsyncPaymentFailed
	case EventTypeCheckoutSessionExpired:
		return WebhookEventCheckoutExpired
	case EventTypePaymentIntentPaymentFailed:
		return WebhookEventPaymentIntentFailed
	default:
		return WebhookEventUnhandled
	}
}

func (k WebhookEventKind) String() string {
	switch k {
	case WebhookEventCheckoutCompleted:
		return "checkout_completed"
	case WebhookEventCheckoutAsyncPaymentSucceeded:
		return "checkout_async_payment_succeeded"
	case WebhookEventCheckoutAsyncPaymentFailed:
		return "checkout_async_payment_failed"
	case WebhookEventCheckoutExpired:
		return "checkout_expired"
	case WebhookEventPaymentIntentFailed:
		return "payment_intent_failed"
	default:
		return "unhandled"
	}
}

// WebhookEvent is a verified provider event, decoded into the payload its
// kind carries. Checkout is set for the checkout.session.* kinds and
// PaymentIntent for payment_intent.* kinds.
type WebhookEvent struct {
	ID            string
	Type          string
	Kind          WebhookEventKind
	CreatedAt     time.Time
	Checkout      *CheckoutSessionPayload
	PaymentIntent *PaymentIntentPayload
}

// CheckoutSessionPayload is the subset of a checkout session the service reads.
type CheckoutSessionPayload struct {
	ID              string
	Status          string
	PaymentStatus   string
	PaymentIntentID string
	CustomerID      string
	CustomerEmail   string
	CustomerName    string
	AmountTotal     int64
	Currency        string
	Metadata        map[string]string
}

// Checkout payment_status values that mean the money has been collected.
const (
	CheckoutPaymentStatusPaid              = "paid"
	CheckoutPaymentStatusUnpaid            = "unpaid"
	CheckoutPaymentStatusNoPaymentRequired = "no_payment_required"
)

// Metadata contract stamped on sessions created by the storefront.
const (
	MetadataProductType = "product_type"
	MetadataCustomerID  = "customer_id"
	MetadataSource      = "source"

	ProductTypeEbook = "ebook"
)

// IsEbook reports whether the session belongs to the tracked digital good.
func (s CheckoutSessionPayload) IsEbook() bool {
	return s.Metadata[MetadataProductType] == ProductTypeEbook
}

// IsPaid reports whether the session no longer waits for funds.
func (s CheckoutSessionPayload) IsPaid() bool {
	return s.PaymentStatus == CheckoutPaymentStatusPaid || s.PaymentStatus == CheckoutPaymentStatusNoPaymentRequired
}

// PaymentIntentPayload is the subset of a payment intent the service reads.
type PaymentIntentPayload struct {
	ID               string
	Status           string
	LastErrorCode    string
	LastErrorMessage string
}
