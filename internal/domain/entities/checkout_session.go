package entities

import "time"

// CheckoutLineItem is one product line sent to the provider.
type CheckoutLineItem struct {
	Name            string
	Description     string
	ImageURL        string
	UnitAmountCents int64
	Quantity        int64
	Metadata        map[string]string
}

// CheckoutSessionRequest describes a hosted checkout to create.
//
// ShippingCountries is optional; when empty no shipping address is collected.
type CheckoutSessionRequest struct {
	Currency          string
	LineItems         []CheckoutLineItem
	CustomerEmail     string
	SuccessURL        string
	CancelURL         string
	ExpiresAt         time.Time
	ShippingCountries []string
	Metadata          map[string]string
}

// CheckoutSession is the provider's view of a checkout session.
type CheckoutSession struct {
	ID                  string
	URL                 string
	Status              string
	PaymentStatus       string
	Mode                string
	PaymentIntentID     string
	PaymentIntentStatus string
	PaymentMethodTypes  []string
	AmountTotal         int64
	Currency            string
	CustomerEmail       string
	CustomerName        string
	Created             time.Time
	Metadata            map[string]string
	LineItems           []CheckoutSessionLine
}

// CheckoutSessionLine is a line item as reported back by the provider.
type CheckoutSessionLine struct {
	Description string
	Quantity    int64
	AmountTotal int64
	Currency    string
}

// IsPaid reports whether the provider collected the payment.
func (s CheckoutSession) IsPaid() bool {
	return s.PaymentStatus == CheckoutPaymentStatusPaid || s.PaymentStatus == CheckoutPaymentStatusNoPaymentRequired
}
