package entities

import "time"

// PurchaseStatus represents the lifecycle of an e-book purchase.
//
// Domain notes:
//   - A purchase starts as pending when the checkout session is created.
//   - completed, failed and expired are terminal; nothing moves out of them.

type PurchaseStatus string

const (
	PurchaseStatusPending   PurchaseStatus = "pending"
	PurchaseStatusCompleted PurchaseStatus = "completed"
	PurchaseStatusFailed    PurchaseStatus = "failed"
	PurchaseStatusExpired   PurchaseStatus = "expired"
)

// IsTerminal reports whether no further transition is allowed from s.
func (s PurchaseStatus) IsTerminal() bool {
	switch s {
	case PurchaseStatusCompleted, PurchaseStatusFailed, PurchaseStatusExpired:
		return true
	}
	return false
}

// CanTransitionTo reports whether s -> next is a legal transition.
func (s PurchaseStatus) CanTransitionTo(next PurchaseStatus) bool {
	return s == PurchaseStatusPending && next.IsTerminal()
}

// Purchase is one attempted or completed e-book transaction.
//
// Storage model (DynamoDB):
//   - PK: session_id
//   - GSI1 (payment_intent_id-index): payment_intent_id
//
// AccessToken is set exactly when Status is completed, and never changes afterwards.
type Purchase struct {
	ID              string         `json:"id"`
	SessionID       string         `json:"session_id"`
	CustomerID      string         `json:"customer_id"`
	AmountCents     int64          `json:"amount_cents"`
	Currency        string         `json:"currency"`
	Status          PurchaseStatus `json:"status"`
	AccessToken     string         `json:"access_token,omitempty"`
	PaymentIntentID string         `json:"payment_intent_id,omitempty"`
	CompletedAt     *time.Time     `json:"completed_at,omitempty"`
	LastAccessedAt  *time.Time     `json:"last_accessed_at,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}

// HasAccess reports whether the purchase grants e-book access.
func (p Purchase) HasAccess() bool {
	return p.Status == PurchaseStatusCompleted && p.AccessToken != ""
}
