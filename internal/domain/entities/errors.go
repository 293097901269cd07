package entities

import (
	"errors"
	"fmt"
)

// Persistence outcomes shared by every repository implementation.
var (
	ErrPurchaseNotFound         = errors.New("purchase not found")
	ErrPurchaseAlreadyExists    = errors.New("purchase already exists for session")
	ErrPurchaseAlreadyCompleted = errors.New("purchase already completed")
	ErrInvalidStatusTransition  = errors.New("invalid purchase status transition")
	ErrAccessTokenConflict      = errors.New("access token already in use")
	ErrCustomerNotFound         = errors.New("customer not found")
	ErrEventAlreadyClaimed      = errors.New("event already claimed")
	ErrEventNotFound            = errors.New("processed event not found")
)

// Provider outcomes.
var (
	ErrInvalidSignature        = errors.New("webhook signature verification failed")
	ErrCheckoutSessionNotFound = errors.New("checkout session not found at provider")
)

// NotifyError is a failed best-effort notification. It never rolls back
// persisted state.
type NotifyError struct {
	To  string
	Err error
}

func (e *NotifyError) Error() string {
	return fmt.Sprintf("notify %s: %v", e.To, e.Err)
}

func (e *NotifyError) Unwrap() error { return e.Err }
