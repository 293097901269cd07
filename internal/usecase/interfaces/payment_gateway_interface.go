package interfaces

import (
	"context"
	"erdbeergourmet/internal/domain/entities"
)

// IPaymentGateway abstracts the hosted checkout provider (Stripe).
//
// GetCheckoutSession fails with ErrCheckoutSessionNotFound for unknown ids.
type IPaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, req entities.CheckoutSessionRequest) (entities.CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (entities.CheckoutSession, error)
}
