package interfaces

import (
	"context"
	"erdbeergourmet/internal/domain/entities"
)

// IPurchaseRepository abstracts persistence for e-book purchases.
//
// Every status write is conditional on the purchase still being pending:
//   - Create fails with ErrPurchaseAlreadyExists when the session is taken.
//   - CompleteWithToken fails with ErrPurchaseAlreadyCompleted when a token is
//     already bound, with ErrInvalidStatusTransition when the purchase failed
//     or expired, and with ErrAccessTokenConflict when the token belongs to
//     another purchase. The first two also return the stored purchase.
//   - MarkFailed / MarkExpired / AttachPaymentIntent fail with
//     ErrInvalidStatusTransition from any terminal state, returning the
//     stored purchase.
//   - Lookups fail with ErrPurchaseNotFound. FindByAccessToken only sees
//     completed purchases.

type IPurchaseRepository interface {
	Create(ctx context.Context, sessionID, customerID string, amountCents int64, currency string) (entities.Purchase, error)
	FindBySessionID(ctx context.Context, sessionID string) (entities.Purchase, error)
	FindByAccessToken(ctx context.Context, token string) (entities.Purchase, error)
	FindByPaymentIntentID(ctx context.Context, paymentIntentID string) (entities.Purchase, error)
	CompleteWithToken(ctx context.Context, sessionID, accessToken, paymentIntentID string) (entities.Purchase, error)
	MarkFailed(ctx context.Context, sessionID string) (entities.Purchase, error)
	MarkExpired(ctx context.Context, sessionID string) (entities.Purchase, error)
	AttachPaymentIntent(ctx context.Context, sessionID, paymentIntentID string) (entities.Purchase, error)
	TouchLastAccessed(ctx context.Context, token string) error
}
