package usecase

import (
	"context"
	"erdbeergourmet/internal/domain/entities"
	"erdbeergourmet/internal/usecase/interfaces"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// maxTokenAttempts bounds the re-issue loop on token collisions.
const maxTokenAttempts = 3

var nowUTC = func() time.Time { return time.Now().UTC() }

// completeWithFreshToken binds a newly issued token to the pending purchase
// of sessionID. A collision with another purchase's token is retried with a
// fresh token; every other repository outcome is returned as is.
func completeWithFreshToken(ctx context.Context, repo interfaces.IPurchaseRepository, issuer interfaces.ITokenIssuer, log *zap.Logger, sessionID, paymentIntentID string) (entities.Purchase, error) {
	for attempt := 1; attempt <= maxTokenAttempts; attempt++ {
		token, err := issuer.Issue()
		if err != nil {
			return entities.Purchase{}, fmt.Errorf("issue access token: %w", err)
		}
		p, err := repo.CompleteWithToken(ctx, sessionID, token, paymentIntentID)
		if errors.Is(err, entities.ErrAccessTokenConflict) {
			log.Warn("access token collision, reissuing", zap.Int("attempt", attempt))
			continue
		}
		return p, err
	}
	return entities.Purchase{}, fmt.Errorf("complete purchase %s after %d attempts: %w", sessionID, maxTokenAttempts, entities.ErrAccessTokenConflict)
}

// tokenPrefix is the only part of an access token that may be logged.
func tokenPrefix(token string) string {
	if len(token) <= 8 {
		return token
	}
	return token[:8] + "..."
}
