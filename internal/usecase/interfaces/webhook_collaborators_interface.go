package interfaces

import (
	"context"
	"erdbeergourmet/internal/domain/entities"
)

// ISignatureVerifier authenticates a raw webhook body against its signature
// header and decodes it. Any failure wraps ErrInvalidSignature.
type ISignatureVerifier interface {
	Verify(payload []byte, signatureHeader string) (entities.WebhookEvent, error)
}

// ITokenIssuer produces unguessable access tokens.
type ITokenIssuer interface {
	Issue() (string, error)
}

// INotifier delivers the access e-mail. Failures are *entities.NotifyError.
type INotifier interface {
	SendAccessEmail(ctx context.Context, to, customerName, accessToken string) error
}
