package tokens

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"erdbeergourmet/internal/usecase/interfaces"
)

// TokenBytes is the entropy of one access token (256 bits).
const TokenBytes = 32

// RandomIssuer hex-encodes TokenBytes read from a CSPRNG, giving a
// fixed 64-character token.
type RandomIssuer struct {
	source io.Reader
}

var _ interfaces.ITokenIssuer = (*RandomIssuer)(nil)

func NewRandomIssuer() *RandomIssuer {
	return &RandomIssuer{source: rand.Reader}
}

func (i *RandomIssuer) Issue() (string, error) {
	buf := make([]byte, TokenBytes)
	if _, err := io.ReadFull(i.source, buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
