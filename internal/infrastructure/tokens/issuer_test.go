package tokens

import (
	"bytes"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hex64 = regexp.MustCompile(`^[0-9a-f]{64}$`)

func TestRandomIssuer_Issue(t *testing.T) {
	iss := NewRandomIssuer()

	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		tok, err := iss.Issue()
		require.NoError(t, err)
		require.Regexp(t, hex64, tok)
		_, dup := seen[tok]
		require.False(t, dup, "duplicate token %s", tok)
		seen[tok] = struct{}{}
	}
}

func TestRandomIssuer_DeterministicSource(t *testing.T) {
	iss := &RandomIssuer{source: bytes.NewReader(bytes.Repeat([]byte{0xab}, TokenBytes))}

	tok, err := iss.Issue()
	require.NoError(t, err)
	assert.Equal(t, "ab", tok[:2])
	assert.Len(t, tok, 2*TokenBytes)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestRandomIssuer_SourceFailure(t *testing.T) {
	iss := &RandomIssuer{source: failingReader{}}

	_, err := iss.Issue()
	assert.ErrorContains(t, err, "entropy exhausted")
}

func TestRandomIssuer_ShortSource(t *testing.T) {
	iss := &RandomIssuer{source: bytes.NewReader([]byte{1, 2, 3})}

	_, err := iss.Issue()
	assert.Error(t, err)
}
