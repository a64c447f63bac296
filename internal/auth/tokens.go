package auth

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
)

var ErrUnauthorized = errors.New("unauthorized")

// Verifier checks static bearer tokens. An empty token set disables
// authentication entirely, which is the default for local play.
type Verifier struct {
	tokens []string
}

func NewVerifier(tokens []string) *Verifier {
	return &Verifier{tokens: tokens}
}

func (v *Verifier) Enabled() bool { return len(v.tokens) > 0 }

// VerifyRequest extracts and checks the Authorization header.
func (v *Verifier) VerifyRequest(r *http.Request) error {
	if !v.Enabled() {
		return nil
	}
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if raw == "" {
		return ErrUnauthorized
	}
	tok, ok := strings.CutPrefix(raw, "Bearer ")
	if !ok {
		return ErrUnauthorized
	}
	for _, want := range v.tokens {
		if subtle.ConstantTimeCompare([]byte(tok), []byte(want)) == 1 {
			return nil
		}
	}
	return ErrUnauthorized
}
