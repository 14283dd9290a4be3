// Package auth is the identity boundary: it turns a bearer token into an
// is-admin decision. The comment service itself never reads tokens; it is
// handed the boolean capability explicitly.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
)

// Sessions verifies admin tokens and issues new ones after a successful
// credential check.
type Sessions interface {
	IsAdmin(ctx context.Context, token string) (bool, error)
	Grant(ctx context.Context) (string, error)
}

// Static is a single-token verifier for deployments without Redis. The
// configured admin token doubles as the session token.
type Static struct {
	token string
}

func NewStatic(token string) *Static {
	return &Static{token: token}
}

func (s *Static) IsAdmin(ctx context.Context, token string) (bool, error) {
	_ = ctx
	return s.token != "" && token == s.token, nil
}

func (s *Static) Grant(ctx context.Context) (string, error) {
	_ = ctx
	return s.token, nil
}

func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
