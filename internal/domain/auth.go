package domain

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidCredentials is returned when a token request carries an unknown
// client id or a secret that does not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService exchanges API client credentials for a bearer token.
type AuthService interface {
	IssueToken(ctx context.Context, clientID, clientSecret string) (token string, expiresIn time.Duration, err error)
}

// TokenIssuer issues bearer tokens for an authenticated API client.
type TokenIssuer interface {
	Issue(clientID string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a bearer token and returns the client ID it was
// issued to.
type TokenVerifier interface {
	Verify(token string) (clientID string, err error)
}

// SecretVerifier compares a stored secret hash against a presented secret.
type SecretVerifier interface {
	Compare(hash, secret string) error
}
