package services

import (
	"context"
	"fmt"
	"time"

	"eventdesk/internal/domain"
)

type authService struct {
	clientID   string
	secretHash string
	secrets    domain.SecretVerifier
	issuer     domain.TokenIssuer
	tokenTTL   time.Duration
}

// NewAuthService returns an AuthService backed by a single configured API
// client. The secret hash is a bcrypt hash of the client secret.
func NewAuthService(clientID, secretHash string, secrets domain.SecretVerifier, issuer domain.TokenIssuer, tokenTTL time.Duration) domain.AuthService {
	return &authService{
		clientID:   clientID,
		secretHash: secretHash,
		secrets:    secrets,
		issuer:     issuer,
		tokenTTL:   tokenTTL,
	}
}

func (s *authService) IssueToken(ctx context.Context, clientID, clientSecret string) (string, time.Duration, error) {
	if clientID != s.clientID {
		return "", 0, domain.ErrInvalidCredentials
	}
	if err := s.secrets.Compare(s.secretHash, clientSecret); err != nil {
		return "", 0, domain.ErrInvalidCredentials
	}
	token, err := s.issuer.Issue(clientID, s.tokenTTL)
	if err != nil {
		return "", 0, fmt.Errorf("issue token: %w", err)
	}
	return token, s.tokenTTL, nil
}
