package auth

import (
	"golang.org/x/crypto/bcrypt"

	"eventdesk/internal/domain"
)

type bcryptVerifier struct{}

// NewBcryptVerifier returns a SecretVerifier that compares bcrypt hashes.
func NewBcryptVerifier() domain.SecretVerifier {
	return &bcryptVerifier{}
}

func (bcryptVerifier) Compare(hash, secret string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
}

// HashSecret produces a bcrypt hash suitable for the API_CLIENT_SECRET_HASH
// setting. Used by provisioning scripts and tests.
func HashSecret(secret string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
