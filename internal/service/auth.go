package service

import (
	"crypto/subtle"

	"smssync/internal/errors"
	"smssync/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// Authenticator checks login attempts against the single configured
// identity. All comparisons are constant-time so an attacker cannot learn
// credential prefixes from response latency.
type Authenticator struct {
	email        string
	password     string
	passwordHash string
}

func NewAuthenticator(cfg models.AuthConfig) *Authenticator {
	return &Authenticator{
		email:        cfg.Email,
		password:     cfg.Password,
		passwordHash: cfg.PasswordHash,
	}
}

// Authenticate verifies an email/password pair. The bcrypt hash takes
// precedence when configured; the plaintext fallback exists for local
// development only.
func (a *Authenticator) Authenticate(email, password string) error {
	emailOK := subtle.ConstantTimeCompare([]byte(a.email), []byte(email)) == 1

	var passwordOK bool
	if a.passwordHash != "" {
		passwordOK = bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password)) == nil
	} else {
		passwordOK = subtle.ConstantTimeCompare([]byte(a.password), []byte(password)) == 1
	}

	if !emailOK || !passwordOK {
		return errors.New(errors.ErrCodeAuthRequired, "invalid credentials").
			WithUserMessage("Invalid credentials")
	}
	return nil
}
