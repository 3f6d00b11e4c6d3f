// Package auth implements the admin gate: a single shared secret checked
// with bcrypt, exchanged for a short-lived signed session token. Nothing
// here reads ambient state; handlers pass the token in explicitly.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/lucasraugi/presentes-api/internal/logger"
)

const tokenIssuer = "presentes-api"

var (
	// ErrInvalidCredentials is returned when the admin password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned for missing, malformed, tampered or
	// expired session tokens.
	ErrInvalidToken = errors.New("invalid or expired session token")
)

// Manager validates the admin secret and mints session tokens.
type Manager struct {
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
}

// NewManager creates a manager holding a bcrypt hash of the configured
// password. The plaintext is not retained.
func NewManager(password, sessionSecret string, ttl time.Duration) (*Manager, error) {
	if password == "" {
		return nil, fmt.Errorf("admin password must not be empty")
	}
	if sessionSecret == "" {
		return nil, fmt.Errorf("session secret must not be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}

	return &Manager{
		passwordHash: hash,
		secret:       []byte(sessionSecret),
		ttl:          ttl,
	}, nil
}

// SessionTTL returns the lifetime of minted session tokens.
func (m *Manager) SessionTTL() time.Duration {
	return m.ttl
}

// Login checks the password and returns a signed session token valid for
// the configured TTL.
func (m *Manager) Login(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(m.passwordHash, []byte(password)); err != nil {
		logger.WithContext("component", "auth").Warn("admin login rejected")
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return token, nil
}

// Verify checks a session token's signature and expiry.
func (m *Manager) Verify(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}

	return nil
}
