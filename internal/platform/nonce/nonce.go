// Package nonce issues and verifies the signed tokens that guard the quote
// refresh endpoint against cross-site request forgery.
package nonce

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ActionQuoteRefresh is the action bound into refresh tokens.
const ActionQuoteRefresh = "quote_refresh"

// DefaultLifetime is how long an issued token verifies.
const DefaultLifetime = 12 * time.Hour

type claims struct {
	Action string `json:"act"`
	jwt.RegisteredClaims
}

// Manager issues HS256 tokens bound to one action and verifies them.
type Manager struct {
	secret   []byte
	lifetime time.Duration
	action   string
	now      func() time.Time
}

// NewManager creates a Manager for action. If lifetime is 0 it defaults to DefaultLifetime.
func NewManager(secret string, lifetime time.Duration, action string) *Manager {
	if lifetime <= 0 {
		lifetime = DefaultLifetime
	}
	return &Manager{
		secret:   []byte(secret),
		lifetime: lifetime,
		action:   action,
		now:      time.Now,
	}
}

// Issue creates a signed token for the manager's action.
func (m *Manager) Issue() (string, error) {
	if len(m.secret) == 0 {
		return "", fmt.Errorf("nonce secret is not configured")
	}
	now := m.now()
	c := claims{
		Action: m.action,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify reports whether token was issued by this manager for its action and
// has not expired.
func (m *Manager) Verify(token string) bool {
	if token == "" || len(m.secret) == 0 {
		return false
	}

	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c,
		func(t *jwt.Token) (interface{}, error) {
			// HMAC以外の署名方式は拒否
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !parsed.Valid {
		return false
	}
	return c.Action == m.action
}

// RandomSecret returns a random hex secret. Tokens signed with it do not
// survive a restart.
func RandomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Lifetime returns how long issued tokens verify.
func (m *Manager) Lifetime() time.Duration { return m.lifetime }
