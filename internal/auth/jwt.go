// Package auth issues and verifies the HS256 bearer tokens that guard the
// admin API.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kesava/telugu-word-analysis/internal/domain"
)

// Roles carried in the role claim.
const (
	RoleAdmin  = "admin"
	RoleReader = "reader"
)

// TokenManager signs and validates tokens with a shared secret.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager creates a token manager. secret should be at least 32
// characters.
func NewTokenManager(secret, issuer string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

type claims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// Issue creates a signed token for subject with role. It returns the token
// and its expiry.
func (m *TokenManager) Issue(subject, role string) (string, time.Time, error) {
	if subject == "" {
		return "", time.Time{}, domain.NewValidationError("subject", "required")
	}
	if role != RoleAdmin && role != RoleReader {
		return "", time.Time{}, domain.NewValidationError("role", fmt.Sprintf("unknown role %q", role))
	}

	now := m.now()
	exp := now.Add(m.ttl)
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

// Validate parses tokenString and returns its subject and role. Every
// failure wraps domain.ErrUnauthorized.
func (m *TokenManager) Validate(tokenString string) (subject, role string, err error) {
	if tokenString == "" {
		return "", "", fmt.Errorf("token is empty: %w", domain.ErrUnauthorized)
	}

	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", "", fmt.Errorf("parse token: %w", errors.Join(domain.ErrUnauthorized, err))
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid || c.Subject == "" {
		return "", "", fmt.Errorf("invalid token claims: %w", domain.ErrUnauthorized)
	}

	return c.Subject, c.Role, nil
}
