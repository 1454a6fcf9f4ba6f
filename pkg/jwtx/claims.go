package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is how long a panel login stays valid.
const DefaultSessionTTL = 12 * time.Hour

// Claims are the panel session claims. Subject carries the user id.
type Claims struct {
	jwt.RegisteredClaims

	// Permission Scopes "records:read records:write records:delete"
	Scopes []string `json:"scopes,omitempty"`

	// Email the operator logged in with
	Email string `json:"email,omitempty"`

	// Role is "master" or "comum"
	Role string `json:"role,omitempty"`

	// Name is the optional display name for the topbar
	Name string `json:"name,omitempty"`
}

// SessionClaimsInput groups what the auth service knows about the operator.
type SessionClaimsInput struct {
	UserID string
	Email  string
	Role   string
	Name   string
	Scopes []string
}

// NewSessionClaims builds minimally-correct session claims.
func NewSessionClaims(in SessionClaimsInput, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   in.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Scopes: in.Scopes,
		Email:  in.Email,
		Role:   in.Role,
		Name:   in.Name,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// HasScope reports whether the claims grant scope.
func (c *Claims) HasScope(scope string) bool {
	return slices.Contains(c.Scopes, scope)
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't before nbf.
func (c *Claims) ValidateExpiry() error {
	return c.ValidateExpiryWithLeeway(0)
}

// ValidateExpiryWithLeeway adds a small grace period for clock skew.
func (c *Claims) ValidateExpiryWithLeeway(leeway time.Duration) error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}

	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}

	return nil
}
