package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/pandda/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestValidateIssuer(t *testing.T) {
	c := &jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: "pandda"},
	}

	t.Run("matching issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer("pandda"))
	})

	t.Run("empty expected issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer(""))
	})

	t.Run("mismatched issuer", func(t *testing.T) {
		require.ErrorIs(t, c.ValidateIssuer("someone-else"), jwtx.ErrIssuer)
	})
}

func TestValidateExpiry(t *testing.T) {
	now := time.Now().UTC()

	t.Run("valid window", func(t *testing.T) {
		c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{
			NotBefore: jwt.NewNumericDate(now.Add(-time.Minute)),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
		}}
		require.NoError(t, c.ValidateExpiry())
	})

	t.Run("expired", func(t *testing.T) {
		c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
		}}
		require.ErrorIs(t, c.ValidateExpiry(), jwtx.ErrExpired)
	})

	t.Run("not yet valid", func(t *testing.T) {
		c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{
			NotBefore: jwt.NewNumericDate(now.Add(time.Minute)),
		}}
		require.ErrorIs(t, c.ValidateExpiry(), jwtx.ErrNotYetValid)
	})

	t.Run("leeway absorbs skew", func(t *testing.T) {
		c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(-5 * time.Second)),
		}}
		require.NoError(t, c.ValidateExpiryWithLeeway(30*time.Second))
	})
}

func TestNewSessionClaims(t *testing.T) {
	now := time.Now().UTC()
	c := jwtx.NewSessionClaims(jwtx.SessionClaimsInput{
		UserID: "u_1",
		Email:  "admin@pandda.com",
		Role:   "master",
		Scopes: []string{"records:read", "records:delete"},
	}, "pandda", time.Hour, now)

	require.Equal(t, "u_1", c.Subject)
	require.Equal(t, "pandda", c.Issuer)
	require.Equal(t, "master", c.Role)
	require.NotEmpty(t, c.ID)
	require.True(t, c.HasScope("records:delete"))
	require.False(t, c.HasScope("records:write"))
	require.WithinDuration(t, now.Add(time.Hour), c.ExpiresAt.Time, time.Second)
}
