package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/pandda/pkg/cryptox"
	"github.com/aussiebroadwan/pandda/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "pandda-test"

func sessionFor(role string, ttl time.Duration, now time.Time) jwtx.Claims {
	return jwtx.NewSessionClaims(jwtx.SessionClaimsInput{
		UserID: "u_01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV",
		Email:  role + "@pandda.com",
		Role:   role,
		Name:   "Operador",
		Scopes: []string{"records:read", "records:write"},
	}, testIssuer, ttl, now)
}

func TestKeyRingSignAndVerify(t *testing.T) {
	ring, err := jwtx.NewEphemeralKeyRing(jwtx.KeyRingOptions{Issuer: testIssuer, NumKeys: 3})
	require.NoError(t, err)
	require.Equal(t, 3, ring.NumSigners())
	require.True(t, ring.IsReady())
	require.Len(t, ring.KeySet.PublicJWKS().Keys, 3)

	claims := sessionFor("comum", time.Hour, time.Now().UTC())

	// Every key in the ring must produce verifiable tokens.
	for range 10 {
		token, err := ring.Signer().Sign(claims)
		require.NoError(t, err)

		got, err := ring.Verifier.Verify(token)
		require.NoError(t, err)
		require.Equal(t, claims.Subject, got.Subject)
		require.Equal(t, "comum", got.Role)
		require.Equal(t, "comum@pandda.com", got.Email)
		require.Equal(t, "Operador", got.Name)
		require.ElementsMatch(t, claims.Scopes, got.Scopes)
	}
}

func TestKeyRingDefaults(t *testing.T) {
	ring, err := jwtx.NewEphemeralKeyRing(jwtx.KeyRingOptions{Issuer: testIssuer})
	require.NoError(t, err)
	require.Equal(t, 1, ring.NumSigners())
	require.True(t, strings.HasPrefix(ring.Signer().KID(), "pandda-"))
	require.Equal(t, "EdDSA", ring.Signer().Alg())

	_, err = jwtx.NewEphemeralKeyRing(jwtx.KeyRingOptions{})
	require.Error(t, err)
}

func TestVerifierRejects(t *testing.T) {
	ring, err := jwtx.NewEphemeralKeyRing(jwtx.KeyRingOptions{Issuer: testIssuer})
	require.NoError(t, err)

	t.Run("expired token", func(t *testing.T) {
		claims := sessionFor("master", time.Minute, time.Now().Add(-time.Hour))
		token, err := ring.Signer().Sign(claims)
		require.NoError(t, err)

		_, err = ring.Verifier.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		claims := sessionFor("master", time.Hour, time.Now())
		claims.Issuer = "elsewhere"
		token, err := ring.Signer().Sign(claims)
		require.NoError(t, err)

		_, err = ring.Verifier.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("key from another process", func(t *testing.T) {
		key, err := cryptox.NewSessionKey()
		require.NoError(t, err)
		stranger, err := jwtx.NewSignerEdDSA("stranger", key.PEM)
		require.NoError(t, err)

		token, err := stranger.Sign(sessionFor("master", time.Hour, time.Now()))
		require.NoError(t, err)

		_, err = ring.Verifier.Verify(token)
		require.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ring.Verifier.Verify("not.a.jwt")
		require.Error(t, err)
	})
}

func TestNewSignerEdDSARejectsBadPEM(t *testing.T) {
	_, err := jwtx.NewSignerEdDSA("kid", []byte("nope"))
	require.Error(t, err)
}
