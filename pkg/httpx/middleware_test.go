package httpx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/pandda/pkg/httpx"
	"github.com/aussiebroadwan/pandda/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func sessionClaims(userID, role string) jwtx.Claims {
	scopes := []string{"records:read", "records:write"}
	if role == "master" {
		scopes = append(scopes, "records:delete")
	}
	return jwtx.NewSessionClaims(jwtx.SessionClaimsInput{
		UserID: userID,
		Email:  role + "@pandda.local",
		Role:   role,
		Scopes: scopes,
	}, "pandda-test", time.Hour, time.Now())
}

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(okHandler(), mark("first"), mark("second"), mark("third"))
	require.Equal(t, http.StatusOK, serve(h, fromIP("10.0.0.1")).Code)
	require.Equal(t, []string{"first", "second", "third"}, order)
}

func TestAuthnMiddleware(t *testing.T) {
	ring, err := jwtx.NewEphemeralKeyRing(jwtx.KeyRingOptions{Issuer: "pandda-test"})
	require.NoError(t, err)

	var got jwtx.Claims
	h := httpx.AuthnMiddleware(ring.Verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, ok := httpx.ClaimsFromContext(r.Context())
		require.True(t, ok)
		got = c
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("accepts a valid session", func(t *testing.T) {
		token, err := ring.Signer().Sign(sessionClaims("u_1", "master"))
		require.NoError(t, err)

		req := fromIP("10.0.0.1")
		req.Header.Set("Authorization", "Bearer "+token)

		require.Equal(t, http.StatusOK, serve(h, req).Code)
		require.Equal(t, "u_1", got.Subject)
		require.Equal(t, "master", got.Role)
	})

	t.Run("scheme is case-insensitive", func(t *testing.T) {
		token, err := ring.Signer().Sign(sessionClaims("u_2", "comum"))
		require.NoError(t, err)

		req := fromIP("10.0.0.1")
		req.Header.Set("Authorization", "bearer "+token)

		require.Equal(t, http.StatusOK, serve(h, req).Code)
		require.Equal(t, "u_2", got.Subject)
	})

	t.Run("rejects another scheme", func(t *testing.T) {
		req := fromIP("10.0.0.1")
		req.Header.Set("Authorization", "Basic YWRtaW46bWFzdGVy")
		require.Equal(t, http.StatusUnauthorized, serve(h, req).Code)
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		rec := serve(h, fromIP("10.0.0.1"))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")
	})

	t.Run("rejects a bad token", func(t *testing.T) {
		req := fromIP("10.0.0.1")
		req.Header.Set("Authorization", "Bearer not-a-jwt")

		rec := serve(h, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "invalid_token", body["error"])
	})
}

func TestRequireAnyScope(t *testing.T) {
	h := httpx.RequireAnyScope("records:delete")(okHandler())

	withRole := func(role string) *http.Request {
		req := httptest.NewRequest(http.MethodDelete, "/v1/clients/cli_1", nil)
		return req.WithContext(httpx.ContextWithClaims(req.Context(), sessionClaims("u_1", role)))
	}

	t.Run("master may delete", func(t *testing.T) {
		require.Equal(t, http.StatusOK, serve(h, withRole("master")).Code)
	})

	t.Run("comum may not delete", func(t *testing.T) {
		rec := serve(h, withRole("comum"))
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), `scope="records:delete"`)
	})

	t.Run("anonymous may not delete", func(t *testing.T) {
		require.Equal(t, http.StatusForbidden, serve(h, fromIP("10.0.0.1")).Code)
	})
}
