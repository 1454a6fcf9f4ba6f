package http

import (
	"net/http"

	"github.com/aussiebroadwan/pandda/pkg/httpx"
	"github.com/aussiebroadwan/pandda/pkg/jwtx"
	"github.com/aussiebroadwan/pandda/pkg/panelsdk"
)

// JWKSHandler publishes the public half of the session signing keys.
//
//	@Summary		Get JWKS
//	@Description	Returns the Ed25519 keys that verify session tokens. Keys change on every restart.
//	@Tags			well-known
//	@Produce		json
//	@Success		200	{object}	panelsdk.JWKSResponse	"The JSON Web Key Set"
//	@Router			/.well-known/jwks.json [get].
func JWKSHandler(keys *jwtx.KeySet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, panelsdk.JWKSResponse(keys.PublicJWKS()))
	}
}
