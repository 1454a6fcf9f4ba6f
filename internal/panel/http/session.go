package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/pandda/internal/panel/service"
	"github.com/aussiebroadwan/pandda/pkg/httpx"
	"github.com/aussiebroadwan/pandda/pkg/panelsdk"
	"github.com/aussiebroadwan/pandda/pkg/slogx"
)

// SessionHandler handles operator login and the current user lookup.
type SessionHandler struct {
	AuthService *service.AuthService
}

// HandleLogin handles POST /v1/session/login
//
//	@Summary		Log in
//	@Description	Checks e-mail, password and role. A wrong value in any of them answers the same invalid_credentials error.
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		panelsdk.LoginRequest	true	"Credentials and the role the operator logs in as"
//	@Success		200		{object}	panelsdk.LoginResponse	"Session token and operator record"
//	@Failure		400		{object}	panelsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	panelsdk.ErrorResponse	"error, error_description"
//	@Failure		429		{object}	panelsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/session/login [post].
func (h *SessionHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req panelsdk.LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w, err)
		return
	}

	sess, err := h.AuthService.Login(r.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		writeServiceError(w, r, err, "log in")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, panelsdk.LoginResponse{
		AccessToken: sess.Token,
		TokenType:   "Bearer",
		ExpiresIn:   int(time.Until(sess.ExpiresAt).Seconds()),
		User:        toUserDTO(sess.User),
	})
}

// HandleMe handles GET /v1/session/me
//
//	@Summary		Current operator
//	@Description	Returns the operator behind the bearer token and the scopes the token carries.
//	@Tags			Session
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string					true	"Bearer token"
//	@Success		200				{object}	panelsdk.MeResponse		"user, scopes"
//	@Failure		401				{object}	panelsdk.ErrorResponse	"error, error_description"
//	@Failure		404				{object}	panelsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/session/me [get].
func (h *SessionHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := httpx.ClaimsFromContext(ctx)
	if !ok {
		slogx.FromContext(ctx).Error("claims missing from authenticated request")
		writeError(w, http.StatusUnauthorized, panelsdk.ErrorCodeInvalidToken, "Missing session")
		return
	}

	u, err := h.AuthService.CurrentUser(ctx, claims.Subject)
	if err != nil {
		writeServiceError(w, r, err, "load current user")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, panelsdk.MeResponse{
		User:   toUserDTO(u),
		Scopes: claims.Scopes,
	})
}
