package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/pandda/internal/panel/domain"
	"github.com/aussiebroadwan/pandda/internal/panel/view"
	"github.com/aussiebroadwan/pandda/pkg/httpx"
	"github.com/aussiebroadwan/pandda/pkg/panelsdk"
)

// ViewsHandler serves the rendered view models of the navigation shell.
type ViewsHandler struct {
	Renderer *view.Renderer
}

// viewerFrom builds the viewer from the session claims. A role the panel
// does not know renders as comum so it never gains delete actions.
func viewerFrom(r *http.Request) (view.Viewer, bool) {
	claims, ok := httpx.ClaimsFromContext(r.Context())
	if !ok {
		return view.Viewer{}, false
	}
	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		role = domain.RoleComum
	}
	return view.Viewer{
		UserID: claims.Subject,
		Email:  claims.Email,
		Name:   claims.Name,
		Role:   role,
	}, true
}

// HandleView handles GET /v1/views/{name}
//
//	@Summary		Render a view
//	@Description	Renders clients, plans, servers, apps or dashboard for the caller's role. The name "shell" renders the whole frame
//	@Description	with the view given in ?view= as content; an unknown view keeps the frame and reports "View não implementada".
//	@Tags			Views
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string					true	"Bearer token with records:read scope"
//	@Param			name			path		string					true	"View name"
//	@Param			view			query		string					false	"Active view of the shell"
//	@Param			theme			query		string					false	"light or dark"
//	@Param			filter			query		string					false	"all, vencendo, vencidos30 or vencidosMais30"
//	@Param			only_notified	query		bool					false	"Only clients already notified"
//	@Success		200				{object}	object					"The view model"
//	@Failure		400				{object}	panelsdk.ErrorResponse	"error, error_description"
//	@Failure		404				{object}	panelsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/views/{name} [get].
func (h *ViewsHandler) HandleView(w http.ResponseWriter, r *http.Request) {
	v, ok := viewerFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, panelsdk.ErrorCodeInvalidToken, "Missing session")
		return
	}

	query := r.URL.Query()
	filter, err := view.ParseClientFilter(query.Get("filter"))
	if err != nil {
		writeError(w, http.StatusBadRequest, panelsdk.ErrorCodeInvalidRequest, err.Error())
		return
	}
	onlyNotified := false
	if s := query.Get("only_notified"); s != "" {
		if onlyNotified, err = strconv.ParseBool(s); err != nil {
			writeError(w, http.StatusBadRequest, panelsdk.ErrorCodeInvalidRequest, "only_notified must be a boolean")
			return
		}
	}
	q := view.ClientQuery{Filter: filter, OnlyNotified: onlyNotified}

	var out any
	if name := r.PathValue("name"); name == "shell" {
		out, err = h.Renderer.Shell(r.Context(), v, query.Get("view"), view.ParseTheme(query.Get("theme")), q)
	} else {
		out, err = h.Renderer.View(r.Context(), v, name, q)
	}
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, out)
	case errors.Is(err, view.ErrUnknownView):
		writeError(w, http.StatusNotFound, panelsdk.ErrorCodeNotFound, err.Error())
	default:
		writeServiceError(w, r, err, "render view")
	}
}
