package http

import (
	"net/http"

	"github.com/aussiebroadwan/pandda/internal/panel/service"
	"github.com/aussiebroadwan/pandda/pkg/httpx"
	"github.com/aussiebroadwan/pandda/pkg/panelsdk"
)

// AppsHandler handles the player apps clients install.
type AppsHandler struct {
	AppService *service.AppService
}

// HandleList handles GET /v1/apps
//
//	@Summary		List apps
//	@Tags			Apps
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string						true	"Bearer token with records:read scope"
//	@Success		200				{object}	panelsdk.ListAppsResponse	"List of apps"
//	@Failure		401				{object}	panelsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/apps [get].
func (h *AppsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	apps, err := h.AppService.ListApps(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "list apps")
		return
	}

	resp := panelsdk.ListAppsResponse{Apps: make([]panelsdk.App, 0, len(apps))}
	for _, a := range apps {
		resp.Apps = append(resp.Apps, toAppDTO(a))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet handles GET /v1/apps/{id}
//
//	@Summary		Get app
//	@Tags			Apps
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string					true	"Bearer token with records:read scope"
//	@Param			id				path		string					true	"App ID"
//	@Success		200				{object}	panelsdk.App			"The app"
//	@Failure		404				{object}	panelsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/apps/{id} [get].
func (h *AppsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	a, err := h.AppService.GetApp(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "get app")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAppDTO(a))
}

// HandleCreate handles POST /v1/apps
//
//	@Summary		Create app
//	@Description	multiple_access must be sent explicitly as true or false.
//	@Tags			Apps
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string								true	"Bearer token with records:write scope"
//	@Param			request			body		panelsdk.AppRequest					true	"App"
//	@Success		201				{object}	panelsdk.App						"The created app"
//	@Failure		422				{object}	panelsdk.ValidationErrorResponse	"code, message, details"
//	@Router			/v1/apps [post].
func (h *AppsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req panelsdk.AppRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w, err)
		return
	}

	a, err := h.AppService.CreateApp(r.Context(), toAppInput(req))
	if err != nil {
		writeServiceError(w, r, err, "create app")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toAppDTO(a))
}

// HandleUpdate handles PUT /v1/apps/{id}
//
//	@Summary		Update app
//	@Tags			Apps
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string								true	"Bearer token with records:write scope"
//	@Param			id				path		string								true	"App ID"
//	@Param			request			body		panelsdk.AppRequest					true	"App"
//	@Success		200				{object}	panelsdk.App						"The updated app"
//	@Failure		404				{object}	panelsdk.ErrorResponse				"error, error_description"
//	@Failure		422				{object}	panelsdk.ValidationErrorResponse	"code, message, details"
//	@Router			/v1/apps/{id} [put].
func (h *AppsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req panelsdk.AppRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w, err)
		return
	}

	a, err := h.AppService.UpdateApp(r.Context(), r.PathValue("id"), toAppInput(req))
	if err != nil {
		writeServiceError(w, r, err, "update app")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAppDTO(a))
}

// HandleDelete handles DELETE /v1/apps/{id}
//
//	@Summary		Delete app
//	@Description	Fails with 409 while an access point still uses the app.
//	@Tags			Apps
//	@Security		BearerAuth
//	@Param			Authorization	header	string	true	"Bearer token with records:delete scope"
//	@Param			id				path	string	true	"App ID"
//	@Success		204				"App deleted"
//	@Failure		404				{object}	panelsdk.ErrorResponse	"error, error_description"
//	@Failure		409				{object}	panelsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/apps/{id} [delete].
func (h *AppsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.AppService.DeleteApp(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "delete app")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
