package http

import (
	"net/http"

	"github.com/aussiebroadwan/pandda/internal/panel/service"
	"github.com/aussiebroadwan/pandda/pkg/httpx"
	"github.com/aussiebroadwan/pandda/pkg/panelsdk"
)

// ServersHandler handles the IPTV servers apps connect to.
type ServersHandler struct {
	ServerService *service.ServerService
}

// HandleList handles GET /v1/servers
//
//	@Summary		List servers
//	@Tags			Servers
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string						true	"Bearer token with records:read scope"
//	@Success		200				{object}	panelsdk.ListServersResponse	"List of servers"
//	@Failure		401				{object}	panelsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/servers [get].
func (h *ServersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	servers, err := h.ServerService.ListServers(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "list servers")
		return
	}

	resp := panelsdk.ListServersResponse{Servers: make([]panelsdk.Server, 0, len(servers))}
	for _, s := range servers {
		resp.Servers = append(resp.Servers, toServerDTO(s))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet handles GET /v1/servers/{id}
//
//	@Summary		Get server
//	@Tags			Servers
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string					true	"Bearer token with records:read scope"
//	@Param			id				path		string					true	"Server ID"
//	@Success		200				{object}	panelsdk.Server			"The server"
//	@Failure		404				{object}	panelsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/servers/{id} [get].
func (h *ServersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	s, err := h.ServerService.GetServer(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "get server")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toServerDTO(s))
}

// HandleCreate handles POST /v1/servers
//
//	@Summary		Create server
//	@Tags			Servers
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string								true	"Bearer token with records:write scope"
//	@Param			request			body		panelsdk.ServerRequest				true	"Server"
//	@Success		201				{object}	panelsdk.Server						"The created server"
//	@Failure		422				{object}	panelsdk.ValidationErrorResponse	"code, message, details"
//	@Router			/v1/servers [post].
func (h *ServersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req panelsdk.ServerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w, err)
		return
	}

	s, err := h.ServerService.CreateServer(r.Context(), toServerInput(req))
	if err != nil {
		writeServiceError(w, r, err, "create server")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toServerDTO(s))
}

// HandleUpdate handles PUT /v1/servers/{id}
//
//	@Summary		Update server
//	@Tags			Servers
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string								true	"Bearer token with records:write scope"
//	@Param			id				path		string								true	"Server ID"
//	@Param			request			body		panelsdk.ServerRequest				true	"Server"
//	@Success		200				{object}	panelsdk.Server						"The updated server"
//	@Failure		404				{object}	panelsdk.ErrorResponse				"error, error_description"
//	@Failure		422				{object}	panelsdk.ValidationErrorResponse	"code, message, details"
//	@Router			/v1/servers/{id} [put].
func (h *ServersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req panelsdk.ServerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w, err)
		return
	}

	s, err := h.ServerService.UpdateServer(r.Context(), r.PathValue("id"), toServerInput(req))
	if err != nil {
		writeServiceError(w, r, err, "update server")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toServerDTO(s))
}

// HandleDelete handles DELETE /v1/servers/{id}
//
//	@Summary		Delete server
//	@Description	Fails with 409 while an app still points at the server.
//	@Tags			Servers
//	@Security		BearerAuth
//	@Param			Authorization	header	string	true	"Bearer token with records:delete scope"
//	@Param			id				path	string	true	"Server ID"
//	@Success		204				"Server deleted"
//	@Failure		404				{object}	panelsdk.ErrorResponse	"error, error_description"
//	@Failure		409				{object}	panelsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/servers/{id} [delete].
func (h *ServersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.ServerService.DeleteServer(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "delete server")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
