package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/pandda/internal/panel/service"
	"github.com/aussiebroadwan/pandda/pkg/httpx"
	"github.com/aussiebroadwan/pandda/pkg/panelsdk"
)

// ClientsHandler handles the reseller's customer records.
type ClientsHandler struct {
	ClientService *service.ClientService

	// Location is the calendar due_date is read in.
	Location *time.Location
}

// HandleList handles GET /v1/clients
//
//	@Summary		List clients
//	@Description	Returns every client with its access points, ordered by name.
//	@Tags			Clients
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string							true	"Bearer token with records:read scope"
//	@Success		200				{object}	panelsdk.ListClientsResponse	"List of clients"
//	@Failure		401				{object}	panelsdk.ErrorResponse			"error, error_description"
//	@Failure		403				{object}	panelsdk.ErrorResponse			"error, error_description"
//	@Failure		500				{object}	panelsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/clients [get].
func (h *ClientsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	clients, err := h.ClientService.ListClients(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "list clients")
		return
	}

	resp := panelsdk.ListClientsResponse{Clients: make([]panelsdk.ClientRecord, 0, len(clients))}
	for _, c := range clients {
		resp.Clients = append(resp.Clients, toClientDTO(c))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet handles GET /v1/clients/{id}
//
//	@Summary		Get client
//	@Tags			Clients
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string					true	"Bearer token with records:read scope"
//	@Param			id				path		string					true	"Client ID"
//	@Success		200				{object}	panelsdk.ClientRecord			"The client"
//	@Failure		401				{object}	panelsdk.ErrorResponse	"error, error_description"
//	@Failure		404				{object}	panelsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/clients/{id} [get].
func (h *ClientsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	c, err := h.ClientService.GetClient(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "get client")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toClientDTO(c))
}

// HandleCreate handles POST /v1/clients
//
//	@Summary		Create client
//	@Description	Creates a client. The connections of its access points must add up to its screens.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string								true	"Bearer token with records:write scope"
//	@Param			request			body		panelsdk.ClientRequest				true	"Client"
//	@Success		201				{object}	panelsdk.ClientRecord						"The created client"
//	@Failure		400				{object}	panelsdk.ErrorResponse				"error, error_description"
//	@Failure		401				{object}	panelsdk.ErrorResponse				"error, error_description"
//	@Failure		403				{object}	panelsdk.ErrorResponse				"error, error_description"
//	@Failure		422				{object}	panelsdk.ValidationErrorResponse	"code, message, details"
//	@Router			/v1/clients [post].
func (h *ClientsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decode(w, r)
	if !ok {
		return
	}

	c, err := h.ClientService.CreateClient(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, "create client")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toClientDTO(c))
}

// HandleUpdate handles PUT /v1/clients/{id}
//
//	@Summary		Update client
//	@Description	Overwrites a client. Omitting access_points keeps the stored ones.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string								true	"Bearer token with records:write scope"
//	@Param			id				path		string								true	"Client ID"
//	@Param			request			body		panelsdk.ClientRequest				true	"Client"
//	@Success		200				{object}	panelsdk.ClientRecord						"The updated client"
//	@Failure		400				{object}	panelsdk.ErrorResponse				"error, error_description"
//	@Failure		404				{object}	panelsdk.ErrorResponse				"error, error_description"
//	@Failure		422				{object}	panelsdk.ValidationErrorResponse	"code, message, details"
//	@Router			/v1/clients/{id} [put].
func (h *ClientsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decode(w, r)
	if !ok {
		return
	}

	c, err := h.ClientService.UpdateClient(r.Context(), r.PathValue("id"), in)
	if err != nil {
		writeServiceError(w, r, err, "update client")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toClientDTO(c))
}

// HandleDelete handles DELETE /v1/clients/{id}
//
//	@Summary		Delete client
//	@Description	Deletes a client and its access points. Master operators only.
//	@Tags			Clients
//	@Security		BearerAuth
//	@Param			Authorization	header	string					true	"Bearer token with records:delete scope"
//	@Param			id				path	string					true	"Client ID"
//	@Success		204				"Client deleted"
//	@Failure		401				{object}	panelsdk.ErrorResponse	"error, error_description"
//	@Failure		403				{object}	panelsdk.ErrorResponse	"error, error_description"
//	@Failure		404				{object}	panelsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/clients/{id} [delete].
func (h *ClientsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.ClientService.DeleteClient(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "delete client")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ClientsHandler) decode(w http.ResponseWriter, r *http.Request) (service.ClientInput, bool) {
	var req panelsdk.ClientRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w, err)
		return service.ClientInput{}, false
	}
	in, err := toClientInput(req, h.Location)
	if err != nil {
		writeError(w, http.StatusBadRequest, panelsdk.ErrorCodeInvalidRequest, "due_date must be YYYY-MM-DD")
		return service.ClientInput{}, false
	}
	return in, true
}
