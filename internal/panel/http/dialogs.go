package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/pandda/internal/panel/service"
	"github.com/aussiebroadwan/pandda/internal/panel/view"
	"github.com/aussiebroadwan/pandda/pkg/dialog"
	"github.com/aussiebroadwan/pandda/pkg/httpx"
	"github.com/aussiebroadwan/pandda/pkg/panelsdk"
	"github.com/aussiebroadwan/pandda/pkg/slogx"
)

const msgNoDialog = "Nenhum modal aberto"

// DialogsHandler drives the create/edit dialogs. Each operator has at most
// one dialog open; opening another replaces it.
type DialogsHandler struct {
	Renderer *view.Renderer
	Dialogs  *dialog.Registry
}

func (h *DialogsHandler) manager(w http.ResponseWriter, r *http.Request) (*dialog.Manager, bool) {
	claims, ok := httpx.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, panelsdk.ErrorCodeInvalidToken, "Missing session")
		return nil, false
	}
	return h.Dialogs.For(claims.Subject), true
}

func (h *DialogsHandler) active(w http.ResponseWriter, r *http.Request) (*dialog.Dialog, bool) {
	m, ok := h.manager(w, r)
	if !ok {
		return nil, false
	}
	d, err := m.Active()
	if err != nil {
		writeError(w, http.StatusNotFound, panelsdk.ErrorCodeNoDialog, msgNoDialog)
		return nil, false
	}
	return d, true
}

// HandleOpen handles POST /v1/dialogs
//
//	@Summary		Open a dialog
//	@Description	Opens the create dialog of kind (client, plan, server or app), or its edit dialog when id is set.
//	@Tags			Dialogs
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string						true	"Bearer token with records:write scope"
//	@Param			request			body		panelsdk.OpenDialogRequest	true	"Dialog kind and record"
//	@Success		201				{object}	panelsdk.DialogState		"The opened dialog"
//	@Failure		400				{object}	panelsdk.ErrorResponse		"error, error_description"
//	@Failure		404				{object}	panelsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/dialogs [post].
func (h *DialogsHandler) HandleOpen(w http.ResponseWriter, r *http.Request) {
	m, ok := h.manager(w, r)
	if !ok {
		return
	}

	var req panelsdk.OpenDialogRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w, err)
		return
	}

	d, err := h.Renderer.OpenDialog(r.Context(), m, req.Kind, req.ID)
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusCreated, d.Snapshot())
	case errors.Is(err, view.ErrUnknownView):
		writeError(w, http.StatusBadRequest, panelsdk.ErrorCodeInvalidRequest, err.Error())
	default:
		writeServiceError(w, r, err, "open dialog")
	}
}

// HandleActive handles GET /v1/dialogs/active
//
//	@Summary		Active dialog
//	@Tags			Dialogs
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string					true	"Bearer token with records:write scope"
//	@Success		200				{object}	panelsdk.DialogState	"The open dialog"
//	@Failure		404				{object}	panelsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/dialogs/active [get].
func (h *DialogsHandler) HandleActive(w http.ResponseWriter, r *http.Request) {
	d, ok := h.active(w, r)
	if !ok {
		return
	}
	httpx.WriteJSON(w, http.StatusOK, d.Snapshot())
}

// HandleEvent handles POST /v1/dialogs/active/events
//
//	@Summary		Dispatch a dialog event
//	@Description	Applies one interaction (input, paste, focus, blur, key, check, action, select_item, overlay or close)
//	@Description	and returns the resulting state. Closing events answer with the final, closed state.
//	@Tags			Dialogs
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string					true	"Bearer token with records:write scope"
//	@Param			request			body		panelsdk.DialogEvent	true	"Event"
//	@Success		200				{object}	panelsdk.DialogState	"The dialog after the event"
//	@Failure		400				{object}	panelsdk.ErrorResponse	"error, error_description"
//	@Failure		404				{object}	panelsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/dialogs/active/events [post].
func (h *DialogsHandler) HandleEvent(w http.ResponseWriter, r *http.Request) {
	d, ok := h.active(w, r)
	if !ok {
		return
	}

	var e panelsdk.DialogEvent
	if err := httpx.DecodeJSON(r, &e); err != nil {
		writeBadJSON(w, err)
		return
	}

	err := d.Dispatch(r.Context(), e)
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, d.Snapshot())
	case errors.Is(err, dialog.ErrClosed):
		writeError(w, http.StatusNotFound, panelsdk.ErrorCodeNoDialog, msgNoDialog)
	default:
		// Unknown fields or events, rejected keys and values outside a
		// select's options. Action failures never get here; they are
		// reported inline as button feedback.
		writeError(w, http.StatusBadRequest, panelsdk.ErrorCodeInvalidRequest, err.Error())
	}
}

// HandleSave handles POST /v1/dialogs/active/save
//
//	@Summary		Save the active dialog
//	@Description	Collects and persists the form. On success the dialog closes and the saved record is returned.
//	@Description	On failure the dialog stays open and the error is shown inline.
//	@Tags			Dialogs
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string							true	"Bearer token with records:write scope"
//	@Success		200				{object}	panelsdk.SaveDialogResponse		"Closed dialog and saved record"
//	@Failure		404				{object}	panelsdk.ErrorResponse			"error, error_description"
//	@Failure		409				{object}	panelsdk.ErrorResponse			"error, error_description"
//	@Failure		422				{object}	panelsdk.DialogErrorResponse	"code, message, details, dialog"
//	@Router			/v1/dialogs/active/save [post].
func (h *DialogsHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	d, ok := h.active(w, r)
	if !ok {
		return
	}

	opened := d.Snapshot()
	ctx := slogx.WithDialog(r.Context(), opened.Kind, opened.RecordID)
	log := slogx.FromContext(ctx)

	err := d.Save(ctx)
	switch {
	case err == nil:
		log.Info("dialog saved")
		httpx.WriteJSON(w, http.StatusOK, panelsdk.SaveDialogResponse{
			Dialog: d.Snapshot(),
			Record: toRecordDTO(d.Result()),
		})
	case errors.Is(err, dialog.ErrSaveInProgress):
		writeError(w, http.StatusConflict, panelsdk.ErrorCodeConflict, err.Error())
	case errors.Is(err, dialog.ErrClosed):
		writeError(w, http.StatusNotFound, panelsdk.ErrorCodeNoDialog, msgNoDialog)
	default:
		log.Debug("dialog save rejected", "error", err)
		st := d.Snapshot()
		body := panelsdk.DialogErrorResponse{
			ValidationErrorResponse: panelsdk.ValidationErrorResponse{
				Code:    panelsdk.ErrorCodeValidation,
				Message: err.Error(),
			},
			Dialog: &st,
		}
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			body.Details = map[string]string{ve.Field: ve.Message}
		}
		httpx.WriteJSON(w, http.StatusUnprocessableEntity, body)
	}
}

// HandleCancel handles POST /v1/dialogs/active/cancel
//
//	@Summary		Cancel the active dialog
//	@Description	Same as the cancel or close control: discards the form.
//	@Tags			Dialogs
//	@Security		BearerAuth
//	@Param			Authorization	header	string	true	"Bearer token with records:write scope"
//	@Success		204				"Dialog cancelled"
//	@Failure		404				{object}	panelsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/dialogs/active/cancel [post].
func (h *DialogsHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	d, ok := h.active(w, r)
	if !ok {
		return
	}
	d.Cancel()
	w.WriteHeader(http.StatusNoContent)
}

// HandleClose handles DELETE /v1/dialogs/active
//
//	@Summary		Close the active dialog
//	@Description	Closes the dialog without running its cancel hook. Closing when nothing is open is not an error.
//	@Tags			Dialogs
//	@Security		BearerAuth
//	@Param			Authorization	header	string	true	"Bearer token with records:write scope"
//	@Success		204				"Dialog closed"
//	@Router			/v1/dialogs/active [delete].
func (h *DialogsHandler) HandleClose(w http.ResponseWriter, r *http.Request) {
	m, ok := h.manager(w, r)
	if !ok {
		return
	}
	m.Close()
	w.WriteHeader(http.StatusNoContent)
}
