package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/pandda/internal/panel/service"
	"github.com/aussiebroadwan/pandda/pkg/httpx"
	"github.com/aussiebroadwan/pandda/pkg/panelsdk"
	"github.com/aussiebroadwan/pandda/pkg/slogx"
)

func writeError(w http.ResponseWriter, status int, code, desc string) {
	httpx.WriteJSON(w, status, panelsdk.ErrorResponse{
		Error:            code,
		ErrorDescription: desc,
	})
}

// writeBadJSON answers a body DecodeJSON refused.
func writeBadJSON(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, httpx.ErrEmptyBody):
		writeError(w, http.StatusBadRequest, panelsdk.ErrorCodeInvalidRequest, "Request body is empty")
	case errors.Is(err, httpx.ErrBodyTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, panelsdk.ErrorCodeInvalidRequest, "Request body is too large")
	default:
		writeError(w, http.StatusBadRequest, panelsdk.ErrorCodeInvalidRequest, "Invalid JSON in request body")
	}
}

// validationBody builds the 422 body for err, or returns false when err is
// not a validation error.
func validationBody(err error) (panelsdk.ValidationErrorResponse, bool) {
	var ve *service.ValidationError
	if !errors.As(err, &ve) {
		return panelsdk.ValidationErrorResponse{}, false
	}
	return panelsdk.ValidationErrorResponse{
		Code:    panelsdk.ErrorCodeValidation,
		Message: ve.Message,
		Details: map[string]string{ve.Field: ve.Message},
	}, true
}

// writeServiceError maps service errors onto status codes. what names the
// operation for the log line of unexpected failures.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, what string) {
	if body, ok := validationBody(err); ok {
		httpx.WriteJSON(w, http.StatusUnprocessableEntity, body)
		return
	}

	switch {
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, panelsdk.ErrorCodeNotFound, err.Error())
	case errors.Is(err, service.ErrInUse), errors.Is(err, service.ErrAlreadyExists):
		writeError(w, http.StatusConflict, panelsdk.ErrorCodeConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, panelsdk.ErrorCodeInvalidCredentials, err.Error())
	default:
		slogx.FromContext(r.Context()).Error("request failed", "op", what, "error", err)
		writeError(w, http.StatusInternalServerError, panelsdk.ErrorCodeServerError, "Failed to "+what)
	}
}
