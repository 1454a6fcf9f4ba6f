package panelsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error codes written by the panel API.
const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeInvalidToken       = "invalid_token"
	ErrorCodeInsufficientScope  = "insufficient_scope"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeConflict           = "conflict"
	ErrorCodeValidation         = "validation_error"
	ErrorCodeNoDialog           = "no_active_dialog"
	ErrorCodeRateLimited        = "rate_limit_exceeded"
	ErrorCodeServerError        = "server_error"
)

// APIError is a non-2xx answer from the panel.
type APIError struct {
	StatusCode  int
	Code        string
	Description string

	// Details holds per-field messages of a validation error.
	Details map[string]string

	// Dialog is set when a dialog save failed; it carries the inline error.
	Dialog *DialogState
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// Is matches APIErrors by code so callers can errors.Is against the
// sentinels below.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	return ok && t.Code == e.Code
}

var (
	ErrInvalidCredentials = &APIError{Code: ErrorCodeInvalidCredentials}
	ErrInvalidToken       = &APIError{Code: ErrorCodeInvalidToken}
	ErrInsufficientScope  = &APIError{Code: ErrorCodeInsufficientScope}
	ErrNotFound           = &APIError{Code: ErrorCodeNotFound}
	ErrValidation         = &APIError{Code: ErrorCodeValidation}
	ErrNoDialog           = &APIError{Code: ErrorCodeNoDialog}
)

// parseErrorResponse turns an error body into an *APIError. It returns nil
// for 2xx responses.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	var valErr DialogErrorResponse
	if err := json.Unmarshal(body, &valErr); err == nil && valErr.Code != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        valErr.Code,
			Description: valErr.Message,
			Details:     valErr.Details,
			Dialog:      valErr.Dialog,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
