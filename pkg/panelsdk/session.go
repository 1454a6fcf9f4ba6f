package panelsdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// Session is an authenticated connection to the panel. It is safe for
// concurrent use; it holds no mutable state after creation.
type Session struct {
	client *Client
	token  string
	user   CurrentUser
}

// Token returns the bearer token of the session.
func (s *Session) Token() string { return s.token }

// User returns the operator the session was opened for.
func (s *Session) User() CurrentUser { return s.user }

// call sends an authenticated request and decodes a response with status
// want into T.
func call[T any](ctx context.Context, s *Session, method, path string, body any, want int) (T, error) {
	var out T
	resp, err := s.client.doRequest(ctx, method, path, s.token, body)
	if err != nil {
		return out, err
	}
	if err := decodeJSON(resp, &out, want); err != nil {
		return out, err
	}
	return out, nil
}

func (s *Session) remove(ctx context.Context, path string) error {
	resp, err := s.client.doRequest(ctx, http.MethodDelete, path, s.token, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// Me calls GET /v1/session/me.
func (s *Session) Me(ctx context.Context) (MeResponse, error) {
	return call[MeResponse](ctx, s, http.MethodGet, "/v1/session/me", nil, http.StatusOK)
}

// ============================================================================
// Clients
// ============================================================================

func (s *Session) ListClients(ctx context.Context) ([]ClientRecord, error) {
	out, err := call[ListClientsResponse](ctx, s, http.MethodGet, "/v1/clients", nil, http.StatusOK)
	return out.Clients, err
}

func (s *Session) GetClient(ctx context.Context, id string) (ClientRecord, error) {
	return call[ClientRecord](ctx, s, http.MethodGet, "/v1/clients/"+url.PathEscape(id), nil, http.StatusOK)
}

func (s *Session) CreateClient(ctx context.Context, req ClientRequest) (ClientRecord, error) {
	return call[ClientRecord](ctx, s, http.MethodPost, "/v1/clients", req, http.StatusCreated)
}

func (s *Session) UpdateClient(ctx context.Context, id string, req ClientRequest) (ClientRecord, error) {
	return call[ClientRecord](ctx, s, http.MethodPut, "/v1/clients/"+url.PathEscape(id), req, http.StatusOK)
}

// DeleteClient requires a master session.
func (s *Session) DeleteClient(ctx context.Context, id string) error {
	return s.remove(ctx, "/v1/clients/"+url.PathEscape(id))
}

// ============================================================================
// Plans
// ============================================================================

func (s *Session) ListPlans(ctx context.Context) ([]Plan, error) {
	out, err := call[ListPlansResponse](ctx, s, http.MethodGet, "/v1/plans", nil, http.StatusOK)
	return out.Plans, err
}

func (s *Session) CreatePlan(ctx context.Context, req PlanRequest) (Plan, error) {
	return call[Plan](ctx, s, http.MethodPost, "/v1/plans", req, http.StatusCreated)
}

func (s *Session) UpdatePlan(ctx context.Context, id string, req PlanRequest) (Plan, error) {
	return call[Plan](ctx, s, http.MethodPut, "/v1/plans/"+url.PathEscape(id), req, http.StatusOK)
}

func (s *Session) DeletePlan(ctx context.Context, id string) error {
	return s.remove(ctx, "/v1/plans/"+url.PathEscape(id))
}

// ============================================================================
// Servers and apps
// ============================================================================

func (s *Session) ListServers(ctx context.Context) ([]Server, error) {
	out, err := call[ListServersResponse](ctx, s, http.MethodGet, "/v1/servers", nil, http.StatusOK)
	return out.Servers, err
}

func (s *Session) CreateServer(ctx context.Context, req ServerRequest) (Server, error) {
	return call[Server](ctx, s, http.MethodPost, "/v1/servers", req, http.StatusCreated)
}

func (s *Session) DeleteServer(ctx context.Context, id string) error {
	return s.remove(ctx, "/v1/servers/"+url.PathEscape(id))
}

func (s *Session) ListApps(ctx context.Context) ([]App, error) {
	out, err := call[ListAppsResponse](ctx, s, http.MethodGet, "/v1/apps", nil, http.StatusOK)
	return out.Apps, err
}

func (s *Session) CreateApp(ctx context.Context, req AppRequest) (App, error) {
	return call[App](ctx, s, http.MethodPost, "/v1/apps", req, http.StatusCreated)
}

func (s *Session) DeleteApp(ctx context.Context, id string) error {
	return s.remove(ctx, "/v1/apps/"+url.PathEscape(id))
}

// ============================================================================
// Views
// ============================================================================

// View fetches a rendered view model (clients, plans, servers, apps or
// shell). params become the query string.
func (s *Session) View(ctx context.Context, name string, params url.Values) (json.RawMessage, error) {
	path := "/v1/views/" + url.PathEscape(name)
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	return call[json.RawMessage](ctx, s, http.MethodGet, path, nil, http.StatusOK)
}

// ============================================================================
// Dialogs
// ============================================================================

// OpenDialog opens the create dialog of kind, or the edit dialog of id.
func (s *Session) OpenDialog(ctx context.Context, kind, id string) (DialogState, error) {
	return call[DialogState](ctx, s, http.MethodPost, "/v1/dialogs", OpenDialogRequest{Kind: kind, ID: id}, http.StatusCreated)
}

func (s *Session) ActiveDialog(ctx context.Context) (DialogState, error) {
	return call[DialogState](ctx, s, http.MethodGet, "/v1/dialogs/active", nil, http.StatusOK)
}

// Dispatch sends one interaction to the active dialog and returns its new
// state.
func (s *Session) Dispatch(ctx context.Context, e DialogEvent) (DialogState, error) {
	return call[DialogState](ctx, s, http.MethodPost, "/v1/dialogs/active/events", e, http.StatusOK)
}

// SaveDialog saves the active dialog. On failure the returned *APIError
// carries the dialog state with its inline error.
func (s *Session) SaveDialog(ctx context.Context) (SaveDialogResponse, error) {
	return call[SaveDialogResponse](ctx, s, http.MethodPost, "/v1/dialogs/active/save", nil, http.StatusOK)
}

func (s *Session) CancelDialog(ctx context.Context) error {
	resp, err := s.client.doRequest(ctx, http.MethodPost, "/v1/dialogs/active/cancel", s.token, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
