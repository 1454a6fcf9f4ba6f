package panelsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Client talks to a panel server. It covers the unauthenticated endpoints
// and creates Sessions.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the panel at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// GetLiveness calls GET /livez.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/livez")
}

// GetReadiness calls GET /readyz. A degraded server answers 503 with the
// failing checks, which is returned as an error.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/readyz")
}

func (c *Client) health(ctx context.Context, path string) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return nil, err
	}
	var out HealthResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetJWKS fetches the public keys session tokens are signed with.
func (c *Client) GetJWKS(ctx context.Context) (*JWKSResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/.well-known/jwks.json", "", nil)
	if err != nil {
		return nil, err
	}
	var out JWKSResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates an operator and returns a Session. Wrong e-mail,
// password or role all yield ErrInvalidCredentials.
func (c *Client) Login(ctx context.Context, email, password, role string) (*Session, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/session/login", "", LoginRequest{
		Email:    email,
		Password: password,
		Role:     role,
	})
	if err != nil {
		return nil, err
	}

	var out LoginResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return c.NewSession(out.AccessToken, out.User), nil
}

// NewSession wraps a token obtained earlier, e.g. one restored from
// LocalStorage.
func (c *Client) NewSession(token string, user CurrentUser) *Session {
	return &Session{client: c, token: token, user: user}
}
