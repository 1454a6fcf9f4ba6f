package panelsdk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotLoggedIn is returned when no current user is stored.
var ErrNotLoggedIn = errors.New("panelsdk: not logged in")

// AuthAdapter keeps the current operator in LocalStorage the way the panel
// front end does: the user record under StorageKeyUser, the token next to
// it, and the theme under StorageKeyTheme.
type AuthAdapter struct {
	Client  *Client
	Storage *LocalStorage
}

// Login authenticates against the panel and persists the operator.
func (a *AuthAdapter) Login(ctx context.Context, email, password, role string) (*Session, error) {
	s, err := a.Client.Login(ctx, email, password, role)
	if err != nil {
		return nil, err
	}
	if err := a.SetCurrentUser(s.User()); err != nil {
		return nil, err
	}
	if err := a.Storage.Set(StorageKeyToken, s.Token()); err != nil {
		return nil, err
	}
	return s, nil
}

// Logout forgets the operator and the token. The theme is kept.
func (a *AuthAdapter) Logout() error {
	return a.Storage.Remove(StorageKeyUser, StorageKeyToken)
}

// CurrentUser returns the stored operator. A corrupt record counts as
// logged out.
func (a *AuthAdapter) CurrentUser() (CurrentUser, error) {
	raw, ok := a.Storage.Get(StorageKeyUser)
	if !ok || raw == "" {
		return CurrentUser{}, ErrNotLoggedIn
	}
	var u CurrentUser
	if err := json.Unmarshal([]byte(raw), &u); err != nil || u.ID == "" {
		return CurrentUser{}, ErrNotLoggedIn
	}
	return u, nil
}

// SetCurrentUser stores u as JSON.
func (a *AuthAdapter) SetCurrentUser(u CurrentUser) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("panelsdk: encode user: %w", err)
	}
	return a.Storage.Set(StorageKeyUser, string(raw))
}

// Session restores the stored session.
func (a *AuthAdapter) Session() (*Session, error) {
	u, err := a.CurrentUser()
	if err != nil {
		return nil, err
	}
	token, ok := a.Storage.Get(StorageKeyToken)
	if !ok || token == "" {
		return nil, ErrNotLoggedIn
	}
	return a.Client.NewSession(token, u), nil
}

// CanDelete reports whether delete actions should be shown.
func (a *AuthAdapter) CanDelete() bool {
	u, err := a.CurrentUser()
	return err == nil && u.CanDelete()
}

// Theme returns "dark" or "light". Anything else stored reads as light.
func (a *AuthAdapter) Theme() string {
	if v, _ := a.Storage.Get(StorageKeyTheme); v == "dark" {
		return "dark"
	}
	return "light"
}

// SetTheme stores theme, which must be "dark" or "light".
func (a *AuthAdapter) SetTheme(theme string) error {
	if theme != "dark" && theme != "light" {
		return fmt.Errorf("panelsdk: unknown theme %q", theme)
	}
	return a.Storage.Set(StorageKeyTheme, theme)
}

// ToggleTheme flips the stored theme and returns the new one.
func (a *AuthAdapter) ToggleTheme() (string, error) {
	next := "dark"
	if a.Theme() == "dark" {
		next = "light"
	}
	return next, a.SetTheme(next)
}
