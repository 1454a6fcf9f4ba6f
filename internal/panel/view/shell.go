package view

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/aussiebroadwan/pandda/internal/panel/domain"
)

// Theme is the colour scheme of the panel.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme maps anything but "dark" to the light theme.
func ParseTheme(s string) Theme {
	if Theme(strings.ToLower(strings.TrimSpace(s))) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Navigable views.
const (
	ViewDashboard = "dashboard"
	ViewClients   = "clients"
	ViewPlans     = "plans"
	ViewServers   = "servers"
	ViewApps      = "apps"
)

type MenuItem struct {
	View     string `json:"view"`
	Label    string `json:"label"`
	Selected bool   `json:"selected,omitempty"`
}

var menu = []MenuItem{
	{View: ViewDashboard, Label: "Dashboard"},
	{View: ViewClients, Label: "Clientes"},
	{View: ViewPlans, Label: "Planos"},
	{View: ViewServers, Label: "Servidores"},
	{View: ViewApps, Label: "Apps"},
}

// Profile is the operator badge shown in the topbar and sidebar footer.
type Profile struct {
	DisplayName string `json:"display_name"`
	Email       string `json:"email,omitempty"`
	Role        string `json:"role,omitempty"`
	RoleLabel   string `json:"role_label"`
	Initials    string `json:"initials"`
}

type Topbar struct {
	Brand       string  `json:"brand"`
	Profile     Profile `json:"profile"`
	ThemeToggle Theme   `json:"theme_toggle"`
	Logout      string  `json:"logout"`
}

type Dashboard struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Shell is the whole frame around the active view.
type Shell struct {
	Topbar  Topbar     `json:"topbar"`
	Menu    []MenuItem `json:"menu"`
	Theme   Theme      `json:"theme"`
	View    string     `json:"view"`
	Content any        `json:"content,omitempty"`
	Error   string     `json:"error,omitempty"`
}

// ProfileFor builds the badge for v. The zero Viewer is anonymous.
func ProfileFor(v Viewer) Profile {
	if v.UserID == "" && v.Email == "" {
		return Profile{DisplayName: "Anônimo", RoleLabel: "-", Initials: "AN"}
	}
	display := v.Name
	if display == "" {
		display = v.Email
	}
	if display == "" {
		display = v.UserID
	}
	label := "Comum"
	if v.Role == domain.RoleMaster {
		label = "Master"
	}
	return Profile{
		DisplayName: display,
		Email:       v.Email,
		Role:        v.Role.String(),
		RoleLabel:   label,
		Initials:    Initials(display),
	}
}

// Initials takes two letters from a name or the local part of an e-mail.
func Initials(text string) string {
	if text == "" {
		return "U"
	}
	local, _, _ := strings.Cut(text, "@")
	parts := strings.FieldsFunc(local, func(r rune) bool {
		return unicode.IsSpace(r) || r == '.' || r == '-' || r == '_'
	})
	switch len(parts) {
	case 0:
		return "U"
	case 1:
		r := []rune(parts[0])
		return strings.ToUpper(string(r[:min(2, len(r))]))
	default:
		a, b := []rune(parts[0]), []rune(parts[1])
		return strings.ToUpper(string(a[0]) + string(b[0]))
	}
}

// Shell renders the frame for v with view active. An unknown view keeps the
// frame and reports ErrUnknownView's message as content error.
func (r *Renderer) Shell(ctx context.Context, v Viewer, view string, theme Theme, q ClientQuery) (Shell, error) {
	if view == "" {
		view = ViewDashboard
	}
	sh := Shell{
		Topbar: Topbar{
			Brand:       "Painel",
			Profile:     ProfileFor(v),
			ThemeToggle: theme.Toggle(),
			Logout:      "Sair",
		},
		Theme: theme,
		View:  view,
	}
	for _, m := range menu {
		m.Selected = m.View == view
		sh.Menu = append(sh.Menu, m)
	}

	content, err := r.View(ctx, v, view, q)
	switch {
	case err == nil:
		sh.Content = content
	case errors.Is(err, ErrUnknownView):
		sh.Error = err.Error()
	default:
		return Shell{}, err
	}
	return sh, nil
}

// View renders the content of one navigable view.
func (r *Renderer) View(ctx context.Context, v Viewer, view string, q ClientQuery) (any, error) {
	switch view {
	case ViewDashboard:
		return Dashboard{Title: "Dashboard", Body: "Visão geral do sistema (protótipo)."}, nil
	case ViewClients:
		return r.ClientList(ctx, v, q)
	case ViewPlans:
		return r.PlanList(ctx, v)
	case ViewServers:
		return r.ServerList(ctx, v)
	case ViewApps:
		return r.AppList(ctx, v)
	default:
		return nil, ErrUnknownView
	}
}
