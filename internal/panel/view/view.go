// Package view turns panel records into role-aware view models and builds
// the create/edit dialogs for each entity.
package view

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aussiebroadwan/pandda/internal/panel/domain"
	"github.com/aussiebroadwan/pandda/internal/panel/service"
	"github.com/aussiebroadwan/pandda/pkg/datex"
)

// ErrUnknownView is returned for a view or dialog kind the panel does not have.
var ErrUnknownView = errors.New("View não implementada")

// NoteLimit is how many characters of a plan name or note a card shows.
const NoteLimit = 100

// Action is a row control.
type Action string

const (
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// Viewer is the operator a view is rendered for.
type Viewer struct {
	UserID string
	Email  string
	Name   string
	Role   domain.Role
}

// Actions returns the row controls the viewer may use.
func (v Viewer) Actions() []Action {
	if v.Role.CanDelete() {
		return []Action{ActionEdit, ActionDelete}
	}
	return []Action{ActionEdit}
}

// Renderer builds views and dialogs on top of the services.
type Renderer struct {
	Clients *service.ClientService
	Plans   *service.PlanService
	Servers *service.ServerService
	Apps    *service.AppService

	// Location is the operator's calendar; due dates and "today" use it.
	Location *time.Location
	Now      func() time.Time
}

func (r *Renderer) loc() *time.Location {
	if r.Location != nil {
		return r.Location
	}
	return time.Local
}

// Today is midnight of the current day in the renderer's location.
func (r *Renderer) Today() time.Time {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	return datex.StartOfDay(now().In(r.loc()))
}

// Truncate shortens s to at most limit runes, ending with an ellipsis when
// it had to cut.
func Truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:limit-1])) + "…"
}
