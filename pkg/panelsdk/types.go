package panelsdk

import (
	"github.com/aussiebroadwan/pandda/pkg/dialog"
	"github.com/aussiebroadwan/pandda/pkg/jwtx"
)

// ============================================================================
// Error Types
// ============================================================================

// ErrorResponse is the error body of every failed request.
type ErrorResponse struct {
	// Error is the machine readable code (e.g., "not_found", "invalid_token")
	Error string `json:"error"`

	// ErrorDescription is the message shown to the operator
	ErrorDescription string `json:"error_description"`
}

// ValidationErrorResponse is returned with 422 when a record breaks a rule.
type ValidationErrorResponse struct {
	// Code is always "validation_error"
	Code string `json:"code"`

	// Message is the operator facing message of the first violation
	Message string `json:"message"`

	// Details maps the offending field to its message
	Details map[string]string `json:"details,omitempty"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthChecks reports each readiness dependency as "ok" or "error: ...".
// Store names the driver behind Database.
type HealthChecks struct {
	Store     string `json:"store,omitempty"`
	Database  string `json:"database,omitempty"`
	Operators string `json:"operators,omitempty"`
	Signer    string `json:"signer,omitempty"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`

	// Timezone and Today are the calendar due dates are computed in.
	Timezone string `json:"timezone,omitempty"`
	Today    string `json:"today,omitempty"`

	Checks *HealthChecks `json:"checks,omitempty"`
}

// JWKSResponse is the key set returned from GET /.well-known/jwks.json.
type JWKSResponse jwtx.JWKS

// ============================================================================
// Session Types
// ============================================================================

// LoginRequest is the body of POST /v1/session/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`

	// Role is "master" or "comum" and must match the stored operator
	Role string `json:"role"`
}

// CurrentUser is the operator record the panel keeps under StorageKeyUser.
type CurrentUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name,omitempty"`
}

// CanDelete reports whether the operator may see delete actions.
func (u CurrentUser) CanDelete() bool { return u.Role == "master" }

// LoginResponse carries the session token and the operator it belongs to.
type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	ExpiresIn   int         `json:"expires_in"`
	User        CurrentUser `json:"user"`
}

// MeResponse is returned by GET /v1/session/me.
type MeResponse struct {
	User   CurrentUser `json:"user"`
	Scopes []string    `json:"scopes"`
}

// ============================================================================
// Record Types
// ============================================================================

type AccessPoint struct {
	ID          string `json:"id"`
	AppID       string `json:"app_id"`
	AppName     string `json:"app_name,omitempty"`
	Username    string `json:"username,omitempty"`
	Password    string `json:"password,omitempty"`
	Connections int    `json:"connections"`
}

type ClientRecord struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Phone        string        `json:"phone,omitempty"`
	Email        string        `json:"email,omitempty"`
	DueDate      string        `json:"due_date"` // YYYY-MM-DD
	Notified     bool          `json:"notified"`
	PlanID       string        `json:"plan_id"`
	Screens      int           `json:"screens"`
	Price        float64       `json:"price"`
	AccessPoints []AccessPoint `json:"access_points"`
}

type Plan struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Screens        int     `json:"screens"`
	ValidityMonths int     `json:"validity_months"`
	Price          float64 `json:"price"`
	Notes          string  `json:"notes,omitempty"`
}

type Server struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Alias string `json:"alias,omitempty"`
}

type App struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	AccessCode     string `json:"access_code,omitempty"`
	AndroidURL     string `json:"android_url,omitempty"`
	IOSURL         string `json:"ios_url,omitempty"`
	DownloaderCode string `json:"downloader_code,omitempty"`
	NTDownCode     string `json:"ntdown_code,omitempty"`
	MultipleAccess bool   `json:"multiple_access"`
	ServerID       string `json:"server_id"`
}

type ListClientsResponse struct {
	Clients []ClientRecord `json:"clients"`
}

type ListPlansResponse struct {
	Plans []Plan `json:"plans"`
}

type ListServersResponse struct {
	Servers []Server `json:"servers"`
}

type ListAppsResponse struct {
	Apps []App `json:"apps"`
}

// ============================================================================
// Request Types
// ============================================================================

type AccessPointRequest struct {
	ID          string `json:"id,omitempty"`
	AppID       string `json:"app_id"`
	Username    string `json:"username,omitempty"`
	Password    string `json:"password,omitempty"`
	Connections int    `json:"connections"`
}

// ClientRequest creates or updates a client. On update a nil AccessPoints
// keeps the stored ones.
type ClientRequest struct {
	Name         string               `json:"name"`
	Phone        string               `json:"phone,omitempty"`
	Email        string               `json:"email,omitempty"`
	DueDate      string               `json:"due_date"`
	Notified     bool                 `json:"notified"`
	PlanID       string               `json:"plan_id"`
	Screens      int                  `json:"screens"`
	Price        float64              `json:"price"`
	AccessPoints []AccessPointRequest `json:"access_points"`
}

type PlanRequest struct {
	Name           string  `json:"name"`
	Screens        int     `json:"screens"`
	ValidityMonths int     `json:"validity_months"`
	Price          float64 `json:"price"`
	Notes          string  `json:"notes,omitempty"`
}

type ServerRequest struct {
	Name  string `json:"name"`
	Alias string `json:"alias,omitempty"`
}

// AppRequest creates or updates an app. MultipleAccess must be set.
type AppRequest struct {
	Name           string `json:"name"`
	AccessCode     string `json:"access_code,omitempty"`
	AndroidURL     string `json:"android_url,omitempty"`
	IOSURL         string `json:"ios_url,omitempty"`
	DownloaderCode string `json:"downloader_code,omitempty"`
	NTDownCode     string `json:"ntdown_code,omitempty"`
	MultipleAccess *bool  `json:"multiple_access"`
	ServerID       string `json:"server_id"`
}

// ============================================================================
// Dialog Types
// ============================================================================

// OpenDialogRequest opens the create dialog of Kind, or the edit dialog when
// ID is set.
type OpenDialogRequest struct {
	Kind string `json:"kind"`
	ID   string `json:"id,omitempty"`
}

// DialogEvent is one operator interaction with the active dialog.
type DialogEvent = dialog.Event

// DialogState is the serialised active dialog.
type DialogState = dialog.State

// SaveDialogResponse is returned when a dialog saved and closed. Record is
// the saved Client, Plan, Server or App.
type SaveDialogResponse struct {
	Dialog DialogState `json:"dialog"`
	Record any         `json:"record"`
}

// DialogErrorResponse is returned with 422 when a dialog save failed. The
// dialog stays open and Dialog.Error repeats Message.
type DialogErrorResponse struct {
	ValidationErrorResponse
	Dialog *DialogState `json:"dialog,omitempty"`
}
