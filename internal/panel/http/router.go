package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/pandda/internal/panel/domain"
	"github.com/aussiebroadwan/pandda/internal/panel/service"
	"github.com/aussiebroadwan/pandda/internal/panel/store"
	"github.com/aussiebroadwan/pandda/internal/panel/view"
	"github.com/aussiebroadwan/pandda/pkg/dialog"
	"github.com/aussiebroadwan/pandda/pkg/httpx"
	"github.com/aussiebroadwan/pandda/pkg/jwtx"
	"github.com/aussiebroadwan/pandda/pkg/slogx"

	_ "github.com/aussiebroadwan/pandda/api/panel" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	// Location is the operator calendar used to parse due dates.
	Location *time.Location

	store         store.Store
	AuthService   *service.AuthService
	ClientService *service.ClientService
	PlanService   *service.PlanService
	ServerService *service.ServerService
	AppService    *service.AppService
	Renderer      *view.Renderer
	Dialogs       *dialog.Registry
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		Location:     time.Local,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSession()
	r.registerClients()
	r.registerPlans()
	r.registerServers()
	r.registerApps()
	r.registerViews()
	r.registerDialogs()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Pandda Panel API
//	@version		0.1.0
//	@description	Admin panel for IPTV resellers: clients, plans, servers and apps.
//	@description
//	@description				Sessions are EdDSA-signed JWTs; the public keys are served from the JWKS endpoint.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/pandda
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured authenticates the caller, checks scopes and rate limits per user.
func (r *Router) secured(h http.HandlerFunc, limit httpx.RateLimitConfig, scopes ...string) http.Handler {
	mws := []httpx.Middleware{httpx.AuthnMiddleware(r.verifier)}
	if len(scopes) > 0 {
		mws = append(mws, httpx.RequireAnyScope(scopes...))
	}
	mws = append(mws, httpx.RateLimitByUser(limit))
	return httpx.Chain(h, mws...)
}

func (r *Router) registerSession() {
	h := &SessionHandler{AuthService: r.AuthService}

	// POST /login - strict rate limit by IP + email to slow down guessing
	r.Mux.Handle("POST /v1/session/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)

	r.Mux.Handle("GET /v1/session/me", r.secured(h.HandleMe, httpx.LenientLimit))
}

func (r *Router) registerClients() {
	h := &ClientsHandler{ClientService: r.ClientService, Location: r.Location}

	r.Mux.Handle("GET /v1/clients", r.secured(h.HandleList, httpx.ModerateLimit, domain.ScopeRead))
	r.Mux.Handle("GET /v1/clients/{id}", r.secured(h.HandleGet, httpx.ModerateLimit, domain.ScopeRead))
	r.Mux.Handle("POST /v1/clients", r.secured(h.HandleCreate, httpx.ModerateLimit, domain.ScopeWrite))
	r.Mux.Handle("PUT /v1/clients/{id}", r.secured(h.HandleUpdate, httpx.ModerateLimit, domain.ScopeWrite))
	r.Mux.Handle("DELETE /v1/clients/{id}", r.secured(h.HandleDelete, httpx.ModerateLimit, domain.ScopeDelete))
}

func (r *Router) registerPlans() {
	h := &PlansHandler{PlanService: r.PlanService}

	r.Mux.Handle("GET /v1/plans", r.secured(h.HandleList, httpx.ModerateLimit, domain.ScopeRead))
	r.Mux.Handle("GET /v1/plans/{id}", r.secured(h.HandleGet, httpx.ModerateLimit, domain.ScopeRead))
	r.Mux.Handle("POST /v1/plans", r.secured(h.HandleCreate, httpx.ModerateLimit, domain.ScopeWrite))
	r.Mux.Handle("PUT /v1/plans/{id}", r.secured(h.HandleUpdate, httpx.ModerateLimit, domain.ScopeWrite))
	r.Mux.Handle("DELETE /v1/plans/{id}", r.secured(h.HandleDelete, httpx.ModerateLimit, domain.ScopeDelete))
}

func (r *Router) registerServers() {
	h := &ServersHandler{ServerService: r.ServerService}

	r.Mux.Handle("GET /v1/servers", r.secured(h.HandleList, httpx.ModerateLimit, domain.ScopeRead))
	r.Mux.Handle("GET /v1/servers/{id}", r.secured(h.HandleGet, httpx.ModerateLimit, domain.ScopeRead))
	r.Mux.Handle("POST /v1/servers", r.secured(h.HandleCreate, httpx.ModerateLimit, domain.ScopeWrite))
	r.Mux.Handle("PUT /v1/servers/{id}", r.secured(h.HandleUpdate, httpx.ModerateLimit, domain.ScopeWrite))
	r.Mux.Handle("DELETE /v1/servers/{id}", r.secured(h.HandleDelete, httpx.ModerateLimit, domain.ScopeDelete))
}

func (r *Router) registerApps() {
	h := &AppsHandler{AppService: r.AppService}

	r.Mux.Handle("GET /v1/apps", r.secured(h.HandleList, httpx.ModerateLimit, domain.ScopeRead))
	r.Mux.Handle("GET /v1/apps/{id}", r.secured(h.HandleGet, httpx.ModerateLimit, domain.ScopeRead))
	r.Mux.Handle("POST /v1/apps", r.secured(h.HandleCreate, httpx.ModerateLimit, domain.ScopeWrite))
	r.Mux.Handle("PUT /v1/apps/{id}", r.secured(h.HandleUpdate, httpx.ModerateLimit, domain.ScopeWrite))
	r.Mux.Handle("DELETE /v1/apps/{id}", r.secured(h.HandleDelete, httpx.ModerateLimit, domain.ScopeDelete))
}

func (r *Router) registerViews() {
	h := &ViewsHandler{Renderer: r.Renderer}

	// Views are polled on every navigation - lenient rate limit
	r.Mux.Handle("GET /v1/views/{name}", r.secured(h.HandleView, httpx.LenientLimit, domain.ScopeRead))
}

func (r *Router) registerDialogs() {
	h := &DialogsHandler{Renderer: r.Renderer, Dialogs: r.Dialogs}

	// Every keystroke may be an event - lenient rate limit
	r.Mux.Handle("POST /v1/dialogs", r.secured(h.HandleOpen, httpx.ModerateLimit, domain.ScopeWrite))
	r.Mux.Handle("GET /v1/dialogs/active", r.secured(h.HandleActive, httpx.LenientLimit, domain.ScopeWrite))
	r.Mux.Handle("POST /v1/dialogs/active/events", r.secured(h.HandleEvent, httpx.LenientLimit, domain.ScopeWrite))
	r.Mux.Handle("POST /v1/dialogs/active/save", r.secured(h.HandleSave, httpx.ModerateLimit, domain.ScopeWrite))
	r.Mux.Handle("POST /v1/dialogs/active/cancel", r.secured(h.HandleCancel, httpx.LenientLimit, domain.ScopeWrite))
	r.Mux.Handle("DELETE /v1/dialogs/active", r.secured(h.HandleClose, httpx.LenientLimit, domain.ScopeWrite))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion, r.Location),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// GET /jwks.json - public endpoint with high limit
	r.Mux.Handle("GET /.well-known/jwks.json",
		httpx.Chain(JWKSHandler(r.keys),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
