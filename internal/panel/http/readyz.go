package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/pandda/internal/panel/store"
	"github.com/aussiebroadwan/pandda/pkg/httpx"
	"github.com/aussiebroadwan/pandda/pkg/jwtx"
	"github.com/aussiebroadwan/pandda/pkg/panelsdk"
)

const msgNoOperators = "error: no operator accounts, start with PANDDA_SEED=true or create one"

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Reports whether the panel can take operator traffic
//	@Description	Checks the store driver, that at least one operator can log in, and that sessions can be signed
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	panelsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	panelsdk.HealthResponse	"status, uptime, version, checks - panel not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	keys *jwtx.KeySet,
) http.HandlerFunc {
	driver := "unknown"
	if d, ok := st.(interface{ Driver() string }); ok {
		driver = d.Driver()
	}

	return func(w http.ResponseWriter, r *http.Request) {
		checks := &panelsdk.HealthChecks{
			Store:     driver,
			Database:  "ok",
			Operators: "ok",
			Signer:    "ok",
		}

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
		}

		// Nobody can log in until the seed or an admin adds an operator
		switch empty, err := st.Users().IsEmpty(r.Context()); {
		case err != nil:
			checks.Operators = "error: " + err.Error()
		case empty:
			checks.Operators = msgNoOperators
		}

		if !keys.IsReady() {
			checks.Signer = "error: no keys loaded"
		}

		status, code := "ok", http.StatusOK
		for _, c := range []string{checks.Database, checks.Operators, checks.Signer} {
			if c != "ok" {
				status, code = "degraded", http.StatusServiceUnavailable
				break
			}
		}

		httpx.WriteJSON(w, code, panelsdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).Round(time.Second).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
