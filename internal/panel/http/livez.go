package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/pandda/pkg/datex"
	"github.com/aussiebroadwan/pandda/pkg/httpx"
	"github.com/aussiebroadwan/pandda/pkg/panelsdk"
)

// LivezHandler godoc
//
//	@Summary		Liveness Check Endpoint
//	@Description	Reports that the panel process is serving, with uptime, version and the operator calendar
//	@Description	Today is the date due dates and the expiry filters are computed against
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	panelsdk.HealthResponse	"status, uptime, version, timezone, today"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string, loc *time.Location) http.HandlerFunc {
	if loc == nil {
		loc = time.Local
	}
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, panelsdk.HealthResponse{
			Status:   "ok",
			Uptime:   time.Since(startTime).Round(time.Second).String(),
			Version:  version,
			Timezone: loc.String(),
			Today:    datex.Format(time.Now().In(loc)),
		})
	}
}
