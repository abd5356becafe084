package http

import (
	"context"
	"net/http"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/store"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
)

// Pinger is an optional dependency checked by /readyz.
type Pinger interface {
	Ping(ctx context.Context) error
}

// LivezHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness probe returning status, uptime and version.
//	@Description	Always 200 OK while the process is serving.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	tasksdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, tasksdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe that checks the database and, when configured, the Redis relay.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	tasksdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	tasksdk.HealthResponse	"service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store, relay Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &tasksdk.HealthChecks{Database: "ok"}
		status := "ok"
		code := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		if relay != nil {
			checks.Relay = "ok"
			if err := relay.Ping(r.Context()); err != nil {
				checks.Relay = "error: " + err.Error()
				status = "degraded"
				code = http.StatusServiceUnavailable
			}
		}

		httpx.WriteJSON(w, code, tasksdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}

// ServerHealthHandler godoc
//
//	@Summary	Server status
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	tasksdk.Response[tasksdk.ServerHealth]	"Server is running"
//	@Router		/api/health [get].
func ServerHealthHandler(env string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeOK(w, http.StatusOK, "Server is running", tasksdk.ServerHealth{
			Timestamp:   time.Now().UTC(),
			Environment: env,
		})
	}
}
