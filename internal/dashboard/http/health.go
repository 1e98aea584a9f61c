package http

import (
	"context"
	"net/http"
	"time"

	"github.com/tikkaspice/opsboard/pkg/dashsdk"
	"github.com/tikkaspice/opsboard/pkg/httpx"
)

// Pinger is the slice of the store the health probe needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Readiness probe: 200 while the process is serving requests
//	@Description	and the database answers a ping, 503 otherwise.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	dashsdk.HealthResponse
//	@Failure		503	{object}	dashsdk.HealthResponse
//	@Router			/api/health [get].
func HealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			httpx.WriteJSON(w, http.StatusServiceUnavailable, dashsdk.HealthResponse{
				Success:   false,
				Message:   "Database unavailable",
				Timestamp: time.Now().UTC(),
			})
			return
		}

		httpx.WriteJSON(w, http.StatusOK, dashsdk.HealthResponse{
			Success:   true,
			Message:   "API is healthy",
			Timestamp: time.Now().UTC(),
		})
	}
}
