package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/randpic-api/internal/platform/logger"
)

// HealthMessage is the body returned by the liveness route.
const HealthMessage = "Hello, world!"

// Health handles GET / liveness probes.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(HealthMessage)); err != nil {
		logger.FromContextOrDefault(r.Context(), slog.Default()).
			Error("Failed to write health check response", "error", err)
	}
}
