package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/todo-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-service/internal/platform/telemetry"
)

// StackConfig carries what the service middleware needs.
type StackConfig struct {
	Logger *slog.Logger
	// Metrics may be nil when telemetry is disabled.
	Metrics *telemetry.Metrics
	CORS    config.CORSConfig
	// Timeout bounds each request; see Timeout.
	Timeout time.Duration
}

// Stack returns the service middleware outermost first, ready to be passed
// to chi's Use.
func Stack(cfg StackConfig) []func(http.Handler) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		CORS(cfg.CORS),
		OpenTelemetry(cfg.Metrics),
		Logging(logger),
		Timeout(cfg.Timeout),
	}
}
