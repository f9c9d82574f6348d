package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
)

// Logging stores a child of logger carrying the request ID in the request
// context and writes one access line per request after the handler returns.
//
// The line names the matched chi route ("/todos/{id}") instead of the raw
// path; requests that matched no route log their path. It carries the
// status, response size and duration, and is logged at error for 5xx
// responses and info otherwise. At debug level the method, path and
// redacted headers are also logged when the request arrives.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqLogger := logger.With(slog.String("request_id", RequestIDFromContext(r.Context())))
			ctx := logging.WithLogger(r.Context(), reqLogger)

			if reqLogger.Enabled(ctx, slog.LevelDebug) {
				reqLogger.DebugContext(ctx, "request received",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					headersAttr(r.Header),
				)
			}

			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r.WithContext(ctx))

			target := slog.String("route", routePattern(r))
			if target.Value.String() == "" {
				target = slog.String("path", r.URL.Path)
			}

			level := slog.LevelInfo
			if rec.code() >= http.StatusInternalServerError {
				level = slog.LevelError
			}

			reqLogger.LogAttrs(ctx, level, "request completed",
				slog.String("method", r.Method),
				target,
				slog.Int("status", rec.code()),
				slog.Int64("bytes", rec.bytes),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}
