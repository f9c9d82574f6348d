package middleware

import (
	"net/http"
	"slices"

	"github.com/go-chi/cors"

	"github.com/jsamuelsen11/todo-service/internal/platform/config"
)

const wildcardOrigin = "*"

// CORS returns middleware that answers preflight requests and adds the
// cross-origin response headers described by cfg.
//
// A "*" origin combined with AllowCredentials echoes the caller's Origin
// back instead of sending a literal "*", which browsers reject for
// credentialed requests. This admits every origin and is meant for
// development deployments.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	opts := cors.Options{
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		ExposedHeaders:   []string{headerRequestID},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}

	if cfg.AllowCredentials && slices.Contains(cfg.AllowedOrigins, wildcardOrigin) {
		opts.AllowOriginFunc = func(_ *http.Request, _ string) bool { return true }
	} else {
		opts.AllowedOrigins = cfg.AllowedOrigins
	}

	return cors.Handler(opts)
}
