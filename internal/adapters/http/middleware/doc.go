// Package middleware holds the inbound HTTP middleware of the todo API.
//
// Stack assembles them in the order the service runs them, outermost first:
//
//	Recovery → RequestID → CORS → OpenTelemetry → Logging → Timeout → router
//
// Recovery sits outside everything so a panic anywhere, including one raised
// inside the Timeout goroutine, becomes a JSON 500. Logging and
// OpenTelemetry sit outside Timeout so a 504 is still logged and traced.
package middleware
