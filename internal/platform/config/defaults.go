package config

const (
	defaultServerPort = 8080

	defaultDatabaseMaxOpenConns = 4
	defaultDatabaseMaxIdleConns = 4

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultCORSMaxAge = 600
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"database.path":                            "todos.db",
		"database.busy_timeout":                    "5s",
		"database.max_open_conns":                  defaultDatabaseMaxOpenConns,
		"database.max_idle_conns":                  defaultDatabaseMaxIdleConns,
		"database.conn_max_lifetime":               "30m",
		"database.slow_threshold":                  "200ms",
		"database.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"database.circuit_breaker.timeout":         "30s",
		"database.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		// Development posture: every origin is allowed. Restrict allowed_origins
		// in production profiles.
		"cors.allowed_origins":   []string{"*"},
		"cors.allowed_methods":   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		"cors.allowed_headers":   []string{"*"},
		"cors.allow_credentials": true,
		"cors.max_age":           defaultCORSMaxAge,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "todo-service",
	}
}
