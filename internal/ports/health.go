package ports

import "context"

// HealthChecker reports whether one dependency of the service is usable.
// The SQLite store and the storage circuit breaker implement it.
type HealthChecker interface {
	// Name keys the checker in readiness results, e.g. "sqlite".
	Name() string

	// HealthCheck returns nil when the dependency is usable. It must give
	// up when ctx ends.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry aggregates the checkers behind GET /health/ready.
type HealthRegistry interface {
	// Register adds checker, replacing one registered under the same name.
	Register(checker HealthChecker)

	// CheckAll runs every checker and returns its result by name; nil means
	// healthy.
	CheckAll(ctx context.Context) map[string]error
}
