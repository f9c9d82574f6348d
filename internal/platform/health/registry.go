// Package health backs the readiness endpoint. The service registers the
// SQLite store, which pings its database, and the circuit breaker, which
// fails while open; readiness is the conjunction of both.
package health

import (
	"context"
	"sync"

	"github.com/jsamuelsen11/todo-service/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry holds checkers by name. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	checkers map[string]ports.HealthChecker
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{checkers: make(map[string]ports.HealthChecker)}
}

// Register adds checker under its Name, replacing any checker already
// registered with that name.
func (r *Registry) Register(checker ports.HealthChecker) {
	name := checker.Name()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[name] = checker
}

// CheckAll runs every check concurrently and returns each result by name,
// nil for healthy.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make(map[string]ports.HealthChecker, len(r.checkers))
	for name, c := range r.checkers {
		checkers[name] = c
	}
	r.mu.RUnlock()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results = make(map[string]error, len(checkers))
	)
	for name, c := range checkers {
		wg.Go(func() {
			err := c.HealthCheck(ctx)
			mu.Lock()
			results[name] = err
			mu.Unlock()
		})
	}
	wg.Wait()
	return results
}
