// Package breaker guards a [ports.TodoStore] with a circuit breaker.
//
// Every session runs inside the breaker. Consecutive storage failures open
// the circuit, after which sessions fail fast with [domain.ErrUnavailable]
// until the open timeout elapses and a probe session succeeds:
//
//	guarded := breaker.New(store, &cfg.Database.CircuitBreaker, metrics, logger)
//	err := guarded.WithSession(ctx, fn)
//
// Outcomes that describe the request rather than the database (not-found,
// validation, caller cancellation) are counted as successes. Sessions are
// never retried.
package breaker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

const (
	breakerName = "storage"
	dbSystem    = "sqlite"
	tracerName  = "storage"
)

// Compile-time interface checks.
var (
	_ ports.TodoStore     = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Store decorates another TodoStore with a circuit breaker, a trace span
// and session metrics.
type Store struct {
	next    ports.TodoStore
	name    string
	breaker *gobreaker.CircuitBreaker[struct{}]
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New wraps next in a circuit breaker configured by cfg. If metrics is nil,
// metric recording is skipped.
func New(
	next ports.TodoStore,
	cfg *config.CircuitBreakerConfig,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Store{
		next:    next,
		name:    breakerName,
		metrics: metrics,
		logger:  logger,
	}

	s.breaker = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        s.name,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		IsSuccessful: isSuccessful,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return s
}

// WithSession runs fn in a session of the wrapped store unless the circuit
// is open. A rejected session returns an error matching both
// [domain.ErrUnavailable] and the gobreaker sentinel.
func (s *Store) WithSession(ctx context.Context, fn func(ports.TodoRepository) error) error {
	start := time.Now()

	ctx, span := otel.GetTracerProvider().Tracer(tracerName).Start(ctx, "storage.session",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			telemetry.AttrDBSystem.String(dbSystem),
			attribute.String("breaker", s.name),
		),
	)
	defer span.End()

	_, err := s.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, s.next.WithSession(ctx, fn)
	})

	if isRejected(err) {
		err = fmt.Errorf("%w: %s: %w", domain.ErrUnavailable, s.name, err)
	}
	if err != nil && !isSuccessful(err) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	s.recordMetrics(ctx, start, err)
	return err
}

// Name identifies the breaker in readiness reports.
func (s *Store) Name() string {
	return s.name + "-circuit"
}

// HealthCheck reports the breaker state without touching the database.
// Closed is healthy; half-open and open are reported as errors.
func (s *Store) HealthCheck(_ context.Context) error {
	state := s.breaker.State()
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", s.name)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", s.name)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", s.name, state)
	}
}

func (s *Store) recordMetrics(ctx context.Context, start time.Time, err error) {
	if s.metrics == nil {
		return
	}

	result := "success"
	switch {
	case isRejected(err):
		result = "circuit_open"
	case errors.Is(err, domain.ErrNotFound):
		result = "not_found"
	case err != nil && !isSuccessful(err):
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrDBSystem.String(dbSystem),
		telemetry.AttrResult.String(result),
	)
	s.metrics.StorageSessionDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	s.metrics.StorageSessionTotal.Add(ctx, 1, attrs)
}

// isSuccessful decides which session outcomes count against the breaker.
func isSuccessful(err error) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, context.Canceled):
		return true
	default:
		return false
	}
}

func isRejected(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

// toUint32 converts a non-negative int to uint32, clamping at the uint32
// maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
