// Command server runs the todo API. APP_PROFILE selects the configuration
// profile under configs/; the service stops gracefully on SIGINT or SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/todo-service/internal/adapters/http"
	"github.com/jsamuelsen11/todo-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todo-service/internal/adapters/storage/breaker"
	"github.com/jsamuelsen11/todo-service/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/todo-service/internal/app"
	"github.com/jsamuelsen11/todo-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-service/internal/platform/health"
	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
	"github.com/jsamuelsen11/todo-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

const (
	drainTimeout = 15 * time.Second
	flushTimeout = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "todo-service: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile, ok := os.LookupEnv("APP_PROFILE")
	if !ok {
		return errors.New("APP_PROFILE must name a profile in configs/ (local, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	providers, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), flushTimeout)
		defer cancel()
		if err := providers.Shutdown(flushCtx); err != nil {
			logger.Error("flushing telemetry", slog.Any("error", err))
		}
	}()

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, providers.Metrics)
	provide(ctx, injector)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("wiring server: %w", err)
	}
	store := do.MustInvoke[*sqlite.Store](injector)
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("closing todo store", slog.Any("error", err))
		}
	}()

	served := make(chan error, 1)
	go func() { served <- server.Start() }()

	select {
	case err := <-served:
		return fmt.Errorf("http server stopped: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down", slog.String("cause", context.Cause(ctx).Error()))
	}

	drainCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	if err := server.Shutdown(drainCtx); err != nil {
		logger.Error("draining http server", slog.Any("error", err))
	}
	if err := <-served; err != nil {
		logger.Error("http server stopped", slog.Any("error", err))
	}

	logger.Info("stopped")
	return nil
}

// provide registers the service graph: the SQLite store behind the circuit
// breaker, the todo service, the health registry checking both stores, and
// the HTTP server.
func provide(ctx context.Context, injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*sqlite.Store, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return sqlite.Open(ctx, &cfg.Database, do.MustInvoke[*slog.Logger](i))
	})

	do.Provide(injector, func(i do.Injector) (*breaker.Store, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return breaker.New(
			do.MustInvoke[*sqlite.Store](i),
			&cfg.Database.CircuitBreaker,
			do.MustInvoke[*telemetry.Metrics](i),
			do.MustInvoke[*slog.Logger](i),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoService, error) {
		return app.NewTodoService(do.MustInvoke[*breaker.Store](i), do.MustInvoke[*slog.Logger](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New()
		registry.Register(do.MustInvoke[*sqlite.Store](i))
		registry.Register(do.MustInvoke[*breaker.Store](i))
		return registry, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return adapthttp.NewRouter(
			handlers.NewTodoHandler(do.MustInvoke[ports.TodoService](i)),
			handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
			middleware.Stack(middleware.StackConfig{
				Logger:  do.MustInvoke[*slog.Logger](i),
				Metrics: do.MustInvoke[*telemetry.Metrics](i),
				CORS:    cfg.CORS,
				Timeout: cfg.Server.WriteTimeout,
			})...,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), do.MustInvoke[*slog.Logger](i)), nil
	})
}
