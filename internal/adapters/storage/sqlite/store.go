// Package sqlite implements the todo storage ports on a single-file SQLite
// database through gorm.
//
// A Store owns the process-wide connection pool. It is opened once at
// startup, bootstraps the todos table if it is missing, and hands out
// per-request sessions:
//
//	store, err := sqlite.Open(ctx, &cfg.Database, logger)
//	defer store.Close()
//
//	err = store.WithSession(ctx, func(repo ports.TodoRepository) error {
//	    created, err = repo.Create(ctx, "Buy milk")
//	    return err
//	})
//
// Each session pins one pooled connection for its lifetime and returns it
// to the pool when the callback returns, whether it succeeded, failed or
// panicked.
package sqlite

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jsamuelsen11/todo-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

const checkerName = "sqlite"

// Compile-time interface checks.
var (
	_ ports.TodoStore     = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Store is the SQLite-backed implementation of [ports.TodoStore].
type Store struct {
	db     *gorm.DB
	logger *slog.Logger
}

// Open connects to the database file named by cfg.Path, configures the
// connection pool and creates the todos table if it does not exist yet.
// The caller owns the returned Store and must Close it on shutdown.
func Open(ctx context.Context, cfg *config.DatabaseConfig, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	db, err := gorm.Open(sqlite.Open(dsn(cfg)), &gorm.Config{
		Logger:                 newGormLogger(logger, cfg.SlowThreshold),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database %s: %w", cfg.Path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("accessing connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	s := &Store{db: db, logger: logger}
	if err := s.bootstrap(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	logger.Info("sqlite store ready",
		slog.String("path", cfg.Path),
		slog.Int("max_open_conns", cfg.MaxOpenConns),
	)
	return s, nil
}

// bootstrap creates the todos table and its indexes when they are missing.
// Existing tables are left untouched; there is no migration.
func (s *Store) bootstrap(ctx context.Context) error {
	m := s.db.WithContext(ctx).Migrator()
	if m.HasTable(&todoRecord{}) {
		return nil
	}
	if err := m.CreateTable(&todoRecord{}); err != nil {
		return fmt.Errorf("creating %s table: %w", todoTable, err)
	}
	s.logger.Info("created table", slog.String("table", todoTable))
	return nil
}

// WithSession pins one pooled connection, runs fn against a repository bound
// to it and releases the connection when fn returns.
func (s *Store) WithSession(ctx context.Context, fn func(ports.TodoRepository) error) error {
	var fnErr error
	err := s.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		fnErr = fn(&repository{db: conn})
		return fnErr
	})
	if err != nil && fnErr == nil {
		return fmt.Errorf("acquiring storage session: %w", err)
	}
	return err
}

// Close releases every pooled connection. Safe to call more than once.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("accessing connection pool: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("closing sqlite database: %w", err)
	}
	return nil
}

// Name identifies the store in readiness reports.
func (s *Store) Name() string {
	return checkerName
}

// HealthCheck pings the database through the pool.
func (s *Store) HealthCheck(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("%s: %w", checkerName, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%s: ping failed: %w", checkerName, err)
	}
	return nil
}

// dsn builds the go-sqlite3 data source name. WAL journaling lets readers
// proceed while a writer holds the lock; the busy timeout makes concurrent
// writers wait for the lock instead of failing immediately.
func dsn(cfg *config.DatabaseConfig) string {
	q := url.Values{}
	q.Set("_busy_timeout", strconv.FormatInt(cfg.BusyTimeout.Milliseconds(), 10))
	q.Set("_journal_mode", "WAL")
	return "file:" + cfg.Path + "?" + q.Encode()
}
