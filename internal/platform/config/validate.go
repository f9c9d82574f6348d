package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var p problems
	c.Server.check(&p)
	c.Log.check(&p)
	c.Database.check(&p)
	c.CORS.check(&p)
	c.Telemetry.check(&p)
	return p.err()
}

// problems collects validation failures.
type problems []error

func (p *problems) addf(cond bool, format string, args ...any) {
	if cond {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

func (p problems) err() error {
	return errors.Join(p...)
}

func (s *ServerConfig) check(p *problems) {
	p.addf(s.Port < 1 || s.Port > 65535, "server.port %d is outside 1-65535", s.Port)
	p.addf(s.ReadTimeout <= 0, "server.read_timeout must be positive, got %s", s.ReadTimeout)
	p.addf(s.WriteTimeout <= 0, "server.write_timeout must be positive, got %s", s.WriteTimeout)
}

func (l *LogConfig) check(p *problems) {
	p.addf(!slices.Contains([]string{"debug", "info", "warn", "error"}, l.Level),
		"log.level %q is not one of debug, info, warn, error", l.Level)
	p.addf(!slices.Contains([]string{"json", "text"}, l.Format),
		"log.format %q is not json or text", l.Format)
}

func (d *DatabaseConfig) check(p *problems) {
	p.addf(strings.TrimSpace(d.Path) == "", "database.path is empty")
	p.addf(d.BusyTimeout < 0, "database.busy_timeout is negative")
	p.addf(d.MaxOpenConns < 1, "database.max_open_conns must be at least 1, got %d", d.MaxOpenConns)
	p.addf(d.MaxIdleConns < 0 || d.MaxIdleConns > d.MaxOpenConns,
		"database.max_idle_conns %d is outside 0-%d", d.MaxIdleConns, d.MaxOpenConns)
	p.addf(d.CircuitBreaker.MaxFailures < 1,
		"database.circuit_breaker.max_failures must be at least 1, got %d", d.CircuitBreaker.MaxFailures)
	p.addf(d.CircuitBreaker.Timeout <= 0, "database.circuit_breaker.timeout must be positive")
}

func (c *CORSConfig) check(p *problems) {
	p.addf(len(c.AllowedOrigins) == 0, "cors.allowed_origins is empty")
	p.addf(len(c.AllowedMethods) == 0, "cors.allowed_methods is empty")
	p.addf(c.MaxAge < 0, "cors.max_age is negative")
}

func (t *TelemetryConfig) check(p *problems) {
	if !t.Enabled {
		return
	}
	p.addf(t.Exporter != "stdout" && t.Exporter != "otlp",
		"telemetry.exporter %q is not stdout or otlp", t.Exporter)
	p.addf(t.Exporter == "otlp" && t.Endpoint == "", "telemetry.endpoint is required for the otlp exporter")
}
