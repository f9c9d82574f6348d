// Package telemetry wires OpenTelemetry for the service: the tracer and
// meter providers chosen by configuration, the W3C propagator, and the
// instruments the HTTP and storage layers record into.
//
//	providers, err := telemetry.Setup(ctx, cfg.Telemetry)
//	defer providers.Shutdown(ctx)
//	middleware.OpenTelemetry(providers.Metrics)
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"

	"github.com/jsamuelsen11/todo-service/internal/platform/config"
)

// Exporter names accepted in telemetry.exporter.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// Attribute keys shared by spans and metric series.
var (
	AttrHTTPMethod = attribute.Key("http.request.method")
	AttrHTTPRoute  = attribute.Key("http.route")
	AttrHTTPStatus = attribute.Key("http.response.status_code")
	AttrDBSystem   = attribute.Key("db.system.name")
	AttrResult     = attribute.Key("result")
)

// Metrics holds the service's instruments.
type Metrics struct {
	ServerRequestDuration  metric.Float64Histogram
	ServerRequestTotal     metric.Int64Counter
	StorageSessionDuration metric.Float64Histogram
	StorageSessionTotal    metric.Int64Counter
}

// Providers owns what Setup created. With telemetry disabled every field is
// nil, Metrics included, and Shutdown does nothing.
type Providers struct {
	Metrics *Metrics

	tracer *sdktrace.TracerProvider
	meter  *sdkmetric.MeterProvider
}

// Setup builds the providers described by cfg, registers them as the otel
// globals together with the TraceContext and Baggage propagators, and
// creates the service metrics. A disabled cfg leaves the no-op globals in
// place.
func Setup(ctx context.Context, cfg config.TelemetryConfig) (*Providers, error) {
	if !cfg.Enabled {
		return &Providers{}, nil
	}
	if err := checkExporter(cfg.Exporter, cfg.Endpoint); err != nil {
		return nil, err
	}

	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
	))
	if err != nil {
		return nil, fmt.Errorf("building telemetry resource: %w", err)
	}

	spans, err := newSpanExporter(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}
	readings, err := newMetricExporter(ctx, cfg)
	if err != nil {
		_ = spans.Shutdown(ctx)
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	p := &Providers{
		tracer: sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(spans),
			sdktrace.WithResource(res),
		),
		meter: sdkmetric.NewMeterProvider(
			sdkmetric.WithReader(sdkmetric.NewPeriodicReader(readings)),
			sdkmetric.WithResource(res),
		),
	}

	p.Metrics, err = NewMetrics(p.meter, cfg.ServiceName)
	if err != nil {
		_ = p.Shutdown(ctx)
		return nil, err
	}

	otel.SetTracerProvider(p.tracer)
	otel.SetMeterProvider(p.meter)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return p, nil
}

// Shutdown flushes and stops both providers.
func (p *Providers) Shutdown(ctx context.Context) error {
	var errs []error
	if p.tracer != nil {
		if err := p.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer provider: %w", err))
		}
	}
	if p.meter != nil {
		if err := p.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter provider: %w", err))
		}
	}
	return errors.Join(errs...)
}

// NewMetrics creates the service instruments on a meter named after the
// service.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(serviceName)
	var (
		m    Metrics
		errs []error
	)

	m.ServerRequestDuration, errs = histogram(meter, errs,
		"http.server.request.duration", "Duration of handled HTTP requests")
	m.ServerRequestTotal, errs = counter(meter, errs,
		"http.server.request.total", "Handled HTTP requests", "{request}")
	m.StorageSessionDuration, errs = histogram(meter, errs,
		"db.client.session.duration", "Time from acquiring a storage session to releasing it")
	m.StorageSessionTotal, errs = counter(meter, errs,
		"db.client.session.total", "Storage sessions opened", "{session}")

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("creating instruments: %w", err)
	}
	return &m, nil
}

func histogram(meter metric.Meter, errs []error, name, desc string) (metric.Float64Histogram, []error) {
	h, err := meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
	if err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", name, err))
	}
	return h, errs
}

func counter(meter metric.Meter, errs []error, name, desc, unit string) (metric.Int64Counter, []error) {
	c, err := meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	if err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", name, err))
	}
	return c, errs
}

func checkExporter(exporter, endpoint string) error {
	switch exporter {
	case ExporterStdout:
		return nil
	case ExporterOTLP:
		if endpoint == "" {
			return errors.New("otlp exporter requires an endpoint")
		}
		return nil
	default:
		return fmt.Errorf("unsupported exporter %q", exporter)
	}
}

func newSpanExporter(ctx context.Context, cfg config.TelemetryConfig) (sdktrace.SpanExporter, error) {
	if cfg.Exporter != ExporterOTLP {
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	host, secure := collector(cfg.Endpoint)
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(host)}
	if !secure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return otlptracehttp.New(ctx, opts...)
}

func newMetricExporter(ctx context.Context, cfg config.TelemetryConfig) (sdkmetric.Exporter, error) {
	if cfg.Exporter != ExporterOTLP {
		return stdoutmetric.New()
	}
	host, secure := collector(cfg.Endpoint)
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(host)}
	if !secure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	return otlpmetrichttp.New(ctx, opts...)
}

// collector splits a collector URL such as "http://otel-collector:4318" into
// the host:port the OTLP exporters expect and whether it uses TLS. A value
// that is not a URL is used as the host unchanged.
func collector(endpoint string) (host string, secure bool) {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint, false
	}
	return u.Host, u.Scheme == "https"
}
