// Package telemetry initializes OpenTelemetry tracing and metrics for
// forgeledger. By default both signals are exported with OTLP over gRPC
// (configured through the standard OTEL_EXPORTER_OTLP_* variables); tests and
// embedders can swap the exporters through Option values. The providers are
// registered globally, so the ledger's tracer and meter pick them up.
package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

// serviceNamespace groups every forgeledger process in the observability backend.
const serviceNamespace = "forgeledger"

type config struct {
	spanExporter sdktrace.SpanExporter // nil selects OTLP gRPC
	metricReader sdkmetric.Reader      // nil selects a periodic OTLP gRPC reader
}

// Option customizes Init.
type Option func(*config)

// WithSpanExporter replaces the OTLP trace exporter.
func WithSpanExporter(exporter sdktrace.SpanExporter) Option {
	return func(c *config) {
		c.spanExporter = exporter
	}
}

// WithMetricReader replaces the periodic OTLP metric reader.
func WithMetricReader(reader sdkmetric.Reader) Option {
	return func(c *config) {
		c.metricReader = reader
	}
}

// initMeterProvider sets up a MeterProvider reading through reader, or through
// a periodic OTLP gRPC reader when reader is nil, and registers it globally.
func initMeterProvider(ctx context.Context, res *sdkresource.Resource, reader sdkmetric.Reader) (*sdkmetric.MeterProvider, error) {
	if reader == nil {
		exporter, err := otlpmetricgrpc.New(ctx)
		if err != nil {
			return nil, err
		}

		reader = sdkmetric.NewPeriodicReader(exporter)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)
	return mp, nil
}

// initTracerProvider sets up a batching TracerProvider exporting to exporter,
// or to OTLP gRPC when exporter is nil, and registers it globally.
func initTracerProvider(ctx context.Context, res *sdkresource.Resource, exporter sdktrace.SpanExporter) (*sdktrace.TracerProvider, error) {
	if exporter == nil {
		otlp, err := otlptracegrpc.New(ctx)
		if err != nil {
			return nil, err
		}

		exporter = otlp
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	return tp, nil
}

// newResource merges the default resource with the service identity.
func newResource(serviceName string) (*sdkresource.Resource, error) {
	return sdkresource.Merge(
		sdkresource.Default(),
		sdkresource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			semconv.ServiceNamespace(serviceNamespace),
		),
	)
}

// ShutdownFunc flushes and stops every provider created by Init.
type ShutdownFunc func(ctx context.Context) error

// Init configures tracing and metrics for serviceName and registers the
// providers globally. Call the returned ShutdownFunc before exiting so
// buffered spans and metrics are flushed.
func Init(ctx context.Context, serviceName string, opts ...Option) (ShutdownFunc, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	res, err := newResource(serviceName)
	if err != nil {
		return nil, err
	}

	mp, err := initMeterProvider(ctx, res, cfg.metricReader)
	if err != nil {
		return nil, err
	}

	tp, err := initTracerProvider(ctx, res, cfg.spanExporter)
	if err != nil {
		return nil, errors.Join(err, mp.Shutdown(ctx))
	}

	return func(ctx context.Context) error {
		return errors.Join(
			tp.Shutdown(ctx),
			mp.Shutdown(ctx),
		)
	}, nil
}
