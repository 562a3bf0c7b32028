// Package trace exports navigation spans over OTLP/HTTP.
package trace

import (
	"context"
	"strings"

	"arcade/internal/config"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const instrumentationName = "arcade/router"

// Exporter owns the tracer provider. With no endpoint configured it hands
// out a no-op tracer.
type Exporter struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewExporter creates an OTLP exporter when cfg.Endpoint is set.
// The endpoint may be "host:port" (plain HTTP) or a full URL.
func NewExporter(ctx context.Context, cfg config.TracingConfig) (*Exporter, error) {
	if cfg.Endpoint == "" {
		return &Exporter{tracer: noop.NewTracerProvider().Tracer(instrumentationName)}, nil
	}

	var opts []otlptracehttp.Option
	if strings.Contains(cfg.Endpoint, "://") {
		opts = append(opts, otlptracehttp.WithEndpointURL(cfg.Endpoint))
	} else {
		opts = append(opts,
			otlptracehttp.WithEndpoint(cfg.Endpoint),
			otlptracehttp.WithInsecure(),
		)
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "arcade"
	}
	res := resource.NewSchemaless(attribute.String("service.name", serviceName))

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return &Exporter{
		provider: provider,
		tracer:   provider.Tracer(instrumentationName),
	}, nil
}

// Enabled reports whether spans are exported.
func (e *Exporter) Enabled() bool {
	return e != nil && e.provider != nil
}

// Tracer returns the tracer for navigation spans.
func (e *Exporter) Tracer() oteltrace.Tracer {
	return e.tracer
}

// Shutdown flushes and closes the exporter
func (e *Exporter) Shutdown(ctx context.Context) error {
	if !e.Enabled() {
		return nil
	}
	return e.provider.Shutdown(ctx)
}
