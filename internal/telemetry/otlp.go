// Package telemetry wires OpenTelemetry tracing for the cloudplaza commands.
package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"cloudplaza/internal/deck"
)

const (
	defaultServiceName = "cloudplaza"
	instrumentation    = "cloudplaza/cmd"

	// SectionKey tags navigation events with the activated section.
	SectionKey = attribute.Key("cloudplaza.section")
)

// Tracer starts command spans. It exports to an OTLP endpoint when
// OTEL_EXPORTER_OTLP_ENDPOINT is set and is a no-op otherwise.
type Tracer struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// New creates a Tracer from the OTEL_* environment.
func New(ctx context.Context) (*Tracer, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return Disabled(), nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = defaultServiceName
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)
	return newTracer(provider), nil
}

// Disabled returns a Tracer that records nothing.
func Disabled() *Tracer {
	return &Tracer{tracer: noop.NewTracerProvider().Tracer(instrumentation)}
}

func newTracer(provider *sdktrace.TracerProvider) *Tracer {
	return &Tracer{provider: provider, tracer: provider.Tracer(instrumentation)}
}

// Enabled reports whether spans leave the process.
func (t *Tracer) Enabled() bool {
	return t != nil && t.provider != nil
}

// Start opens a span named after a command.
func (t *Tracer) Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, oteltrace.Span) {
	return t.tracer.Start(ctx, name, oteltrace.WithAttributes(attrs...))
}

// NavigationRecorder returns a hook that adds a "navigate" event to span for
// every section activation.
func NavigationRecorder(span oteltrace.Span) func(deck.SectionID) {
	return func(id deck.SectionID) {
		span.AddEvent("navigate", oteltrace.WithAttributes(SectionKey.String(string(id))))
	}
}

// Shutdown flushes and closes the exporter.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if !t.Enabled() {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
