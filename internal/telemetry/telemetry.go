// Package telemetry wires OpenTelemetry tracing for layout gestures.
//
// Export is opt-in: without OTEL_EXPORTER_OTLP_ENDPOINT the provider is a
// no-op and spans cost nothing.
package telemetry

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"resumeview/internal/section"
)

// InstrumentationName names the tracer used for layout spans.
const InstrumentationName = "resumeview/layout"

// Span and attribute names recorded for a drag gesture.
const (
	SpanSwap    = "layout.swap"
	AttrSource  = attribute.Key("resumeview.source")
	AttrTarget  = attribute.Key("resumeview.target")
	AttrApplied = attribute.Key("resumeview.applied")
)

const (
	defaultServiceName = "resumeview"
	endpointEnv        = "OTEL_EXPORTER_OTLP_ENDPOINT"
	serviceNameEnv     = "OTEL_SERVICE_NAME"
	tracesPath         = "v1/traces"
)

// Provider hands out the tracer and owns the exporter lifecycle.
type Provider struct {
	sdk    *sdktrace.TracerProvider
	tracer oteltrace.Tracer
}

// Setup returns a provider exporting over OTLP/HTTP when
// OTEL_EXPORTER_OTLP_ENDPOINT is set, and a no-op provider otherwise.
// OTEL_SERVICE_NAME overrides serviceName.
func Setup(ctx context.Context, serviceName string) (*Provider, error) {
	endpoint := os.Getenv(endpointEnv)
	if endpoint == "" {
		return Noop(), nil
	}

	opts, err := exporterOptions(endpoint)
	if err != nil {
		return nil, err
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("otlp exporter: %w", err)
	}

	if name := os.Getenv(serviceNameEnv); name != "" {
		serviceName = name
	}
	if serviceName == "" {
		serviceName = defaultServiceName
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
	)

	sdk := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return &Provider{sdk: sdk, tracer: sdk.Tracer(InstrumentationName)}, nil
}

// exporterOptions accepts both a base URL (http://host:4318/prefix) and a
// bare host:port. A base URL gets the traces path appended the way the
// OTLP environment variable defines it; a bare endpoint is plain HTTP.
func exporterOptions(endpoint string) ([]otlptracehttp.Option, error) {
	if !strings.Contains(endpoint, "://") {
		return []otlptracehttp.Option{
			otlptracehttp.WithEndpoint(endpoint),
			otlptracehttp.WithInsecure(),
		}, nil
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", endpointEnv, err)
	}
	if u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("parse %s: unsupported endpoint %q", endpointEnv, endpoint)
	}

	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(u.Host),
		otlptracehttp.WithURLPath(path.Join("/", u.Path, tracesPath)),
	}
	if u.Scheme == "http" {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return opts, nil
}

// Noop returns a provider whose spans are discarded.
func Noop() *Provider {
	return &Provider{tracer: noop.NewTracerProvider().Tracer(InstrumentationName)}
}

// NewWithTracerProvider wraps an existing SDK provider. Tests use it with an
// in-memory span recorder.
func NewWithTracerProvider(tp *sdktrace.TracerProvider) *Provider {
	return &Provider{sdk: tp, tracer: tp.Tracer(InstrumentationName)}
}

// Tracer returns the layout tracer. A nil provider yields a no-op tracer.
func (p *Provider) Tracer() oteltrace.Tracer {
	if p == nil || p.tracer == nil {
		return noop.NewTracerProvider().Tracer(InstrumentationName)
	}
	return p.tracer
}

// Enabled reports whether spans are exported anywhere.
func (p *Provider) Enabled() bool {
	return p != nil && p.sdk != nil
}

// Shutdown flushes pending spans and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}
	return p.sdk.Shutdown(ctx)
}

// RecordSwap emits one span describing a finished drag gesture.
func RecordSwap(ctx context.Context, tracer oteltrace.Tracer, source, target section.ID, applied bool) {
	_, span := tracer.Start(ctx, SpanSwap)
	span.SetAttributes(
		AttrSource.String(source.String()),
		AttrTarget.String(target.String()),
		AttrApplied.Bool(applied),
	)
	span.End()
}
