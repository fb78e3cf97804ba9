// Package tracing wires an OpenTelemetry tracer provider for the
// generator, so a batch run over the full library can be profiled span
// by span.
package tracing

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

// NewProvider builds a tracer provider exporting to the given OTLP
// endpoint, or to stdout when endpoint is empty.
func NewProvider(ctx context.Context, endpoint, name string) (*trace.TracerProvider, func(), error) {
	var (
		exp trace.SpanExporter
		err error
	)
	if endpoint == "" {
		exp, err = newStdoutExporter()
	} else {
		exp, err = newExporter(ctx, endpoint)
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "creating trace exporter")
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exp),
		trace.WithResource(newResource(name)),
	)

	shutdown := func() {
		tp.Shutdown(ctx)
	}

	return tp, shutdown, nil
}

func newResource(name string) *resource.Resource {
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(name),
	)
}
