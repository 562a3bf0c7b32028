package trace

import (
	"context"

	"arcade/internal/router"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Observer implements router.Observer and records one span per transition.
type Observer struct {
	router.NoopObserver
	tracer oteltrace.Tracer
}

// NewObserver creates an observer recording spans with tracer.
func NewObserver(tracer oteltrace.Tracer) *Observer {
	return &Observer{tracer: tracer}
}

// OnNavigate records a "navigate" span.
func (o *Observer) OnNavigate(ctx context.Context, t router.Transition) {
	_, span := o.tracer.Start(ctx, "navigate",
		oteltrace.WithSpanKind(oteltrace.SpanKindInternal),
		oteltrace.WithAttributes(
			attribute.String("nav.from", t.From),
			attribute.String("nav.to", t.To),
			attribute.String("nav.kind", t.Kind.String()),
			attribute.String("nav.location", t.Location),
			attribute.Bool("nav.matched", t.Matched),
		),
	)
	if !t.Matched {
		span.SetStatus(codes.Error, "route not found")
	}
	span.End()
}
