package trace

import (
	"context"
	"testing"

	"arcade/internal/config"
	"arcade/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newRecorder(t *testing.T) (*tracetest.SpanRecorder, *Observer) {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return rec, NewObserver(tp.Tracer("test"))
}

func attrMap(kvs []attribute.KeyValue) map[string]string {
	out := make(map[string]string, len(kvs))
	for _, kv := range kvs {
		out[string(kv.Key)] = kv.Value.Emit()
	}
	return out
}

func TestObserver_RecordsNavigateSpan(t *testing.T) {
	rec, obs := newRecorder(t)

	obs.OnNavigate(context.Background(), router.Transition{
		From:     "/",
		To:       "/high-scores",
		Location: "/high-scores",
		Kind:     router.NavPush,
		Matched:  true,
	})

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "navigate", spans[0].Name())
	attrs := attrMap(spans[0].Attributes())
	assert.Equal(t, "/", attrs["nav.from"])
	assert.Equal(t, "/high-scores", attrs["nav.to"])
	assert.Equal(t, "push", attrs["nav.kind"])
	assert.Equal(t, "true", attrs["nav.matched"])
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
}

func TestObserver_NotFoundMarksError(t *testing.T) {
	rec, obs := newRecorder(t)

	obs.OnNavigate(context.Background(), router.Transition{To: "/unknown", Kind: router.NavPush})

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
}

// Wired into a router, every transition becomes one span.
func TestObserver_WithRouter(t *testing.T) {
	rec, obs := newRecorder(t)
	table, err := router.NewTable(
		router.Route[page]{Path: "/", View: "home"},
		router.Route[page]{Path: "/game", View: "game"},
	)
	require.NoError(t, err)
	r, err := router.New(table, router.WithObserver(obs))
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, r.Start(ctx, "/"))
	require.NoError(t, r.Navigate(ctx, "/game"))
	require.NoError(t, r.Back(ctx))

	spans := rec.Ended()
	require.Len(t, spans, 3)
	assert.Equal(t, "back", attrMap(spans[2].Attributes())["nav.kind"])
}

func TestNewExporter_DisabledWithoutEndpoint(t *testing.T) {
	e, err := NewExporter(context.Background(), config.TracingConfig{})
	require.NoError(t, err)
	assert.False(t, e.Enabled())
	assert.NotNil(t, e.Tracer())
	assert.NoError(t, e.Shutdown(context.Background()))
}

type page string

func (p page) Render() string { return string(p) }
