package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"cloudplaza/internal/deck"
)

func TestNew_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	tr, err := New(context.Background())
	require.NoError(t, err)
	assert.False(t, tr.Enabled())

	_, span := tr.Start(context.Background(), "present")
	assert.False(t, span.SpanContext().IsValid(), "no-op tracer should hand out empty spans")
	span.End()
	assert.NoError(t, tr.Shutdown(context.Background()))
}

func TestNavigationRecorder(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tr := newTracer(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec)))
	require.True(t, tr.Enabled())

	_, span := tr.Start(context.Background(), "present")
	onNavigate := NavigationRecorder(span)
	onNavigate(deck.SectionMarket)
	onNavigate(deck.SectionTeam)
	span.End()

	ended := rec.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "present", ended[0].Name())

	events := ended[0].Events()
	require.Len(t, events, 2)
	for i, want := range []deck.SectionID{deck.SectionMarket, deck.SectionTeam} {
		assert.Equal(t, "navigate", events[i].Name)
		require.Len(t, events[i].Attributes, 1)
		assert.Equal(t, SectionKey, events[i].Attributes[0].Key)
		assert.Equal(t, string(want), events[i].Attributes[0].Value.AsString())
	}
	assert.NoError(t, tr.Shutdown(context.Background()))
}

func TestShutdown_NilTracer(t *testing.T) {
	var tr *Tracer
	assert.False(t, tr.Enabled())
	assert.NoError(t, tr.Shutdown(context.Background()))
}
