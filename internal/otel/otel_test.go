package otel

import (
	"context"
	"errors"
	"testing"

	"github.com/hanpama/dyngraph/internal/buildid"
	"github.com/hanpama/dyngraph/internal/eventbus"
	"github.com/hanpama/dyngraph/internal/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSetupWithoutEndpointIsNoop(t *testing.T) {
	shutdown, err := Setup("", "dyngraph")
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestTraceRecordsBuildSpan(t *testing.T) {
	eventbus.Use(eventbus.New())
	t.Cleanup(func() { eventbus.Use(nil) })

	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	off := Trace(tp.Tracer("test"))
	defer off()

	ctx, _ := buildid.NewContext(t.Context())
	eventbus.Publish(ctx, events.SchemaBuildStart{Root: "Query", Objects: 1, Pending: 1})
	eventbus.Publish(ctx, events.ExpansionApplied{Target: "Query", Expansion: "users", Pass: 1})
	eventbus.Publish(ctx, events.SchemaBuildFinish{Passes: 1, Err: errors.New("boom")})

	spans := rec.Ended()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, "schema.build", span.Name())
	require.NotEmpty(t, span.Events())
	assert.Equal(t, "expansion.applied", span.Events()[0].Name)
	assert.Equal(t, codes.Error, span.Status().Code)
}

func TestFinishWithoutStartIsIgnored(t *testing.T) {
	eventbus.Use(eventbus.New())
	t.Cleanup(func() { eventbus.Use(nil) })

	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	defer Trace(tp.Tracer("test"))()

	ctx, _ := buildid.NewContext(t.Context())
	eventbus.Publish(ctx, events.SchemaBuildFinish{})
	assert.Empty(t, rec.Ended())
}
