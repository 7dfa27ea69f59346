package otel

import (
	"context"
	"sync"

	"github.com/hanpama/dyngraph/internal/buildid"
	"github.com/hanpama/dyngraph/internal/eventbus"
	"github.com/hanpama/dyngraph/internal/events"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
)

// Setup configures OpenTelemetry and attaches eventbus subscribers.
// If endpoint is empty, no telemetry is configured.
func Setup(endpoint, service string) (func(context.Context) error, error) {
	if endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}
	exp, err := otlptracegrpc.New(context.Background(),
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithDialOption(grpc.WithInsecure()))
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(service),
		)),
	)
	otel.SetTracerProvider(tp)

	unsubscribe := Trace(tp.Tracer("dyngraph"))
	return func(ctx context.Context) error {
		unsubscribe()
		return tp.Shutdown(ctx)
	}, nil
}

// Trace subscribes tracer to schema build events on the global bus. Each build
// becomes one "schema.build" span.
func Trace(tracer trace.Tracer) (unsubscribe func()) {
	s := &subscriber{tracer: tracer}
	return s.register()
}

type subscriber struct {
	tracer trace.Tracer
	spans  sync.Map // build id -> trace.Span
}

func (s *subscriber) register() func() {
	offs := []func(){
		eventbus.Subscribe(func(ctx context.Context, e events.SchemaBuildStart) {
			bid, _ := buildid.FromContext(ctx)
			_, span := s.tracer.Start(ctx, "schema.build")
			span.SetAttributes(
				attribute.String("graphql.schema.query", e.Root),
				attribute.String("graphql.schema.mutation", e.Mutation),
				attribute.String("graphql.schema.subscription", e.Subscription),
				attribute.Int("dyngraph.objects", e.Objects),
				attribute.Int("dyngraph.types", e.Types),
				attribute.Int("dyngraph.pending", e.Pending),
			)
			s.spans.Store(bid, span)
		}),

		eventbus.Subscribe(func(ctx context.Context, e events.ExpansionApplied) {
			bid, _ := buildid.FromContext(ctx)
			v, ok := s.spans.Load(bid)
			if !ok {
				return
			}
			v.(trace.Span).AddEvent("expansion.applied", trace.WithAttributes(
				attribute.String("dyngraph.target", e.Target),
				attribute.String("dyngraph.expansion", e.Expansion),
				attribute.Int("dyngraph.pass", e.Pass),
			))
		}),

		eventbus.Subscribe(func(ctx context.Context, e events.SchemaBuildFinish) {
			bid, _ := buildid.FromContext(ctx)
			v, ok := s.spans.LoadAndDelete(bid)
			if !ok {
				return
			}
			span := v.(trace.Span)
			span.SetAttributes(
				attribute.Int("dyngraph.passes", e.Passes),
				attribute.StringSlice("dyngraph.unresolved", e.Unresolved),
			)
			if e.Err != nil {
				span.RecordError(e.Err)
				span.SetStatus(codes.Error, e.Err.Error())
			}
			span.End()
		}),
	}
	return func() {
		for _, off := range offs {
			off()
		}
	}
}
