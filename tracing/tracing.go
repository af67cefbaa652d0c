// Package tracing implements runtime.Tracer on top of
// go.opentelemetry.io/otel: resolve a tracer from the (global or
// injected) TracerProvider, start a server-kind span per traced unit of
// work with a handful of attributes, and record the outcome on End.
package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-go/reactui/runtime"
)

const defaultTracerName = "reactui"

// Config configures the Tracer.
type Config struct {
	// TracerName names the tracer (default: "reactui").
	TracerName string

	// Provider is the TracerProvider to resolve TracerName from.
	// Default: otel.GetTracerProvider() (the global provider).
	Provider trace.TracerProvider
}

// Option configures a Config.
type Option func(*Config)

func WithTracerName(name string) Option {
	return func(c *Config) { c.TracerName = name }
}

func WithProvider(p trace.TracerProvider) Option {
	return func(c *Config) { c.Provider = p }
}

func defaultConfig() Config {
	return Config{TracerName: defaultTracerName, Provider: otel.GetTracerProvider()}
}

// Tracer implements runtime.Tracer.
type Tracer struct {
	tracer trace.Tracer
}

var _ runtime.Tracer = (*Tracer)(nil)

// New builds a Tracer resolved from opts' Provider.
func New(opts ...Option) *Tracer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Tracer{tracer: cfg.Provider.Tracer(cfg.TracerName)}
}

// Span adapts an otel trace.Span to runtime.Span.
type Span struct{ span trace.Span }

var _ runtime.Span = Span{}

func (s Span) End(err error) {
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
	} else {
		s.span.SetStatus(codes.Ok, "")
	}
	s.span.End()
}

func (t *Tracer) StartRender(ctx context.Context) (context.Context, runtime.Span) {
	spanCtx, span := t.tracer.Start(ctx, "reactui.render",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithTimestamp(time.Now()),
	)
	return spanCtx, Span{span: span}
}

func (t *Tracer) StartDispatch(ctx context.Context, handlerID string) (context.Context, runtime.Span) {
	spanCtx, span := t.tracer.Start(ctx, "reactui.dispatch",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(attribute.String("reactui.handler_id", handlerID)),
		trace.WithTimestamp(time.Now()),
	)
	return spanCtx, Span{span: span}
}
