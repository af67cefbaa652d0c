package runtime

import "context"

// Span is the minimal handle a Tracer hands back for one traced
// operation; End reports the outcome.
type Span interface {
	End(err error)
}

// Tracer is the tracing collaborator a Runtime wraps its reconciliation
// passes and event dispatches in. The `tracing` package's OpenTelemetry
// implementation is the concrete default; noopTracer lets the actor
// call it unconditionally.
type Tracer interface {
	StartRender(ctx context.Context) (context.Context, Span)
	StartDispatch(ctx context.Context, handlerID string) (context.Context, Span)
}

type noopTracer struct{}

type noopSpan struct{}

func (noopSpan) End(error) {}

func (noopTracer) StartRender(ctx context.Context) (context.Context, Span) {
	return ctx, noopSpan{}
}

func (noopTracer) StartDispatch(ctx context.Context, handlerID string) (context.Context, Span) {
	return ctx, noopSpan{}
}
