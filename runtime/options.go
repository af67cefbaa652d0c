package runtime

import (
	"log/slog"
	"time"

	"github.com/vango-go/reactui/idgen"
	"github.com/vango-go/reactui/vui"
)

// Options configures a Runtime: a plain struct with a defaults
// constructor and functional-option setters, rather than a struct
// literal with exported fields callers mutate directly.
type Options struct {
	Logger      *slog.Logger
	CallTimeout time.Duration
	MailboxSize int
	IDSource    idgen.Source
	Metrics     Metrics
	Tracer      Tracer
}

// Option configures Options.
type Option func(*Options)

// WithLogger sets the runtime's structured logger. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithCallTimeout sets the bound on a Reducer hook's synchronous Get.
// Default: vui.DefaultCallTimeout (2s).
func WithCallTimeout(d time.Duration) Option {
	return func(o *Options) { o.CallTimeout = d }
}

// WithMailboxSize sets the runtime actor's mailbox buffer size.
// Default: 64.
func WithMailboxSize(n int) Option {
	return func(o *Options) { o.MailboxSize = n }
}

// WithIDSource overrides the default hook/handler id generator.
func WithIDSource(s idgen.Source) Option {
	return func(o *Options) { o.IDSource = s }
}

// WithMetrics wires a Metrics implementation, e.g. metrics.New(...).
func WithMetrics(m Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithTracer wires a Tracer implementation, e.g. tracing.New(...).
func WithTracer(t Tracer) Option {
	return func(o *Options) { o.Tracer = t }
}

func defaultOptions() Options {
	return Options{
		Logger:      slog.Default(),
		CallTimeout: vui.DefaultCallTimeout,
		MailboxSize: 64,
		IDSource:    idgen.NewCounter("h"),
		Metrics:     noopMetrics{},
		Tracer:      noopTracer{},
	}
}
