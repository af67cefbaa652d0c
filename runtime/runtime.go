// Package runtime implements the runtime actor: a single goroutine,
// reached only through its mailbox, that owns one reconciled tree,
// serialises event dispatch and re-render requests against it, and
// pushes the resulting full tree or patch to an Updater. The actor
// loop is a select over a dispatch channel of closures and a buffered,
// coalescing render-request channel.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/vango-go/reactui/patch"
	"github.com/vango-go/reactui/reconcile"
	"github.com/vango-go/reactui/vui"
)

// RootFunc builds the top-level element tree for one reconciliation
// pass. It is called fresh every pass — components mounted underneath
// it retain their hook state across calls by component identity and
// key, exactly as any other component would.
type RootFunc func() vui.Element

// Runtime is the actor. All of its exported methods are safe to call
// from any goroutine; each one enqueues work rather than touching
// shared state directly.
type Runtime struct {
	opts Options
	root RootFunc

	updater Updater
	logger  *slog.Logger

	mailbox  chan func()
	renderCh chan struct{}
	done     chan struct{}
	closeMu  sync.Mutex
	closed   bool

	ctx  *vui.Context
	tree vui.ReconciledNode
}

// New constructs a Runtime bound to root and updater. Call Start to
// begin processing.
func New(root RootFunc, updater Updater, opts ...Option) *Runtime {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Runtime{
		opts:     o,
		root:     root,
		updater:  updater,
		logger:   o.Logger,
		mailbox:  make(chan func(), o.MailboxSize),
		renderCh: make(chan struct{}, 1),
		done:     make(chan struct{}),
	}

	r.ctx = vui.NewContext(nil, o.IDSource, r.scheduleRender, r.scheduleHookUpdate)
	r.ctx.CallTimeout = o.CallTimeout
	r.ctx.SetClientSender(r.sendToClient)
	return r
}

// Start launches the actor goroutine and performs the first
// reconciliation pass synchronously so GetReconciled has a tree to
// return immediately after Start returns.
func (r *Runtime) Start() {
	go r.loop()
	done := make(chan struct{})
	r.mailbox <- func() {
		defer close(done)
		r.renderNow()
	}
	<-done
}

// Stop shuts the actor down, running cleanup for every hook still
// mounted (as if the whole tree had just been removed).
func (r *Runtime) Stop() {
	r.closeMu.Lock()
	if r.closed {
		r.closeMu.Unlock()
		return
	}
	r.closed = true
	r.closeMu.Unlock()

	done := make(chan struct{})
	select {
	case r.mailbox <- func() {
		_, disposed := reconcile.Reconcile(r.ctx, nil, r.tree)
		for _, h := range disposed {
			r.opts.Metrics.HookDisposed(hookVariantName(h))
		}
		r.tree = nil
		close(done)
	}:
		select {
		case <-done:
		case <-time.After(r.opts.CallTimeout):
		}
	case <-time.After(r.opts.CallTimeout):
	}
	close(r.done)
}

func (r *Runtime) loop() {
	for {
		select {
		case fn := <-r.mailbox:
			r.protect("dispatch", fn)
		case <-r.renderCh:
			r.protect("render", r.renderNow)
		case <-r.done:
			return
		}
	}
}

// protect is the panic-recovery boundary around every unit of work the
// actor performs: a programmer-fatal error (hook order drift, a
// missing provider) or an unexpected panic from user code is recovered
// here, logged, and turned into a clean shutdown rather than
// corrupting the retained tree or crashing the host process.
func (r *Runtime) protect(op string, fn func()) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("runtime: recovered panic, shutting down",
				"op", op, "panic", fmt.Sprint(rec), "stack", string(debug.Stack()))
			go r.Stop()
		}
	}()
	fn()
}

func (r *Runtime) renderNow() {
	start := time.Now()
	_, span := r.opts.Tracer.StartRender(context.Background())

	prev := r.tree
	root := r.root()
	next, disposed := reconcile.Reconcile(r.ctx, root, prev)
	r.tree = next
	for _, h := range disposed {
		r.opts.Metrics.HookDisposed(hookVariantName(h))
	}

	r.opts.Metrics.RenderDuration(time.Since(start))
	r.push(prev, next)
	span.End(nil)
}

// hookVariantName labels a disposed hook for metrics purposes without
// reaching into vui's unexported hookVariant() — every hook variant is
// an exported type, so a type switch here is exactly as informative.
func hookVariantName(h vui.Hook) string {
	switch h.(type) {
	case vui.StateHook:
		return "state"
	case vui.ReducerHook:
		return "reducer"
	case vui.EffectHook:
		return "effect"
	case vui.MemoHook:
		return "memo"
	case vui.CallbackHook:
		return "callback"
	case vui.HandlerHook:
		return "handler"
	case vui.ClientHookState:
		return "client"
	default:
		return "unknown"
	}
}

// push sends the freshly reconciled tree to the Updater: a FullUpdate
// on first render (prev == nil), a PatchUpdate otherwise.
func (r *Runtime) push(prev, next vui.ReconciledNode) {
	if prev == nil {
		if err := r.updater.Send(RenderedUpdate{Kind: FullUpdate, Full: next}); err != nil {
			r.logger.Warn("runtime: updater send failed", "error", err)
		}
		return
	}

	p := patch.Create(prev, next)
	if p.Kind == patch.NoOp {
		return
	}
	r.opts.Metrics.PatchSize(len(p.Children), len(p.Attrs))
	if err := r.updater.Send(RenderedUpdate{Kind: PatchUpdate, Delta: p}); err != nil {
		r.logger.Warn("runtime: updater send failed", "error", err)
	}
}

func (r *Runtime) sendToClient(hookID, event string, payload any) {
	if err := r.updater.SendClientEvent(hookID, event, payload); err != nil {
		r.logger.Warn("runtime: client-hook send failed", "hook_id", hookID, "error", err)
	}
}
