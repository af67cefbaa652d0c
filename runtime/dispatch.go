package runtime

import (
	"context"

	"github.com/vango-go/reactui/vui"
)

// ProcessEvent enqueues handler dispatch and returns without waiting
// for it to run — the fire-and-forget counterpart to the blocking
// ProcessEventImmediate. Enqueue failure (a
// closed runtime) is logged rather than returned, since there is no
// caller waiting to receive it.
func (r *Runtime) ProcessEvent(handlerID string, payload any) {
	select {
	case r.mailbox <- func() {
		if err := r.dispatchEvent(handlerID, payload); err != nil {
			r.logger.Warn("runtime: ProcessEvent failed", "handler_id", handlerID, "error", err)
		}
	}:
	case <-r.done:
		r.logger.Warn("runtime: ProcessEvent on closed runtime", "handler_id", handlerID)
	}
}

// ProcessEventImmediate dispatches synchronously and reports the
// outcome, for callers (tests, a transport wanting request/response
// semantics) that need to know whether the handler ran.
func (r *Runtime) ProcessEventImmediate(handlerID string, payload any) error {
	return r.call(func() error { return r.dispatchEvent(handlerID, payload) })
}

func (r *Runtime) dispatchEvent(handlerID string, payload any) error {
	_, span := r.opts.Tracer.StartDispatch(context.Background(), handlerID)
	for _, h := range r.ctx.Handlers {
		if h.ID == handlerID {
			r.opts.Metrics.EventDispatched(true)
			h.Fn(payload)
			span.End(nil)
			return nil
		}
	}
	r.opts.Metrics.EventDispatched(false)
	err := &Error{Op: "ProcessEvent", Err: ErrHandlerNotFound}
	span.End(err)
	return err
}

// ProcessClientHook delivers an inbound client-originated event to the
// Client hook binding named by hookID. reply, if non-nil, is invoked by
// the hook's OnEvent with a value to send back to that specific client.
func (r *Runtime) ProcessClientHook(hookID, event string, payload any, reply func(any)) error {
	return r.call(func() error {
		h := findClientHook(r.tree, hookID)
		if h == nil {
			return &Error{Op: "ProcessClientHook", Err: ErrClientHookNotFound}
		}
		if h.OnEvent != nil {
			h.OnEvent(event, payload, reply)
		}
		return nil
	})
}

// RenderUpdate schedules a re-render, coalescing with any already
// pending. Exposed so an external driver (a timer, a webhook) can
// trigger a render outside of a hook setter or effect.
func (r *Runtime) RenderUpdate() {
	r.scheduleRender()
}

// GetReconciled returns the tree produced by the most recent
// reconciliation pass, or nil if the runtime has not rendered yet or
// has since been stopped.
func (r *Runtime) GetReconciled() vui.ReconciledNode {
	var out vui.ReconciledNode
	r.call(func() error {
		out = r.tree
		return nil
	})
	return out
}

// ReconcileImmediate forces a synchronous reconciliation pass and
// returns the resulting tree — intended for tests that need a
// deterministic tree without racing the render-coalescing channel.
func (r *Runtime) ReconcileImmediate() vui.ReconciledNode {
	var out vui.ReconciledNode
	r.call(func() error {
		r.renderNow()
		out = r.tree
		return nil
	})
	return out
}

func (r *Runtime) scheduleRender() {
	select {
	case r.renderCh <- struct{}{}:
	default:
		// A render is already pending; this state change will be
		// picked up by it.
	}
}

// scheduleHookUpdate mutates the live tree's copy of a hook by id. It is
// always invoked from inside a hook setter (State's setter, a Reducer's
// dispatch, ...) which only ever runs already on the actor goroutine —
// as part of processing a ProcessEvent call or an effect — so, unlike
// scheduleRender, it must NOT hop back through the mailbox: doing so
// would deadlock, since the goroutine that would service that mailbox
// send is the very one blocked waiting for it to be serviced.
func (r *Runtime) scheduleHookUpdate(id string, fn func(vui.Hook) vui.Hook) {
	updateHookInTree(r.tree, id, fn)
}

// call runs fn on the actor goroutine and waits for it to finish,
// returning ErrRuntimeClosed if the runtime shuts down (including via
// a panic recovered mid-call) before fn could run or complete.
func (r *Runtime) call(fn func() error) error {
	reply := make(chan error, 1)
	// A panic inside fn propagates out of this closure and is caught by
	// protect() at the loop boundary, which shuts the runtime down and
	// closes r.done — unblocking the second select below without reply
	// ever receiving a value.
	send := func() { reply <- fn() }
	select {
	case r.mailbox <- send:
	case <-r.done:
		return ErrRuntimeClosed
	}
	select {
	case err := <-reply:
		return err
	case <-r.done:
		return ErrRuntimeClosed
	}
}
