package vui

// Effect registers (or refreshes) a side-effect hook. Fn is stored for
// this render; whether it actually runs is decided by the
// post-reconciliation effect pass (RunEffectIfDue), not by this call —
// "declare the effect for this render" is kept deliberately separate
// from "decide whether to run it" so that dependency comparisons see
// the whole new tree before anything fires.
func Effect(ctx *Context, fn func() func(), trigger Trigger) {
	h, idx := ctx.FetchOrInitHook("effect", func() Hook {
		return EffectHook{ID: ctx.IDSource.Next()}
	})
	eh := h.(EffectHook)
	eh.Fn = fn
	eh.Trigger = trigger
	ctx.UpdateHookAt(idx, eh)
}

// RunEffectIfDue is called by the reconciler's post-reconciliation
// effect pass for every EffectHook in the new tree. If a prior cleanup
// exists and the effect is about to re-run, the cleanup runs first:
// disposed/replaced cleanups run before new effects. Returns the hook
// with its Prev result updated.
func RunEffectIfDue(h EffectHook) EffectHook {
	if !shouldRun(h.Trigger, h.Prev.HasRun, h.Prev.Deps) {
		return h
	}

	if h.Prev.Cleanup != nil {
		h.Prev.Cleanup()
	}

	var cleanup func()
	if h.Fn != nil {
		cleanup = h.Fn()
	}

	h.Prev = EffectResult{
		Cleanup: cleanup,
		Deps:    h.Trigger.deps,
		HasRun:  true,
	}
	return h
}
