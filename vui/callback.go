package vui

// Callback returns a function reference whose identity is stable
// whenever trigger's dependency check says Unchanged; otherwise it is
// replaced by the freshly supplied fn. T is expected to be a function
// type; Callback itself never calls it.
func Callback[T any](ctx *Context, fn T, trigger Trigger) T {
	h, idx := ctx.FetchOrInitHook("callback", func() Hook {
		return CallbackHook{ID: ctx.IDSource.Next(), CurrentFn: fn, PrevDeps: trigger.deps, HasRun: true}
	})
	ch := h.(CallbackHook)

	if shouldRun(trigger, ch.HasRun, ch.PrevDeps) {
		ch.CurrentFn = fn
		ch.PrevDeps = trigger.deps
		ch.HasRun = true
	}
	ctx.UpdateHookAt(idx, ch)

	current, _ := ch.CurrentFn.(T)
	return current
}
