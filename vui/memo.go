package vui

// Memo recomputes its value, synchronously, when the dependency
// semantics described by trigger say it should; otherwise it surfaces
// the value retained from the last run.
func Memo[T any](ctx *Context, fn func() T, trigger Trigger) T {
	h, idx := ctx.FetchOrInitHook("memo", func() Hook {
		return MemoHook{ID: ctx.IDSource.Next()}
	})
	mh := h.(MemoHook)

	if shouldRun(trigger, mh.HasRun, mh.PrevDeps) {
		mh.Value = fn()
		mh.PrevDeps = trigger.deps
		mh.HasRun = true
	}
	mh.Trigger = trigger
	ctx.UpdateHookAt(idx, mh)

	value, _ := mh.Value.(T)
	return value
}
