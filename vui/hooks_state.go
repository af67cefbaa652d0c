package vui

// SetState updates a State hook's value. The setter's own identity need
// not be stable across renders — only the hook id it closes over is —
// so State is safe to call again on every render.
type SetState[T any] func(value T)

// State returns the hook's current value and a setter. Calling the
// setter posts an UpdateHookState message for this hook's id and then
// schedules a re-render; it never mutates the value synchronously.
func State[T any](ctx *Context, initial T) (T, SetState[T]) {
	h, idx := ctx.FetchOrInitHook("state", func() Hook {
		return StateHook{ID: ctx.IDSource.Next(), Value: initial}
	})
	st := h.(StateHook)
	_ = idx

	id := st.ID
	setter := SetState[T](func(value T) {
		ctx.UpdateHook(id, func(prev Hook) Hook {
			return StateHook{ID: id, Value: value}
		})
		ctx.RenderUpdate()
	})

	value, _ := st.Value.(T)
	return value, setter
}
