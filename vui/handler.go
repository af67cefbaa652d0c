package vui

// Handler mounts a stable-id event handler: fn is replaced every
// render, id is stable across renders, and the resulting
// IdentifiableHandler is recorded into Context.Handlers automatically
// so On(...) call sites can attach it to an EventHandlerAttribute.
func Handler(ctx *Context, fn func(payload any)) IdentifiableHandler {
	h, idx := ctx.FetchOrInitHook("handler", func() Hook {
		return HandlerHook{ID: ctx.IDSource.Next()}
	})
	hh := h.(HandlerHook)
	hh.Fn = fn
	ctx.UpdateHookAt(idx, hh)

	ih := IdentifiableHandler{ID: hh.ID, Fn: fn}
	ctx.RecordHandler(ih)
	return ih
}
