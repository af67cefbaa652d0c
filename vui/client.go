package vui

// ClientDispatch enqueues a client-directed message for a Client hook:
// the runtime delivers it to the browser-side binding named by the
// hook, addressed by the hook's stable id.
type ClientDispatch func(event string, payload any)

// Client mounts a named browser-side behavior bound to an element. It
// returns the ClientHookAttribute to attach to that element and a
// dispatch function for server-initiated messages to the client
// binding. onEvent is invoked by the runtime's ProcessClientHook when
// the client dispatches an event back for this hook's id.
func Client(ctx *Context, name string, onEvent func(event string, payload any, reply func(any))) (ClientHookAttribute, ClientDispatch) {
	h, idx := ctx.FetchOrInitHook("client", func() Hook {
		return ClientHookState{ID: ctx.IDSource.Next(), Name: name}
	})
	ch := h.(ClientHookState)
	ch.Name = name
	ch.OnEvent = onEvent
	ctx.UpdateHookAt(idx, ch)

	attr := ClientHookAttribute{HookID: ch.ID, Name: name}
	dispatch := ClientDispatch(func(event string, payload any) {
		ctx.SendToClient(ch.ID, event, payload)
	})
	return attr, dispatch
}
