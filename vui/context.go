package vui

import (
	"fmt"
	"time"

	"github.com/vango-go/reactui/idgen"
)

// DefaultCallTimeout bounds a Reducer hook's synchronous Get against
// its isolated task.
const DefaultCallTimeout = 2 * time.Second

// providerFrame is a persistent (copy-on-push), singly-linked binding so
// that pushing a provider for one subtree never disturbs bindings
// visible to a sibling subtree reconciled afterwards, avoiding
// unwinding mistakes around early returns.
type providerFrame struct {
	key    string
	value  any
	parent *providerFrame
}

// Context is the per-render mutable cursor: it carries the root view,
// the id source, the active provider bindings, the handlers recorded
// this pass, and — while a specific component instance is being
// rendered — that instance's hook cursor.
type Context struct {
	View        Element
	IDSource    idgen.Source
	CallTimeout time.Duration

	providers *providerFrame
	Handlers  []IdentifiableHandler

	renderUpdate   func()
	updateHook     func(id string, fn func(Hook) Hook)
	sendToClient   func(hookID, event string, payload any)

	// componentStack lets Reconcile enter/exit nested component
	// instances (a component's children may themselves contain
	// components) without losing the enclosing cursor.
	componentStack []*componentCursor
}

// componentCursor is the hook cursor for one component instance during
// one reconciliation pass.
type componentCursor struct {
	tag       string // componentID, for diagnostics
	prevHooks HookList
	hooks     HookList
	index     int
}

// NewContext builds a Context for one reconciliation pass. renderUpdate
// and updateHook are the closures the owning runtime actor wires in:
// runtime.Runtime's renderUpdate requests a coalesced re-render on its
// render channel, and its updateHook applies the mutation to the
// retained tree's hook immediately, on the calling goroutine.
func NewContext(view Element, idSource idgen.Source, renderUpdate func(), updateHook func(id string, fn func(Hook) Hook)) *Context {
	return &Context{View: view, IDSource: idSource, CallTimeout: DefaultCallTimeout, renderUpdate: renderUpdate, updateHook: updateHook}
}

// PrepareForReconciliation clears the handler registry ahead of a
// fresh reconciliation pass: after reconciliation, Handlers must
// contain exactly the ids appearing in the new tree.
func (c *Context) PrepareForReconciliation() {
	c.Handlers = c.Handlers[:0]
	c.componentStack = c.componentStack[:0]
}

// EnterComponent pushes a new hook cursor for a component instance,
// seeded with the hooks it carried on the previous render (nil for a
// freshly mounted instance).
func (c *Context) EnterComponent(tag string, prevHooks HookList) {
	c.componentStack = append(c.componentStack, &componentCursor{tag: tag, prevHooks: prevHooks})
}

// ExitComponent pops the current component's hook cursor and returns
// the HookList it accumulated, after validating that it called the
// same number of hooks as its previous render: a length drift, like a
// variant drift caught per-call in FetchOrInitHook, is a fatal
// programmer error.
func (c *Context) ExitComponent() HookList {
	n := len(c.componentStack)
	cur := c.componentStack[n-1]
	c.componentStack = c.componentStack[:n-1]

	if cur.prevHooks != nil && len(cur.hooks) != len(cur.prevHooks) {
		panic(&HookOrderError{
			ComponentTag: cur.tag,
			Reason:       fmt.Sprintf("expected %d hooks, got %d", len(cur.prevHooks), len(cur.hooks)),
		})
	}
	return cur.hooks
}

// current returns the hook cursor for the component currently
// rendering. Calling a hook outside of any component render is a
// programmer error.
func (c *Context) current() *componentCursor {
	if len(c.componentStack) == 0 {
		panic(&HookOrderError{Reason: "hook called outside of a component render"})
	}
	return c.componentStack[len(c.componentStack)-1]
}

// FetchOrInitHook returns the hook at the current cursor index for the
// component currently rendering, validating that its variant matches
// `variant` (a mismatch — or running off the end of prevHooks — means
// hook call order changed between renders, a fatal programmer error).
// If there is no previous hook at this index,
// init is invoked and the result stored. The cursor is advanced in
// both cases. The returned index lets the caller later call
// UpdateHookAt to install a refreshed copy without reallocating an id.
func (c *Context) FetchOrInitHook(variant string, init func() Hook) (Hook, int) {
	cur := c.current()
	idx := cur.index
	cur.index++

	var h Hook
	if idx < len(cur.prevHooks) {
		prev := cur.prevHooks[idx]
		if prev.hookVariant() != variant {
			panic(&HookOrderError{
				ComponentTag: cur.tag,
				Reason: fmt.Sprintf("hook order changed at index %d: expected %s, got %s",
					idx, prev.hookVariant(), variant),
			})
		}
		h = prev
	} else {
		h = init()
	}

	cur.hooks = append(cur.hooks, h)
	return h, idx
}

// UpdateHookAt replaces the hook at a known index within the component
// currently rendering — used to record a new closure (e.g. a refreshed
// Effect.Fn) each render without allocating a new hook id.
func (c *Context) UpdateHookAt(index int, hook Hook) {
	cur := c.current()
	cur.hooks[index] = hook
}

// PushProvider binds key to value for the duration of reconciling a
// ProviderNode's child; the returned func restores the previous
// binding (or lack thereof) for key.
func (c *Context) PushProvider(key string, value any) func() {
	prevFrame := c.providers
	c.providers = &providerFrame{key: key, value: value, parent: prevFrame}
	return func() { c.providers = prevFrame }
}

// LookupProvider walks the provider stack outward, returning the
// nearest enclosing binding for key.
func (c *Context) LookupProvider(key string) (any, bool) {
	for f := c.providers; f != nil; f = f.parent {
		if f.key == key {
			return f.value, true
		}
	}
	return nil, false
}

// RecordHandler registers a handler produced during this reconciliation
// pass so ProcessEvent can look it up by id later.
func (c *Context) RecordHandler(h IdentifiableHandler) {
	c.Handlers = append(c.Handlers, h)
}

// RenderUpdate schedules a re-render on the owning runtime. Safe to
// call from inside a hook setter, a dispatch, or an effect: the
// runtime's mailbox serialises the resulting RenderUpdate message
// behind whatever reconciliation is currently in flight.
func (c *Context) RenderUpdate() {
	if c.renderUpdate != nil {
		c.renderUpdate()
	}
}

// UpdateHook posts a hook mutation to the owning runtime.
func (c *Context) UpdateHook(id string, fn func(Hook) Hook) {
	if c.updateHook != nil {
		c.updateHook(id, fn)
	}
}

// SetClientSender wires the closure a Client hook's dispatch function
// uses to reach the transport. Called by the owning runtime when it
// builds a Context for a reconciliation pass.
func (c *Context) SetClientSender(send func(hookID, event string, payload any)) {
	c.sendToClient = send
}

// SendToClient delivers a server-initiated message to a client hook
// binding by id.
func (c *Context) SendToClient(hookID, event string, payload any) {
	if c.sendToClient != nil {
		c.sendToClient(hookID, event, payload)
	}
}

// HookOrderError is the fatal, programmer-facing error raised when hook
// call order or count drifts between renders of the same component
// instance, or when a hook is called outside of a render. This aborts
// the render and is recovered at the runtime actor boundary, which
// logs it and shuts the runtime down cleanly.
type HookOrderError struct {
	ComponentTag string
	Reason       string
}

func (e *HookOrderError) Error() string {
	if e.ComponentTag == "" {
		return "vui: " + e.Reason
	}
	return fmt.Sprintf("vui: component %s: %s", e.ComponentTag, e.Reason)
}
