package vui

// Attribute is a piece of configuration attached to an ElementNode.
type Attribute interface {
	isAttribute()
}

// StaticAttribute is a plain name/value HTML attribute.
type StaticAttribute struct {
	Name  string
	Value string
}

func (StaticAttribute) isAttribute() {}

// Attr builds a StaticAttribute.
func Attr(name, value string) StaticAttribute { return StaticAttribute{Name: name, Value: value} }

// IdentifiableHandler pairs a stable handler id (assigned by the Handler
// hook or recorded for an inline EventHandlerAttribute) with the
// function the runtime invokes when the corresponding event fires.
type IdentifiableHandler struct {
	ID string
	Fn func(payload any)
}

// EventHandlerAttribute attaches a handler to a DOM event kind, e.g.
// "click". The reconciler does not reuse EventHandlerAttribute.Handler.Fn
// structurally across renders: the handler's id comes from the hook
// system (a Handler hook, matched by index), not from identity of this
// attribute value.
type EventHandlerAttribute struct {
	Kind    string
	Handler IdentifiableHandler
}

func (EventHandlerAttribute) isAttribute() {}

// On builds an EventHandlerAttribute from an already-identified handler,
// as returned by the Handler hook.
func On(kind string, h IdentifiableHandler) EventHandlerAttribute {
	return EventHandlerAttribute{Kind: kind, Handler: h}
}

// ClientHookAttribute binds a named browser-side client hook to this
// element, carrying the hook-id assigned by the Client hook.
type ClientHookAttribute struct {
	HookID string
	Name   string
}

func (ClientHookAttribute) isAttribute() {}

// KeyAttribute sets the enclosing node's reconciliation key. El lifts
// it onto the node's Key field rather than keeping it as a regular
// attribute.
type KeyAttribute struct {
	Value string
}

func (KeyAttribute) isAttribute() {}

// KeyAttr builds a KeyAttribute. Prefer the NodeOption-based Key(...)
// at construction sites; KeyAttr exists for call sites that build an
// attribute list generically (e.g. from a loop) and want the key to
// travel alongside other attributes until El lifts it.
func KeyAttr(value string) KeyAttribute { return KeyAttribute{Value: value} }
