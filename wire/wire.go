// Package wire defines the small set of string constants a renderer
// adapter and transport layer agree on when turning a reconciled tree
// (or a patch against one) into a wire-shaped value. Neither the exact
// serialization format nor the transport itself is this module's
// concern — wire exists so the two sides that DO care (adapter,
// transport) don't invent their own names for the same thing. Exact
// strings are an implementation choice but must stay stable for a
// given wire version, since a browser client hard-codes them.
package wire

const (
	// EventAttrPrefix names the JSON field for an event-handler binding:
	// "<EventAttrPrefix>-<kind>", e.g. "on-click".
	EventAttrPrefix = "on"

	// ClientHookAttrPrefix names the JSON field for a client-hook
	// binding's name ("<ClientHookAttrPrefix>") and id
	// ("<ClientHookAttrPrefix>-id").
	ClientHookAttrPrefix = "hook"

	// KeyAttr names the JSON field carrying a node's reconciliation key.
	KeyAttr = "key"
)

// EventAttrName returns the JSON field name for an event handler of the
// given DOM event kind, e.g. EventAttrName("click") == "on-click".
func EventAttrName(kind string) string { return EventAttrPrefix + "-" + kind }

// ClientHookIDAttrName returns the JSON field name carrying a client
// hook's id, e.g. "hook-id".
func ClientHookIDAttrName() string { return ClientHookAttrPrefix + "-id" }

// TypeKey is the field name adapter/htmljson uses for its "type"
// discriminator, and ComponentType is the value it uses to tag a
// serialized component node.
const (
	TypeKey       = "type"
	ComponentType = "component"
)
