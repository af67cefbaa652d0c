// Package vui implements the element algebra, the reconciled tree, the
// per-render context (hook cursor, provider stack, handler registry)
// and the hook library. These pieces are kept in one package because
// they are mutually recursive: a
// ComponentNode's function closes over a *Context, hooks read and write
// the Context's cursor, and the cursor's baseline is a HookList pulled
// from the previously reconciled tree.
package vui

import (
	"reflect"
	"strconv"
)

// Element is an immutable virtual-tree node built by callers and
// component functions. It lives only for the duration of one
// reconciliation pass.
type Element interface {
	isElement()
}

// ElementNode is a tagged DOM-shaped node, e.g. <div>, <button>.
type ElementNode struct {
	Tag        string
	Key        string // empty means "no key"
	Attributes []Attribute
	Children   []Element
}

func (ElementNode) isElement() {}

// ComponentFunc is the shape of a functional component: given the
// current render Context and its (opaque) props, it returns the
// Context to continue reconciling with and the children it produced.
//
// Props are passed as `any`; Component wraps a typed constructor so
// that call sites never need to cast outside this one chokepoint.
type ComponentFunc func(ctx *Context, props any) (*Context, []Element)

// ComponentNode mounts a functional component. Two ComponentNodes are
// considered the "same" component instance by the reconciler when their
// Fn pointer (compared by reflect identity via a registration id, see
// Component) and Key both match.
type ComponentNode struct {
	id    string // identity token shared by all ComponentNodes built from the same Component[P]
	Fn    ComponentFunc
	Key   string
	Props any
}

func (ComponentNode) isElement() {}

// ComponentID returns the identity token used to decide whether two
// ComponentNodes refer to the "same" component function across renders.
func (c ComponentNode) ComponentID() string { return c.id }

// Component builds a type-safe constructor for a functional component.
// The returned function produces ComponentNodes carrying a stable
// identity token (derived once, at registration time, from fn's code
// pointer, so constructors built from the same function literal share
// it and constructors built from different functions do not) so the reconciler
// can match instances by component identity without runtime type
// assertions anywhere outside this file.
//
//	Counter := vui.Component(func(ctx *vui.Context, p CounterProps) (*vui.Context, []vui.Element) {
//	    ...
//	})
//	...
//	Counter(CounterProps{Start: 0}, vui.Key("c1"))
func Component[P any](fn func(ctx *Context, props P) (*Context, []Element)) func(props P, opts ...NodeOption) ComponentNode {
	id := "cmp" + strconv.FormatUint(uint64(reflect.ValueOf(fn).Pointer()), 16)
	wrapped := func(ctx *Context, props any) (*Context, []Element) {
		typed, _ := props.(P)
		return fn(ctx, typed)
	}
	return func(props P, opts ...NodeOption) ComponentNode {
		n := ComponentNode{id: id, Fn: wrapped, Props: props}
		for _, o := range opts {
			o.applyComponent(&n)
		}
		return n
	}
}

// FragmentNode groups children without introducing a wrapper element.
type FragmentNode struct {
	Key      string
	Children []Element
}

func (FragmentNode) isElement() {}

// ProviderNode binds a value visible to Consumer hooks in its subtree
// for the duration of reconciling Child.
type ProviderNode struct {
	ProviderKey string
	Value       any
	Child       Element
}

func (ProviderNode) isElement() {}

// TextNode is a leaf text node.
type TextNode struct {
	Text string
}

func (TextNode) isElement() {}

// NodeOption configures a node at construction time, e.g. a key.
type NodeOption interface {
	applyElement(*ElementNode)
	applyComponent(*ComponentNode)
	applyFragment(*FragmentNode)
}

type keyOption string

func (k keyOption) applyElement(n *ElementNode)     { n.Key = string(k) }
func (k keyOption) applyComponent(n *ComponentNode) { n.Key = string(k) }
func (k keyOption) applyFragment(n *FragmentNode)    { n.Key = string(k) }

// Key sets the node's Key field at construction time: keys
// disambiguate siblings for reconciliation but are never carried as a
// regular attribute.
func Key(value string) NodeOption { return keyOption(value) }

// El builds an ElementNode for tag, applying attrs and children in
// order. A KeyAttribute among attrs is lifted onto the node's Key.
func El(tag string, attrs []Attribute, children ...Element) ElementNode {
	n := ElementNode{Tag: tag, Attributes: make([]Attribute, 0, len(attrs))}
	for _, a := range attrs {
		if ka, ok := a.(KeyAttribute); ok {
			n.Key = ka.Value
			continue
		}
		n.Attributes = append(n.Attributes, a)
	}
	n.Children = children
	return n
}

// Fragment builds a FragmentNode from children, optionally keyed.
func Fragment(children []Element, opts ...NodeOption) FragmentNode {
	f := FragmentNode{Children: children}
	for _, o := range opts {
		o.applyFragment(&f)
	}
	return f
}

// Provider builds a ProviderNode binding key to value for child.
func Provider(key string, value any, child Element) ProviderNode {
	return ProviderNode{ProviderKey: key, Value: value, Child: child}
}

// Text builds a TextNode.
func Text(s string) TextNode { return TextNode{Text: s} }

// Classes composes a space-joined class string from optional pieces,
// dropping absent (empty-string-sentinel) entries. Use "" to represent
// an absent class so conditional classes read naturally:
//
//	vui.Classes("base", vui.ClassIf("bold", active))
func Classes(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return joinSpace(out)
}

// ClassIf returns class if cond is true, else "" (for use with Classes).
func ClassIf(class string, cond bool) string {
	if cond {
		return class
	}
	return ""
}

func joinSpace(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}
	n := len(parts) - 1
	for _, p := range parts {
		n += len(p)
	}
	buf := make([]byte, 0, n)
	for i, p := range parts {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, p...)
	}
	return string(buf)
}
