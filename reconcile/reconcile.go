// Package reconcile implements the recursive diff of an element tree
// against the previously reconciled tree: it threads hook identity
// through re-renders, resolves provider bindings, and produces the new
// reconciled tree the patch algebra and renderer adapters consume.
//
// Reconciliation is strictly left-to-right and pre-order: a
// component's hooks are matched by call-order index, not by identity
// of the call site, so the traversal order here IS the hook order.
package reconcile

import (
	"github.com/vango-go/reactui/vui"
)

// Reconcile drives one full reconciliation pass: it clears the
// Context's handler registry and component cursors, walks root against
// prevRoot, disposes any hooks present in prevRoot but absent from the
// result (running their cleanups), then runs the post-reconciliation
// effect pass over the resulting tree, returning the disposed hooks so
// a caller can report them
// (e.g. to metrics). It panics with *vui.HookOrderError
// or *vui.ErrNoProvider on a programmer error; callers (the runtime
// actor) are expected to recover, log, and shut down cleanly without
// mutating their retained "last known good" tree.
func Reconcile(ctx *vui.Context, root vui.Element, prevRoot vui.ReconciledNode) (vui.ReconciledNode, []vui.Hook) {
	ctx.PrepareForReconciliation()
	next := reconcileNode(ctx, root, prevRoot)
	disposed := disposeRemoved(prevRoot, next)
	runEffectPass(next)
	return next, disposed
}

// reconcileNode reconciles a single (element, prev) pair. Provider
// nodes are transparent in the output: they push a binding, reconcile
// their child against the SAME prev (since ProviderNode never produces
// its own ReconciledNode variant), and pop.
func reconcileNode(ctx *vui.Context, el vui.Element, prev vui.ReconciledNode) vui.ReconciledNode {
	if el == nil {
		return nil
	}

	if p, ok := el.(vui.ProviderNode); ok {
		pop := ctx.PushProvider(p.ProviderKey, p.Value)
		defer pop()
		return reconcileNode(ctx, p.Child, prev)
	}

	switch v := el.(type) {
	case vui.TextNode:
		return reconcileText(v, prev)
	case vui.ElementNode:
		return reconcileElement(ctx, v, prev)
	case vui.ComponentNode:
		return reconcileComponent(ctx, v, prev)
	case vui.FragmentNode:
		return reconcileFragment(ctx, v, prev)
	default:
		return nil
	}
}

func reconcileText(v vui.TextNode, prev vui.ReconciledNode) vui.ReconciledNode {
	// Rule 1: mismatched variants discard prevReconciled — reflected
	// here simply by never looking at prev's fields unless it's text.
	return vui.ReconciledText{Text: v.Text}
}

func reconcileElement(ctx *vui.Context, v vui.ElementNode, prev vui.ReconciledNode) vui.ReconciledNode {
	var prevChildren []vui.ReconciledNode
	if pe, ok := prev.(vui.ReconciledElement); ok && pe.Tag == v.Tag && pe.Key == v.Key {
		prevChildren = pe.Children
	}

	attrs := buildAttributes(ctx, v.Attributes)
	children := reconcileChildren(ctx, v.Children, prevChildren)

	return vui.ReconciledElement{
		Tag:      v.Tag,
		Key:      v.Key,
		Attrs:    attrs,
		Children: children,
	}
}

func reconcileFragment(ctx *vui.Context, v vui.FragmentNode, prev vui.ReconciledNode) vui.ReconciledNode {
	var prevChildren []vui.ReconciledNode
	if pf, ok := prev.(vui.ReconciledFragment); ok && pf.Key == v.Key {
		prevChildren = pf.Children
	}
	return vui.ReconciledFragment{
		Key:      v.Key,
		Children: reconcileChildren(ctx, v.Children, prevChildren),
	}
}

func reconcileComponent(ctx *vui.Context, v vui.ComponentNode, prev vui.ReconciledNode) vui.ReconciledNode {
	var prevHooks vui.HookList
	var prevChild vui.ReconciledNode
	if pc, ok := prev.(vui.ReconciledComponent); ok && pc.ComponentID == v.ComponentID() && pc.Key == v.Key {
		prevHooks = pc.Hooks
		prevChild = pc.Child
	}

	ctx.EnterComponent(v.ComponentID(), prevHooks)
	_, children := v.Fn(ctx, v.Props)
	hooks := ctx.ExitComponent()

	childElement := wrapChildren(children)
	child := reconcileNode(ctx, childElement, prevChild)

	return vui.ReconciledComponent{
		ComponentID: v.ComponentID(),
		Fn:          v.Fn,
		Key:         v.Key,
		Props:       v.Props,
		Hooks:       hooks,
		Child:       child,
	}
}

// wrapChildren collapses a component's returned children into a
// single sub-element to reconcile, wrapping multiple children in an
// (unkeyed) fragment.
func wrapChildren(children []vui.Element) vui.Element {
	if len(children) == 1 {
		return children[0]
	}
	return vui.Fragment(children)
}

func buildAttributes(ctx *vui.Context, attrs []vui.Attribute) []vui.ReconciledAttribute {
	out := make([]vui.ReconciledAttribute, 0, len(attrs))
	for _, a := range attrs {
		switch v := a.(type) {
		case vui.StaticAttribute:
			out = append(out, vui.ReconciledStaticAttribute{Name: v.Name, Value: v.Value})
		case vui.EventHandlerAttribute:
			// Event-handler ids come from the hook system, not from
			// structural reuse of this attribute value: whatever id
			// On(...) was built with (typically a Handler hook's id)
			// travels straight through.
			out = append(out, vui.ReconciledEventHandler{Kind: v.Kind, ID: v.Handler.ID})
		case vui.ClientHookAttribute:
			out = append(out, vui.ReconciledClientHook{Name: v.Name, ID: v.HookID})
		case vui.KeyAttribute:
			// Lifted onto the node's Key at construction time (see
			// vui.El); should not reach here, but ignore defensively.
		}
	}
	return out
}
