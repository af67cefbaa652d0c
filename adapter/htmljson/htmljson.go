// Package htmljson implements a JSON-shaped renderer adapter: it
// turns a reconciled tree into a plain Go value (map[string]any /
// string) shaped for direct encoding/json.Marshal by a transport, with
// children keyed by their numeric index the way a browser client can
// walk without a schema.
package htmljson

import (
	"strconv"

	"github.com/vango-go/reactui/patch"
	"github.com/vango-go/reactui/vui"
	"github.com/vango-go/reactui/wire"
)

// voidElements cannot have children in HTML; the renderer omits their
// child fields entirely rather than emitting an empty one.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// IsVoidElement reports whether tag is an HTML void element.
func IsVoidElement(tag string) bool { return voidElements[tag] }

// Render converts a reconciled tree into its wire-shaped value: a
// ReconciledText becomes a plain string; every other variant becomes a
// map[string]any tagged by wire.TypeKey.
func Render(n vui.ReconciledNode) any {
	switch v := n.(type) {
	case nil:
		return nil
	case vui.ReconciledText:
		return v.Text
	case vui.ReconciledElement:
		return renderElement(v)
	case vui.ReconciledFragment:
		return renderFragment(v)
	case vui.ReconciledComponent:
		return renderComponent(v)
	default:
		return nil
	}
}

func renderElement(v vui.ReconciledElement) map[string]any {
	out := map[string]any{wire.TypeKey: v.Tag}
	if v.Key != "" {
		out[wire.KeyAttr] = v.Key
	}
	for _, a := range v.Attrs {
		for k, val := range attrFields(a) {
			out[k] = val
		}
	}
	if !IsVoidElement(v.Tag) {
		renderChildren(out, v.Children)
	}
	return out
}

func renderFragment(v vui.ReconciledFragment) map[string]any {
	out := map[string]any{wire.TypeKey: "fragment"}
	if v.Key != "" {
		out[wire.KeyAttr] = v.Key
	}
	renderChildren(out, v.Children)
	return out
}

func renderComponent(v vui.ReconciledComponent) map[string]any {
	out := map[string]any{wire.TypeKey: wire.ComponentType}
	if v.Key != "" {
		out[wire.KeyAttr] = v.Key
	}
	out["0"] = Render(v.Child)
	return out
}

func renderChildren(out map[string]any, children []vui.ReconciledNode) {
	for i, c := range children {
		out[strconv.Itoa(i)] = Render(c)
	}
}

// attrFields returns the wire field(s) a single ReconciledAttribute
// contributes to its enclosing element's JSON object — one field for a
// static attribute or event handler, two for a client hook (its name
// and its id).
func attrFields(a vui.ReconciledAttribute) map[string]any {
	switch attr := a.(type) {
	case vui.ReconciledStaticAttribute:
		return map[string]any{attr.Name: attr.Value}
	case vui.ReconciledEventHandler:
		return map[string]any{wire.EventAttrName(attr.Kind): attr.ID}
	case vui.ReconciledClientHook:
		return map[string]any{
			wire.ClientHookAttrPrefix:   attr.Name,
			wire.ClientHookIDAttrName(): attr.ID,
		}
	default:
		return nil
	}
}

// RenderPatch converts a patch.Patch into its wire-shaped value, for a
// transport sending a PatchUpdate instead of a fresh FullUpdate.
func RenderPatch(p patch.Patch) map[string]any {
	out := map[string]any{"kind": p.Kind.String()}
	switch p.Kind {
	case patch.Replace, patch.Insert:
		out["node"] = Render(p.Node)
	case patch.Update:
		if len(p.Attrs) > 0 {
			attrs := make([]map[string]any, len(p.Attrs))
			for i, a := range p.Attrs {
				attrs[i] = renderAttrPatch(a)
			}
			out["attrs"] = attrs
		}
		if len(p.Children) > 0 {
			children := make([]map[string]any, len(p.Children))
			for i, c := range p.Children {
				children[i] = renderChildPatch(c)
			}
			out["children"] = children
		}
	}
	return out
}

func renderAttrPatch(a patch.AttrPatch) map[string]any {
	out := map[string]any{"op": a.Op.String(), "slot": a.Slot}
	if a.Op == patch.AttrSet {
		out["value"] = attrFields(a.Attr)
	}
	return out
}

func renderChildPatch(c patch.ChildPatch) map[string]any {
	out := map[string]any{"op": c.Op.String(), "index": c.Index}
	switch c.Op {
	case patch.ChildMove:
		out["from"] = c.From
	case patch.ChildInsert:
		out["node"] = Render(c.Node)
	}
	if c.Sub != nil {
		out["patch"] = RenderPatch(*c.Sub)
	}
	return out
}
