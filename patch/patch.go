// Package patch implements the structural diff between two reconciled
// trees: the minimal set of operations a transport updater needs to
// bring a client's last-known tree in line with the server's new one.
package patch

import "github.com/vango-go/reactui/vui"

// Kind discriminates a Patch's variant.
type Kind uint8

const (
	NoOp Kind = iota
	Update
	Replace
	Insert
	Remove
	Move
)

func (k Kind) String() string {
	switch k {
	case NoOp:
		return "NoOp"
	case Update:
		return "Update"
	case Replace:
		return "Replace"
	case Insert:
		return "Insert"
	case Remove:
		return "Remove"
	case Move:
		return "Move"
	default:
		return "Unknown"
	}
}

// AttrOp discriminates an attribute delta.
type AttrOp uint8

const (
	AttrSet AttrOp = iota
	AttrRemove
)

func (op AttrOp) String() string {
	if op == AttrRemove {
		return "remove"
	}
	return "set"
}

// AttrPatch is one attribute-level change within an Update. Slot
// canonically identifies "the same attribute across renders" — for a
// StaticAttribute it is "static:<name>", for an EventHandlerAttribute
// "event:<kind>", for a ClientHookAttribute "client:<name>" — so that adding
// one static attribute never gets confused with replacing an event
// handler of a different kind.
type AttrPatch struct {
	Op   AttrOp
	Slot string
	Attr vui.ReconciledAttribute // set for AttrSet, nil for AttrRemove
}

// ChildOp discriminates a per-position entry within an Update's
// Children list.
type ChildOp uint8

const (
	// ChildKeep leaves the previous node's identity in place; Sub
	// carries the (possibly NoOp) recursive patch to apply to it.
	ChildKeep ChildOp = iota
	ChildInsert
	ChildRemove
	// ChildMove relocates a previously-seen keyed node to Index (its
	// position in the new list); Sub is applied after the move.
	ChildMove
)

func (op ChildOp) String() string {
	switch op {
	case ChildKeep:
		return "keep"
	case ChildInsert:
		return "insert"
	case ChildRemove:
		return "remove"
	case ChildMove:
		return "move"
	default:
		return "unknown"
	}
}

// ChildPatch is one entry in an Update's per-child-list diff, indexed
// by the position it targets in the NEW child list (Insert/Keep/Move);
// From additionally carries the OLD index for Move.
type ChildPatch struct {
	Op    ChildOp
	Index int
	From  int
	Node  vui.ReconciledNode // set for ChildInsert
	Sub   *Patch             // set for ChildKeep / ChildMove
}

// Patch is a structural diff node. Only the fields relevant to Kind are
// populated; the rest are zero values.
type Patch struct {
	Kind Kind

	// Update
	Attrs    []AttrPatch
	Children []ChildPatch

	// Replace / Insert
	Node vui.ReconciledNode

	// Move
	From int
	To   int
}

// Create produces the patch that transforms prev into next. Applying
// Create(a, b) to a must yield a tree structurally equal to b, and
// Create(a, a) must be NoOp-only (spec invariants 5-6).
func Create(prev, next vui.ReconciledNode) Patch {
	return diff(prev, next)
}

func diff(prev, next vui.ReconciledNode) Patch {
	if prev == nil && next == nil {
		return Patch{Kind: NoOp}
	}
	if prev == nil {
		return Patch{Kind: Insert, Node: next}
	}
	if next == nil {
		return Patch{Kind: Remove}
	}

	switch p := prev.(type) {
	case vui.ReconciledText:
		nx, ok := next.(vui.ReconciledText)
		if !ok {
			return Patch{Kind: Replace, Node: next}
		}
		if p.Text == nx.Text {
			return Patch{Kind: NoOp}
		}
		return Patch{Kind: Replace, Node: next}

	case vui.ReconciledElement:
		nx, ok := next.(vui.ReconciledElement)
		if !ok || nx.Tag != p.Tag || nx.Key != p.Key {
			return Patch{Kind: Replace, Node: next}
		}
		attrs := diffAttrs(p.Attrs, nx.Attrs)
		children := diffChildren(p.Children, nx.Children)
		if len(attrs) == 0 && allNoOp(children) {
			return Patch{Kind: NoOp}
		}
		return Patch{Kind: Update, Attrs: attrs, Children: children}

	case vui.ReconciledFragment:
		nx, ok := next.(vui.ReconciledFragment)
		if !ok || nx.Key != p.Key {
			return Patch{Kind: Replace, Node: next}
		}
		children := diffChildren(p.Children, nx.Children)
		if allNoOp(children) {
			return Patch{Kind: NoOp}
		}
		return Patch{Kind: Update, Children: children}

	case vui.ReconciledComponent:
		nx, ok := next.(vui.ReconciledComponent)
		if !ok || nx.ComponentID != p.ComponentID || nx.Key != p.Key {
			return Patch{Kind: Replace, Node: next}
		}
		sub := diff(p.Child, nx.Child)
		if sub.Kind == NoOp {
			return Patch{Kind: NoOp}
		}
		// Components descend into their single child, expressed as an
		// Update whose only child entry is at index 0, matching how the
		// JSON renderer nests a component's child under key "0".
		return Patch{Kind: Update, Children: []ChildPatch{{Op: ChildKeep, Index: 0, Sub: &sub}}}

	default:
		return Patch{Kind: Replace, Node: next}
	}
}

func allNoOp(children []ChildPatch) bool {
	for _, c := range children {
		if c.Op != ChildKeep {
			return false
		}
		if c.Sub != nil && c.Sub.Kind != NoOp {
			return false
		}
	}
	return true
}
