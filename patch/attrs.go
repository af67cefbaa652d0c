package patch

import "github.com/vango-go/reactui/vui"

func attrSlot(a vui.ReconciledAttribute) string {
	switch v := a.(type) {
	case vui.ReconciledStaticAttribute:
		return "static:" + v.Name
	case vui.ReconciledEventHandler:
		return "event:" + v.Kind
	case vui.ReconciledClientHook:
		return "client:" + v.Name
	default:
		return "unknown"
	}
}

func attrEqual(a, b vui.ReconciledAttribute) bool {
	switch av := a.(type) {
	case vui.ReconciledStaticAttribute:
		bv, ok := b.(vui.ReconciledStaticAttribute)
		return ok && av.Value == bv.Value
	case vui.ReconciledEventHandler:
		bv, ok := b.(vui.ReconciledEventHandler)
		return ok && av.Kind == bv.Kind && av.ID == bv.ID
	case vui.ReconciledClientHook:
		bv, ok := b.(vui.ReconciledClientHook)
		return ok && av.Name == bv.Name && av.ID == bv.ID
	default:
		return false
	}
}

// diffAttrs computes add/remove/replace-by-slot deltas: attribute
// delta is add/remove/replace by name; event-handler deltas compare
// (kind, id).
func diffAttrs(prev, next []vui.ReconciledAttribute) []AttrPatch {
	prevBySlot := make(map[string]vui.ReconciledAttribute, len(prev))
	for _, a := range prev {
		prevBySlot[attrSlot(a)] = a
	}
	nextBySlot := make(map[string]vui.ReconciledAttribute, len(next))
	for _, a := range next {
		nextBySlot[attrSlot(a)] = a
	}

	var out []AttrPatch
	for slot := range prevBySlot {
		if _, ok := nextBySlot[slot]; !ok {
			out = append(out, AttrPatch{Op: AttrRemove, Slot: slot})
		}
	}
	// Iterate `next` in its original order so patches are stable and
	// match the order attributes were declared in the new element.
	for _, a := range next {
		slot := attrSlot(a)
		if pv, ok := prevBySlot[slot]; !ok || !attrEqual(pv, a) {
			out = append(out, AttrPatch{Op: AttrSet, Slot: slot, Attr: a})
		}
	}
	return out
}

// ApplyAttrs applies a set of AttrPatch entries to a copy of attrs,
// returning the result; with no patches it returns attrs itself. Used
// by the round-trip property tests and by client-side-equivalent apply
// logic exercised server-side in tests.
func ApplyAttrs(attrs []vui.ReconciledAttribute, patches []AttrPatch) []vui.ReconciledAttribute {
	if len(patches) == 0 {
		return attrs
	}
	bySlot := make(map[string]vui.ReconciledAttribute, len(attrs))
	order := make([]string, 0, len(attrs))
	for _, a := range attrs {
		slot := attrSlot(a)
		bySlot[slot] = a
		order = append(order, slot)
	}
	for _, p := range patches {
		switch p.Op {
		case AttrRemove:
			delete(bySlot, p.Slot)
			order = removeSlot(order, p.Slot)
		case AttrSet:
			if _, existed := bySlot[p.Slot]; !existed {
				order = append(order, p.Slot)
			}
			bySlot[p.Slot] = p.Attr
		}
	}
	out := make([]vui.ReconciledAttribute, 0, len(order))
	for _, slot := range order {
		if a, ok := bySlot[slot]; ok {
			out = append(out, a)
		}
	}
	return out
}

func removeSlot(order []string, slot string) []string {
	for i, s := range order {
		if s == slot {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
