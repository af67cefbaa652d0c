package patch

import "github.com/vango-go/reactui/vui"

func hasAnyKey(nodes []vui.ReconciledNode) bool {
	for _, n := range nodes {
		if _, key := classify(n); key != "" {
			return true
		}
	}
	return false
}

func classify(n vui.ReconciledNode) (kind, key string) {
	switch v := n.(type) {
	case vui.ReconciledText:
		return "text", ""
	case vui.ReconciledElement:
		return "element:" + v.Tag, v.Key
	case vui.ReconciledComponent:
		return "component:" + v.ComponentID, v.Key
	case vui.ReconciledFragment:
		return "fragment", v.Key
	default:
		return "unknown", ""
	}
}

// diffChildren computes the per-position patch list for a child list:
// keyed lists diff by building key maps on both sides and emitting
// Insert/Remove/Move/recursive-Update; unkeyed lists diff positionally.
func diffChildren(prev, next []vui.ReconciledNode) []ChildPatch {
	if hasAnyKey(prev) || hasAnyKey(next) {
		return diffKeyedChildren(prev, next)
	}
	return diffPositionalChildren(prev, next)
}

func diffPositionalChildren(prev, next []vui.ReconciledNode) []ChildPatch {
	max := len(prev)
	if len(next) > max {
		max = len(next)
	}
	out := make([]ChildPatch, 0, max)
	for i := 0; i < max; i++ {
		var p, n vui.ReconciledNode
		if i < len(prev) {
			p = prev[i]
		}
		if i < len(next) {
			n = next[i]
		}
		switch {
		case p == nil && n != nil:
			out = append(out, ChildPatch{Op: ChildInsert, Index: i, Node: n})
		case p != nil && n == nil:
			out = append(out, ChildPatch{Op: ChildRemove, Index: i})
		default:
			sub := diff(p, n)
			out = append(out, ChildPatch{Op: ChildKeep, Index: i, Sub: &sub})
		}
	}
	return out
}

func diffKeyedChildren(prev, next []vui.ReconciledNode) []ChildPatch {
	type slotKey struct{ kind, key string }
	prevIndex := make(map[slotKey]int, len(prev))
	unkeyed := make(map[string][]int)
	for i, p := range prev {
		kind, key := classify(p)
		if key != "" {
			prevIndex[slotKey{kind, key}] = i
		} else {
			unkeyed[kind] = append(unkeyed[kind], i)
		}
	}

	matched := make(map[int]bool, len(prev))
	out := make([]ChildPatch, 0, len(next))

	for newIdx, n := range next {
		kind, key := classify(n)
		var prevIdx int
		var ok bool
		if key == "" {
			// Unkeyed nodes inside a keyed list pair positionally with
			// the previous unkeyed nodes of the same kind.
			if q := unkeyed[kind]; len(q) > 0 {
				prevIdx, ok = q[0], true
				unkeyed[kind] = q[1:]
			}
		} else {
			prevIdx, ok = prevIndex[slotKey{kind, key}]
		}
		if !ok {
			out = append(out, ChildPatch{Op: ChildInsert, Index: newIdx, Node: n})
			continue
		}
		matched[prevIdx] = true
		sub := diff(prev[prevIdx], n)
		if prevIdx != newIdx {
			out = append(out, ChildPatch{Op: ChildMove, Index: newIdx, From: prevIdx, Sub: &sub})
		} else {
			out = append(out, ChildPatch{Op: ChildKeep, Index: newIdx, Sub: &sub})
		}
	}

	for i := range prev {
		if !matched[i] {
			out = append(out, ChildPatch{Op: ChildRemove, Index: i})
		}
	}

	return out
}
