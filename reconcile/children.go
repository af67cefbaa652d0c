package reconcile

import "github.com/vango-go/reactui/vui"

// reconcileChildren pairs new children with previous children by
// (variantTag, key) where a key is present;
// unkeyed children pair positionally among their variantTag-peers.
// Unmatched previous children are simply not referenced again — the
// patch algebra (operating on the full old and new trees separately)
// is what turns their absence into Remove patches.
func reconcileChildren(ctx *vui.Context, children []vui.Element, prevChildren []vui.ReconciledNode) []vui.ReconciledNode {
	matches := matchChildren(children, prevChildren)

	out := make([]vui.ReconciledNode, len(children))
	for i, c := range children {
		out[i] = reconcileNode(ctx, c, matches[i])
	}
	return out
}

// matchChildren returns, for each new child, the previous node it
// should be reconciled against (or nil for a fresh mount).
func matchChildren(children []vui.Element, prevChildren []vui.ReconciledNode) []vui.ReconciledNode {
	byKey := make(map[string]vui.ReconciledNode)
	unkeyedQueues := make(map[string][]vui.ReconciledNode)

	for _, p := range prevChildren {
		kind, key := classifyReconciled(p)
		if key != "" {
			byKey[kind+"\x00"+key] = p
		} else {
			unkeyedQueues[kind] = append(unkeyedQueues[kind], p)
		}
	}

	matched := make([]vui.ReconciledNode, len(children))
	for i, c := range children {
		kind, key := classifyElement(c)
		if key != "" {
			if p, ok := byKey[kind+"\x00"+key]; ok {
				matched[i] = p
				delete(byKey, kind+"\x00"+key)
			}
			continue
		}
		if q := unkeyedQueues[kind]; len(q) > 0 {
			matched[i] = q[0]
			unkeyedQueues[kind] = q[1:]
		}
	}
	return matched
}

// classifyElement returns the pairing kind and key for an Element,
// unwrapping Provider nodes since they never produce their own
// ReconciledNode variant.
func classifyElement(e vui.Element) (kind, key string) {
	switch v := e.(type) {
	case vui.ProviderNode:
		return classifyElement(v.Child)
	case vui.TextNode:
		return "text", ""
	case vui.ElementNode:
		return "element:" + v.Tag, v.Key
	case vui.ComponentNode:
		return "component:" + v.ComponentID(), v.Key
	case vui.FragmentNode:
		return "fragment", v.Key
	default:
		return "unknown", ""
	}
}

// classifyReconciled returns the pairing kind and key for a
// ReconciledNode.
func classifyReconciled(n vui.ReconciledNode) (kind, key string) {
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
