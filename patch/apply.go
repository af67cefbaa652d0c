package patch

import "github.com/vango-go/reactui/vui"

// Apply installs p onto prev and returns the resulting tree. It is the
// server-side twin of the client's patch-application logic and exists
// so the round-trip property (Apply(Create(a, b), a) == b) is
// checkable without a browser.
func Apply(prev vui.ReconciledNode, p Patch) vui.ReconciledNode {
	switch p.Kind {
	case NoOp:
		return prev
	case Replace, Insert:
		return p.Node
	case Remove:
		return nil
	case Update:
		return applyUpdate(prev, p)
	default:
		return prev
	}
}

func applyUpdate(prev vui.ReconciledNode, p Patch) vui.ReconciledNode {
	switch v := prev.(type) {
	case vui.ReconciledElement:
		v.Attrs = ApplyAttrs(v.Attrs, p.Attrs)
		v.Children = applyChildren(v.Children, p.Children)
		return v
	case vui.ReconciledFragment:
		v.Children = applyChildren(v.Children, p.Children)
		return v
	case vui.ReconciledComponent:
		for _, cp := range p.Children {
			if cp.Index == 0 && cp.Sub != nil {
				v.Child = Apply(v.Child, *cp.Sub)
			}
		}
		return v
	default:
		return prev
	}
}

// applyChildren reconstructs the new child list from the previous one
// and a ChildPatch list. Insert/Keep/Move entries are indexed by their
// position in the NEW list and, taken together, cover every slot; a
// ChildRemove entry carries no slot in the new list and is skipped —
// it exists for a transport client to remove a DOM node, not to help
// reconstruct the tree.
func applyChildren(prev []vui.ReconciledNode, patches []ChildPatch) []vui.ReconciledNode {
	if len(patches) == 0 {
		return prev
	}
	size := 0
	for _, cp := range patches {
		if cp.Op != ChildRemove && cp.Index+1 > size {
			size = cp.Index + 1
		}
	}
	out := make([]vui.ReconciledNode, size)
	for _, cp := range patches {
		switch cp.Op {
		case ChildInsert:
			out[cp.Index] = cp.Node
		case ChildKeep:
			out[cp.Index] = applySub(indexOrNil(prev, cp.Index), cp.Sub)
		case ChildMove:
			out[cp.Index] = applySub(indexOrNil(prev, cp.From), cp.Sub)
		case ChildRemove:
			// no slot in the new list
		}
	}
	return out
}

func indexOrNil(nodes []vui.ReconciledNode, i int) vui.ReconciledNode {
	if i >= 0 && i < len(nodes) {
		return nodes[i]
	}
	return nil
}

func applySub(old vui.ReconciledNode, sub *Patch) vui.ReconciledNode {
	if sub == nil {
		return old
	}
	return Apply(old, *sub)
}
