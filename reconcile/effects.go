package reconcile

import "github.com/vango-go/reactui/vui"

// runEffectPass walks the freshly reconciled tree and, for every Effect
// hook found, applies vui.RunEffectIfDue as the post-reconciliation
// effect pass. It mutates each ReconciledComponent it visits in place
// (Hooks is a slice, editable by index) so the updated EffectResult is
// what ends up in the tree the runtime retains.
func runEffectPass(n vui.ReconciledNode) {
	switch v := n.(type) {
	case vui.ReconciledComponent:
		for i, h := range v.Hooks {
			if eh, ok := h.(vui.EffectHook); ok {
				v.Hooks[i] = vui.RunEffectIfDue(eh)
			}
		}
		runEffectPass(v.Child)
	case vui.ReconciledElement:
		for _, c := range v.Children {
			runEffectPass(c)
		}
	case vui.ReconciledFragment:
		for _, c := range v.Children {
			runEffectPass(c)
		}
	}
}
