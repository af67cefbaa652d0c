package reconcile

import "github.com/vango-go/reactui/vui"

// disposeRemoved computes prevHooks \ newHooks by id across the whole
// tree (not per-subtree — a component can move without being disposed)
// and runs each disposed hook's cleanup exactly once, satisfying spec
// invariant 7. Effect cleanups and Reducer shutdowns are the only
// variants with anything to clean up; other variants are no-ops.
func disposeRemoved(prevRoot, nextRoot vui.ReconciledNode) []vui.Hook {
	prev := collectHooks(prevRoot, nil)
	next := collectHooks(nextRoot, nil)
	disposed := vui.Disposed(prev, next)
	for _, h := range disposed {
		cleanupHook(h)
	}
	return disposed
}

func collectHooks(n vui.ReconciledNode, out vui.HookList) vui.HookList {
	switch v := n.(type) {
	case vui.ReconciledComponent:
		out = append(out, v.Hooks...)
		out = collectHooks(v.Child, out)
	case vui.ReconciledElement:
		for _, c := range v.Children {
			out = collectHooks(c, out)
		}
	case vui.ReconciledFragment:
		for _, c := range v.Children {
			out = collectHooks(c, out)
		}
	}
	return out
}

func cleanupHook(h vui.Hook) {
	switch v := h.(type) {
	case vui.EffectHook:
		if v.Prev.Cleanup != nil {
			v.Prev.Cleanup()
		}
	case vui.ReducerHook:
		if v.Cleanup != nil {
			v.Cleanup()
		}
	}
}
