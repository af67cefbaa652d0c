package runtime

import "github.com/vango-go/reactui/vui"

// updateHookInTree finds the hook with the given id anywhere in n and
// replaces it with fn(hook), mutating the tree's retained HookList
// slice in place — the same trick reconcile.runEffectPass relies on
// (a ReconciledComponent's Hooks field is a slice header aliasing the
// same backing array in every copy of that struct). Returns whether a
// hook was found.
func updateHookInTree(n vui.ReconciledNode, id string, fn func(vui.Hook) vui.Hook) bool {
	switch v := n.(type) {
	case vui.ReconciledComponent:
		for i, h := range v.Hooks {
			if h.HookID() == id {
				v.Hooks[i] = fn(h)
				return true
			}
		}
		return updateHookInTree(v.Child, id, fn)
	case vui.ReconciledElement:
		for _, c := range v.Children {
			if updateHookInTree(c, id, fn) {
				return true
			}
		}
	case vui.ReconciledFragment:
		for _, c := range v.Children {
			if updateHookInTree(c, id, fn) {
				return true
			}
		}
	}
	return false
}

// findClientHook returns the ClientHookState with the given id, or nil.
func findClientHook(n vui.ReconciledNode, id string) *vui.ClientHookState {
	switch v := n.(type) {
	case vui.ReconciledComponent:
		for _, h := range v.Hooks {
			if ch, ok := h.(vui.ClientHookState); ok && ch.ID == id {
				return &ch
			}
		}
		return findClientHook(v.Child, id)
	case vui.ReconciledElement:
		for _, c := range v.Children {
			if h := findClientHook(c, id); h != nil {
				return h
			}
		}
	case vui.ReconciledFragment:
		for _, c := range v.Children {
			if h := findClientHook(c, id); h != nil {
				return h
			}
		}
	}
	return nil
}
