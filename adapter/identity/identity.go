// Package identity implements the simplest renderer adapter: it
// returns a reconciled tree unchanged. Useful for tests and
// same-process consumers that want the Go value tree directly rather
// than a serialized form.
package identity

import "github.com/vango-go/reactui/vui"

// Render returns n unchanged.
func Render(n vui.ReconciledNode) vui.ReconciledNode { return n }
