package runtime

import (
	"github.com/vango-go/reactui/patch"
	"github.com/vango-go/reactui/vui"
)

// RenderedUpdate is the sum type a Runtime hands its Updater after each
// reconciliation pass: either the whole new tree (first render) or a
// Patch against the previously reconciled tree.
// Exactly one of Full/Delta is populated, discriminated by Kind.
type RenderedUpdate struct {
	Kind  UpdateKind
	Full  vui.ReconciledNode
	Delta patch.Patch
}

// UpdateKind discriminates a RenderedUpdate's populated field.
type UpdateKind uint8

const (
	FullUpdate UpdateKind = iota
	PatchUpdate
)

// Updater is the transport-facing collaborator a Runtime pushes
// rendered updates to and receives client-hook replies through. The
// core depends on this interface but never implements it —
// transport/wsupdater is this module's concrete implementation, but
// any caller may supply their own (e.g. for testing, or a
// non-WebSocket transport).
type Updater interface {
	// Send delivers a rendered update to the client. Called on the
	// runtime's own goroutine; it must not block indefinitely — a slow
	// or unresponsive client should not stall reconciliation for other
	// runtimes sharing a process.
	Send(update RenderedUpdate) error

	// SendClientEvent delivers a server-initiated message to a Client
	// hook binding by id, on behalf of a ClientDispatch call.
	SendClientEvent(hookID, event string, payload any) error
}
