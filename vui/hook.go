package vui

// Hook is the common shape of every retained, per-component, per-index
// piece of state. Every variant carries a stable ID that never changes
// across renders for a given mount position.
type Hook interface {
	HookID() string
	hookVariant() string // used to detect variant drift at a fixed index
}

// StateHook backs the State hook: Value is mutated only by the setter
// posting an UpdateHookState message back through the render Context.
type StateHook struct {
	ID    string
	Value any
}

func (h StateHook) HookID() string    { return h.ID }
func (h StateHook) hookVariant() string { return "state" }

// ReducerHook backs the Reducer hook. The model itself lives in an
// isolated task (reducerTask); this hook only remembers how to reach it
// and how to tear it down.
type ReducerHook struct {
	ID      string
	task    *reducerTask
	Cleanup func()
}

func (h ReducerHook) HookID() string    { return h.ID }
func (h ReducerHook) hookVariant() string { return "reducer" }

// Trigger controls when an Effect/Memo/Callback re-runs.
type Trigger struct {
	kind trigKind
	deps []any
}

type trigKind uint8

const (
	trigOnMount trigKind = iota
	trigOnUpdate
	trigWithDeps
)

// OnMount runs the effect once, after the first reconciliation of this
// hook, and never again.
func OnMount() Trigger { return Trigger{kind: trigOnMount} }

// OnUpdate runs the effect after every reconciliation the hook survives.
func OnUpdate() Trigger { return Trigger{kind: trigOnUpdate} }

// WithDeps runs the effect when deps is empty (first run only, same as
// OnMount) or when deps differs structurally from the deps stored on
// the previous run.
func WithDeps(deps ...any) Trigger { return Trigger{kind: trigWithDeps, deps: deps} }

// EffectResult is the retained outcome of the last time an Effect's
// function ran: its cleanup (if any) and the deps it ran with, used to
// decide whether the next render should re-run it.
type EffectResult struct {
	Cleanup    func()
	Deps       []any
	HasRun     bool
	DepsIsNone bool // not set by RunEffectIfDue; HasRun and the Trigger decide first-run-only semantics
}

// EffectHook backs the Effect hook. Fn is replaced every render; Prev
// records the outcome of the last invocation so the post-reconciliation
// effect pass can decide whether to re-run it.
type EffectHook struct {
	ID      string
	Fn      func() func()
	Trigger Trigger
	Prev    EffectResult
}

func (h EffectHook) HookID() string    { return h.ID }
func (h EffectHook) hookVariant() string { return "effect" }

// MemoHook backs the Memo hook: identical dependency semantics to
// Effect, but Fn returns a value surfaced to the caller instead of a
// cleanup.
type MemoHook struct {
	ID      string
	Value   any
	Trigger Trigger
	PrevDeps []any
	HasRun  bool
}

func (h MemoHook) HookID() string    { return h.ID }
func (h MemoHook) hookVariant() string { return "memo" }

// CallbackHook backs the Callback hook: CurrentFn keeps whichever
// function value is currently "the" stable identity; it is replaced
// only when deps change.
type CallbackHook struct {
	ID       string
	CurrentFn any
	PrevDeps  []any
	HasRun    bool
}

func (h CallbackHook) HookID() string    { return h.ID }
func (h CallbackHook) hookVariant() string { return "callback" }

// HandlerHook backs the Handler hook: Fn is replaced every render, ID is
// stable, and the resulting IdentifiableHandler is recorded into
// Context.Handlers automatically.
type HandlerHook struct {
	ID string
	Fn func(payload any)
}

func (h HandlerHook) HookID() string    { return h.ID }
func (h HandlerHook) hookVariant() string { return "handler" }

// ClientHookState backs the Client hook: a named browser-side behavior
// bound to an element, with an OnEvent callback the runtime invokes
// when the client dispatches an event for this hook id.
type ClientHookState struct {
	ID      string
	Name    string
	OnEvent func(event string, payload any, reply func(any))
}

func (h ClientHookState) HookID() string    { return h.ID }
func (h ClientHookState) hookVariant() string { return "client" }

// HookList is the ordered set of hooks a component instance owns, in
// call order; a hook's position in the slice IS its call-order index.
type HookList []Hook

// ByID returns the set of hook ids present in the list.
func (l HookList) ByID() map[string]Hook {
	m := make(map[string]Hook, len(l))
	for _, h := range l {
		m[h.HookID()] = h
	}
	return m
}

// Disposed returns hooks present in prev but absent (by id) from next:
// exactly these hooks must have their cleanup invoked once during the
// transition.
func Disposed(prev, next HookList) []Hook {
	if len(prev) == 0 {
		return nil
	}
	keep := next.ByID()
	var out []Hook
	for _, h := range prev {
		if _, ok := keep[h.HookID()]; !ok {
			out = append(out, h)
		}
	}
	return out
}
