package runtime

import "time"

// Metrics is the observability collaborator a Runtime reports to. The
// `metrics` package's Prometheus-backed implementation is the concrete
// default a caller will usually reach for; noopMetrics keeps the actor
// itself free of a nil check on every call site.
type Metrics interface {
	RenderDuration(d time.Duration)
	PatchSize(childOps, attrOps int)
	EventDispatched(handlerFound bool)
	HookDisposed(variant string)
}

type noopMetrics struct{}

func (noopMetrics) RenderDuration(time.Duration) {}
func (noopMetrics) PatchSize(int, int)           {}
func (noopMetrics) EventDispatched(bool)         {}
func (noopMetrics) HookDisposed(string)          {}
