// Package idgen produces opaque, process-unique identifiers for hooks,
// event handlers, and client hooks.
package idgen

import (
	"strconv"
	"sync/atomic"
)

// Source issues monotonically increasing, process-unique identifiers.
// Any implementation with negligible collision probability over the
// process lifetime is acceptable; the runtime never inspects the
// contents of an ID beyond treating it as an opaque, comparable string.
type Source interface {
	Next() string
}

// Counter is the default Source: a lock-free monotonic counter prefixed
// so ids from counters with different prefixes remain distinguishable.
// A new Counter starts again at 1.
type Counter struct {
	prefix  string
	counter uint64
}

// NewCounter creates a Counter. prefix is typically short (e.g. "h" for
// hooks, "e" for event handlers); an empty prefix is fine too.
func NewCounter(prefix string) *Counter {
	return &Counter{prefix: prefix}
}

// Next returns the next unique id, e.g. "h1", "h2", ...
func (c *Counter) Next() string {
	n := atomic.AddUint64(&c.counter, 1)
	if c.prefix == "" {
		return strconv.FormatUint(n, 10)
	}
	return c.prefix + strconv.FormatUint(n, 10)
}
