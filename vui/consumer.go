package vui

import "fmt"

// ErrNoProvider is the error carried by a panic when Consumer is called
// for a key with no enclosing Provider — a fatal usage error, not a
// recoverable operational one.
type ErrNoProvider struct {
	Key string
}

func (e *ErrNoProvider) Error() string {
	return fmt.Sprintf("vui: no provider for context key %q", e.Key)
}

// Consumer reads the nearest enclosing Provider value bound to key. A
// missing provider panics with *ErrNoProvider; callers never receive a
// zero value silently.
func Consumer[T any](ctx *Context, key string) T {
	value, ok := ctx.LookupProvider(key)
	if !ok {
		panic(&ErrNoProvider{Key: key})
	}
	typed, ok := value.(T)
	if !ok {
		panic(&ErrNoProvider{Key: key})
	}
	return typed
}
