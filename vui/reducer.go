package vui

import (
	"errors"
	"time"
)

// ErrReducerTimeout is returned from a Reducer hook's read when the
// isolated task fails to reply within the Context's CallTimeout.
var ErrReducerTimeout = errors.New("vui: reducer Get timed out")

type reducerGetMsg struct {
	reply chan any
}

type reducerDispatchMsg struct {
	apply func(model any) any
}

// reducerTask owns a Reducer hook's model in a dedicated goroutine with
// its own mailbox: the only ways in are a reply-with-model Get and a
// fire-and-forget Dispatch, and the task's lifetime equals the owning
// hook's.
type reducerTask struct {
	mailbox chan any
	done    chan struct{}
}

func startReducerTask(initial any) *reducerTask {
	t := &reducerTask{
		mailbox: make(chan any, 16),
		done:    make(chan struct{}),
	}
	go t.run(initial)
	return t
}

func (t *reducerTask) run(model any) {
	defer close(t.done)
	for msg := range t.mailbox {
		switch m := msg.(type) {
		case reducerGetMsg:
			m.reply <- model
		case reducerDispatchMsg:
			model = m.apply(model)
		case reducerShutdownMsg:
			return
		}
	}
}

type reducerShutdownMsg struct{}

// Get synchronously reads the current model, bounded by timeout.
func (t *reducerTask) Get(timeout time.Duration) (any, error) {
	reply := make(chan any, 1)
	select {
	case t.mailbox <- reducerGetMsg{reply: reply}:
	case <-t.done:
		return nil, ErrReducerTimeout
	}
	select {
	case v := <-reply:
		return v, nil
	case <-time.After(timeout):
		return nil, ErrReducerTimeout
	case <-t.done:
		return nil, ErrReducerTimeout
	}
}

// Dispatch fire-and-forgets a model transition.
func (t *reducerTask) Dispatch(apply func(model any) any) {
	select {
	case t.mailbox <- reducerDispatchMsg{apply: apply}:
	case <-t.done:
	}
}

// shutdown terminates the task. Safe to call more than once.
func (t *reducerTask) shutdown() {
	select {
	case t.mailbox <- reducerShutdownMsg{}:
	case <-t.done:
	}
}

// Dispatch is the function type returned by Reducer to enqueue an
// action against the isolated model task.
type Dispatch[A any] func(action A)

// Reducer mounts a model owned by an isolated task (first render only)
// and returns the model's current value (read synchronously, bounded by
// ctx.CallTimeout) plus a dispatch function. dispatch sends the action
// to the task and schedules a re-render; it never blocks on the result.
func Reducer[S, A any](ctx *Context, initial S, reduce func(S, A) S) (S, Dispatch[A], error) {
	h, idx := ctx.FetchOrInitHook("reducer", func() Hook {
		task := startReducerTask(initial)
		rh := ReducerHook{ID: ctx.IDSource.Next(), task: task}
		rh.Cleanup = task.shutdown
		return rh
	})
	rh := h.(ReducerHook)
	_ = idx

	raw, err := rh.task.Get(ctx.CallTimeout)
	if err != nil {
		var zero S
		return zero, nil, err
	}
	current, _ := raw.(S)

	task := rh.task
	dispatch := Dispatch[A](func(action A) {
		task.Dispatch(func(model any) any {
			typed, _ := model.(S)
			return reduce(typed, action)
		})
		ctx.RenderUpdate()
	})

	return current, dispatch, nil
}
