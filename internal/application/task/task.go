// Package task runs a cancellable background job and exposes its handle.
package task

import (
	"context"
	"sync"
)

// Handle is the type-erased view of a Task used by owners that only need
// to stop it or wait for it.
type Handle interface {
	Cancel()
	Done() <-chan struct{}
}

// Task is a running job producing a T.
type Task[T any] struct {
	cancel context.CancelFunc
	done   chan struct{}

	once   sync.Once
	result T
}

// Start runs fn in a new goroutine with a context derived from parent.
func Start[T any](parent context.Context, fn func(ctx context.Context) T) *Task[T] {
	ctx, cancel := context.WithCancel(parent)
	t := &Task[T]{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer cancel()
		t.result = fn(ctx)
		close(t.done)
	}()
	return t
}

// Cancel asks the job to stop. It is safe to call more than once and after
// the job has finished.
func (t *Task[T]) Cancel() {
	t.once.Do(t.cancel)
}

// Done is closed once the job has returned.
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// Result blocks until the job returns and yields its value.
func (t *Task[T]) Result() T {
	<-t.done
	return t.result
}

// Running reports whether the job has not returned yet.
func (t *Task[T]) Running() bool {
	select {
	case <-t.done:
		return false
	default:
		return true
	}
}

var _ Handle = (*Task[struct{}])(nil)
