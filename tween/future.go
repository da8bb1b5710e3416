package tween

import (
	"context"
	"sync"
)

// A Future resolves with the engine when a run reaches its final frame.
// A stopped run leaves its future pending.
type Future struct {
	once   sync.Once
	done   chan struct{}
	engine *Engine
}

func newFuture() *Future {
	f := new(Future)
	f.done = make(chan struct{})
	return f
}

func (f *Future) resolve(e *Engine) {
	f.once.Do(func() {
		f.engine = e
		close(f.done)
	})
}

// Done is closed once the future resolves.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Resolved reports whether the run completed.
func (f *Future) Resolved() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the future resolves or ctx is done.
func (f *Future) Wait(ctx context.Context) (*Engine, error) {
	select {
	case <-f.done:
		return f.engine, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
