// Package singleflight coalesces concurrent calls to one refresh function.
package singleflight

import (
	"context"
	"sync"
)

// Flight runs at most one fn at a time. Callers that arrive while a call
// is in flight wait for it and receive the same result.
//
// Concurrency notes:
//   - The first caller becomes the leader and runs fn.
//   - Followers wait on c.done. Publishing (val, err) happens-before
//     close(c.done), so reads after <-done observe the final values.
//   - Cancelling ctx in a follower unblocks only that follower; it does
//     NOT cancel the leader's fn.
//
// The zero value is ready to use.
type Flight[V any] struct {
	mu  sync.Mutex
	cur *call[V]
}

type call[V any] struct {
	done    chan struct{} // closed when val/err are published
	val     V
	err     error
	waiters int
}

// Do runs fn unless a call is already in flight, in which case it waits
// for that call. shared reports whether the result was delivered to more
// than one caller.
func (f *Flight[V]) Do(ctx context.Context, fn func() (V, error)) (v V, err error, shared bool) {
	f.mu.Lock()
	if c := f.cur; c != nil {
		c.waiters++
		f.mu.Unlock()

		select {
		case <-c.done:
			return c.val, c.err, true
		case <-ctx.Done():
			var zero V
			return zero, ctx.Err(), false
		}
	}

	c := &call[V]{done: make(chan struct{})}
	f.cur = c
	f.mu.Unlock()

	v, err = fn()

	f.mu.Lock()
	c.val, c.err = v, err
	shared = c.waiters > 0
	f.cur = nil
	f.mu.Unlock()
	close(c.done)

	return v, err, shared
}

// InFlight reports whether a call is currently running.
func (f *Flight[V]) InFlight() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cur != nil
}
