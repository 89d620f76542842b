// Package syncx provides small concurrency helpers.
package syncx

import "sync"

// UnboundedChan is a channel pair whose sends never block on a slow reader.
// Values sent with Send are delivered on Out in order; values the reader
// has not taken yet are buffered in memory.
//
// Close ends the stream gracefully: everything already sent is still
// delivered before Out closes. Stop abandons it: buffered values are
// dropped and Out closes as soon as the forwarding goroutine notices.
type UnboundedChan[T any] struct {
	in   chan T
	out  chan T
	done chan struct{}

	closeOnce *sync.Once
	stopOnce  *sync.Once
}

// NewUnboundedChan creates an UnboundedChan whose channels have the given
// capacity.
func NewUnboundedChan[T any](capacity int) UnboundedChan[T] {
	c := UnboundedChan[T]{
		in:        make(chan T, capacity),
		out:       make(chan T, capacity),
		done:      make(chan struct{}),
		closeOnce: new(sync.Once),
		stopOnce:  new(sync.Once),
	}
	go c.forward()
	return c
}

// Send queues v for delivery. It returns false, without queuing, once Stop
// has been called. Send must not be called after Close.
func (c UnboundedChan[T]) Send(v T) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.in <- v:
		return true
	case <-c.done:
		return false
	}
}

// Out returns the receiving side. It is closed after Close once every
// buffered value has been delivered, or promptly after Stop.
func (c UnboundedChan[T]) Out() <-chan T {
	return c.out
}

// Close stops accepting values. Safe to call more than once.
func (c UnboundedChan[T]) Close() {
	c.closeOnce.Do(func() { close(c.in) })
}

// Stop drops any undelivered values and closes Out. Safe to call more than
// once and concurrently with Send.
func (c UnboundedChan[T]) Stop() {
	c.stopOnce.Do(func() { close(c.done) })
}

func (c UnboundedChan[T]) forward() {
	defer close(c.out)

	var pending []T
	in := c.in
	for in != nil || len(pending) > 0 {
		// A nil channel disables its case: nothing to send while the
		// queue is empty, nothing to receive once in is closed.
		var out chan T
		var next T
		if len(pending) > 0 {
			out = c.out
			next = pending[0]
		}

		select {
		case v, ok := <-in:
			if !ok {
				in = nil
				continue
			}
			pending = append(pending, v)
		case out <- next:
			var zero T
			pending[0] = zero
			pending = pending[1:]
			if len(pending) == 0 {
				pending = nil
			}
		case <-c.done:
			return
		}
	}
}
