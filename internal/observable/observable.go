// Package observable provides a last-value holder that fans updates out to
// any number of subscribers without blocking the publisher.
package observable

import (
	"sync"

	"todoremote/internal/syncx"
)

// subscriberBuffer is the initial channel capacity per subscription.
const subscriberBuffer = 4

// Observable is a read-only handle on a value that changes over time.
type Observable[T any] interface {
	// Subscribe starts receiving updates. If a value has already been
	// published, it is delivered first.
	Subscribe() *Subscription[T]

	// Value returns the most recent value and whether one has been
	// published yet.
	Value() (T, bool)
}

// Subscription receives the values published to an Observable.
type Subscription[T any] struct {
	ch     syncx.UnboundedChan[T]
	once   sync.Once
	cancel func()
}

// C returns the channel on which values are delivered.
// It is closed after Close; values not yet read are dropped.
func (s *Subscription[T]) C() <-chan T {
	return s.ch.Out()
}

// Close stops the subscription. Safe to call more than once.
func (s *Subscription[T]) Close() {
	s.once.Do(s.cancel)
}

// Value is a mutable Observable. The zero value is not usable; use New.
type Value[T any] struct {
	mu     sync.Mutex
	value  T
	set    bool
	nextID uint64
	subs   map[uint64]syncx.UnboundedChan[T]
}

// New creates a Value with nothing published.
func New[T any]() *Value[T] {
	return &Value[T]{subs: make(map[uint64]syncx.UnboundedChan[T])}
}

// Publish replaces the current value and notifies every subscriber.
func (v *Value[T]) Publish(x T) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.value = x
	v.set = true
	for _, ch := range v.subs {
		ch.Send(x)
	}
}

// Value implements Observable.
func (v *Value[T]) Value() (T, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.value, v.set
}

// Subscribe implements Observable.
func (v *Value[T]) Subscribe() *Subscription[T] {
	v.mu.Lock()
	defer v.mu.Unlock()

	id := v.nextID
	v.nextID++

	ch := syncx.NewUnboundedChan[T](subscriberBuffer)
	if v.set {
		ch.Send(v.value)
	}
	v.subs[id] = ch

	return &Subscription[T]{
		ch: ch,
		cancel: func() {
			v.mu.Lock()
			defer v.mu.Unlock()
			delete(v.subs, id)
			ch.Stop()
		},
	}
}

// Subscribers returns the number of open subscriptions.
func (v *Value[T]) Subscribers() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.subs)
}

// mapped is an Observable derived from another one.
type mapped[T, U any] struct {
	src Observable[T]
	fn  func(T) U
}

// Map returns an Observable whose values are fn applied to every value of
// src. fn runs once per upstream value per subscription.
func Map[T, U any](src Observable[T], fn func(T) U) Observable[U] {
	return &mapped[T, U]{src: src, fn: fn}
}

func (m *mapped[T, U]) Value() (U, bool) {
	v, ok := m.src.Value()
	if !ok {
		var zero U
		return zero, false
	}
	return m.fn(v), true
}

func (m *mapped[T, U]) Subscribe() *Subscription[U] {
	upstream := m.src.Subscribe()
	ch := syncx.NewUnboundedChan[U](subscriberBuffer)

	go func() {
		defer ch.Close()
		for v := range upstream.C() {
			if !ch.Send(m.fn(v)) {
				return
			}
		}
	}()

	return &Subscription[U]{
		ch: ch,
		cancel: func() {
			upstream.Close()
			ch.Stop()
		},
	}
}
