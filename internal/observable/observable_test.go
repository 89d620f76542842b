package observable

import (
	"runtime"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive[T any](t *testing.T, sub *Subscription[T]) T {
	t.Helper()
	select {
	case v, ok := <-sub.C():
		require.True(t, ok, "subscription closed")
		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for value")
	}
	panic("unreachable")
}

func assertNothing[T any](t *testing.T, sub *Subscription[T]) {
	t.Helper()
	select {
	case v := <-sub.C():
		t.Fatalf("unexpected value %v", v)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestValue_NothingBeforePublish(t *testing.T) {
	v := New[int]()

	_, ok := v.Value()
	assert.False(t, ok)

	sub := v.Subscribe()
	defer sub.Close()
	assertNothing(t, sub)
}

func TestValue_PublishReachesAllSubscribers(t *testing.T) {
	v := New[string]()
	a := v.Subscribe()
	b := v.Subscribe()
	defer a.Close()
	defer b.Close()

	v.Publish("one")
	v.Publish("two")

	assert.Equal(t, "one", receive(t, a))
	assert.Equal(t, "two", receive(t, a))
	assert.Equal(t, "one", receive(t, b))
	assert.Equal(t, "two", receive(t, b))

	got, ok := v.Value()
	require.True(t, ok)
	assert.Equal(t, "two", got)
}

func TestValue_LateSubscriberGetsCurrent(t *testing.T) {
	v := New[int]()
	v.Publish(1)
	v.Publish(2)

	sub := v.Subscribe()
	defer sub.Close()

	assert.Equal(t, 2, receive(t, sub))
	assertNothing(t, sub)
}

func TestValue_PublishDoesNotBlockOnIdleSubscriber(t *testing.T) {
	v := New[int]()
	sub := v.Subscribe()
	defer sub.Close()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			v.Publish(i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a subscriber that never reads")
	}
}

func TestSubscription_Close(t *testing.T) {
	v := New[int]()
	sub := v.Subscribe()
	require.Equal(t, 1, v.Subscribers())

	sub.Close()
	sub.Close()
	assert.Equal(t, 0, v.Subscribers())

	v.Publish(1)
	_, ok := <-sub.C()
	assert.False(t, ok)
}

func TestMap_RecomputesOnEveryPublish(t *testing.T) {
	v := New[int]()
	m := Map[int, string](v, strconv.Itoa)

	_, ok := m.Value()
	assert.False(t, ok)

	sub := m.Subscribe()
	defer sub.Close()

	v.Publish(1)
	v.Publish(42)
	assert.Equal(t, "1", receive(t, sub))
	assert.Equal(t, "42", receive(t, sub))

	got, ok := m.Value()
	require.True(t, ok)
	assert.Equal(t, "42", got)
}

func TestMap_CloseReleasesUpstream(t *testing.T) {
	v := New[int]()
	m := Map(v, func(i int) int { return i * 2 })

	sub := m.Subscribe()
	require.Equal(t, 1, v.Subscribers())
	sub.Close()
	assert.Equal(t, 0, v.Subscribers())

	select {
	case _, ok := <-sub.C():
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("derived subscription not closed")
	}
}

// waitClosed reads sub until C closes, discarding any values still buffered.
func waitClosed[T any](t *testing.T, sub *Subscription[T]) {
	t.Helper()
	timeout := time.After(time.Second)
	for {
		select {
		case _, ok := <-sub.C():
			if !ok {
				return
			}
		case <-timeout:
			t.Fatal("subscription channel not closed")
		}
	}
}

func TestSubscription_CloseWithUnreadValues(t *testing.T) {
	v := New[int]()
	before := runtime.NumGoroutine()

	for round := 0; round < 50; round++ {
		sub := v.Subscribe()
		for i := 0; i < 5*subscriberBuffer; i++ {
			v.Publish(i)
		}
		receive(t, sub)
		sub.Close()
		for i := 0; i < 5*subscriberBuffer; i++ {
			v.Publish(i)
		}
		waitClosed(t, sub)
	}

	assert.Equal(t, 0, v.Subscribers())
	assert.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= before
	}, 2*time.Second, 10*time.Millisecond, "forwarding goroutines leaked")
}

func TestMap_CloseWithUnreadValues(t *testing.T) {
	v := New[int]()
	m := Map(v, strconv.Itoa)
	before := runtime.NumGoroutine()

	for round := 0; round < 20; round++ {
		sub := m.Subscribe()
		for i := 0; i < 5*subscriberBuffer; i++ {
			v.Publish(i)
		}
		receive(t, sub)
		sub.Close()
		waitClosed(t, sub)
	}

	assert.Equal(t, 0, v.Subscribers())
	assert.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= before
	}, 2*time.Second, 10*time.Millisecond, "forwarding goroutines leaked")
}
