// ABOUTME: Typed event bus delivering to subscribers in subscription order
// ABOUTME: Hosts publish presentation state transitions on it; loggers and tests subscribe

package eventbus

import "sync"

// Handler is a callback function for events.
type Handler[T any] func(T)

type subscriber[T any] struct {
	id int
	fn Handler[T]
}

// Bus delivers events to registered handlers. A nil *Bus drops everything,
// so publishers need no guard.
type Bus[T any] struct {
	mu     sync.RWMutex
	subs   []subscriber[T]
	nextID int
}

// New creates a new event bus.
func New[T any]() *Bus[T] {
	return &Bus[T]{}
}

// Subscribe registers a handler and returns an unsubscribe function.
// Calling the returned function more than once is harmless.
func (b *Bus[T]) Subscribe(handler Handler[T]) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs = append(b.subs, subscriber[T]{id: id, fn: handler})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish calls every handler synchronously, oldest subscription first.
// Handlers may subscribe or unsubscribe; changes apply from the next Publish.
func (b *Bus[T]) Publish(event T) {
	if b == nil {
		return
	}
	b.mu.RLock()
	snapshot := b.subs
	b.mu.RUnlock()

	for _, s := range snapshot {
		s.fn(event)
	}
}

// Count returns the number of registered handlers.
func (b *Bus[T]) Count() int {
	if b == nil {
		return 0
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
