// Package eventbus provides a minimal in-process publish/subscribe mechanism
// for domain notifications. Listeners run synchronously in registration
// order; a listener's failure (error or panic) is caught and logged by the
// bus and never reaches the publisher, so a broken listener cannot abort the
// operation that produced the notification. No cross-process delivery is
// implied.
package eventbus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Listener handles one published notification.
type Listener[T any] func(ctx context.Context, notification T) error

// Bus fans a notification of type T out to all registered listeners.
// Safe for concurrent Publish calls; Subscribe is expected at wiring time
// but is also safe to call concurrently.
type Bus[T any] struct {
	mu        sync.RWMutex
	listeners []Listener[T]
	logger    *slog.Logger
}

// New creates an empty bus logging listener failures through the given logger.
func New[T any](logger *slog.Logger) *Bus[T] {
	return &Bus[T]{
		logger: logger.With("component", "eventbus"),
	}
}

// Subscribe registers a listener. Listeners are invoked in registration order.
func (b *Bus[T]) Subscribe(listener Listener[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, listener)
}

// Publish invokes every registered listener with the notification,
// synchronously and in registration order. Every listener is invoked even
// when an earlier one fails.
func (b *Bus[T]) Publish(ctx context.Context, notification T) {
	b.mu.RLock()
	listeners := make([]Listener[T], len(b.listeners))
	copy(listeners, b.listeners)
	b.mu.RUnlock()

	for i, listener := range listeners {
		if err := b.invoke(ctx, listener, notification); err != nil {
			b.logger.ErrorContext(ctx, "Event listener failed",
				"listener", i, "error", err)
		}
	}
}

func (b *Bus[T]) invoke(ctx context.Context, listener Listener[T], notification T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("listener panicked: %v", r)
		}
	}()

	return listener(ctx, notification)
}
