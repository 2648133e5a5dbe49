package eventbus_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"orders/internal/pkg/eventbus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBus(t *testing.T) *eventbus.Bus[string] {
	t.Helper()
	return eventbus.New[string](slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBus_Publish(t *testing.T) {
	t.Run("invokes listeners in registration order", func(t *testing.T) {
		bus := newBus(t)
		var calls []string

		bus.Subscribe(func(_ context.Context, n string) error {
			calls = append(calls, "first:"+n)
			return nil
		})
		bus.Subscribe(func(_ context.Context, n string) error {
			calls = append(calls, "second:"+n)
			return nil
		})

		bus.Publish(context.Background(), "created")

		assert.Equal(t, []string{"first:created", "second:created"}, calls)
	})

	t.Run("a failing listener never aborts the others", func(t *testing.T) {
		bus := newBus(t)
		invoked := 0

		bus.Subscribe(func(_ context.Context, _ string) error {
			invoked++
			return errors.New("listener broke")
		})
		bus.Subscribe(func(_ context.Context, _ string) error {
			invoked++
			return nil
		})

		require.NotPanics(t, func() {
			bus.Publish(context.Background(), "created")
		})
		assert.Equal(t, 2, invoked)
	})

	t.Run("a panicking listener is contained", func(t *testing.T) {
		bus := newBus(t)
		invoked := 0

		bus.Subscribe(func(_ context.Context, _ string) error {
			panic("listener exploded")
		})
		bus.Subscribe(func(_ context.Context, _ string) error {
			invoked++
			return nil
		})

		require.NotPanics(t, func() {
			bus.Publish(context.Background(), "created")
		})
		assert.Equal(t, 1, invoked)
	})

	t.Run("publish with no listeners is a no-op", func(t *testing.T) {
		bus := newBus(t)

		require.NotPanics(t, func() {
			bus.Publish(context.Background(), "created")
		})
	})

	t.Run("every listener sees every notification", func(t *testing.T) {
		bus := newBus(t)
		var seen []string

		bus.Subscribe(func(_ context.Context, n string) error {
			seen = append(seen, n)
			return nil
		})

		bus.Publish(context.Background(), "one")
		bus.Publish(context.Background(), "two")

		assert.Equal(t, []string{"one", "two"}, seen)
	})
}
