package destination

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/resilience"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedClient fails the first failures calls, then succeeds.
type scriptedClient struct {
	failures int
	calls    int
}

func (c *scriptedClient) Deliver(context.Context, order.Projection) error {
	c.calls++
	if c.calls <= c.failures {
		return errors.New("downstream broken")
	}
	return nil
}

func testChannel(client Client, breakerThreshold int) *ResilientChannel {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &ResilientChannel{
		client: client,
		retry: resilience.Retry{
			MaxRetries: 3,
			Backoff:    resilience.Backoff{Base: time.Millisecond},
		},
		breaker: resilience.NewBreaker(breakerThreshold, 30*time.Second),
		logger:  logger,
	}
}

func testSnapshot(t *testing.T) order.Projection {
	t.Helper()

	price, err := kernel.NewMoney(5000)
	require.NoError(t, err)
	line, err := order.NewLine(500, 2, price)
	require.NoError(t, err)

	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	aggregate, err := order.NewOrder(kernel.NewUUID(), 101, 1001, []order.Line{line}, createdAt)
	require.NoError(t, err)

	return aggregate.Projection()
}

func TestResilientChannel_Send(t *testing.T) {
	t.Run("success passes through", func(t *testing.T) {
		client := &scriptedClient{}
		channel := testChannel(client, 15)

		require.NoError(t, channel.Send(t.Context(), testSnapshot(t)))
		assert.Equal(t, 1, client.calls)
	})

	t.Run("transient failures are retried within one send", func(t *testing.T) {
		client := &scriptedClient{failures: 2}
		channel := testChannel(client, 15)

		require.NoError(t, channel.Send(t.Context(), testSnapshot(t)))
		assert.Equal(t, 3, client.calls)
	})

	t.Run("exhausted retries report a delivery failure", func(t *testing.T) {
		client := &scriptedClient{failures: 10}
		channel := testChannel(client, 15)

		err := channel.Send(t.Context(), testSnapshot(t))

		require.ErrorIs(t, err, errs.ErrDeliveryFailed)
		// Initial call plus three retries.
		assert.Equal(t, 4, client.calls)
	})

	t.Run("one send counts as one breaker outcome", func(t *testing.T) {
		client := &scriptedClient{failures: 1000}
		channel := testChannel(client, 2)

		require.ErrorIs(t, channel.Send(t.Context(), testSnapshot(t)), errs.ErrDeliveryFailed)
		require.ErrorIs(t, channel.Send(t.Context(), testSnapshot(t)), errs.ErrDeliveryFailed)

		// Two failed sends reach the threshold despite eight underlying calls.
		callsBefore := client.calls
		err := channel.Send(t.Context(), testSnapshot(t))

		require.ErrorIs(t, err, errs.ErrCircuitOpen)
		assert.Equal(t, callsBefore, client.calls, "open breaker must not reach the client")
	})

	t.Run("fifteen failed sends open the circuit for the sixteenth", func(t *testing.T) {
		client := &scriptedClient{failures: 1 << 20}
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))

		channel := NewResilientChannel(client, logger)
		// The default retry count and breaker settings stay in force;
		// only the waits between retries are shrunk so the test runs
		// in milliseconds.
		channel.retry.Backoff.Base = time.Microsecond

		for range 15 {
			require.ErrorIs(t, channel.Send(t.Context(), testSnapshot(t)), errs.ErrDeliveryFailed)
		}
		// Each failed send is one initial call plus three retries.
		require.Equal(t, 60, client.calls)

		err := channel.Send(t.Context(), testSnapshot(t))

		require.ErrorIs(t, err, errs.ErrCircuitOpen)
		assert.Equal(t, 60, client.calls, "open breaker must not reach the client")
	})

	t.Run("open breaker error is not wrapped as delivery failure", func(t *testing.T) {
		client := &scriptedClient{failures: 1000}
		channel := testChannel(client, 1)

		require.ErrorIs(t, channel.Send(t.Context(), testSnapshot(t)), errs.ErrDeliveryFailed)

		err := channel.Send(t.Context(), testSnapshot(t))
		require.ErrorIs(t, err, errs.ErrCircuitOpen)
		require.NotErrorIs(t, err, errs.ErrDeliveryFailed)
	})
}
