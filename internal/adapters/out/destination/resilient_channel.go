package destination

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/resilience"
)

const (
	maxRetries       = 3
	retryBackoffBase = time.Second

	breakerThreshold = 15
	breakerOpenFor   = 30 * time.Second
)

// ResilientChannel implements the delivery channel contract by wrapping a
// destination client in the standard resilience policies. The retry sits
// inside the breaker, so one logical delivery counts as a single breaker
// outcome regardless of how many retries it took.
type ResilientChannel struct {
	client  Client
	retry   resilience.Retry
	breaker *resilience.Breaker
	logger  *slog.Logger
}

// NewResilientChannel creates a delivery channel around the given client
// with the default retry and breaker parameters.
func NewResilientChannel(client Client, logger *slog.Logger) *ResilientChannel {
	channelLogger := logger.With("component", "delivery_channel")

	return &ResilientChannel{
		client: client,
		retry: resilience.Retry{
			MaxRetries: maxRetries,
			Backoff:    resilience.Backoff{Base: retryBackoffBase},
			OnRetry: func(retry int, err error) {
				channelLogger.Warn("Retrying delivery", "retry", retry, "error", err)
			},
		},
		breaker: resilience.NewBreaker(breakerThreshold, breakerOpenFor),
		logger:  channelLogger,
	}
}

// Send performs one logical delivery. It returns nil on success,
// errs.ErrCircuitOpen when failing fast with an open breaker, and a
// DeliveryFailedError once the retry budget is exhausted.
func (c *ResilientChannel) Send(ctx context.Context, snapshot order.Projection) error {
	err := c.breaker.Do(ctx, func(ctx context.Context) error {
		return c.retry.Do(ctx, func(ctx context.Context) error {
			return c.client.Deliver(ctx, snapshot)
		})
	})
	if err == nil {
		return nil
	}

	if errors.Is(err, errs.ErrCircuitOpen) {
		return err
	}

	return errs.NewDeliveryFailedError(snapshot.ExternalID, err)
}
