// Package destination adapts outbound order delivery to the downstream
// destination system. The raw client performs one delivery call; the
// resilient channel wraps it in the retry and circuit breaker policies the
// dispatch engine relies on.
package destination

import (
	"context"
	"log/slog"

	"orders/internal/core/domain/model/order"
)

// Client performs a single delivery call against the destination system.
type Client interface {
	Deliver(ctx context.Context, snapshot order.Projection) error
}

// LoggingClient is a stand-in destination that accepts every order and logs
// it. Used until a real downstream endpoint is wired in and in local
// environments.
type LoggingClient struct {
	logger *slog.Logger
}

// NewLoggingClient creates a destination client that only logs deliveries.
func NewLoggingClient(logger *slog.Logger) *LoggingClient {
	return &LoggingClient{
		logger: logger.With("component", "destination"),
	}
}

// Deliver logs the order and reports success.
func (c *LoggingClient) Deliver(ctx context.Context, snapshot order.Projection) error {
	c.logger.InfoContext(ctx, "Delivering order to destination",
		"order_id", snapshot.ID,
		"external_id", snapshot.ExternalID,
		"customer_id", snapshot.CustomerID,
		"lines", len(snapshot.Lines))

	return nil
}
