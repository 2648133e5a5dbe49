// Package distribution reacts to order pickup notifications. The distributor
// integration is notification-only: it observes which orders enter dispatch
// but plays no part in their persistence or delivery outcome.
package distribution

import (
	"context"
	"log/slog"

	"orders/internal/core/application/events"
	"orders/internal/pkg/eventbus"
)

// Service is the distributor-facing listener. It subscribes to order pickup
// notifications and records them for the distributor's side of the flow.
type Service struct {
	logger *slog.Logger
}

// NewService creates the distribution listener.
func NewService(logger *slog.Logger) *Service {
	return &Service{
		logger: logger.With("component", "distribution"),
	}
}

// Subscribe registers the service on the given bus.
func (s *Service) Subscribe(bus *eventbus.Bus[events.OrderCreated]) {
	bus.Subscribe(s.handleOrderCreated)
}

func (s *Service) handleOrderCreated(ctx context.Context, notification events.OrderCreated) error {
	s.logger.InfoContext(ctx, "Order picked up for distribution",
		"order_id", notification.Order.ID,
		"external_id", notification.Order.ExternalID,
		"customer_id", notification.Order.CustomerID)

	return nil
}
