package ports

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// DeliveryChannel sends an order to the external destination system.
//
// Implementations wrap the raw destination call in resilience policies;
// Send reports the final outcome of one logical delivery:
//   - nil on success
//   - errs.ErrCircuitOpen (sentinel) when failing fast with an open breaker
//   - a DeliveryFailedError after the retry budget is exhausted
type DeliveryChannel interface {
	Send(ctx context.Context, snapshot order.Projection) error
}
