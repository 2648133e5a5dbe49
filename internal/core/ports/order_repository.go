package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Staged changes only become durable when the owning unit of work commits.
type OrderRepository interface {
	// Add stages a new order aggregate.
	// The order must be valid and its external id must not already exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update stages changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its internal identifier.
	// Returns ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ExistsByExternalID reports whether an order with the given external id
	// is already present. Used to reject duplicates before staging.
	ExistsByExternalID(ctx context.Context, externalID int64) (bool, error)

	// GetByStatus retrieves all orders currently in the given status.
	GetByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetEligibleForDispatch retrieves all orders in Created status whose
	// delivery-attempt counter is below maxAttempts, in a stable order so no
	// eligible order is silently skipped across consecutive cycles.
	GetEligibleForDispatch(ctx context.Context, maxAttempts int) ([]*order.Order, error)
}
