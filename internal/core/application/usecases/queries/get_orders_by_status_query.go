package queries

import (
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"
)

var ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
	"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
)

// GetOrdersByStatusQuery retrieves all orders currently in one lifecycle
// status, oldest first.
//
// Example:
//
//	query, _ := NewGetOrdersByStatusQuery(order.Created)
//	handler := NewGetOrdersByStatusQueryHandler(db)
//
//	pending, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list pending orders: %w", err)
//	}
//	fmt.Printf("%d orders awaiting dispatch\n", len(pending))
type GetOrdersByStatusQuery struct { //nolint:recvcheck //using for validation
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query to list orders in one status.
func NewGetOrdersByStatusQuery(status order.Status) (GetOrdersByStatusQuery, error) {
	query := GetOrdersByStatusQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := status.Validate(); err != nil {
		return GetOrdersByStatusQuery{}, err
	}
	query.status = status

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersByStatusQueryIsNotConstructed if validation fails.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the lifecycle status to filter on.
func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}
