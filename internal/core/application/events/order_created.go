// Package events defines the in-process notifications published by the
// application layer. Events carry read-only projections, never aggregates,
// so listeners cannot mutate domain state.
package events

import (
	"orders/internal/core/domain/model/order"
)

// OrderCreated is published for every order the dispatch engine picks up,
// just before the delivery attempt, so listeners such as the distribution
// service can react to it. Delivery to listeners is best-effort: a listener
// failure never affects the order's processing.
type OrderCreated struct {
	Order order.Projection
}
