// Package order provides domain entities and business logic for order
// lifecycle management. It implements the Order aggregate root with status
// transitions, tax computation, and delivery-attempt tracking.
//
// The package includes:
//   - Order: the aggregate root owning identity, lines, tax, and lifecycle
//   - Status: a state machine enforcing valid order status transitions
//   - Line: an immutable order line value object
//   - Projection: a read-only derived view for external consumption
//
// Key business rules:
//   - Orders carry a globally unique external id and at least one line
//   - Status follows Created -> Sent -> Processed, with Created -> Cancelled
//     as the alternate terminal branch
//   - A failed delivery attempt keeps the order Created and increments its
//     attempt counter, which only ever increases
//   - Tax is 20% or 30% of the lines total depending on a feature toggle,
//     and is only computed while the order is Created
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are
// enforced. It owns no I/O.
package order
