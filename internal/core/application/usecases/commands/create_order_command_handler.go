package commands

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Rejects duplicate external identifiers, computes the order's tax under the
// currently active rule, and persists the new aggregate in "Created" status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, clock, toggles)
//	cmd, _ := NewCreateOrderCommand(101, 1001, lines)
//
//	snapshot, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now created and eligible for dispatch
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
	toggles    ports.FeatureToggles
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence, a Clock for the
// creation timestamp, and FeatureToggles for tax-rule selection.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	clock ports.Clock,
	toggles ports.FeatureToggles,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		toggles:    toggles,
	}
}

// Handle processes the order creation command.
// The tax-rule toggle is read once per invocation, so the computed tax
// reflects the rule active at creation time. Returns a read-only projection
// of the created order, or a DuplicateOrderError when the external id is
// already taken.
func (h *CreateOrderCommandHandler) Handle(
	ctx context.Context, cmd CreateOrderCommand,
) (order.Projection, error) {
	if err := cmd.Validate(); err != nil {
		return order.Projection{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Projection{}, errs.NewPersistenceFailureError("begin", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	exists, err := orderRepo.ExistsByExternalID(ctx, cmd.ExternalID())
	if err != nil {
		return order.Projection{}, err
	}
	if exists {
		return order.Projection{}, errs.NewDuplicateOrderError(cmd.ExternalID())
	}

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), cmd.ExternalID(), cmd.CustomerID(), cmd.Lines(), h.clock.Now(),
	)
	if err != nil {
		return order.Projection{}, err
	}

	if err = aggregate.ComputeTax(h.toggles.IsEnabled(ports.FeatureUseNewTaxRule)); err != nil {
		return order.Projection{}, err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return order.Projection{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Projection{}, errs.NewPersistenceFailureError("commit", err)
	}

	return aggregate.Projection(), nil
}
