package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
)

// CancelOrderCommandHandler handles the business logic for order cancellation.
// Only orders still in "Created" status can be cancelled; the justification
// is recorded on the aggregate.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// Requires an OrderUoWFactory for transactional persistence.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command. Returns ObjectNotFoundError when
// the order does not exist and InvalidTransitionError when its status no
// longer permits cancellation.
func (h *CancelOrderCommandHandler) Handle(
	ctx context.Context, cmd CancelOrderCommand,
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

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return order.Projection{}, err
	}

	if err = aggregate.Cancel(cmd.Justification()); err != nil {
		return order.Projection{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return order.Projection{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Projection{}, errs.NewPersistenceFailureError("commit", err)
	}

	return aggregate.Projection(), nil
}
