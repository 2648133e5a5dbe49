package commands

import (
	"context"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"orders/internal/core/application/events"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/eventbus"
)

// maxConcurrentDeliveries bounds the number of in-flight delivery calls
// within one dispatch cycle.
const maxConcurrentDeliveries = 8

// DispatchOrdersCommandHandler runs one dispatch cycle: it loads every
// eligible order, attempts delivery for each, records the outcome on the
// aggregate, and persists all outcomes in a single atomic commit.
//
// A delivery failure for one order never affects the others. Successfully
// delivered orders move to "Sent"; failed ones stay in "Created" with their
// attempt counter incremented, so they are retried in a later cycle until
// the eligibility cutoff excludes them.
type DispatchOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	channel    ports.DeliveryChannel
	clock      ports.Clock
	bus        *eventbus.Bus[events.OrderCreated]
	logger     *slog.Logger
}

// NewDispatchOrdersCommandHandler creates a handler for dispatch cycles.
func NewDispatchOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	channel ports.DeliveryChannel,
	clock ports.Clock,
	bus *eventbus.Bus[events.OrderCreated],
	logger *slog.Logger,
) DispatchOrdersCommandHandler {
	return DispatchOrdersCommandHandler{
		uowFactory: uowFactory,
		channel:    channel,
		clock:      clock,
		bus:        bus,
		logger:     logger.With("component", "dispatch"),
	}
}

// Handle runs one dispatch cycle and returns the number of orders delivered
// successfully. When no order is eligible the cycle is a no-op and nothing
// is written. Context cancellation stops launching further deliveries;
// outcomes already recorded are still committed.
func (h *DispatchOrdersCommandHandler) Handle(
	ctx context.Context, cmd DispatchOrdersCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, errs.NewPersistenceFailureError("begin", err)
	}

	defer func() {
		_ = uow.Rollback(context.WithoutCancel(ctx))
	}()

	orderRepo := uow.OrderRepository()

	eligible, err := orderRepo.GetEligibleForDispatch(ctx, cmd.MaxAttempts())
	if err != nil {
		return 0, err
	}

	if len(eligible) == 0 {
		return 0, nil
	}

	var delivered atomic.Int64

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrentDeliveries)

	for _, aggregate := range eligible {
		group.Go(func() error {
			if groupCtx.Err() != nil {
				return nil
			}

			if h.deliver(groupCtx, aggregate) {
				delivered.Add(1)
			}

			return nil
		})
	}

	_ = group.Wait()

	// The write-back must survive a cancellation that interrupted the
	// cycle, so outcomes already recorded still reach the store.
	writeCtx := context.WithoutCancel(ctx)

	for _, aggregate := range eligible {
		if err = orderRepo.Update(writeCtx, aggregate); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(writeCtx); err != nil {
		return 0, errs.NewPersistenceFailureError("commit", err)
	}

	return int(delivered.Load()), nil
}

// deliver attempts one order's delivery and records the outcome on the
// aggregate. Reports whether the order was delivered.
func (h *DispatchOrdersCommandHandler) deliver(ctx context.Context, aggregate *order.Order) bool {
	snapshot := aggregate.Projection()

	h.bus.Publish(ctx, events.OrderCreated{Order: snapshot})

	if sendErr := h.channel.Send(ctx, snapshot); sendErr != nil {
		h.logger.WarnContext(ctx, "Order delivery failed",
			"order_id", snapshot.ID,
			"external_id", snapshot.ExternalID,
			"attempts", snapshot.DeliveryAttempts+1,
			"error", sendErr)

		if err := aggregate.MarkDeliveryFailed(); err != nil {
			h.logger.ErrorContext(ctx, "Failed to record delivery failure",
				"order_id", snapshot.ID, "error", err)
		}

		return false
	}

	if err := aggregate.MarkSent(h.clock.Now()); err != nil {
		h.logger.ErrorContext(ctx, "Failed to record delivery success",
			"order_id", snapshot.ID, "error", err)
		return false
	}

	h.logger.InfoContext(ctx, "Order delivered",
		"order_id", snapshot.ID, "external_id", snapshot.ExternalID)

	return true
}
