package jobs

import (
	"context"
	"log/slog"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// dispatchSchedule runs a cycle every five minutes.
const dispatchSchedule = "*/5 * * * *"

// OrderDispatchJob runs the dispatch engine on a fixed schedule. Every cycle
// picks up all orders still eligible for delivery and processes them in one
// transaction.
type OrderDispatchJob struct {
	handler  commands.DispatchOrdersCommandHandler
	settings ports.DispatchSettings
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderDispatchJob creates the scheduled dispatch job. The attempt cutoff
// is read from settings at the start of each cycle, so configuration changes
// apply without a restart.
func NewOrderDispatchJob(
	handler commands.DispatchOrdersCommandHandler,
	settings ports.DispatchSettings,
	logger *slog.Logger,
) *OrderDispatchJob {
	return &OrderDispatchJob{
		handler:  handler,
		settings: settings,
		cron:     cron.New(),
		logger:   logger.With("component", "order_dispatch_job"),
	}
}

// Start begins the dispatch job on its five minute schedule.
func (j *OrderDispatchJob) Start() error {
	_, err := j.cron.AddFunc(dispatchSchedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewDispatchOrdersCommand(j.settings.MaxDeliveryAttempts())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Invalid dispatch configuration", "error", cmdErr)
			return
		}

		delivered, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Order dispatch cycle failed", "error", handleErr)
			return
		}

		if delivered > 0 {
			j.logger.InfoContext(ctx, "Order dispatch cycle finished", "delivered", delivered)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order dispatch job started (running every five minutes)")
	return nil
}

// Stop stops the dispatch job.
func (j *OrderDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order dispatch job stopped")
}
