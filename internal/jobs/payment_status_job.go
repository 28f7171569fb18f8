package jobs

import (
	"context"
	"log/slog"

	"storefront/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PaymentStatusJob manages the scheduled reconciliation of order payment
// statuses. Runs every minute to re-derive each uncompleted order's payment
// status from its ledger.
type PaymentStatusJob struct {
	handler commands.SyncPaymentStatusesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPaymentStatusJob creates a new job for reconciling payment statuses.
// Uses SyncPaymentStatusesCommandHandler to process the sweep every minute.
func NewPaymentStatusJob(handler commands.SyncPaymentStatusesCommandHandler, logger *slog.Logger) *PaymentStatusJob {
	return &PaymentStatusJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "payment_status_job"),
	}
}

// Start begins the payment status job to run every minute.
func (j *PaymentStatusJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewSyncPaymentStatusesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Payment status job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment status job started (running every minute)")
	return nil
}

// Stop stops the payment status job.
func (j *PaymentStatusJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment status job stopped")
}
