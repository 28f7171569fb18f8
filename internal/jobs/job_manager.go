package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	paymentStatusJob *PaymentStatusJob
	staleHoldJob     *StaleHoldJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command and query handlers as dependencies to wire up job execution.
func NewJobManager(
	syncPaymentStatusesHandler commands.SyncPaymentStatusesCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	pendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	holdTTL time.Duration,
	logger *slog.Logger,
) (*JobManager, error) {
	staleHoldJob, err := NewStaleHoldJob(pendingOrdersHandler, cancelOrderHandler, holdTTL, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create stale hold job: %w", err)
	}

	return &JobManager{
		paymentStatusJob: NewPaymentStatusJob(syncPaymentStatusesHandler, logger),
		staleHoldJob:     staleHoldJob,
	}, nil
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.paymentStatusJob.Start(); err != nil {
		return fmt.Errorf("failed to start payment status job: %w", err)
	}

	if err := jm.staleHoldJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.paymentStatusJob.Stop()
		return fmt.Errorf("failed to start stale hold job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.paymentStatusJob.Stop()
	jm.staleHoldJob.Stop()
}
