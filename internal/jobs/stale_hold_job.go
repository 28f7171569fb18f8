package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// StaleHoldJob manages the scheduled release of expired holds. Runs every
// minute to find Pending orders older than the hold TTL and cancel them,
// which puts their held units back on the floor.
type StaleHoldJob struct {
	pendingHandler queries.GetPendingOrdersQueryHandler
	cancelHandler  commands.CancelOrderCommandHandler
	holdTTL        time.Duration
	actor          kernel.Actor
	cron           *cron.Cron
	logger         *slog.Logger
}

// NewStaleHoldJob creates a new job for releasing expired holds. The job
// cancels as the system actor so history rows show the release was automatic.
func NewStaleHoldJob(
	pendingHandler queries.GetPendingOrdersQueryHandler,
	cancelHandler commands.CancelOrderCommandHandler,
	holdTTL time.Duration,
	logger *slog.Logger,
) (*StaleHoldJob, error) {
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.ActorClassSystem)
	if err != nil {
		return nil, err
	}

	return &StaleHoldJob{
		pendingHandler: pendingHandler,
		cancelHandler:  cancelHandler,
		holdTTL:        holdTTL,
		actor:          actor,
		cron:           cron.New(cron.WithSeconds()),
		logger:         logger.With("component", "stale_hold_job"),
	}, nil
}

// Start begins the stale hold job to run every minute.
func (j *StaleHoldJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		j.sweep(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale hold job started (running every minute)", "hold_ttl", j.holdTTL)
	return nil
}

// Stop stops the stale hold job.
func (j *StaleHoldJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale hold job stopped")
}

// sweep cancels every Pending order whose hold expired before this run.
// Each order is cancelled in its own transaction; one failure does not stop
// the sweep, and an order another writer just completed is simply skipped.
func (j *StaleHoldJob) sweep(ctx context.Context) {
	query, err := queries.NewGetPendingOrdersQuery(time.Now().UTC().Add(-j.holdTTL))
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale hold job failed to build query", "error", err)
		return
	}

	expired, err := j.pendingHandler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale hold job failed to list expired holds", "error", err)
		return
	}

	for _, hold := range expired {
		cmd, cmdErr := commands.NewCancelOrderCommand(hold.ID, j.actor, "hold expired")
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Stale hold job failed to build command", "order_id", hold.ID, "error", cmdErr)
			continue
		}

		if cancelErr := j.cancelHandler.Handle(ctx, cmd); cancelErr != nil {
			// A concurrent status change between the query and the cancel is
			// an expected race, not a system issue.
			if errors.Is(cancelErr, errs.ErrValueIsInvalid) {
				continue
			}
			j.logger.ErrorContext(ctx, "Stale hold job failed to cancel order", "order_id", hold.ID, "error", cancelErr)
			continue
		}

		j.logger.InfoContext(ctx, "Released expired hold", "order_id", hold.ID)
	}
}
