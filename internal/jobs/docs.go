// Package jobs provides scheduled background tasks for the storefront core.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the inventory and ledger service.
//
// # Available Jobs
//
// 1. PaymentStatusJob - Runs every minute to re-derive payment statuses of uncompleted orders from their ledgers
// 2. StaleHoldJob - Runs every minute to cancel Pending orders whose hold outlived the configured TTL
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager, err := jobs.NewJobManager(syncHandler, cancelHandler, pendingHandler, holdTTL, logger)
//	if err != nil {
//		log.Fatal("Failed to create jobs:", err)
//	}
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Both jobs use the cron expression "0 * * * * *" which means they run at the
// top of every minute. Holds are minutes-to-hours long, so minute granularity
// is enough and keeps the sweeps cheap.
//
// # Error Handling
//
// - The stale hold job skips orders whose status changed between the query and the cancel
// - The payment status job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
