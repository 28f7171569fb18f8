package commands

import (
	"errors"

	"storefront/internal/pkg/guard"
)

// SyncPaymentStatusesCommand triggers re-derivation of the payment status of
// every uncompleted order from its ledger. The stored rollup can drift only
// through out-of-band data fixes; this batch operation reconciles it.
//
// Example:
//
//	cmd := NewSyncPaymentStatusesCommand()
//	handler := NewSyncPaymentStatusesCommandHandler(uowFactory)
//
//	// Run periodically from the job scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("payment status sync failed: %v", err)
//	}
type SyncPaymentStatusesCommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrSyncPaymentStatusesCommandIsNotConstructed = errors.New(
		"SyncPaymentStatusesCommand must be created via NewSyncPaymentStatusesCommand constructor",
	)
)

// NewSyncPaymentStatusesCommand creates a command to reconcile payment
// statuses. This is a parameterless command that processes all uncompleted
// orders.
func NewSyncPaymentStatusesCommand() SyncPaymentStatusesCommand {
	command := SyncPaymentStatusesCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrSyncPaymentStatusesCommandIsNotConstructed if validation fails.
func (c *SyncPaymentStatusesCommand) Validate() error {
	return c.guard.Validate(ErrSyncPaymentStatusesCommandIsNotConstructed)
}
