package commands

import (
	"context"

	"storefront/internal/core/domain/model/ledger"
)

// SyncPaymentStatusesCommandHandler reconciles stored payment statuses with
// the ledger for all uncompleted orders.
type SyncPaymentStatusesCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewSyncPaymentStatusesCommandHandler creates a handler for the batch
// reconciliation.
func NewSyncPaymentStatusesCommandHandler(uowFactory LedgerUoWFactory) SyncPaymentStatusesCommandHandler {
	return SyncPaymentStatusesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle folds every uncompleted order's ledger and persists orders whose
// derived status differs from the stored one. The whole batch commits as
// one unit of work.
func (h *SyncPaymentStatusesCommandHandler) Handle(ctx context.Context, cmd SyncPaymentStatusesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	ledgerRepo := uow.LedgerRepository()

	orders, err := orderRepo.GetAllUncompleted(ctx)
	if err != nil {
		return err
	}

	for _, aggregate := range orders {
		entries, err := ledgerRepo.GetByOrder(ctx, aggregate.ID())
		if err != nil {
			return err
		}

		previous := aggregate.PaymentStatus()
		if err = aggregate.RefreshPaymentStatus(ledger.PaidAmount(entries)); err != nil {
			return err
		}
		if aggregate.PaymentStatus() == previous {
			continue
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
