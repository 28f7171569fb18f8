package commands

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/ledger"
)

// RecordLedgerEntryCommandHandler handles ledger appends. The entry and the
// order's re-derived payment status commit in the same unit of work, so the
// stored rollup never disagrees with the ledger it was folded from.
type RecordLedgerEntryCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewRecordLedgerEntryCommandHandler creates a handler for ledger appends.
func NewRecordLedgerEntryCommandHandler(uowFactory LedgerUoWFactory) RecordLedgerEntryCommandHandler {
	return RecordLedgerEntryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the append and returns the created entry's identifier.
// The order must exist; its customer and company are taken from the order,
// not the caller. After the append the paid amount is folded from all
// entries and the order's payment status is refreshed.
func (h *RecordLedgerEntryCommandHandler) Handle(ctx context.Context, cmd RecordLedgerEntryCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	ledgerRepo := uow.LedgerRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return kernel.UUID{}, err
	}

	entry, err := ledger.NewEntry(
		aggregate.CustomerID(),
		aggregate.CompanyID(),
		aggregate.ID(),
		cmd.Kind(),
		cmd.Amount(),
		cmd.Method(),
		cmd.Actor(),
		cmd.Note(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = ledgerRepo.Add(ctx, entry); err != nil {
		return kernel.UUID{}, err
	}

	entries, err := ledgerRepo.GetByOrder(ctx, aggregate.ID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = aggregate.RefreshPaymentStatus(ledger.PaidAmount(entries)); err != nil {
		return kernel.UUID{}, err
	}
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return entry.ID(), nil
}
