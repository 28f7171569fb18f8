package commands

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/ledger"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// TransferCreditCommandHandler handles virtual credit moves between two
// orders of the same customer. The balance check, the paired entries and
// both orders' payment status refreshes commit in one unit of work, so the
// read-then-decide logic shares the isolation boundary of the writes.
type TransferCreditCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewTransferCreditCommandHandler creates a handler for credit transfers.
func NewTransferCreditCommandHandler(uowFactory LedgerUoWFactory) TransferCreditCommandHandler {
	return TransferCreditCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transfer and returns the identifiers of the created
// withdrawal and deposit entries, in that order.
//
// Preconditions: both orders exist, belong to the same customer, and the
// source order's current balance covers the amount. A shortfall returns
// *ledger.InsufficientBalanceError and writes nothing.
func (h *TransferCreditCommandHandler) Handle(
	ctx context.Context,
	cmd TransferCreditCommand,
) (kernel.UUID, kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	ledgerRepo := uow.LedgerRepository()

	source, err := orderRepo.Get(ctx, cmd.SourceOrderID())
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	destination, err := orderRepo.Get(ctx, cmd.DestinationOrderID())
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	if !source.CustomerID().IsEqual(destination.CustomerID()) {
		return kernel.UUID{}, kernel.UUID{}, errs.NewValueIsInvalidError("destination order customer")
	}

	sourceEntries, err := ledgerRepo.GetByOrder(ctx, source.ID())
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	balance := ledger.Balance(sourceEntries)
	if !balance.GreaterThanOrEqual(cmd.Amount()) {
		return kernel.UUID{}, kernel.UUID{}, &ledger.InsufficientBalanceError{
			OrderID:   source.ID(),
			Balance:   balance,
			Requested: cmd.Amount(),
		}
	}

	withdrawal, deposit, err := ledger.NewTransferPair(
		source.CustomerID(),
		source.CompanyID(),
		source.ID(),
		destination.ID(),
		cmd.Amount(),
		cmd.Actor(),
		cmd.Note(),
	)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	if err = ledgerRepo.Add(ctx, withdrawal); err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	if err = ledgerRepo.Add(ctx, deposit); err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	if err = h.refreshPaymentStatuses(ctx, uow, source, destination); err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return withdrawal.ID(), deposit.ID(), nil
}

func (h *TransferCreditCommandHandler) refreshPaymentStatuses(
	ctx context.Context,
	uow LedgerUoW,
	orders ...*order.Order,
) error {
	for _, aggregate := range orders {
		entries, err := uow.LedgerRepository().GetByOrder(ctx, aggregate.ID())
		if err != nil {
			return err
		}
		if err = aggregate.RefreshPaymentStatus(ledger.PaidAmount(entries)); err != nil {
			return err
		}
		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return err
		}
	}
	return nil
}
