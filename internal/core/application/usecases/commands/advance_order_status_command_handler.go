package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// AdvanceOrderStatusCommandHandler handles order status changes. This
// controller does not itself touch inventory state; cancellation-triggered
// unit release is composed at a higher layer (see CancelOrderCommandHandler).
type AdvanceOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdvanceOrderStatusCommandHandler creates a handler for status changes.
func NewAdvanceOrderStatusCommandHandler(uowFactory OrderUoWFactory) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change. The order update and its history row
// are written in the same unit of work.
func (h *AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) error {
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

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	previous := aggregate.Status()
	if err = aggregate.AdvanceTo(cmd.NewStatus()); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	history, err := order.NewStatusHistory(aggregate.ID(), previous, cmd.NewStatus(), cmd.Actor(), cmd.Note())
	if err != nil {
		return err
	}
	if err = orderRepo.AddStatusHistory(ctx, history); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
