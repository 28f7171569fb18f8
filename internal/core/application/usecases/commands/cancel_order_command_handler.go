package commands

import (
	"context"

	"storefront/internal/core/domain/model/item"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
)

// CancelOrderCommandHandler composes the two halves of a cancellation: the
// order's status change and the release of every unit it owns. The status
// controller does not touch inventory itself, so this handler performs the
// releases as separate calls inside the same unit of work.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	graph      *services.TransitionGraph
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory UoWFactory, graph *services.TransitionGraph) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		graph:      graph,
	}
}

// Handle processes the cancellation. The order moves to Cancelled with a
// status history row, then every unit it owns is released back to Available
// with one item history row each. Any failure rolls back the whole
// cancellation; an order is never left Cancelled with units still held.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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
	itemRepo := uow.ItemRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	previous := aggregate.Status()
	if err = aggregate.AdvanceTo(order.Cancelled); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	statusHistory, err := order.NewStatusHistory(aggregate.ID(), previous, order.Cancelled, cmd.Actor(), cmd.Note())
	if err != nil {
		return err
	}
	if err = orderRepo.AddStatusHistory(ctx, statusHistory); err != nil {
		return err
	}

	units, err := itemRepo.GetByOrder(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	for _, unit := range units {
		transition, err := h.graph.GetTransition(unit.State(), item.StateAvailable)
		if err != nil {
			return err
		}

		if err = unit.Release(transition); err != nil {
			return err
		}
		if err = itemRepo.Update(ctx, unit); err != nil {
			return err
		}

		history, err := item.NewStateHistory(unit.ID(), transition, cmd.Actor(), cmd.Note())
		if err != nil {
			return err
		}
		if err = itemRepo.AddHistory(ctx, history); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
