package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/item"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation:
// reserving an arbitrary-length list of units as a single atomic operation.
//
// Every step from validation to the status history row runs inside one unit
// of work. A failure at any unit rolls back every write performed so far,
// including already-applied item transitions; partial reservation is
// forbidden. Cart cleanup and the reservation notification run only after
// the commit and never roll it back.
type CreateOrderCommandHandler struct {
	uowFactory  UoWFactory
	graph       *services.TransitionGraph
	cartCleaner ports.CartCleaner
	notifier    ports.ReservationNotifier
	logger      *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires the cross-aggregate UoWFactory, the transition graph oracle and
// the post-commit collaborators.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	graph *services.TransitionGraph,
	cartCleaner ports.CartCleaner,
	notifier ports.ReservationNotifier,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return CreateOrderCommandHandler{
		uowFactory:  uowFactory,
		graph:       graph,
		cartCleaner: cartCleaner,
		notifier:    notifier,
		logger:      logger,
	}
}

// Handle processes the order creation command.
//
// Algorithm:
//  1. Load all referenced units in one pass; unknown IDs abort with
//     *UnitsNotFoundError before anything is written.
//  2. Check every unit's location against the destination and every unit's
//     current state against the graph's edge to Held; any failure aborts
//     the entire batch.
//  3. Create the order in Pending status with the total folded from the
//     cart prices plus the shipping fee.
//  4. Reserve each unit in sorted-by-ID order, appending one state history
//     row per unit.
//  5. Append the None -> Pending order status history row.
//  6. After commit, remove the units from the customer's cart and fire the
//     reservation notification; failures there are logged, never raised.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	itemRepo := uow.ItemRepository()

	units, err := h.loadUnits(ctx, itemRepo, cmd)
	if err != nil {
		return err
	}

	for _, unit := range units {
		if !unit.LocationID().IsEqual(cmd.LocationID()) {
			return &LocationMismatchError{
				UnitID:        unit.ID(),
				UnitLocation:  unit.LocationID(),
				OrderLocation: cmd.LocationID(),
			}
		}
		if _, err = h.graph.GetTransition(unit.State(), item.StateHeld); err != nil {
			return err
		}
	}

	newOrder, err := h.createOrder(ctx, uow.OrderRepository(), cmd)
	if err != nil {
		return err
	}

	if err = h.reserveUnits(ctx, itemRepo, cmd, units, newOrder.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.cleanupAfterCommit(ctx, cmd)
	return nil
}

// loadUnits resolves every selection in one batch read. The selections are
// already sorted by unit ID, and GetBatch returns units in the same order,
// so the subsequent mutation loop touches rows deterministically.
func (h *CreateOrderCommandHandler) loadUnits(
	ctx context.Context,
	itemRepo ports.ItemRepository,
	cmd CreateOrderCommand,
) ([]*item.Item, error) {
	ids := make([]kernel.UUID, 0, len(cmd.Selections()))
	for _, selection := range cmd.Selections() {
		ids = append(ids, selection.UnitID)
	}

	units, err := itemRepo.GetBatch(ctx, ids)
	if err != nil {
		return nil, err
	}

	if len(units) != len(ids) {
		found := make(map[kernel.UUID]struct{}, len(units))
		for _, unit := range units {
			found[unit.ID()] = struct{}{}
		}

		missing := make([]kernel.UUID, 0, len(ids)-len(units))
		for _, id := range ids {
			if _, ok := found[id]; !ok {
				missing = append(missing, id)
			}
		}
		return nil, &UnitsNotFoundError{UnitIDs: missing}
	}

	return units, nil
}

func (h *CreateOrderCommandHandler) createOrder(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	cmd CreateOrderCommand,
) (*order.Order, error) {
	total := cmd.Shipping().Fee
	for _, selection := range cmd.Selections() {
		total = total.Add(selection.UnitPrice)
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.CompanyID(),
		cmd.LocationID(),
		total,
		cmd.Shipping(),
		cmd.IsServiceOrder(),
		cmd.RelatedOrderID(),
	)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return nil, err
	}

	statusHistory, err := order.NewStatusHistory(
		newOrder.ID(), order.None, order.Pending, cmd.Actor(), h.reservationNote(cmd.Actor()))
	if err != nil {
		return nil, err
	}
	if err = orderRepo.AddStatusHistory(ctx, statusHistory); err != nil {
		return nil, err
	}

	return newOrder, nil
}

func (h *CreateOrderCommandHandler) reserveUnits(
	ctx context.Context,
	itemRepo ports.ItemRepository,
	cmd CreateOrderCommand,
	units []*item.Item,
	orderID kernel.UUID,
) error {
	prices := make(map[kernel.UUID]kernel.Money, len(cmd.Selections()))
	for _, selection := range cmd.Selections() {
		prices[selection.UnitID] = selection.UnitPrice
	}

	note := h.reservationNote(cmd.Actor())

	for _, unit := range units {
		transition, err := h.graph.GetTransition(unit.State(), item.StateHeld)
		if err != nil {
			return err
		}

		if err = unit.Reserve(transition, orderID, prices[unit.ID()]); err != nil {
			return err
		}
		if err = itemRepo.Update(ctx, unit); err != nil {
			return err
		}

		history, err := item.NewStateHistory(unit.ID(), transition, cmd.Actor(), note)
		if err != nil {
			return err
		}
		if err = itemRepo.AddHistory(ctx, history); err != nil {
			return err
		}
	}

	return nil
}

func (h *CreateOrderCommandHandler) reservationNote(actor kernel.Actor) string {
	if actor.Class() == kernel.ActorClassCustomer {
		return "Customer create order from shopping cart"
	}
	return "Staff created order"
}

// cleanupAfterCommit runs the optional side effects. The reservation is
// already durable; a failure here must never surface to the caller.
func (h *CreateOrderCommandHandler) cleanupAfterCommit(ctx context.Context, cmd CreateOrderCommand) {
	unitIDs := make([]kernel.UUID, 0, len(cmd.Selections()))
	for _, selection := range cmd.Selections() {
		unitIDs = append(unitIDs, selection.UnitID)
	}

	if h.cartCleaner != nil {
		if err := h.cartCleaner.RemoveUnits(ctx, cmd.CustomerID(), unitIDs); err != nil {
			h.logger.Warn("cart cleanup after reservation failed",
				"order_id", cmd.OrderID().String(), "error", err)
		}
	}

	if h.notifier != nil {
		if err := h.notifier.NotifyReserved(ctx, cmd.OrderID(), cmd.CustomerID()); err != nil {
			h.logger.Warn("reservation notification failed",
				"order_id", cmd.OrderID().String(), "error", err)
		}
	}
}
