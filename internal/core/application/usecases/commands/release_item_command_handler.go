package commands

import (
	"context"

	"storefront/internal/core/domain/model/item"
	"storefront/internal/core/domain/services"
)

// ReleaseItemCommandHandler handles returning a held unit to Available.
// Like every unit mutation, the state change and its history row commit
// together or not at all.
type ReleaseItemCommandHandler struct {
	uowFactory ItemUoWFactory
	graph      *services.TransitionGraph
}

// NewReleaseItemCommandHandler creates a handler for unit releases.
func NewReleaseItemCommandHandler(
	uowFactory ItemUoWFactory,
	graph *services.TransitionGraph,
) ReleaseItemCommandHandler {
	return ReleaseItemCommandHandler{
		uowFactory: uowFactory,
		graph:      graph,
	}
}

// Handle processes the release command. The graph must contain an edge from
// the unit's current state back to Available; the unit must be owned by an
// order.
func (h *ReleaseItemCommandHandler) Handle(ctx context.Context, cmd ReleaseItemCommand) error {
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

	unit, err := itemRepo.Get(ctx, cmd.UnitID())
	if err != nil {
		return err
	}

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

	return uow.Commit(ctx)
}
