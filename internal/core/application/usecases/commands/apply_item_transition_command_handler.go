package commands

import (
	"context"

	"storefront/internal/core/domain/model/item"
	"storefront/internal/core/domain/services"
)

// ApplyItemTransitionCommandHandler handles single-unit state transitions.
// The state update and its history row are written in the same unit of work;
// a reader never observes one without the other.
type ApplyItemTransitionCommandHandler struct {
	uowFactory ItemUoWFactory
	graph      *services.TransitionGraph
}

// NewApplyItemTransitionCommandHandler creates a handler for unit transitions.
func NewApplyItemTransitionCommandHandler(
	uowFactory ItemUoWFactory,
	graph *services.TransitionGraph,
) ApplyItemTransitionCommandHandler {
	return ApplyItemTransitionCommandHandler{
		uowFactory: uowFactory,
		graph:      graph,
	}
}

// Handle processes the transition command.
//
// The unit is loaded first so the optimistic version token covers the whole
// validate-then-write window: if another caller moves the unit between this
// read and the update, the update fails with ConcurrentModification and the
// transaction rolls back.
//
// Failure modes: errs.ObjectNotFound for an unknown unit,
// services.TransitionNotFoundError when the graph has no edge,
// item.IllegalTransitionError when the edge does not apply,
// item.ErrConcurrentModification on a lost race.
func (h *ApplyItemTransitionCommandHandler) Handle(ctx context.Context, cmd ApplyItemTransitionCommand) error {
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

	transition, err := h.graph.GetTransition(unit.State(), cmd.ToState())
	if err != nil {
		return err
	}

	if err = unit.ApplyTransition(transition); err != nil {
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
