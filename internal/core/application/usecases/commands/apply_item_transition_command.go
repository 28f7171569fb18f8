package commands

import (
	"errors"

	"storefront/internal/core/domain/model/item"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrApplyItemTransitionCommandIsNotConstructed = errors.New(
		"ApplyItemTransitionCommand must be created via NewApplyItemTransitionCommand constructor",
	)
)

// ApplyItemTransitionCommand represents a request to move one inventory unit
// to a new state through a graph-validated edge.
//
// Example:
//
//	cmd, err := NewApplyItemTransitionCommand(unitID, item.StateTesting, actor, "intake QA")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewApplyItemTransitionCommandHandler(uowFactory, graph)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("transition failed: %w", err)
//	}
type ApplyItemTransitionCommand struct { //nolint:recvcheck //using for validation
	unitID  kernel.UUID
	toState item.State
	actor   kernel.Actor
	note    string

	guard guard.ConstructorGuard
}

// NewApplyItemTransitionCommand creates a command to apply one transition.
func NewApplyItemTransitionCommand(
	unitID kernel.UUID,
	toState item.State,
	actor kernel.Actor,
	note string,
) (ApplyItemTransitionCommand, error) {
	command := ApplyItemTransitionCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUnitID(unitID),
		command.setToState(toState),
		command.setActor(actor),
	); err != nil {
		return ApplyItemTransitionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrApplyItemTransitionCommandIsNotConstructed if validation fails.
func (c ApplyItemTransitionCommand) Validate() error {
	return c.guard.Validate(ErrApplyItemTransitionCommandIsNotConstructed)
}

// UnitID returns the unit to move.
func (c ApplyItemTransitionCommand) UnitID() kernel.UUID {
	return c.unitID
}

// ToState returns the target state.
func (c ApplyItemTransitionCommand) ToState() item.State {
	return c.toState
}

// Actor returns who requested the transition.
func (c ApplyItemTransitionCommand) Actor() kernel.Actor {
	return c.actor
}

// Note returns the free-text note for the history row.
func (c ApplyItemTransitionCommand) Note() string {
	return c.note
}

func (c *ApplyItemTransitionCommand) setUnitID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.unitID = id
	return nil
}

func (c *ApplyItemTransitionCommand) setToState(state item.State) error {
	if err := state.Validate(); err != nil {
		return err
	}
	c.toState = state
	return nil
}

func (c *ApplyItemTransitionCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
