package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrReleaseItemCommandIsNotConstructed = errors.New(
		"ReleaseItemCommand must be created via NewReleaseItemCommand constructor",
	)
)

// ReleaseItemCommand represents a request to detach one unit from its order
// and return it to Available. Used on cancellation.
type ReleaseItemCommand struct { //nolint:recvcheck //using for validation
	unitID kernel.UUID
	actor  kernel.Actor
	note   string

	guard guard.ConstructorGuard
}

// NewReleaseItemCommand creates a command to release a held unit.
func NewReleaseItemCommand(unitID kernel.UUID, actor kernel.Actor, note string) (ReleaseItemCommand, error) {
	command := ReleaseItemCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUnitID(unitID),
		command.setActor(actor),
	); err != nil {
		return ReleaseItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReleaseItemCommandIsNotConstructed if validation fails.
func (c ReleaseItemCommand) Validate() error {
	return c.guard.Validate(ErrReleaseItemCommandIsNotConstructed)
}

// UnitID returns the unit to release.
func (c ReleaseItemCommand) UnitID() kernel.UUID {
	return c.unitID
}

// Actor returns who requested the release.
func (c ReleaseItemCommand) Actor() kernel.Actor {
	return c.actor
}

// Note returns the free-text note for the history row.
func (c ReleaseItemCommand) Note() string {
	return c.note
}

func (c *ReleaseItemCommand) setUnitID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.unitID = id
	return nil
}

func (c *ReleaseItemCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
