package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var (
	ErrAdvanceOrderStatusCommandIsNotConstructed = errors.New(
		"AdvanceOrderStatusCommand must be created via NewAdvanceOrderStatusCommand constructor",
	)
)

// AdvanceOrderStatusCommand represents a request to move an order to the
// next status in the fulfilment machine.
type AdvanceOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	newStatus order.Status
	actor     kernel.Actor
	note      string

	guard guard.ConstructorGuard
}

// NewAdvanceOrderStatusCommand creates a command to advance an order.
func NewAdvanceOrderStatusCommand(
	orderID kernel.UUID,
	newStatus order.Status,
	actor kernel.Actor,
	note string,
) (AdvanceOrderStatusCommand, error) {
	command := AdvanceOrderStatusCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setNewStatus(newStatus),
		command.setActor(actor),
	); err != nil {
		return AdvanceOrderStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceOrderStatusCommandIsNotConstructed if validation fails.
func (c AdvanceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to advance.
func (c AdvanceOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NewStatus returns the target status.
func (c AdvanceOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

// Actor returns who requested the change.
func (c AdvanceOrderStatusCommand) Actor() kernel.Actor {
	return c.actor
}

// Note returns the free-text note for the history row.
func (c AdvanceOrderStatusCommand) Note() string {
	return c.note
}

func (c *AdvanceOrderStatusCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *AdvanceOrderStatusCommand) setNewStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.newStatus = status
	return nil
}

func (c *AdvanceOrderStatusCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
