package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/ledger"
	"storefront/internal/pkg/guard"
)

var (
	ErrTransferCreditCommandIsNotConstructed = errors.New(
		"TransferCreditCommand must be created via NewTransferCreditCommand constructor",
	)

	// ErrTransferToSameOrder is returned when source and destination name
	// the same order.
	ErrTransferToSameOrder = errors.New("cannot transfer credit to the same order")
)

// TransferCreditCommand represents a request to move credit between two
// orders of the same customer without real payment movement.
type TransferCreditCommand struct { //nolint:recvcheck //using for validation
	sourceOrderID      kernel.UUID
	destinationOrderID kernel.UUID
	amount             kernel.Money
	actor              kernel.Actor
	note               string

	guard guard.ConstructorGuard
}

// NewTransferCreditCommand creates a command to transfer credit. The amount
// must be positive and the two orders must differ.
func NewTransferCreditCommand(
	sourceOrderID kernel.UUID,
	destinationOrderID kernel.UUID,
	amount kernel.Money,
	actor kernel.Actor,
	note string,
) (TransferCreditCommand, error) {
	command := TransferCreditCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSourceOrderID(sourceOrderID),
		command.setDestinationOrderID(destinationOrderID),
		command.setActor(actor),
		command.setAmount(amount),
	); err != nil {
		return TransferCreditCommand{}, err
	}

	if sourceOrderID.IsEqual(destinationOrderID) {
		return TransferCreditCommand{}, ErrTransferToSameOrder
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransferCreditCommandIsNotConstructed if validation fails.
func (c TransferCreditCommand) Validate() error {
	return c.guard.Validate(ErrTransferCreditCommandIsNotConstructed)
}

// SourceOrderID returns the order the credit leaves.
func (c TransferCreditCommand) SourceOrderID() kernel.UUID {
	return c.sourceOrderID
}

// DestinationOrderID returns the order the credit arrives at.
func (c TransferCreditCommand) DestinationOrderID() kernel.UUID {
	return c.destinationOrderID
}

// Amount returns the positive amount to move.
func (c TransferCreditCommand) Amount() kernel.Money {
	return c.amount
}

// Actor returns who requested the transfer.
func (c TransferCreditCommand) Actor() kernel.Actor {
	return c.actor
}

// Note returns the free-text note recorded with both entries.
func (c TransferCreditCommand) Note() string {
	return c.note
}

func (c *TransferCreditCommand) setSourceOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.sourceOrderID = id
	return nil
}

func (c *TransferCreditCommand) setDestinationOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.destinationOrderID = id
	return nil
}

func (c *TransferCreditCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *TransferCreditCommand) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return &ledger.InvalidKindAmountSignError{Kind: ledger.KindVirtualWithdrawal, Amount: amount}
	}
	c.amount = amount
	return nil
}
