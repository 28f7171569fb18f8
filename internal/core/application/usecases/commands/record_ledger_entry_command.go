package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/ledger"
	"storefront/internal/pkg/guard"
)

var (
	ErrRecordLedgerEntryCommandIsNotConstructed = errors.New(
		"RecordLedgerEntryCommand must be created via NewRecordLedgerEntryCommand constructor",
	)
)

// RecordLedgerEntryCommand represents a request to append one typed entry to
// an order's ledger: a payment received, a refund issued, or a consumption/
// cancellation bookkeeping row.
//
// Example:
//
//	cmd, err := NewRecordLedgerEntryCommand(orderID, ledger.KindDeposit,
//	    amount, ledger.MethodCash, actor, "")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewRecordLedgerEntryCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("payment not recorded: %w", err)
//	}
type RecordLedgerEntryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	kind    ledger.Kind
	amount  kernel.Money
	method  ledger.PaymentMethod
	actor   kernel.Actor
	note    string

	guard guard.ConstructorGuard
}

// NewRecordLedgerEntryCommand creates a command to append a ledger entry.
// The amount's sign must agree with the kind; a contradiction is rejected
// here, before any transaction is opened.
func NewRecordLedgerEntryCommand(
	orderID kernel.UUID,
	kind ledger.Kind,
	amount kernel.Money,
	method ledger.PaymentMethod,
	actor kernel.Actor,
	note string,
) (RecordLedgerEntryCommand, error) {
	command := RecordLedgerEntryCommand{
		amount: amount,
		note:   note,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setMethod(method),
		command.setActor(actor),
	); err != nil {
		return RecordLedgerEntryCommand{}, err
	}

	if err := kind.ValidateAmountSign(amount); err != nil {
		return RecordLedgerEntryCommand{}, err
	}
	command.kind = kind

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecordLedgerEntryCommandIsNotConstructed if validation fails.
func (c RecordLedgerEntryCommand) Validate() error {
	return c.guard.Validate(ErrRecordLedgerEntryCommandIsNotConstructed)
}

// OrderID returns the order the entry is booked against.
func (c RecordLedgerEntryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Kind returns the entry's typed category.
func (c RecordLedgerEntryCommand) Kind() ledger.Kind {
	return c.kind
}

// Amount returns the signed amount.
func (c RecordLedgerEntryCommand) Amount() kernel.Money {
	return c.amount
}

// Method returns how the money moved.
func (c RecordLedgerEntryCommand) Method() ledger.PaymentMethod {
	return c.method
}

// Actor returns who recorded the entry.
func (c RecordLedgerEntryCommand) Actor() kernel.Actor {
	return c.actor
}

// Note returns the free-text note recorded with the entry.
func (c RecordLedgerEntryCommand) Note() string {
	return c.note
}

func (c *RecordLedgerEntryCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *RecordLedgerEntryCommand) setMethod(method ledger.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.method = method
	return nil
}

func (c *RecordLedgerEntryCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
