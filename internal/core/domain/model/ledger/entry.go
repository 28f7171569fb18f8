package ledger

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
)

// Entry is one immutable row of an order's ledger: who paid or was paid,
// under which order, of which kind, how much, and how. Entries are never
// updated or deleted; every balance is recomputed by folding them.
type Entry struct {
	id             kernel.UUID
	customerID     kernel.UUID
	companyID      kernel.UUID
	orderID        kernel.UUID
	kind           Kind
	amount         kernel.Money
	method         PaymentMethod
	relatedEntryID *kernel.UUID
	actor          kernel.Actor
	note           string
	createdAt      time.Time

	isConstructed bool
}

// NewEntry appends-constructs a ledger entry. The amount's sign must agree
// with the kind; see Kind.ValidateAmountSign.
//
// Returns *InvalidKindAmountSignError when the sign contradicts the kind.
func NewEntry(
	customerID kernel.UUID,
	companyID kernel.UUID,
	orderID kernel.UUID,
	kind Kind,
	amount kernel.Money,
	method PaymentMethod,
	actor kernel.Actor,
	note string,
) (*Entry, error) {
	if err := errors.Join(
		customerID.Validate(),
		companyID.Validate(),
		orderID.Validate(),
		method.Validate(),
		actor.Validate(),
	); err != nil {
		return nil, err
	}
	if err := kind.ValidateAmountSign(amount); err != nil {
		return nil, err
	}

	return &Entry{
		id:            kernel.NewUUID(),
		customerID:    customerID,
		companyID:     companyID,
		orderID:       orderID,
		kind:          kind,
		amount:        amount,
		method:        method,
		actor:         actor,
		note:          note,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// NewTransferPair creates the two cross-linked entries of a virtual credit
// move: a VirtualWithdrawal of -amount on the source order and a
// VirtualDeposit of +amount on the destination order, each pointing at the
// other. The amount must be positive.
//
// The caller is responsible for the balance precondition; the handler checks
// balance(source) >= amount inside the same unit of work that persists the
// pair.
func NewTransferPair(
	customerID kernel.UUID,
	companyID kernel.UUID,
	sourceOrderID kernel.UUID,
	destinationOrderID kernel.UUID,
	amount kernel.Money,
	actor kernel.Actor,
	note string,
) (withdrawal *Entry, deposit *Entry, err error) {
	if !amount.IsPositive() {
		return nil, nil, &InvalidKindAmountSignError{Kind: KindVirtualWithdrawal, Amount: amount}
	}

	withdrawal, err = NewEntry(customerID, companyID, sourceOrderID,
		KindVirtualWithdrawal, amount.Neg(), MethodVirtual, actor, note)
	if err != nil {
		return nil, nil, err
	}

	deposit, err = NewEntry(customerID, companyID, destinationOrderID,
		KindVirtualDeposit, amount, MethodVirtual, actor, note)
	if err != nil {
		return nil, nil, err
	}

	withdrawal.relatedEntryID = &deposit.id
	deposit.relatedEntryID = &withdrawal.id
	return withdrawal, deposit, nil
}

// RestoreEntry reconstructs an entry from persistence.
func RestoreEntry(
	id kernel.UUID,
	customerID kernel.UUID,
	companyID kernel.UUID,
	orderID kernel.UUID,
	kind Kind,
	amount kernel.Money,
	method PaymentMethod,
	relatedEntryID *kernel.UUID,
	actor kernel.Actor,
	note string,
	createdAt time.Time,
) (*Entry, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		companyID.Validate(),
		orderID.Validate(),
		kind.Validate(),
		method.Validate(),
		actor.Validate(),
	); err != nil {
		return nil, err
	}

	entry := &Entry{
		id:            id,
		customerID:    customerID,
		companyID:     companyID,
		orderID:       orderID,
		kind:          kind,
		amount:        amount,
		method:        method,
		actor:         actor,
		note:          note,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if relatedEntryID != nil {
		if err := relatedEntryID.Validate(); err != nil {
			return nil, err
		}
		related := *relatedEntryID
		entry.relatedEntryID = &related
	}

	return entry, nil
}

// Validate ensures the entry came from a constructor.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// CustomerID returns the customer the entry belongs to.
func (e *Entry) CustomerID() kernel.UUID {
	return e.customerID
}

// CompanyID returns the selling company.
func (e *Entry) CompanyID() kernel.UUID {
	return e.companyID
}

// OrderID returns the order the entry is booked against.
func (e *Entry) OrderID() kernel.UUID {
	return e.orderID
}

// Kind returns the entry's typed category.
func (e *Entry) Kind() Kind {
	return e.kind
}

// Amount returns the signed amount.
func (e *Entry) Amount() kernel.Money {
	return e.amount
}

// Method returns how the money moved.
func (e *Entry) Method() PaymentMethod {
	return e.method
}

// RelatedEntryID returns the paired entry of a virtual transfer, or nil.
func (e *Entry) RelatedEntryID() *kernel.UUID {
	return e.relatedEntryID
}

// Actor returns who recorded the entry.
func (e *Entry) Actor() kernel.Actor {
	return e.actor
}

// Note returns the free-text note recorded with the entry.
func (e *Entry) Note() string {
	return e.note
}

// CreatedAt returns when the entry was recorded. Ledger order is creation
// order.
func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}

// Balance folds the signed amounts of all entries. The ledger is the single
// source of truth; there is no mutable running-total field anywhere.
func Balance(entries []*Entry) kernel.Money {
	total := kernel.ZeroMoney()
	for _, entry := range entries {
		total = total.Add(entry.amount)
	}
	return total
}

// PaidAmount folds only the kinds that represent actual-or-virtual money
// movement, excluding consumption and cancellation bookkeeping.
func PaidAmount(entries []*Entry) kernel.Money {
	total := kernel.ZeroMoney()
	for _, entry := range entries {
		if entry.kind.CountsTowardPaidAmount() {
			total = total.Add(entry.amount)
		}
	}
	return total
}
