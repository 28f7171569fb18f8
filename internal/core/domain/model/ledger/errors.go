package ledger

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
)

var (
	// ErrInvalidKindAmountSign is the sentinel for amounts whose sign
	// contradicts the entry kind. Use errors.Is to classify and errors.As
	// with *InvalidKindAmountSignError for details.
	ErrInvalidKindAmountSign = errors.New("amount sign contradicts entry kind")

	// ErrInsufficientBalance is the sentinel for transfers exceeding the
	// source order's current balance.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrEntryIsNotConstructed is returned when an Entry was not created
	// through a constructor.
	ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry, NewTransferPair or RestoreEntry")
)

// InvalidKindAmountSignError reports an attempted append whose amount sign
// the kind does not permit.
type InvalidKindAmountSignError struct {
	Kind   Kind
	Amount kernel.Money
}

func (e *InvalidKindAmountSignError) Error() string {
	return fmt.Sprintf("amount sign contradicts entry kind: %s entry cannot carry amount %s", e.Kind, e.Amount)
}

func (e *InvalidKindAmountSignError) Unwrap() error {
	return ErrInvalidKindAmountSign
}

// InsufficientBalanceError reports a transfer of more credit than the source
// order currently holds.
type InsufficientBalanceError struct {
	OrderID   kernel.UUID
	Balance   kernel.Money
	Requested kernel.Money
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: order %s holds %s, transfer of %s requested",
		e.OrderID, e.Balance, e.Requested)
}

func (e *InsufficientBalanceError) Unwrap() error {
	return ErrInsufficientBalance
}
