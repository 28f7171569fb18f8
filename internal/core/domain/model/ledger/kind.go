package ledger

import (
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Kind is the typed category of a ledger entry. The kind determines which
// sign the entry's amount may carry and whether the entry counts toward the
// order's paid amount.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	KindUnknown Kind = iota

	// KindDeposit is real money received for the order. Non-negative.
	KindDeposit

	// KindWithdrawal is real money returned to the customer. Non-positive.
	KindWithdrawal

	// KindConsumption books the order total against received funds when the
	// sale completes. Non-positive. Pure bookkeeping, not money movement.
	KindConsumption

	// KindCancellation reverses a prior consumption when the order is
	// cancelled. Non-negative. Pure bookkeeping, not money movement.
	KindCancellation

	// KindVirtualDeposit is credit arriving from another order of the same
	// customer. Non-negative. Always paired with a KindVirtualWithdrawal.
	KindVirtualDeposit

	// KindVirtualWithdrawal is credit leaving for another order of the same
	// customer. Non-positive. Always paired with a KindVirtualDeposit.
	KindVirtualWithdrawal
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown:           "Unknown",
		KindDeposit:           "Deposit",
		KindWithdrawal:        "Withdrawal",
		KindConsumption:       "Consumption",
		KindCancellation:      "Cancellation",
		KindVirtualDeposit:    "VirtualDeposit",
		KindVirtualWithdrawal: "VirtualWithdrawal",
	}
}

// KindFromString parses the wire name of a kind. Unknown is not accepted.
func KindFromString(s string) (Kind, error) {
	for kind, name := range getKindStrings() {
		if kind != KindUnknown && name == s {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause("kind is invalid",
		fmt.Errorf("%q is not a valid ledger entry kind", s))
}

// Validate checks if the Kind value is valid.
func (k Kind) Validate() error {
	if k <= KindUnknown || k > KindVirtualWithdrawal {
		return errs.NewValueIsInvalidErrorWithCause("kind is invalid",
			fmt.Errorf("%d is not a valid ledger entry kind", k))
	}
	return nil
}

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// CountsTowardPaidAmount reports whether entries of this kind represent
// actual-or-virtual money movement. Consumption and Cancellation are
// bookkeeping only and are excluded.
func (k Kind) CountsTowardPaidAmount() bool {
	switch k {
	case KindDeposit, KindWithdrawal, KindVirtualDeposit, KindVirtualWithdrawal:
		return true
	default:
		return false
	}
}

// ValidateAmountSign rejects an amount whose sign contradicts the kind.
// Deposits, virtual deposits and cancellations must be non-negative;
// withdrawals, consumptions and virtual withdrawals must be non-positive.
// Zero is legal for every kind.
func (k Kind) ValidateAmountSign(amount kernel.Money) error {
	if err := k.Validate(); err != nil {
		return err
	}

	switch k {
	case KindDeposit, KindVirtualDeposit, KindCancellation:
		if amount.IsNegative() {
			return &InvalidKindAmountSignError{Kind: k, Amount: amount}
		}
	case KindWithdrawal, KindConsumption, KindVirtualWithdrawal:
		if amount.IsPositive() {
			return &InvalidKindAmountSignError{Kind: k, Amount: amount}
		}
	}
	return nil
}
