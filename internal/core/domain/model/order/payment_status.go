package order

import (
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// PaymentStatus is the coarse payment rollup of an order. It is derived from
// the order's ledger, never set directly by callers.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentNotPaid means no money has been received for the order.
	PaymentNotPaid

	// PaymentPartiallyPaid means some but not all of the total was received.
	PaymentPartiallyPaid

	// PaymentPaid means the received amount covers the total.
	PaymentPaid

	// PaymentRefunded means the order's payments were returned.
	PaymentRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:       "Unknown",
		PaymentNotPaid:       "NotPaid",
		PaymentPartiallyPaid: "PartiallyPaid",
		PaymentPaid:          "Paid",
		PaymentRefunded:      "Refunded",
	}
}

// Validate checks if the PaymentStatus value is valid.
func (s PaymentStatus) Validate() error {
	if s <= PaymentUnknown || s > PaymentRefunded {
		return errs.NewValueIsInvalidErrorWithCause("payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the human-readable name of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// DerivePaymentStatus computes the rollup from the amount the ledger says was
// paid against the order total.
//
// Rules:
//   - paid == 0 yields NotPaid
//   - 0 < paid < total yields PartiallyPaid
//   - paid >= total > 0 yields Paid
//
// A refund is not derivable from amounts alone; orders moved to the Refunded
// status carry PaymentRefunded set by the order itself.
func DerivePaymentStatus(paid, total kernel.Money) PaymentStatus {
	if paid.IsZero() || paid.IsNegative() {
		return PaymentNotPaid
	}
	if total.IsPositive() && paid.GreaterThanOrEqual(total) {
		return PaymentPaid
	}
	return PaymentPartiallyPaid
}
