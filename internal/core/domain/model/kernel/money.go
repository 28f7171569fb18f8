package kernel

import (
	"fmt"

	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of decimal places every monetary amount is stored
// with. All amounts are rounded to cents on construction, so arithmetic over
// Money values never accumulates sub-cent residue.
const moneyScale = 2

// Money is an immutable value object representing an exact monetary amount.
// It wraps github.com/shopspring/decimal to keep ledger arithmetic free of
// floating-point drift: an order balance must be reconstructible by summation
// with no rounding error, so float64 is never used for amounts.
//
// Money is signed. Ledger withdrawals and consumptions are represented as
// negative amounts, deposits as positive ones.
//
// Example:
//
//	price, err := kernel.NewMoneyFromString("499.99")
//	if err != nil {
//	    // handle malformed amount
//	}
//	total := price.Add(kernel.NewMoney(decimal.NewFromInt(35)))
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money value from a decimal, rounding to cents.
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount.Round(moneyScale)}
}

// NewMoneyFromString parses a Money value from its decimal string
// representation (e.g. "100.00", "-35.50").
// Returns an error if the string is not a valid decimal number.
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%q is not a decimal number", s))
	}
	return NewMoney(d), nil
}

// ZeroMoney returns the zero amount. The zero value of Money is identical and
// valid; this constructor exists for readability at call sites.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of two amounts.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// Neg returns the amount with its sign flipped.
func (m Money) Neg() Money {
	return Money{amount: m.amount.Neg()}
}

// IsNegative reports whether the amount is strictly below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsPositive reports whether the amount is strictly above zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// GreaterThanOrEqual reports whether m >= other.
func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.amount.GreaterThanOrEqual(other.amount)
}

// IsEqual compares two amounts for numeric equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the fixed two-decimal string representation, e.g. "100.00".
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}
