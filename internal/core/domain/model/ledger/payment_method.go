package ledger

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// PaymentMethod identifies how money moved for a real deposit or withdrawal.
// Virtual entries carry MethodVirtual.
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "CASH"
	MethodCreditCard   PaymentMethod = "CREDIT_CARD"
	MethodDebitCard    PaymentMethod = "DEBIT_CARD"
	MethodZelle        PaymentMethod = "ZELLE"
	MethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	MethodFinancing    PaymentMethod = "FINANCING"
	MethodCheck        PaymentMethod = "CHECK"
	MethodVirtual      PaymentMethod = "VIRTUAL"
	MethodOther        PaymentMethod = "OTHER"
)

func getPaymentMethods() map[PaymentMethod]struct{} {
	return map[PaymentMethod]struct{}{
		MethodCash:         {},
		MethodCreditCard:   {},
		MethodDebitCard:    {},
		MethodZelle:        {},
		MethodBankTransfer: {},
		MethodFinancing:    {},
		MethodCheck:        {},
		MethodVirtual:      {},
		MethodOther:        {},
	}
}

// Validate checks the method against the known list.
func (m PaymentMethod) Validate() error {
	if _, ok := getPaymentMethods()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment method is invalid",
			fmt.Errorf("%q is not a known payment method", string(m)))
	}
	return nil
}

// String returns the method's wire name.
func (m PaymentMethod) String() string {
	return string(m)
}
