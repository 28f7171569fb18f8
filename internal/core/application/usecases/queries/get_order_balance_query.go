package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetOrderBalanceQueryIsNotConstructed = errors.New(
		"GetOrderBalanceQuery must be created via NewGetOrderBalanceQuery constructor",
	)
)

// GetOrderBalanceQuery retrieves the financial position of a single order.
// Both figures are computed from the ledger at read time, never from a
// cached column.
//
// Example:
//
//	query, err := NewGetOrderBalanceQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrderBalanceQueryHandler(db)
//
//	balance, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order balance: %w", err)
//	}
//
//	fmt.Printf("Order %s holds %s, paid %s\n",
//	    balance.OrderID, balance.Balance, balance.PaidAmount)
type GetOrderBalanceQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderBalanceQuery creates a query for the given order.
func NewGetOrderBalanceQuery(orderID kernel.UUID) (GetOrderBalanceQuery, error) {
	query := GetOrderBalanceQuery{guard: guard.NewConstructorGuard()}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderBalanceQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderBalanceQueryIsNotConstructed if validation fails.
func (q GetOrderBalanceQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderBalanceQueryIsNotConstructed)
}

// OrderID returns the order whose ledger is summed.
func (q GetOrderBalanceQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderBalanceQuery) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	q.orderID = id
	return nil
}

// GetOrderBalanceQueryResponse carries the summed ledger figures of an order.
// Balance is the net of every entry, PaidAmount covers only the real money
// movement kinds.
type GetOrderBalanceQueryResponse struct {
	OrderID    kernel.UUID
	Balance    kernel.Money
	PaidAmount kernel.Money
}
