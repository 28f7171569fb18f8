package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/ledger"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetOrderLedgerQueryIsNotConstructed = errors.New(
		"GetOrderLedgerQuery must be created via NewGetOrderLedgerQuery constructor",
	)
)

// GetOrderLedgerQuery retrieves the full transaction history of an order
// in creation order, oldest entry first.
//
// Example:
//
//	query, err := NewGetOrderLedgerQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrderLedgerQueryHandler(db)
//
//	entries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order ledger: %w", err)
//	}
//
//	for _, entry := range entries {
//	    fmt.Printf("%s %s %s\n", entry.CreatedAt, entry.Kind, entry.Amount)
//	}
type GetOrderLedgerQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderLedgerQuery creates a query listing the ledger of one order.
func NewGetOrderLedgerQuery(orderID kernel.UUID) (GetOrderLedgerQuery, error) {
	query := GetOrderLedgerQuery{guard: guard.NewConstructorGuard()}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderLedgerQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderLedgerQueryIsNotConstructed if validation fails.
func (q GetOrderLedgerQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderLedgerQueryIsNotConstructed)
}

// OrderID returns the order whose entries are listed.
func (q GetOrderLedgerQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderLedgerQuery) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	q.orderID = id
	return nil
}

// GetOrderLedgerQueryResponse is one ledger entry read model.
// RelatedEntryID is set only on the two halves of a credit transfer.
type GetOrderLedgerQueryResponse struct {
	ID             kernel.UUID
	Kind           ledger.Kind
	Amount         kernel.Money
	Method         ledger.PaymentMethod
	RelatedEntryID *kernel.UUID
	Note           string
	CreatedAt      time.Time
}
