package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/ledger"

	"gorm.io/gorm"
)

// GetOrderBalanceQueryHandler sums the ledger of one order directly in SQL.
// Balance folds every entry, paid amount folds only the money movement
// kinds, matching the domain folds without loading the entries.
//
// Example:
//
//	handler := NewGetOrderBalanceQueryHandler(db)
//	query, _ := NewGetOrderBalanceQuery(orderID)
//
//	balance, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get order balance: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Balance %s, paid %s\n", balance.Balance, balance.PaidAmount)
type GetOrderBalanceQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderBalanceQueryHandler creates a handler for order balance queries.
// Requires a GORM database connection for query execution.
func NewGetOrderBalanceQueryHandler(db *gorm.DB) GetOrderBalanceQueryHandler {
	return GetOrderBalanceQueryHandler{db: db}
}

// Handle executes the query and returns the summed figures.
// An order with no ledger entries yields zero balance and zero paid amount.
func (h GetOrderBalanceQueryHandler) Handle(
	ctx context.Context,
	query GetOrderBalanceQuery,
) (GetOrderBalanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderBalanceQueryResponse{}, err
	}

	var balanceRaw, paidRaw string

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(amount), 0),
			COALESCE(SUM(amount) FILTER (WHERE kind IN (?, ?, ?, ?)), 0)
		FROM ledger_entries
		WHERE order_id = ?
	`,
		ledger.KindDeposit,
		ledger.KindWithdrawal,
		ledger.KindVirtualDeposit,
		ledger.KindVirtualWithdrawal,
		query.OrderID().String(),
	).Row()

	if err := row.Scan(&balanceRaw, &paidRaw); err != nil {
		return GetOrderBalanceQueryResponse{}, err
	}

	balance, err := kernel.NewMoneyFromString(balanceRaw)
	if err != nil {
		return GetOrderBalanceQueryResponse{}, err
	}

	paid, err := kernel.NewMoneyFromString(paidRaw)
	if err != nil {
		return GetOrderBalanceQueryResponse{}, err
	}

	return GetOrderBalanceQueryResponse{
		OrderID:    query.OrderID(),
		Balance:    balance,
		PaidAmount: paid,
	}, nil
}
