package queries

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingOrdersQueryHandler lists expired holds straight from the orders
// table. The write side cancels them one by one through the cancel order
// use case; this handler only finds the candidates.
//
// Example:
//
//	handler := NewGetPendingOrdersQueryHandler(db)
//	query, _ := NewGetPendingOrdersQuery(cutoff)
//
//	stale, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get pending orders: %v", err)
//	    return err
//	}
//
//	for _, candidate := range stale {
//	    fmt.Printf("Order %s pending since %s\n", candidate.ID, candidate.CreatedAt)
//	}
type GetPendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingOrdersQueryHandler creates a handler for expired hold queries.
// Requires a GORM database connection for query execution.
func NewGetPendingOrdersQueryHandler(db *gorm.DB) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve pending orders older than the cutoff.
// Results are sorted oldest first so the longest expired hold is released
// first.
func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) ([]GetPendingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetPendingOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			created_at
		FROM orders
		WHERE status = ? AND created_at < ?
		ORDER BY created_at
	`, order.Pending, query.CreatedBefore()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetPendingOrdersQueryResponse
		var id, customerID uuid.UUID
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&customerID,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		customer, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.CustomerID = customer

		orderResp.CreatedAt = createdAt
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
