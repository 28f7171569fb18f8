package queries

import (
	"context"
	"database/sql"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/ledger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderLedgerQueryHandler reads the transaction rows of one order.
// Uses direct SQL for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetOrderLedgerQueryHandler(db)
//	query, _ := NewGetOrderLedgerQuery(orderID)
//
//	entries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get order ledger: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d entries\n", len(entries))
type GetOrderLedgerQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderLedgerQueryHandler creates a handler for ledger listing queries.
// Requires a GORM database connection for query execution.
func NewGetOrderLedgerQueryHandler(db *gorm.DB) GetOrderLedgerQueryHandler {
	return GetOrderLedgerQueryHandler{db: db}
}

// Handle executes the query to retrieve the ledger of one order.
// Entries come back oldest first so a fold over the slice replays the
// order's financial history.
func (h GetOrderLedgerQueryHandler) Handle(
	ctx context.Context,
	query GetOrderLedgerQuery,
) ([]GetOrderLedgerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetOrderLedgerQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			kind,
			amount,
			method,
			related_entry_id,
			note,
			created_at
		FROM ledger_entries
		WHERE order_id = ?
		ORDER BY created_at, id
	`, query.OrderID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetOrderLedgerQueryResponse
		var id uuid.UUID
		var kind int
		var amount string
		var method string
		var relatedID uuid.NullUUID
		var note sql.NullString
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&kind,
			&amount,
			&method,
			&relatedID,
			&note,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ID = entryID

		entryAmount, amountErr := kernel.NewMoneyFromString(amount)
		if amountErr != nil {
			return nil, amountErr
		}
		entry.Amount = entryAmount

		if relatedID.Valid {
			related, relErr := kernel.UUIDFromBytes(relatedID.UUID[:])
			if relErr != nil {
				return nil, relErr
			}
			entry.RelatedEntryID = &related
		}

		entry.Kind = ledger.Kind(kind)
		entry.Method = ledger.PaymentMethod(method)
		entry.Note = note.String
		entry.CreatedAt = createdAt
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
