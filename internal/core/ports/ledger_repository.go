package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/ledger"
)

// LedgerRepository defines the persistence contract for ledger entries.
// The ledger is append-only: entries are added, never updated or deleted.
type LedgerRepository interface {
	// Add appends one ledger entry.
	Add(ctx context.Context, entry *ledger.Entry) error

	// GetByOrder retrieves all entries for the given order in creation
	// order. Balance and paid-amount folds run over this slice.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*ledger.Entry, error)
}
