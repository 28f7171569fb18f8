// Package ports defines repository and collaborator interfaces for the
// storefront core. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"storefront/internal/core/domain/model/item"
	"storefront/internal/core/domain/model/kernel"
)

// ItemRepository defines the persistence contract for inventory unit
// aggregates and their state history.
type ItemRepository interface {
	// Add persists a new unit created during stock intake.
	// The unit must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *item.Item) error

	// Update persists changes to an existing unit using an optimistic
	// version check. The write succeeds only if the stored version still
	// matches the version the aggregate was loaded with; on a mismatch the
	// update returns an error wrapping item.ErrConcurrentModification and
	// writes nothing.
	Update(ctx context.Context, aggregate *item.Item) error

	// Get retrieves a unit by its unique identifier.
	// Returns an error wrapping errs.ErrObjectNotFound for unknown IDs.
	Get(ctx context.Context, id kernel.UUID) (*item.Item, error)

	// GetBatch retrieves the units for the given IDs in one pass, returned
	// sorted by ID. Missing IDs are not an error at this level; the caller
	// compares the result set against its request.
	GetBatch(ctx context.Context, ids []kernel.UUID) ([]*item.Item, error)

	// GetByOrder retrieves all units currently owned by the given order,
	// sorted by ID.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*item.Item, error)

	// AddHistory appends one state history row. Rows are immutable; there
	// is no update or delete.
	AddHistory(ctx context.Context, history item.StateHistory) error
}
