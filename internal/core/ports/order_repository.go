package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates and
// their status history.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an error wrapping errs.ErrObjectNotFound for unknown IDs.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPendingBefore retrieves all orders still in Pending status
	// created before the cutoff. Used by the stale hold release job.
	GetAllPendingBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)

	// GetAllUncompleted retrieves all orders in a non-terminal status.
	GetAllUncompleted(ctx context.Context) ([]*order.Order, error)

	// AddStatusHistory appends one status history row. Rows are immutable;
	// there is no update or delete.
	AddStatusHistory(ctx context.Context, history order.StatusHistory) error
}
