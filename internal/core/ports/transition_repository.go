package ports

import (
	"context"

	"storefront/internal/core/domain/model/item"
)

// TransitionRepository defines the persistence contract for the item state
// edge set. The set is data, administered out of band; request-time code
// only reads it.
type TransitionRepository interface {
	// GetAll retrieves every edge of the transition graph.
	GetAll(ctx context.Context) ([]item.Transition, error)

	// Add persists a new edge. Uniqueness per (from, to) pair is enforced
	// by storage. Used by administrative seeding, not by request handling.
	Add(ctx context.Context, transition item.Transition) error
}
