package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
		"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
	)
)

// GetPendingOrdersQuery retrieves orders still sitting in Pending that were
// created before the cutoff. The stale hold job uses it to find reservations
// whose hold window has expired.
//
// Example:
//
//	query, err := NewGetPendingOrdersQuery(time.Now().UTC().Add(-holdTTL))
//	if err != nil {
//	    return err
//	}
//	handler := NewGetPendingOrdersQueryHandler(db)
//
//	stale, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get pending orders: %w", err)
//	}
//
//	fmt.Printf("Found %d expired holds\n", len(stale))
type GetPendingOrdersQuery struct { //nolint:recvcheck //using for validation
	createdBefore time.Time

	guard guard.ConstructorGuard
}

// NewGetPendingOrdersQuery creates a query for pending orders older than
// the cutoff.
func NewGetPendingOrdersQuery(createdBefore time.Time) (GetPendingOrdersQuery, error) {
	query := GetPendingOrdersQuery{guard: guard.NewConstructorGuard()}

	if err := query.setCreatedBefore(createdBefore); err != nil {
		return GetPendingOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPendingOrdersQueryIsNotConstructed if validation fails.
func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}

// CreatedBefore returns the cutoff instant.
func (q GetPendingOrdersQuery) CreatedBefore() time.Time {
	return q.createdBefore
}

func (q *GetPendingOrdersQuery) setCreatedBefore(cutoff time.Time) error {
	if cutoff.IsZero() {
		return errs.NewValueIsRequiredError("createdBefore")
	}

	q.createdBefore = cutoff
	return nil
}

// GetPendingOrdersQueryResponse identifies one expired hold.
type GetPendingOrdersQueryResponse struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	CreatedAt  time.Time
}
