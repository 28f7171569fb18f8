package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
)

// ReservationNotifier is the post-reservation notification hook. It is
// invoked fire-and-forget after a successful order creation; failures are
// logged by the caller and never roll back the reservation.
type ReservationNotifier interface {
	NotifyReserved(ctx context.Context, orderID kernel.UUID, customerID kernel.UUID) error
}

// CartCleaner removes reserved units from pending cart representations after
// a successful order creation. Like the notifier it runs after commit; a
// failure here leaves a stale cart line, not a broken reservation.
type CartCleaner interface {
	RemoveUnits(ctx context.Context, customerID kernel.UUID, unitIDs []kernel.UUID) error
}
