// Package order provides domain entities and business logic for customer order
// management. It implements the Order aggregate root with lifecycle management
// and the coarse status state machine.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, totals, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - PaymentStatus: The rollup derived from the order's ledger
//   - StatusHistory: One immutable audit row per status change
//
// Key business rules:
//   - Orders must have valid identifiers for order, customer, company and location
//   - Order status follows the workflow Pending -> Confirmed -> Updated ->
//     Scheduled -> PickedUp/Shipped -> Delivered
//   - Cancelled and Refunded are reachable from every non-terminal status
//   - Payment status is derived from ledger amounts, never set by callers
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
