// Package item provides the domain model for serialized inventory units and
// their lifecycle. It implements the Item aggregate root together with the
// state and transition value objects and the append-only state history.
//
// The package includes:
//   - Item: the aggregate root for one physical unit of stock
//   - State / Transition: the data-driven transition graph vocabulary
//   - StateHistory: one immutable audit row per applied transition
//
// Key business rules:
//   - Every state change is preceded by a validated transition check; there
//     is no way to set a unit's state directly
//   - A unit owned by an order is in a held-class state; an Available unit
//     is owned by no order
//   - Units are never hard-deleted; write-off is the Disposed state
//   - An optimistic version token guarantees at most one caller wins a race
//     to hold a unit
package item
