// Package ledger provides the append-only transaction ledger attached to
// orders. Entries are immutable, typed and signed; balances and paid-amount
// totals are always recomputed by folding entries in creation order, never
// cached in a running-total field.
//
// Virtual transfers move credit between two orders of the same customer
// without real payment movement. The pair is created atomically and the two
// entries reference each other through the related-entry field.
package ledger
