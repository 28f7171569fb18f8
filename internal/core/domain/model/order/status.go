package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfilment workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Updated ──> Scheduled ──┬──> PickedUp ──┐
//	                 │                     │          └──> Shipped ───┴──> Delivered
//	                 └─────────────────────┘
//	            (scheduling straight after confirmation)
//
// Cancelled and Refunded are reachable from every non-terminal status.
// Delivered, Cancelled and Refunded are terminal.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// None represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values and is the
	// "from" side of the history row written when an order is created.
	None Status = iota

	// Pending is the initial status when an order is first created.
	// All its units are held; nothing has been confirmed yet.
	Pending

	// Confirmed indicates the order has been reviewed and accepted.
	Confirmed

	// Updated indicates the order contents were edited after confirmation.
	Updated

	// Scheduled indicates fulfilment has been scheduled.
	Scheduled

	// PickedUp indicates the customer collected the order in person.
	PickedUp

	// Shipped indicates the order was handed to a carrier.
	Shipped

	// Delivered indicates the order reached the customer.
	// This is a final status with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was abandoned before delivery.
	// This is a final status with no further transitions allowed.
	Cancelled

	// Refunded indicates the order was cancelled and its payments returned.
	// This is a final status with no further transitions allowed.
	Refunded
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		None:      "None",
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Updated:   "Updated",
		Scheduled: "Scheduled",
		PickedUp:  "PickedUp",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
		Refunded:  "Refunded",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // None is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Updated:   "Updated",
		Scheduled: "Scheduled",
		PickedUp:  "PickedUp",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
		Refunded:  "Refunded",
	}
}

// getForwardTransitions returns the forward edges of the status machine.
// Cancelled and Refunded are not listed here; they are reachable from any
// non-terminal status and handled in CanAdvanceTo.
func getForwardTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Confirmed},
		Confirmed: {Updated, Scheduled},
		Updated:   {Scheduled},
		Scheduled: {PickedUp, Shipped},
		PickedUp:  {Delivered},
		Shipped:   {Delivered},
	}
}

// StatusFromString parses the wire name of a status. None is not accepted;
// callers never set an order back to the undefined status.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return None, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// None (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "None"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == Refunded
}

// CanAdvanceTo checks whether the machine permits moving from s to next
// without performing the transition.
//
// Rules:
//   - forward edges follow getForwardTransitions
//   - Cancelled and Refunded are reachable from every non-terminal status
//   - terminal statuses permit nothing
//   - self-transitions are never permitted
func (s Status) CanAdvanceTo(next Status) bool {
	if s.Validate() != nil || next.Validate() != nil {
		return false
	}
	if s.IsTerminal() || next == s {
		return false
	}
	if next == Cancelled || next == Refunded {
		return true
	}
	for _, candidate := range getForwardTransitions()[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// AdvanceTo transitions the status to next.
//
// Returns:
//   - (next, nil) on a permitted transition
//   - (0, error) if the machine has no edge from s to next
//
// This method is used by Order.AdvanceTo() to enforce state transitions.
func (s Status) AdvanceTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}
	if !s.CanAdvanceTo(next) {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not reachable from %s", next.String(), s.String()),
		)
	}
	return next, nil
}
