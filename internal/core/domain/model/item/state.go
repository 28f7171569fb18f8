package item

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// State is the name of a node in the inventory transition graph. States are
// data, not code: the set of states and the edges between them live in the
// store and are loaded at startup, so deployments can add states (e.g. a
// repair pipeline) without a release. The constants below are the states the
// core itself needs to reason about.
type State string

const (
	// StateAvailable marks a unit that is on the floor and can be reserved.
	StateAvailable State = "Available"

	// StateHeld marks a unit reserved by an order and invisible to other
	// customers.
	StateHeld State = "Held"

	// StateSold marks a unit whose order has been fulfilled.
	StateSold State = "Sold"

	// StateTesting marks a unit undergoing inspection before sale.
	StateTesting State = "Testing"

	// StateDisposed marks a unit written off. Units are never hard-deleted;
	// this is the terminal soft-delete state.
	StateDisposed State = "Disposed"
)

// Validate checks that the state has a name. Any non-empty name is legal:
// whether a state exists is decided by the transition graph, not by this
// value object.
func (s State) Validate() error {
	if s == "" {
		return errs.NewValueIsRequiredError("state name")
	}
	return nil
}

// String returns the state name.
func (s State) String() string {
	return string(s)
}

// Transition is a directed edge of the inventory transition graph: a
// permitted move from one state to another. The edge set is the single source
// of truth for which unit mutations are legal; a mutation with no matching
// edge is rejected before anything is written.
//
// Transitions are unique per (from, to) pair and immutable once loaded.
type Transition struct {
	from        State
	to          State
	description string

	isConstructed bool
}

// NewTransition creates a validated transition edge.
// Self-loops are rejected: transitioning a unit to the state it is already in
// is not a no-op, it is an error.
func NewTransition(from State, to State, description string) (Transition, error) {
	if err := from.Validate(); err != nil {
		return Transition{}, err
	}
	if err := to.Validate(); err != nil {
		return Transition{}, err
	}
	if from == to {
		return Transition{}, errs.NewValueIsInvalidErrorWithCause("transition",
			fmt.Errorf("self transition %s -> %s is not allowed", from, to))
	}

	return Transition{
		from:          from,
		to:            to,
		description:   description,
		isConstructed: true,
	}, nil
}

// Validate ensures the Transition was created through NewTransition.
func (t Transition) Validate() error {
	if !t.isConstructed {
		return errs.NewValueIsRequiredError("Transition must be created via NewTransition constructor")
	}
	return nil
}

// From returns the source state of the edge.
func (t Transition) From() State {
	return t.from
}

// To returns the target state of the edge.
func (t Transition) To() State {
	return t.to
}

// Description returns the optional human-readable edge description.
func (t Transition) Description() string {
	return t.description
}

// String formats the edge as "From -> To".
func (t Transition) String() string {
	return fmt.Sprintf("%s -> %s", t.from, t.to)
}
