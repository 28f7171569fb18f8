package services

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/item"
)

// ErrTransitionNotFound is the sentinel for edges the graph does not contain.
// Use errors.Is to classify and errors.As with *TransitionNotFoundError for
// the states involved.
var ErrTransitionNotFound = errors.New("no such transition")

// TransitionNotFoundError reports a queried edge the graph does not contain.
// Callers must treat this as a hard stop, not something to retry.
type TransitionNotFoundError struct {
	From item.State
	To   item.State
}

func (e *TransitionNotFoundError) Error() string {
	return fmt.Sprintf("no such transition: %s -> %s", e.From, e.To)
}

func (e *TransitionNotFoundError) Unwrap() error {
	return ErrTransitionNotFound
}

// TransitionGraph is the validation oracle over the item state edge set. The
// edges are data, loaded once from persistence; the graph is read-only at
// request time and therefore safe for concurrent use without locking.
// Administrative edge changes happen out of band and require a reload.
//
// No mutation happens through this service. Callers consult it before every
// item state change and apply the returned edge through the Item aggregate.
type TransitionGraph struct {
	edges map[edgeKey]item.Transition
}

type edgeKey struct {
	from item.State
	to   item.State
}

// NewTransitionGraph builds the oracle from the loaded edge set. Every
// transition must be constructed; edges are unique per (from, to) pair, a
// duplicate is rejected as a data error.
func NewTransitionGraph(transitions []item.Transition) (*TransitionGraph, error) {
	edges := make(map[edgeKey]item.Transition, len(transitions))

	for _, t := range transitions {
		if err := t.Validate(); err != nil {
			return nil, err
		}

		key := edgeKey{from: t.From(), to: t.To()}
		if _, exists := edges[key]; exists {
			return nil, fmt.Errorf("duplicate transition %s", t)
		}
		edges[key] = t
	}

	return &TransitionGraph{edges: edges}, nil
}

// CanTransition reports whether the graph contains the edge from -> to.
func (g *TransitionGraph) CanTransition(from, to item.State) bool {
	_, ok := g.edges[edgeKey{from: from, to: to}]
	return ok
}

// GetTransition returns the edge from -> to.
//
// Returns *TransitionNotFoundError when the graph has no such edge.
func (g *TransitionGraph) GetTransition(from, to item.State) (item.Transition, error) {
	t, ok := g.edges[edgeKey{from: from, to: to}]
	if !ok {
		return item.Transition{}, &TransitionNotFoundError{From: from, To: to}
	}
	return t, nil
}

// Transitions returns all edges of the graph in unspecified order.
func (g *TransitionGraph) Transitions() []item.Transition {
	transitions := make([]item.Transition, 0, len(g.edges))
	for _, t := range g.edges {
		transitions = append(transitions, t)
	}
	return transitions
}
