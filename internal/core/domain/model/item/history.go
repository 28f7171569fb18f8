package item

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
)

// ErrStateHistoryIsNotConstructed is returned when a StateHistory was not
// created through NewStateHistory.
var ErrStateHistoryIsNotConstructed = errors.New("StateHistory must be created via NewStateHistory constructor")

// StateHistory is one immutable audit row per applied transition: which unit
// moved, along which edge, when, by whom, and why. Rows are append-only; they
// are never updated or deleted. The history is the proof that every state a
// unit has ever been in was reached through a validated edge.
type StateHistory struct {
	id         kernel.UUID
	itemID     kernel.UUID
	transition Transition
	changedAt  time.Time
	actor      kernel.Actor
	note       string

	isConstructed bool
}

// NewStateHistory records an applied transition. The timestamp is taken at
// construction; persistence writes the row in the same unit of work as the
// state change it documents.
func NewStateHistory(itemID kernel.UUID, transition Transition, actor kernel.Actor, note string) (StateHistory, error) {
	if err := itemID.Validate(); err != nil {
		return StateHistory{}, err
	}
	if err := transition.Validate(); err != nil {
		return StateHistory{}, err
	}
	if err := actor.Validate(); err != nil {
		return StateHistory{}, err
	}

	return StateHistory{
		id:            kernel.NewUUID(),
		itemID:        itemID,
		transition:    transition,
		changedAt:     time.Now().UTC(),
		actor:         actor,
		note:          note,
		isConstructed: true,
	}, nil
}

// RestoreStateHistory reconstructs a history row from persistence.
func RestoreStateHistory(
	id kernel.UUID,
	itemID kernel.UUID,
	transition Transition,
	changedAt time.Time,
	actor kernel.Actor,
	note string,
) (StateHistory, error) {
	if err := errors.Join(id.Validate(), itemID.Validate(), transition.Validate(), actor.Validate()); err != nil {
		return StateHistory{}, err
	}

	return StateHistory{
		id:            id,
		itemID:        itemID,
		transition:    transition,
		changedAt:     changedAt,
		actor:         actor,
		note:          note,
		isConstructed: true,
	}, nil
}

// Validate ensures the row came from a constructor.
func (h StateHistory) Validate() error {
	if !h.isConstructed {
		return ErrStateHistoryIsNotConstructed
	}
	return nil
}

// ID returns the history row identifier.
func (h StateHistory) ID() kernel.UUID {
	return h.id
}

// ItemID returns the unit the row belongs to.
func (h StateHistory) ItemID() kernel.UUID {
	return h.itemID
}

// Transition returns the edge that was applied.
func (h StateHistory) Transition() Transition {
	return h.transition
}

// ChangedAt returns when the transition was applied.
func (h StateHistory) ChangedAt() time.Time {
	return h.changedAt
}

// Actor returns who applied the transition.
func (h StateHistory) Actor() kernel.Actor {
	return h.actor
}

// Note returns the free-text note recorded with the transition.
func (h StateHistory) Note() string {
	return h.note
}
