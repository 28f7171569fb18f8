package order

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
)

// ErrStatusHistoryIsNotConstructed is returned when a StatusHistory was not
// created through NewStatusHistory.
var ErrStatusHistoryIsNotConstructed = errors.New("StatusHistory must be created via NewStatusHistory constructor")

// StatusHistory is one immutable audit row per order status change. The row
// written at creation records None -> Pending. Rows are append-only.
type StatusHistory struct {
	id        kernel.UUID
	orderID   kernel.UUID
	from      Status
	to        Status
	changedAt time.Time
	actor     kernel.Actor
	note      string

	isConstructed bool
}

// NewStatusHistory records a status change. The "to" side must be a valid
// status; "from" may be None for the creation row.
func NewStatusHistory(orderID kernel.UUID, from, to Status, actor kernel.Actor, note string) (StatusHistory, error) {
	if err := errors.Join(orderID.Validate(), to.Validate(), actor.Validate()); err != nil {
		return StatusHistory{}, err
	}
	if from != None {
		if err := from.Validate(); err != nil {
			return StatusHistory{}, err
		}
	}

	return StatusHistory{
		id:            kernel.NewUUID(),
		orderID:       orderID,
		from:          from,
		to:            to,
		changedAt:     time.Now().UTC(),
		actor:         actor,
		note:          note,
		isConstructed: true,
	}, nil
}

// RestoreStatusHistory reconstructs a history row from persistence.
func RestoreStatusHistory(
	id kernel.UUID,
	orderID kernel.UUID,
	from, to Status,
	changedAt time.Time,
	actor kernel.Actor,
	note string,
) (StatusHistory, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), to.Validate(), actor.Validate()); err != nil {
		return StatusHistory{}, err
	}

	return StatusHistory{
		id:            id,
		orderID:       orderID,
		from:          from,
		to:            to,
		changedAt:     changedAt,
		actor:         actor,
		note:          note,
		isConstructed: true,
	}, nil
}

// Validate ensures the row came from a constructor.
func (h StatusHistory) Validate() error {
	if !h.isConstructed {
		return ErrStatusHistoryIsNotConstructed
	}
	return nil
}

// ID returns the history row identifier.
func (h StatusHistory) ID() kernel.UUID {
	return h.id
}

// OrderID returns the order the row belongs to.
func (h StatusHistory) OrderID() kernel.UUID {
	return h.orderID
}

// From returns the status the order left.
func (h StatusHistory) From() Status {
	return h.from
}

// To returns the status the order entered.
func (h StatusHistory) To() Status {
	return h.to
}

// ChangedAt returns when the status changed.
func (h StatusHistory) ChangedAt() time.Time {
	return h.changedAt
}

// Actor returns who changed the status.
func (h StatusHistory) Actor() kernel.Actor {
	return h.actor
}

// Note returns the free-text note recorded with the change.
func (h StatusHistory) Note() string {
	return h.note
}
