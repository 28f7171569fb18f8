package commands

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/core/domain/model/kernel"
)

var (
	// ErrEmptySelection is returned when an order creation request names no
	// units at all.
	ErrEmptySelection = errors.New("unit selection is empty")

	// ErrDuplicateUnitInRequest is the sentinel for requests naming the same
	// unit twice. A unit cannot be held twice in one order.
	ErrDuplicateUnitInRequest = errors.New("duplicate unit in request")

	// ErrUnitsNotFound is the sentinel for requests naming units that do not
	// resolve. Raised before anything is written.
	ErrUnitsNotFound = errors.New("units not found")

	// ErrLocationMismatch is the sentinel for units stored at a location
	// other than the order's destination. Cross-location reservation is a
	// data error, not a reservation.
	ErrLocationMismatch = errors.New("unit location does not match order location")
)

// DuplicateUnitInRequestError names the unit that appeared more than once.
type DuplicateUnitInRequestError struct {
	UnitID kernel.UUID
}

func (e *DuplicateUnitInRequestError) Error() string {
	return fmt.Sprintf("duplicate unit in request: %s", e.UnitID)
}

func (e *DuplicateUnitInRequestError) Unwrap() error {
	return ErrDuplicateUnitInRequest
}

// UnitsNotFoundError lists every requested unit ID that did not resolve, so
// the caller can report all of them at once instead of one per retry.
type UnitsNotFoundError struct {
	UnitIDs []kernel.UUID
}

func (e *UnitsNotFoundError) Error() string {
	ids := make([]string, 0, len(e.UnitIDs))
	for _, id := range e.UnitIDs {
		ids = append(ids, id.String())
	}
	return fmt.Sprintf("units not found: %s", strings.Join(ids, ", "))
}

func (e *UnitsNotFoundError) Unwrap() error {
	return ErrUnitsNotFound
}

// LocationMismatchError names the unit whose stored location differs from
// the order's destination.
type LocationMismatchError struct {
	UnitID        kernel.UUID
	UnitLocation  kernel.UUID
	OrderLocation kernel.UUID
}

func (e *LocationMismatchError) Error() string {
	return fmt.Sprintf("unit location does not match order location: unit %s is at %s, order destination is %s",
		e.UnitID, e.UnitLocation, e.OrderLocation)
}

func (e *LocationMismatchError) Unwrap() error {
	return ErrLocationMismatch
}
