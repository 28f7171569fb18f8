package item

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

	// ErrIllegalTransition is the sentinel for transitions the graph does not
	// permit for the unit's current state. Use errors.Is to classify and
	// errors.As with *IllegalTransitionError for details.
	ErrIllegalTransition = errors.New("illegal state transition")

	// ErrConcurrentModification is returned when a unit's state changed
	// between read and write. The caller lost a race for the unit; the winner's
	// mutation is intact and the loser must reload before retrying.
	ErrConcurrentModification = errors.New("item was modified concurrently")
)

// IllegalTransitionError reports a transition attempt for which the graph has
// no edge, or one that would break the unit's owning-order invariant. It names
// the unit and both states so a checkout flow can tell the customer exactly
// which unit failed and why.
type IllegalTransitionError struct {
	ItemID kernel.UUID
	From   State
	To     State
	Reason string
}

func (e *IllegalTransitionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("illegal state transition: item %s cannot move %s -> %s (%s)",
			e.ItemID, e.From, e.To, e.Reason)
	}
	return fmt.Sprintf("illegal state transition: item %s cannot move %s -> %s", e.ItemID, e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// WarrantyType identifies who backs a unit's warranty.
type WarrantyType string

const (
	WarrantyNone         WarrantyType = "NONE"
	WarrantyManufacturer WarrantyType = "MANUFACTURER"
	WarrantyStore        WarrantyType = "STORE"
	WarrantyThirdParty   WarrantyType = "THIRD_PARTY"
)

// Item represents one physical, serialized unit of stock. It is the aggregate
// root for the unit's lifecycle: every state change goes through a validated
// transition, and the unit is never hard-deleted (write-off is the Disposed
// state).
//
// Item maintains these invariants:
//   - A unit with an owning order is in a held-class state (Held, Sold).
//   - A unit in Available has no owning order.
//   - State changes only happen through transitions the graph validated;
//     self-transitions are rejected, never silently accepted.
//   - The version field backs optimistic concurrency: two callers racing to
//     hold the same unit cannot both win.
type Item struct {
	// id is the unique identifier of the unit
	id kernel.UUID

	// productID references the catalog model this unit is an instance of
	productID kernel.UUID

	// companyID is the owning company
	companyID kernel.UUID

	// locationID is the store location holding the unit
	locationID kernel.UUID

	// controlNumber is the company-unique intake tag on the physical unit
	controlNumber string

	// state is the current node in the transition graph
	state State

	// orderID is the owning order, nil while the unit is not reserved
	orderID *kernel.UUID

	// unitCost is the intake cost allocated from the supplier order
	unitCost kernel.Money

	// retailPrice is the asking price on the floor
	retailPrice kernel.Money

	// unitPrice is the price the unit actually sold at, set on reservation
	unitPrice kernel.Money

	// servicePrice is the attached service charge, if any
	servicePrice kernel.Money

	// warrantyType and warrantyDays describe the warranty attached to the unit
	warrantyType WarrantyType
	warrantyDays int

	// version is the optimistic-concurrency token, bumped on every persisted write
	version int64

	// isConstructed ensures the item came from a constructor
	isConstructed bool
}

// NewItem creates a unit during stock intake. New units start Available with
// no owning order and version zero.
func NewItem(
	id kernel.UUID,
	productID kernel.UUID,
	companyID kernel.UUID,
	locationID kernel.UUID,
	controlNumber string,
	unitCost kernel.Money,
	retailPrice kernel.Money,
	warrantyType WarrantyType,
	warrantyDays int,
) (*Item, error) {
	it := &Item{
		state:         StateAvailable,
		warrantyType:  warrantyType,
		warrantyDays:  warrantyDays,
		unitCost:      unitCost,
		retailPrice:   retailPrice,
		isConstructed: true,
	}

	if err := errors.Join(
		it.setID(id),
		it.setProductID(productID),
		it.setCompanyID(companyID),
		it.setLocationID(locationID),
		it.setControlNumber(controlNumber),
	); err != nil {
		return nil, err
	}

	return it, nil
}

// RestoreItem reconstructs a unit from persistence without re-running intake
// rules. The stored state, owning order and version are taken as-is; the
// cross-field invariant between order and state is still checked so corrupted
// rows surface immediately instead of on the next mutation.
func RestoreItem(
	id kernel.UUID,
	productID kernel.UUID,
	companyID kernel.UUID,
	locationID kernel.UUID,
	controlNumber string,
	state State,
	orderID *kernel.UUID,
	unitCost kernel.Money,
	retailPrice kernel.Money,
	unitPrice kernel.Money,
	servicePrice kernel.Money,
	warrantyType WarrantyType,
	warrantyDays int,
	version int64,
) (*Item, error) {
	it := &Item{
		unitCost:      unitCost,
		retailPrice:   retailPrice,
		unitPrice:     unitPrice,
		servicePrice:  servicePrice,
		warrantyType:  warrantyType,
		warrantyDays:  warrantyDays,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		it.setID(id),
		it.setProductID(productID),
		it.setCompanyID(companyID),
		it.setLocationID(locationID),
		it.setControlNumber(controlNumber),
		state.Validate(),
	); err != nil {
		return nil, err
	}
	it.state = state

	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return nil, err
		}
		id := *orderID
		it.orderID = &id
	}

	if err := it.checkOwnershipInvariant(); err != nil {
		return nil, err
	}

	return it, nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// IsEqual compares two units by identifier.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the unit's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the catalog model reference.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// CompanyID returns the owning company.
func (i *Item) CompanyID() kernel.UUID {
	return i.companyID
}

// LocationID returns the store location holding the unit.
func (i *Item) LocationID() kernel.UUID {
	return i.locationID
}

// ControlNumber returns the intake tag on the physical unit.
func (i *Item) ControlNumber() string {
	return i.controlNumber
}

// State returns the current state of the unit.
func (i *Item) State() State {
	return i.state
}

// OrderID returns the owning order, or nil while the unit is unreserved.
func (i *Item) OrderID() *kernel.UUID {
	return i.orderID
}

// UnitCost returns the intake cost of the unit.
func (i *Item) UnitCost() kernel.Money {
	return i.unitCost
}

// RetailPrice returns the asking price.
func (i *Item) RetailPrice() kernel.Money {
	return i.retailPrice
}

// UnitPrice returns the sale-time price, zero until reserved.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// ServicePrice returns the attached service charge.
func (i *Item) ServicePrice() kernel.Money {
	return i.servicePrice
}

// WarrantyType returns who backs the unit's warranty.
func (i *Item) WarrantyType() WarrantyType {
	return i.warrantyType
}

// WarrantyDays returns the warranty period in days.
func (i *Item) WarrantyDays() int {
	return i.warrantyDays
}

// Version returns the optimistic-concurrency token of the loaded snapshot.
func (i *Item) Version() int64 {
	return i.version
}

// Reserve re-parents the unit to an order and moves it to Held in one step.
// The transition must already have been validated by the graph and must
// target Held from the unit's current state; the sale-time unit price is
// frozen from the caller's cart data at the same moment.
//
// Returns *IllegalTransitionError if the edge does not apply to this unit.
func (i *Item) Reserve(t Transition, orderID kernel.UUID, unitPrice kernel.Money) error {
	if err := i.Validate(); err != nil {
		return err
	}
	if err := orderID.Validate(); err != nil {
		return err
	}

	if i.orderID != nil {
		return &IllegalTransitionError{
			ItemID: i.id, From: i.state, To: t.To(),
			Reason: "unit is already owned by an order",
		}
	}
	if err := i.checkEdgeApplies(t); err != nil {
		return err
	}
	if t.To() != StateHeld {
		return &IllegalTransitionError{
			ItemID: i.id, From: i.state, To: t.To(),
			Reason: "reservation must transition to Held",
		}
	}

	i.state = t.To()
	i.orderID = &orderID
	i.unitPrice = unitPrice
	return nil
}

// Release detaches the unit from its order and moves it back to Available,
// used when an order is cancelled. The sale-time price is cleared: the next
// reservation sets its own.
func (i *Item) Release(t Transition) error {
	if err := i.Validate(); err != nil {
		return err
	}

	if i.orderID == nil {
		return &IllegalTransitionError{
			ItemID: i.id, From: i.state, To: t.To(),
			Reason: "unit is not owned by an order",
		}
	}
	if err := i.checkEdgeApplies(t); err != nil {
		return err
	}
	if t.To() != StateAvailable {
		return &IllegalTransitionError{
			ItemID: i.id, From: i.state, To: t.To(),
			Reason: "release must transition to Available",
		}
	}

	i.state = t.To()
	i.orderID = nil
	i.unitPrice = kernel.ZeroMoney()
	return nil
}

// ApplyTransition moves the unit along a validated edge without touching
// order ownership (e.g. Available -> Testing, Held -> Sold). Transitions into
// Available on an owned unit must go through Release instead, and transitions
// into Held through Reserve; this keeps the order/state invariant in one
// place.
func (i *Item) ApplyTransition(t Transition) error {
	if err := i.Validate(); err != nil {
		return err
	}
	if err := i.checkEdgeApplies(t); err != nil {
		return err
	}

	switch t.To() {
	case StateHeld:
		return &IllegalTransitionError{
			ItemID: i.id, From: i.state, To: t.To(),
			Reason: "holds are applied via Reserve",
		}
	case StateAvailable:
		if i.orderID != nil {
			return &IllegalTransitionError{
				ItemID: i.id, From: i.state, To: t.To(),
				Reason: "owned units are returned to Available via Release",
			}
		}
	}

	i.state = t.To()
	return nil
}

// checkEdgeApplies verifies the edge is constructed and starts at the unit's
// current state.
func (i *Item) checkEdgeApplies(t Transition) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if t.From() != i.state {
		return &IllegalTransitionError{
			ItemID: i.id, From: i.state, To: t.To(),
			Reason: fmt.Sprintf("edge starts at %s, unit is in %s", t.From(), i.state),
		}
	}
	return nil
}

// checkOwnershipInvariant enforces the cross-field rule between owning order
// and state class.
func (i *Item) checkOwnershipInvariant() error {
	if i.orderID != nil && i.state != StateHeld && i.state != StateSold {
		return errs.NewValueIsInvalidErrorWithCause("item state",
			fmt.Errorf("unit %s is owned by an order but in state %s", i.id, i.state))
	}
	if i.orderID == nil && (i.state == StateHeld || i.state == StateSold) {
		return errs.NewValueIsInvalidErrorWithCause("item state",
			fmt.Errorf("unit %s is in state %s but owned by no order", i.id, i.state))
	}
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.productID = id
	return nil
}

func (i *Item) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.companyID = id
	return nil
}

func (i *Item) setLocationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.locationID = id
	return nil
}

func (i *Item) setControlNumber(controlNumber string) error {
	if controlNumber == "" {
		return errs.NewValueIsRequiredError("control number")
	}
	i.controlNumber = controlNumber
	return nil
}
