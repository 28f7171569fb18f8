package commands

import (
	"errors"
	"sort"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// UnitSelection is one cart line: the unit to reserve and the sale-time
// price the caller's cart carries for it.
type UnitSelection struct {
	UnitID    kernel.UUID
	UnitPrice kernel.Money
}

// CreateOrderCommand represents a request to reserve a cart of inventory
// units as one order. Encapsulates the customer, the destination location,
// the unit selections and the fulfilment snapshot.
//
// Selections are stored sorted by unit ID so the handler mutates units in a
// deterministic order; two racing orders over overlapping unit sets cannot
// deadlock on lock ordering.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customerID, companyID,
//	    locationID, actor, selections, shipping, false, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, graph, cartCleaner, notifier)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	customerID     kernel.UUID
	companyID      kernel.UUID
	locationID     kernel.UUID
	actor          kernel.Actor
	selections     []UnitSelection
	shipping       order.Shipping
	serviceOrder   bool
	relatedOrderID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to reserve units as a new order.
// An empty selection list is rejected outright, as are duplicate unit IDs
// and negative unit prices.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	companyID kernel.UUID,
	locationID kernel.UUID,
	actor kernel.Actor,
	selections []UnitSelection,
	shipping order.Shipping,
	serviceOrder bool,
	relatedOrderID *kernel.UUID,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		serviceOrder: serviceOrder,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setCompanyID(companyID),
		orderCommand.setLocationID(locationID),
		orderCommand.setActor(actor),
		orderCommand.setShipping(shipping),
		orderCommand.setRelatedOrderID(relatedOrderID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	if err := orderCommand.setSelections(selections); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will carry.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// CompanyID returns the selling company.
func (c CreateOrderCommand) CompanyID() kernel.UUID {
	return c.companyID
}

// LocationID returns the destination location every unit must belong to.
func (c CreateOrderCommand) LocationID() kernel.UUID {
	return c.locationID
}

// Actor returns who triggered the reservation.
func (c CreateOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// Selections returns the cart lines sorted by unit ID.
func (c CreateOrderCommand) Selections() []UnitSelection {
	return c.selections
}

// Shipping returns the fulfilment snapshot for the new order.
func (c CreateOrderCommand) Shipping() order.Shipping {
	return c.shipping
}

// IsServiceOrder reports whether the order is created for service work.
func (c CreateOrderCommand) IsServiceOrder() bool {
	return c.serviceOrder
}

// RelatedOrderID returns the linked sale for a service order, or nil.
func (c CreateOrderCommand) RelatedOrderID() *kernel.UUID {
	return c.relatedOrderID
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.companyID = id
	return nil
}

func (c *CreateOrderCommand) setLocationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.locationID = id
	return nil
}

func (c *CreateOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setShipping(shipping order.Shipping) error {
	if err := shipping.Validate(); err != nil {
		return err
	}
	c.shipping = shipping
	return nil
}

func (c *CreateOrderCommand) setRelatedOrderID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	related := *id
	c.relatedOrderID = &related
	return nil
}

func (c *CreateOrderCommand) setSelections(selections []UnitSelection) error {
	if len(selections) == 0 {
		return ErrEmptySelection
	}

	seen := make(map[kernel.UUID]struct{}, len(selections))
	sorted := make([]UnitSelection, 0, len(selections))
	for _, selection := range selections {
		if err := selection.UnitID.Validate(); err != nil {
			return err
		}
		if selection.UnitPrice.IsNegative() {
			return errs.NewValueIsInvalidError("unit price")
		}
		if _, dup := seen[selection.UnitID]; dup {
			return &DuplicateUnitInRequestError{UnitID: selection.UnitID}
		}
		seen[selection.UnitID] = struct{}{}
		sorted = append(sorted, selection)
	}

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].UnitID.String() < sorted[j].UnitID.String()
	})

	c.selections = sorted
	return nil
}
