package order

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly
	// validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Shipping is the fulfilment snapshot captured when the order is created.
// Address and receiver details are caller-supplied strings; this core does
// no geocoding or carrier integration. The zero value is a pickup order.
type Shipping struct {
	Address       string
	ReceiverName  string
	ReceiverPhone string
	ReceiverEmail string
	Fee           kernel.Money
}

// Validate rejects a negative shipping fee; everything else is free-form.
func (s Shipping) Validate() error {
	if s.Fee.IsNegative() {
		return errs.NewValueIsInvalidError("shipping fee")
	}
	return nil
}

// Order represents a customer order over reserved inventory units. It is the
// aggregate root that manages the coarse order lifecycle from creation through
// fulfilment, and carries the monetary totals the ledger is reconciled against.
//
// Order follows these invariants:
//   - Must have valid identifiers for order, customer, company and location
//   - Status transitions follow the machine defined on Status
//   - Payment status is derived from ledger amounts, never set by callers
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID is the ordering customer
	customerID kernel.UUID

	// companyID is the selling company
	companyID kernel.UUID

	// locationID is the store location all reserved units belong to
	locationID kernel.UUID

	// status is the current state in the order lifecycle
	status Status

	// paymentStatus is the rollup derived from the order's ledger
	paymentStatus PaymentStatus

	// totalAmount is the sum of the units' sale prices plus the shipping fee
	totalAmount kernel.Money

	// shipping is the fulfilment snapshot taken at creation
	shipping Shipping

	// serviceOrder marks orders created for repair/service work
	serviceOrder bool

	// relatedOrderID links a service order back to the sale it came from
	relatedOrderID *kernel.UUID

	// createdAt is when the order was created, used for stale-hold expiry
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create a valid Order, ensuring all business invariants are maintained.
//
// The order starts in Pending status with payment status NotPaid; the caller
// reserves the units and writes the None -> Pending history row in the same
// unit of work.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	companyID kernel.UUID,
	locationID kernel.UUID,
	totalAmount kernel.Money,
	shipping Shipping,
	serviceOrder bool,
	relatedOrderID *kernel.UUID,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		paymentStatus: PaymentNotPaid,
		serviceOrder:  serviceOrder,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setCompanyID(companyID),
		order.setLocationID(locationID),
		order.setTotalAmount(totalAmount),
		order.setShipping(shipping),
		order.setRelatedOrderID(relatedOrderID),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence. Stored status, payment
// status and timestamps are taken as-is after validation.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	companyID kernel.UUID,
	locationID kernel.UUID,
	status Status,
	paymentStatus PaymentStatus,
	totalAmount kernel.Money,
	shipping Shipping,
	serviceOrder bool,
	relatedOrderID *kernel.UUID,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		serviceOrder:  serviceOrder,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setCompanyID(companyID),
		order.setLocationID(locationID),
		order.setTotalAmount(totalAmount),
		order.setShipping(shipping),
		order.setRelatedOrderID(relatedOrderID),
		status.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}
	order.status = status
	order.paymentStatus = paymentStatus

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// CompanyID returns the selling company.
func (o *Order) CompanyID() kernel.UUID {
	return o.companyID
}

// LocationID returns the store location the order's units belong to.
func (o *Order) LocationID() kernel.UUID {
	return o.locationID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the derived payment rollup.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// TotalAmount returns the order total the ledger is reconciled against.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// Shipping returns the fulfilment snapshot.
func (o *Order) Shipping() Shipping {
	return o.shipping
}

// IsServiceOrder reports whether the order was created for service work.
func (o *Order) IsServiceOrder() bool {
	return o.serviceOrder
}

// RelatedOrderID returns the linked sale for a service order, or nil.
func (o *Order) RelatedOrderID() *kernel.UUID {
	return o.relatedOrderID
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AdvanceTo moves the order to the next status.
//
// The transition must be permitted by the status machine; see
// Status.CanAdvanceTo for the edge set. Moving to Refunded also flips the
// payment status to Refunded, since a refund is an order-level fact the
// ledger amounts alone cannot express.
//
// Returns an error wrapping errs.ErrValueIsInvalid if the machine has no
// edge from the current status.
func (o *Order) AdvanceTo(next Status) error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.AdvanceTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	if newStatus == Refunded {
		o.paymentStatus = PaymentRefunded
	}
	return nil
}

// RefreshPaymentStatus re-derives the payment rollup from the amount the
// ledger says was paid. Refunded orders keep PaymentRefunded regardless of
// the amounts.
func (o *Order) RefreshPaymentStatus(paidAmount kernel.Money) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if o.status == Refunded {
		o.paymentStatus = PaymentRefunded
		return nil
	}

	o.paymentStatus = DerivePaymentStatus(paidAmount, o.totalAmount)
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.companyID = id
	return nil
}

func (o *Order) setLocationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.locationID = id
	return nil
}

// setTotalAmount validates and sets the order total.
// Totals must not be negative; a zero total is a legal giveaway order.
func (o *Order) setTotalAmount(total kernel.Money) error {
	if total.IsNegative() {
		return errs.NewValueIsInvalidError("total amount")
	}
	o.totalAmount = total
	return nil
}

func (o *Order) setShipping(shipping Shipping) error {
	if err := shipping.Validate(); err != nil {
		return err
	}
	o.shipping = shipping
	return nil
}

func (o *Order) setRelatedOrderID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	related := *id
	o.relatedOrderID = &related
	return nil
}
