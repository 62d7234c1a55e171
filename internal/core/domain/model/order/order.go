package order

import (
	"errors"
	"fmt"
	"time"

	"manufacturing/internal/core/domain/model/allocation"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"
)

var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is a customer request for a quantity of vehicles of one model. It is
// the aggregate root for its allocations.
//
// Invariants:
//   - quantity is positive and dueDate is not before orderDate
//   - the allocated sum never exceeds quantity
//   - every allocation change re-derives status via DeriveStatus
type Order struct {
	id             kernel.UUID
	vehicleModelID kernel.UUID
	orderDate      time.Time
	dueDate        time.Time
	quantity       int
	status         Status
	allocations    []*allocation.Allocation

	isConstructed bool
}

// NewOrder creates an order in Created status without allocations.
func NewOrder(
	id kernel.UUID,
	vehicleModelID kernel.UUID,
	orderDate, dueDate time.Time,
	quantity int,
) (*Order, error) {
	o := &Order{
		status:        Created,
		allocations:   make([]*allocation.Allocation, 0),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setVehicleModelID(vehicleModelID),
		o.setSchedule(orderDate, dueDate),
		o.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds a persisted order. The stored status is kept as is:
// ChangeInfo does not re-derive it, so it may lag behind the quantity.
func RestoreOrder(
	id kernel.UUID,
	vehicleModelID kernel.UUID,
	orderDate, dueDate time.Time,
	quantity int,
	status Status,
	allocations []*allocation.Allocation,
) (*Order, error) {
	o, err := NewOrder(id, vehicleModelID, orderDate, dueDate, quantity)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	for _, a := range allocations {
		if err = o.attach(a); err != nil {
			return nil, err
		}
	}

	o.status = status

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) VehicleModelID() kernel.UUID {
	return o.vehicleModelID
}

func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

func (o *Order) DueDate() time.Time {
	return o.dueDate
}

func (o *Order) Quantity() int {
	return o.quantity
}

func (o *Order) Status() Status {
	return o.status
}

// Allocations returns a copy of the allocation set.
func (o *Order) Allocations() []*allocation.Allocation {
	out := make([]*allocation.Allocation, len(o.allocations))
	copy(out, o.allocations)
	return out
}

func (o *Order) AllocatedQuantity() int {
	return allocation.Sum(o.allocations)
}

// ChangeInfo replaces dates and quantity. The new quantity may not drop
// below what is already allocated. Status is left as is.
func (o *Order) ChangeInfo(orderDate, dueDate time.Time, quantity int) error {
	if err := errors.Join(
		kernel.ValidateDate("orderDate", orderDate),
		kernel.ValidateDate("dueDate", dueDate),
		kernel.ValidateNotBefore("dueDate", orderDate, dueDate),
		validateQuantity(quantity),
	); err != nil {
		return err
	}

	if allocated := o.AllocatedQuantity(); quantity < allocated {
		return errs.NewStateConflictErrorf("order",
			"quantity %d is less than allocated quantity %d", quantity, allocated)
	}

	o.orderDate = orderDate
	o.dueDate = dueDate
	o.quantity = quantity
	return nil
}

// AddAllocation attaches a and re-derives the status. Cancelled and
// Completed orders take no new allocations.
func (o *Order) AddAllocation(a *allocation.Allocation) error {
	if o.status.IsTerminal() {
		return errs.NewStateConflictErrorf("order", "%s is not a valid status to allocate", o.status)
	}

	if err := o.attach(a); err != nil {
		return err
	}

	o.status = DeriveStatus(o.AllocatedQuantity(), o.quantity, o.status)
	return nil
}

// RemoveAllocation detaches the allocation with allocationID and re-derives
// the status; terminal statuses are kept.
func (o *Order) RemoveAllocation(allocationID kernel.UUID) error {
	for i, a := range o.allocations {
		if a.ID().IsEqual(allocationID) {
			o.allocations = append(o.allocations[:i], o.allocations[i+1:]...)
			o.status = DeriveStatus(o.AllocatedQuantity(), o.quantity, o.status)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("allocation", allocationID.String())
}

// Cancel fails only for completed orders.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Complete requires the order to be fully allocated.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// ProductionIDs lists the productions this order is allocated to.
func (o *Order) ProductionIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(o.allocations))
	for _, a := range o.allocations {
		ids = append(ids, a.ProductionID())
	}
	return ids
}

// IsAllProductionsCompleted is false for an order without allocations,
// otherwise it asks isCompleted about every allocated production.
func (o *Order) IsAllProductionsCompleted(isCompleted func(productionID kernel.UUID) bool) bool {
	if len(o.allocations) == 0 {
		return false
	}
	for _, a := range o.allocations {
		if !isCompleted(a.ProductionID()) {
			return false
		}
	}
	return true
}

func (o *Order) attach(a *allocation.Allocation) error {
	if err := a.Validate(); err != nil {
		return err
	}

	if !a.OrderID().IsEqual(o.id) {
		return errs.NewValueIsInvalidErrorWithCause(
			"allocation",
			fmt.Errorf("allocation %s belongs to order %s", a.ID(), a.OrderID()),
		)
	}

	for _, existing := range o.allocations {
		if existing.IsEqual(a) {
			return errs.NewStateConflictErrorf("order", "allocation %s is already attached", a.ID())
		}
	}

	if sum := o.AllocatedQuantity() + a.Quantity(); sum > o.quantity {
		return errs.NewStateConflictErrorf("order",
			"allocated quantity %d exceeds order quantity %d", sum, o.quantity)
	}

	o.allocations = append(o.allocations, a)
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setVehicleModelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vehicleModelID", err)
	}
	o.vehicleModelID = id
	return nil
}

func (o *Order) setSchedule(orderDate, dueDate time.Time) error {
	if err := errors.Join(
		kernel.ValidateDate("orderDate", orderDate),
		kernel.ValidateDate("dueDate", dueDate),
		kernel.ValidateNotBefore("dueDate", orderDate, dueDate),
	); err != nil {
		return err
	}
	o.orderDate = orderDate
	o.dueDate = dueDate
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}
	o.quantity = quantity
	return nil
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	return nil
}
