// Package allocation models the link that commits part of an order's
// quantity to a production run.
package allocation

import (
	"errors"
	"fmt"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"
)

var ErrAllocationIsNotConstructed = errors.New("Allocation must be created via NewAllocation constructor")

// Allocation is shared by one Order and one Production. Both aggregates hold
// the same pointer; neither may keep it once the other has rejected it.
type Allocation struct {
	id           kernel.UUID
	orderID      kernel.UUID
	productionID kernel.UUID
	quantity     int

	isConstructed bool
}

func NewAllocation(id, orderID, productionID kernel.UUID, quantity int) (*Allocation, error) {
	a := &Allocation{isConstructed: true}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setProductionID(productionID),
		a.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAllocation rebuilds a persisted allocation with the same rules as
// NewAllocation.
func RestoreAllocation(id, orderID, productionID kernel.UUID, quantity int) (*Allocation, error) {
	return NewAllocation(id, orderID, productionID, quantity)
}

func (a *Allocation) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAllocationIsNotConstructed
	}
	return nil
}

func (a *Allocation) ID() kernel.UUID {
	return a.id
}

func (a *Allocation) OrderID() kernel.UUID {
	return a.orderID
}

func (a *Allocation) ProductionID() kernel.UUID {
	return a.productionID
}

func (a *Allocation) Quantity() int {
	return a.quantity
}

func (a *Allocation) IsEqual(other *Allocation) bool {
	return other != nil && a.id.IsEqual(other.id)
}

func (a *Allocation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Allocation) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	a.orderID = id
	return nil
}

func (a *Allocation) setProductionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productionID", err)
	}
	a.productionID = id
	return nil
}

func (a *Allocation) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	a.quantity = quantity
	return nil
}

// Sum adds up the quantities of allocations.
func Sum(allocations []*Allocation) int {
	total := 0
	for _, a := range allocations {
		total += a.quantity
	}
	return total
}
