package services

import (
	"manufacturing/internal/core/domain/model/allocation"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"
	"manufacturing/internal/core/domain/model/production"
)

// Allocator links orders and productions. An allocation is either attached
// to both sides or to neither.
type Allocator struct{}

func NewAllocator() Allocator {
	return Allocator{}
}

// Allocate commits quantity of o to p under allocationID. The order side is
// checked first (quantity cap, terminal status); if the production then
// rejects the link the order side is detached again.
func (Allocator) Allocate(
	o *order.Order,
	p *production.Production,
	allocationID kernel.UUID,
	quantity int,
) (*allocation.Allocation, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	a, err := allocation.NewAllocation(allocationID, o.ID(), p.ID(), quantity)
	if err != nil {
		return nil, err
	}

	if err = o.AddAllocation(a); err != nil {
		return nil, err
	}

	if err = p.AddAllocation(a); err != nil {
		_ = o.RemoveAllocation(a.ID())
		return nil, err
	}

	return a, nil
}

// Deallocate detaches allocationID from both aggregates.
func (Allocator) Deallocate(o *order.Order, p *production.Production, allocationID kernel.UUID) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}

	if err := p.RemoveAllocation(allocationID); err != nil {
		return err
	}

	return o.RemoveAllocation(allocationID)
}
