// Package production implements the Production aggregate: one manufacturing
// run that fulfils allocations of one or more orders and is executed as an
// ordered sequence of process executions.
package production

import (
	"errors"
	"time"

	"manufacturing/internal/core/domain/model/allocation"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"
)

var ErrProductionIsNotConstructed = errors.New("Production must be created via NewProduction constructor")

// Production holds at most one allocation per order. endDate is nil until
// the run completes.
type Production struct {
	id          kernel.UUID
	startDate   time.Time
	endDate     *time.Time
	status      Status
	allocations []*allocation.Allocation

	isConstructed bool
}

func NewProduction(id kernel.UUID, startDate time.Time) (*Production, error) {
	p := &Production{
		status:        Planned,
		allocations:   make([]*allocation.Allocation, 0),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setStartDate(startDate),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func RestoreProduction(
	id kernel.UUID,
	startDate time.Time,
	endDate *time.Time,
	status Status,
	allocations []*allocation.Allocation,
) (*Production, error) {
	p, err := NewProduction(id, startDate)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	for _, a := range allocations {
		if err = p.attach(a); err != nil {
			return nil, err
		}
	}

	p.status = status
	p.endDate = endDate
	return p, nil
}

func (p *Production) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductionIsNotConstructed
	}
	return nil
}

func (p *Production) IsEqual(other *Production) bool {
	return other != nil && p.id.IsEqual(other.id)
}

func (p *Production) ID() kernel.UUID {
	return p.id
}

func (p *Production) StartDate() time.Time {
	return p.startDate
}

func (p *Production) EndDate() *time.Time {
	return p.endDate
}

func (p *Production) Status() Status {
	return p.status
}

func (p *Production) IsCompleted() bool {
	return p.status == Completed
}

func (p *Production) Allocations() []*allocation.Allocation {
	out := make([]*allocation.Allocation, len(p.allocations))
	copy(out, p.allocations)
	return out
}

// OrderIDs lists the orders allocated to this production.
func (p *Production) OrderIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(p.allocations))
	for _, a := range p.allocations {
		ids = append(ids, a.OrderID())
	}
	return ids
}

// RescheduleStartDate moves the planned start. Only Planned runs can move.
func (p *Production) RescheduleStartDate(startDate time.Time) error {
	if p.status != Planned {
		return errs.NewStateConflictErrorf("production", "%s is not a valid status to reschedule", p.status)
	}
	return p.setStartDate(startDate)
}

// AddAllocation links a to this run. A Cancelled run takes no allocations,
// and an order may be allocated to the same run only once.
func (p *Production) AddAllocation(a *allocation.Allocation) error {
	if p.status == Cancelled {
		return errs.NewStateConflictErrorf("production", "%s is not a valid status to allocate", p.status)
	}
	return p.attach(a)
}

func (p *Production) RemoveAllocation(allocationID kernel.UUID) error {
	for i, a := range p.allocations {
		if a.ID().IsEqual(allocationID) {
			p.allocations = append(p.allocations[:i], p.allocations[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("allocation", allocationID.String())
}

func (p *Production) Start() error {
	return p.apply(p.status.Start)
}

// Complete closes the run at endDate, which may not precede the start.
func (p *Production) Complete(endDate time.Time) error {
	newStatus, err := p.status.Complete()
	if err != nil {
		return err
	}

	if err = errors.Join(
		kernel.ValidateDate("endDate", endDate),
		kernel.ValidateNotBefore("endDate", p.startDate, endDate),
	); err != nil {
		return err
	}

	p.status = newStatus
	p.endDate = &endDate
	return nil
}

func (p *Production) Stop() error {
	return p.apply(p.status.Stop)
}

func (p *Production) Restart() error {
	return p.apply(p.status.Restart)
}

func (p *Production) Cancel() error {
	return p.apply(p.status.Cancel)
}

func (p *Production) apply(transition func() (Status, error)) error {
	newStatus, err := transition()
	if err != nil {
		return err
	}
	p.status = newStatus
	return nil
}

func (p *Production) attach(a *allocation.Allocation) error {
	if err := a.Validate(); err != nil {
		return err
	}

	if !a.ProductionID().IsEqual(p.id) {
		return errs.NewValueIsInvalidError("allocation belongs to another production")
	}

	for _, existing := range p.allocations {
		if existing.IsEqual(a) {
			return errs.NewStateConflictErrorf("production", "allocation %s is already attached", a.ID())
		}
		if existing.OrderID().IsEqual(a.OrderID()) {
			return errs.NewDuplicateError("orderID", a.OrderID().String())
		}
	}

	p.allocations = append(p.allocations, a)
	return nil
}

func (p *Production) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Production) setStartDate(startDate time.Time) error {
	if err := kernel.ValidateDate("startDate", startDate); err != nil {
		return err
	}
	p.startDate = startDate
	return nil
}
