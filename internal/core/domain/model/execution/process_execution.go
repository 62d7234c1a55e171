// Package execution implements ProcessExecution, one ordered step of a
// production run performed by a piece of equipment.
package execution

import (
	"errors"
	"fmt"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"
)

var ErrProcessExecutionIsNotConstructed = errors.New(
	"ProcessExecution must be created via NewProcessExecution constructor",
)

// Plan carries the editable attributes of a step.
type Plan struct {
	ProductionID   kernel.UUID
	ProcessTypeID  kernel.UUID
	EquipmentID    kernel.UUID
	StartDate      time.Time
	EndDate        *time.Time
	ExecutionOrder int
}

type ProcessExecution struct {
	id   kernel.UUID
	plan Plan

	status Status

	isConstructed bool
}

// NewProcessExecution creates a Ready step.
func NewProcessExecution(id kernel.UUID, plan Plan) (*ProcessExecution, error) {
	pe := &ProcessExecution{
		status:        Ready,
		isConstructed: true,
	}

	if err := errors.Join(
		pe.setID(id),
		validatePlan(plan),
	); err != nil {
		return nil, err
	}

	pe.plan = plan
	return pe, nil
}

func RestoreProcessExecution(id kernel.UUID, plan Plan, status Status) (*ProcessExecution, error) {
	pe, err := NewProcessExecution(id, plan)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	pe.status = status
	return pe, nil
}

func (pe *ProcessExecution) Validate() error {
	if pe == nil || !pe.isConstructed {
		return ErrProcessExecutionIsNotConstructed
	}
	return nil
}

func (pe *ProcessExecution) ID() kernel.UUID {
	return pe.id
}

func (pe *ProcessExecution) ProductionID() kernel.UUID {
	return pe.plan.ProductionID
}

func (pe *ProcessExecution) ProcessTypeID() kernel.UUID {
	return pe.plan.ProcessTypeID
}

func (pe *ProcessExecution) EquipmentID() kernel.UUID {
	return pe.plan.EquipmentID
}

func (pe *ProcessExecution) StartDate() time.Time {
	return pe.plan.StartDate
}

func (pe *ProcessExecution) EndDate() *time.Time {
	return pe.plan.EndDate
}

func (pe *ProcessExecution) ExecutionOrder() int {
	return pe.plan.ExecutionOrder
}

func (pe *ProcessExecution) Status() Status {
	return pe.status
}

// Update replaces the whole plan. Only Ready steps can be edited.
func (pe *ProcessExecution) Update(plan Plan) error {
	if pe.status != Ready {
		return errs.NewStateConflictErrorf("process execution", "%s is not a valid status to update", pe.status)
	}

	if err := validatePlan(plan); err != nil {
		return err
	}

	pe.plan = plan
	return nil
}

func (pe *ProcessExecution) Operate() error {
	newStatus, err := pe.status.Operate()
	if err != nil {
		return err
	}
	pe.status = newStatus
	return nil
}

// Complete closes the step at endDate.
func (pe *ProcessExecution) Complete(endDate time.Time) error {
	newStatus, err := pe.status.Complete()
	if err != nil {
		return err
	}

	if err = errors.Join(
		kernel.ValidateDate("endDate", endDate),
		kernel.ValidateNotBefore("endDate", pe.plan.StartDate, endDate),
	); err != nil {
		return err
	}

	pe.status = newStatus
	pe.plan.EndDate = &endDate
	return nil
}

func (pe *ProcessExecution) Stop() error {
	newStatus, err := pe.status.Stop()
	if err != nil {
		return err
	}
	pe.status = newStatus
	return nil
}

// DurationMinutes is the whole number of minutes between start and end, or
// 0 while the step has no end date.
func (pe *ProcessExecution) DurationMinutes() int64 {
	if pe.plan.StartDate.IsZero() || pe.plan.EndDate == nil {
		return 0
	}
	return int64(pe.plan.EndDate.Sub(pe.plan.StartDate) / time.Minute)
}

func (pe *ProcessExecution) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	pe.id = id
	return nil
}

func validatePlan(plan Plan) error {
	var errList []error

	for name, id := range map[string]kernel.UUID{
		"productionID":  plan.ProductionID,
		"processTypeID": plan.ProcessTypeID,
		"equipmentID":   plan.EquipmentID,
	} {
		if err := id.Validate(); err != nil {
			errList = append(errList, errs.NewValueIsRequiredErrorWithCause(name, err))
		}
	}

	if plan.ExecutionOrder <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"executionOrder", fmt.Errorf("%d is not greater than 0", plan.ExecutionOrder),
		))
	}

	if err := kernel.ValidateDate("startDate", plan.StartDate); err != nil {
		errList = append(errList, err)
	} else if plan.EndDate != nil {
		errList = append(errList, kernel.ValidateNotBefore("endDate", plan.StartDate, *plan.EndDate))
	}

	return errors.Join(errList...)
}
