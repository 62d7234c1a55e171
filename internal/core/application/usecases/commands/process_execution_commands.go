package commands

import (
	"errors"
	"time"

	"manufacturing/internal/core/domain/model/execution"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"
	"manufacturing/internal/pkg/guard"
)

var (
	ErrCreateProcessExecutionCommandIsNotConstructed = errors.New(
		"CreateProcessExecutionCommand must be created via NewCreateProcessExecutionCommand constructor",
	)
	ErrUpdateProcessExecutionCommandIsNotConstructed = errors.New(
		"UpdateProcessExecutionCommand must be created via NewUpdateProcessExecutionCommand constructor",
	)
	ErrChangeProcessExecutionStatusCommandIsNotConstructed = errors.New(
		"ChangeProcessExecutionStatusCommand must be created via NewChangeProcessExecutionStatusCommand constructor",
	)
)

// ExecutionPlanArgs are the editable attributes of a process execution as
// they arrive from a caller.
type ExecutionPlanArgs struct {
	ProductionID   kernel.UUID
	ProcessTypeID  kernel.UUID
	EquipmentID    kernel.UUID
	StartDate      time.Time
	EndDate        *time.Time
	ExecutionOrder int
}

func (a ExecutionPlanArgs) validate() error {
	return errors.Join(
		requireID("productionID", a.ProductionID),
		requireID("processTypeID", a.ProcessTypeID),
		requireID("equipmentID", a.EquipmentID),
		requireDate("startDate", a.StartDate),
	)
}

func (a ExecutionPlanArgs) plan() execution.Plan {
	p := execution.Plan{
		ProductionID:   a.ProductionID,
		ProcessTypeID:  a.ProcessTypeID,
		EquipmentID:    a.EquipmentID,
		StartDate:      a.StartDate,
		ExecutionOrder: a.ExecutionOrder,
	}
	if a.EndDate != nil {
		end := *a.EndDate
		p.EndDate = &end
	}
	return p
}

type CreateProcessExecutionCommand struct { //nolint:recvcheck //using for validation
	executionID kernel.UUID
	plan        execution.Plan

	guard guard.ConstructorGuard
}

func NewCreateProcessExecutionCommand(
	executionID kernel.UUID,
	args ExecutionPlanArgs,
) (CreateProcessExecutionCommand, error) {
	if err := errors.Join(requireID("executionID", executionID), args.validate()); err != nil {
		return CreateProcessExecutionCommand{}, err
	}

	return CreateProcessExecutionCommand{
		executionID: executionID,
		plan:        args.plan(),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateProcessExecutionCommand) Validate() error {
	return c.guard.Validate(ErrCreateProcessExecutionCommandIsNotConstructed)
}

func (c CreateProcessExecutionCommand) ExecutionID() kernel.UUID {
	return c.executionID
}

func (c CreateProcessExecutionCommand) Plan() execution.Plan {
	return c.plan
}

// UpdateProcessExecutionCommand replaces the plan of a Ready execution.
type UpdateProcessExecutionCommand struct { //nolint:recvcheck //using for validation
	executionID kernel.UUID
	plan        execution.Plan

	guard guard.ConstructorGuard
}

func NewUpdateProcessExecutionCommand(
	executionID kernel.UUID,
	args ExecutionPlanArgs,
) (UpdateProcessExecutionCommand, error) {
	if err := errors.Join(requireID("executionID", executionID), args.validate()); err != nil {
		return UpdateProcessExecutionCommand{}, err
	}

	return UpdateProcessExecutionCommand{
		executionID: executionID,
		plan:        args.plan(),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateProcessExecutionCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProcessExecutionCommandIsNotConstructed)
}

func (c UpdateProcessExecutionCommand) ExecutionID() kernel.UUID {
	return c.executionID
}

func (c UpdateProcessExecutionCommand) Plan() execution.Plan {
	return c.plan
}

type ExecutionAction string

const (
	OperateExecution  ExecutionAction = "operate"
	CompleteExecution ExecutionAction = "complete"
	StopExecution     ExecutionAction = "stop"
)

func (a ExecutionAction) Validate() error {
	switch a {
	case OperateExecution, CompleteExecution, StopExecution:
		return nil
	default:
		return errs.NewValueIsInvalidError("action")
	}
}

func (a ExecutionAction) apply(pe *execution.ProcessExecution, endDate time.Time) error {
	switch a {
	case OperateExecution:
		return pe.Operate()
	case CompleteExecution:
		return pe.Complete(endDate)
	default:
		return pe.Stop()
	}
}

// ChangeProcessExecutionStatusCommand moves an execution through its state
// machine. endDate is required only to complete.
type ChangeProcessExecutionStatusCommand struct { //nolint:recvcheck //using for validation
	executionID kernel.UUID
	action      ExecutionAction
	endDate     time.Time

	guard guard.ConstructorGuard
}

func NewChangeProcessExecutionStatusCommand(
	executionID kernel.UUID,
	action ExecutionAction,
	endDate time.Time,
) (ChangeProcessExecutionStatusCommand, error) {
	errList := []error{requireID("executionID", executionID), action.Validate()}
	if action == CompleteExecution {
		errList = append(errList, requireDate("endDate", endDate))
	}
	if err := errors.Join(errList...); err != nil {
		return ChangeProcessExecutionStatusCommand{}, err
	}

	return ChangeProcessExecutionStatusCommand{
		executionID: executionID,
		action:      action,
		endDate:     endDate,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeProcessExecutionStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeProcessExecutionStatusCommandIsNotConstructed)
}

func (c ChangeProcessExecutionStatusCommand) ExecutionID() kernel.UUID {
	return c.executionID
}

func (c ChangeProcessExecutionStatusCommand) Action() ExecutionAction {
	return c.action
}

func (c ChangeProcessExecutionStatusCommand) EndDate() time.Time {
	return c.endDate
}
