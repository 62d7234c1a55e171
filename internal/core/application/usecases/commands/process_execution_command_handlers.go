package commands

import (
	"context"
	"fmt"

	"manufacturing/internal/core/domain/model/execution"
	"manufacturing/internal/core/domain/model/production"
	"manufacturing/internal/pkg/errs"
)

// CreateProcessExecutionCommandHandler adds a Ready step to a production that
// is still open. The production row is locked so that a step cannot slip in
// while the production is being completed.
type CreateProcessExecutionCommandHandler struct {
	uowFactory ProcessExecutionUoWFactory
}

func NewCreateProcessExecutionCommandHandler(uowFactory ProcessExecutionUoWFactory) CreateProcessExecutionCommandHandler {
	return CreateProcessExecutionCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreateProcessExecutionCommandHandler) Handle(ctx context.Context, cmd CreateProcessExecutionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	pe, err := execution.NewProcessExecution(cmd.ExecutionID(), cmd.Plan())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = checkExecutionReferences(ctx, uow, cmd.Plan()); err != nil {
		return err
	}

	if err = uow.ProcessExecutionRepository().Add(ctx, pe); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type UpdateProcessExecutionCommandHandler struct {
	uowFactory ProcessExecutionUoWFactory
}

func NewUpdateProcessExecutionCommandHandler(uowFactory ProcessExecutionUoWFactory) UpdateProcessExecutionCommandHandler {
	return UpdateProcessExecutionCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *UpdateProcessExecutionCommandHandler) Handle(ctx context.Context, cmd UpdateProcessExecutionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	executionRepo := uow.ProcessExecutionRepository()
	pe, err := executionRepo.Get(ctx, cmd.ExecutionID())
	if err != nil {
		return err
	}

	if err = pe.Update(cmd.Plan()); err != nil {
		return err
	}

	if err = checkExecutionReferences(ctx, uow, cmd.Plan()); err != nil {
		return err
	}

	if err = executionRepo.Update(ctx, pe); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type ChangeProcessExecutionStatusCommandHandler struct {
	uowFactory ProcessExecutionUoWFactory
}

func NewChangeProcessExecutionStatusCommandHandler(
	uowFactory ProcessExecutionUoWFactory,
) ChangeProcessExecutionStatusCommandHandler {
	return ChangeProcessExecutionStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *ChangeProcessExecutionStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeProcessExecutionStatusCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	executionRepo := uow.ProcessExecutionRepository()
	pe, err := executionRepo.Get(ctx, cmd.ExecutionID())
	if err != nil {
		return err
	}

	if err = cmd.Action().apply(pe, cmd.EndDate()); err != nil {
		return err
	}

	if err = executionRepo.Update(ctx, pe); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// checkExecutionReferences requires an open production and equipment that
// belongs to the referenced process type.
func checkExecutionReferences(ctx context.Context, uow ProcessExecutionUoW, plan execution.Plan) error {
	p, err := uow.ProductionRepository().Get(ctx, plan.ProductionID)
	if err != nil {
		return err
	}
	if s := p.Status(); s == production.Completed || s == production.Cancelled {
		return errs.NewStateConflictErrorf("production", "cannot plan steps for a %s production", s)
	}

	if _, err = uow.ProcessTypeRepository().Get(ctx, plan.ProcessTypeID); err != nil {
		return err
	}

	e, err := uow.EquipmentRepository().Get(ctx, plan.EquipmentID)
	if err != nil {
		return err
	}
	if !e.ProcessTypeID().IsEqual(plan.ProcessTypeID) {
		return errs.NewValueIsInvalidErrorWithCause("equipmentID",
			fmt.Errorf("equipment %s does not serve process type %s", e.ID(), plan.ProcessTypeID))
	}

	return nil
}
