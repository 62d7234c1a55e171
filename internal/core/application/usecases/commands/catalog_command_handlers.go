package commands

import (
	"context"

	"manufacturing/internal/core/domain/model/catalog"
	"manufacturing/internal/pkg/errs"
)

type CreateVehicleModelCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateVehicleModelCommandHandler(uowFactory CatalogUoWFactory) CreateVehicleModelCommandHandler {
	return CreateVehicleModelCommandHandler{uowFactory: uowFactory}
}

func (h *CreateVehicleModelCommandHandler) Handle(ctx context.Context, cmd CreateVehicleModelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	m, err := catalog.NewVehicleModel(cmd.VehicleModelID(), cmd.Name())
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

	if err = uow.VehicleModelRepository().Add(ctx, m); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// CreateProcessTypeCommandHandler adds an active process type. The process
// order is checked up front; the unique index catches concurrent inserts.
type CreateProcessTypeCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateProcessTypeCommandHandler(uowFactory CatalogUoWFactory) CreateProcessTypeCommandHandler {
	return CreateProcessTypeCommandHandler{uowFactory: uowFactory}
}

func (h *CreateProcessTypeCommandHandler) Handle(ctx context.Context, cmd CreateProcessTypeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	pt, err := catalog.NewProcessType(cmd.ProcessTypeID(), cmd.Name(), cmd.ProcessOrder())
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

	if err = addProcessType(ctx, uow, pt); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func addProcessType(ctx context.Context, uow CatalogRepoFactory, pt *catalog.ProcessType) error {
	repo := uow.ProcessTypeRepository()

	taken, err := repo.ExistsByProcessOrder(ctx, pt.ProcessOrder())
	if err != nil {
		return err
	}
	if taken {
		return errs.NewDuplicateError("processOrder", pt.ProcessOrder())
	}

	return repo.Add(ctx, pt)
}

type DeactivateProcessTypeCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewDeactivateProcessTypeCommandHandler(uowFactory CatalogUoWFactory) DeactivateProcessTypeCommandHandler {
	return DeactivateProcessTypeCommandHandler{uowFactory: uowFactory}
}

func (h *DeactivateProcessTypeCommandHandler) Handle(ctx context.Context, cmd DeactivateProcessTypeCommand) error {
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

	repo := uow.ProcessTypeRepository()
	pt, err := repo.Get(ctx, cmd.ProcessTypeID())
	if err != nil {
		return err
	}

	pt.Deactivate()

	if err = repo.Update(ctx, pt); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type CreateEquipmentCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateEquipmentCommandHandler(uowFactory CatalogUoWFactory) CreateEquipmentCommandHandler {
	return CreateEquipmentCommandHandler{uowFactory: uowFactory}
}

func (h *CreateEquipmentCommandHandler) Handle(ctx context.Context, cmd CreateEquipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	e, err := catalog.NewEquipment(cmd.EquipmentID(), cmd.Name(), cmd.ProcessTypeID())
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

	if _, err = uow.ProcessTypeRepository().Get(ctx, cmd.ProcessTypeID()); err != nil {
		return err
	}

	if err = uow.EquipmentRepository().Add(ctx, e); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type ChangeEquipmentStatusCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewChangeEquipmentStatusCommandHandler(uowFactory CatalogUoWFactory) ChangeEquipmentStatusCommandHandler {
	return ChangeEquipmentStatusCommandHandler{uowFactory: uowFactory}
}

func (h *ChangeEquipmentStatusCommandHandler) Handle(ctx context.Context, cmd ChangeEquipmentStatusCommand) error {
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

	repo := uow.EquipmentRepository()
	e, err := repo.Get(ctx, cmd.EquipmentID())
	if err != nil {
		return err
	}

	if err = e.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = repo.Update(ctx, e); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
