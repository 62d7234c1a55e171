package commands

import (
	"errors"
	"strings"

	"manufacturing/internal/core/domain/model/catalog"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"
	"manufacturing/internal/pkg/guard"
)

var (
	ErrCreateVehicleModelCommandIsNotConstructed = errors.New(
		"CreateVehicleModelCommand must be created via NewCreateVehicleModelCommand constructor",
	)
	ErrCreateProcessTypeCommandIsNotConstructed = errors.New(
		"CreateProcessTypeCommand must be created via NewCreateProcessTypeCommand constructor",
	)
	ErrDeactivateProcessTypeCommandIsNotConstructed = errors.New(
		"DeactivateProcessTypeCommand must be created via NewDeactivateProcessTypeCommand constructor",
	)
	ErrCreateEquipmentCommandIsNotConstructed = errors.New(
		"CreateEquipmentCommand must be created via NewCreateEquipmentCommand constructor",
	)
	ErrChangeEquipmentStatusCommandIsNotConstructed = errors.New(
		"ChangeEquipmentStatusCommand must be created via NewChangeEquipmentStatusCommand constructor",
	)
)

func requireName(paramName, name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}

type CreateVehicleModelCommand struct { //nolint:recvcheck //using for validation
	vehicleModelID kernel.UUID
	name           string

	guard guard.ConstructorGuard
}

func NewCreateVehicleModelCommand(vehicleModelID kernel.UUID, name string) (CreateVehicleModelCommand, error) {
	if err := errors.Join(
		requireID("vehicleModelID", vehicleModelID),
		requireName("name", name),
	); err != nil {
		return CreateVehicleModelCommand{}, err
	}

	return CreateVehicleModelCommand{
		vehicleModelID: vehicleModelID,
		name:           name,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c CreateVehicleModelCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleModelCommandIsNotConstructed)
}

func (c CreateVehicleModelCommand) VehicleModelID() kernel.UUID {
	return c.vehicleModelID
}

func (c CreateVehicleModelCommand) Name() string {
	return c.name
}

type CreateProcessTypeCommand struct { //nolint:recvcheck //using for validation
	processTypeID kernel.UUID
	name          string
	processOrder  int

	guard guard.ConstructorGuard
}

func NewCreateProcessTypeCommand(
	processTypeID kernel.UUID,
	name string,
	processOrder int,
) (CreateProcessTypeCommand, error) {
	if err := errors.Join(
		requireID("processTypeID", processTypeID),
		requireName("name", name),
	); err != nil {
		return CreateProcessTypeCommand{}, err
	}

	return CreateProcessTypeCommand{
		processTypeID: processTypeID,
		name:          name,
		processOrder:  processOrder,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CreateProcessTypeCommand) Validate() error {
	return c.guard.Validate(ErrCreateProcessTypeCommandIsNotConstructed)
}

func (c CreateProcessTypeCommand) ProcessTypeID() kernel.UUID {
	return c.processTypeID
}

func (c CreateProcessTypeCommand) Name() string {
	return c.name
}

func (c CreateProcessTypeCommand) ProcessOrder() int {
	return c.processOrder
}

type DeactivateProcessTypeCommand struct { //nolint:recvcheck //using for validation
	processTypeID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeactivateProcessTypeCommand(processTypeID kernel.UUID) (DeactivateProcessTypeCommand, error) {
	if err := requireID("processTypeID", processTypeID); err != nil {
		return DeactivateProcessTypeCommand{}, err
	}

	return DeactivateProcessTypeCommand{
		processTypeID: processTypeID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c DeactivateProcessTypeCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateProcessTypeCommandIsNotConstructed)
}

func (c DeactivateProcessTypeCommand) ProcessTypeID() kernel.UUID {
	return c.processTypeID
}

type CreateEquipmentCommand struct { //nolint:recvcheck //using for validation
	equipmentID   kernel.UUID
	name          string
	processTypeID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateEquipmentCommand(
	equipmentID kernel.UUID,
	name string,
	processTypeID kernel.UUID,
) (CreateEquipmentCommand, error) {
	if err := errors.Join(
		requireID("equipmentID", equipmentID),
		requireName("name", name),
		requireID("processTypeID", processTypeID),
	); err != nil {
		return CreateEquipmentCommand{}, err
	}

	return CreateEquipmentCommand{
		equipmentID:   equipmentID,
		name:          name,
		processTypeID: processTypeID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CreateEquipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateEquipmentCommandIsNotConstructed)
}

func (c CreateEquipmentCommand) EquipmentID() kernel.UUID {
	return c.equipmentID
}

func (c CreateEquipmentCommand) Name() string {
	return c.name
}

func (c CreateEquipmentCommand) ProcessTypeID() kernel.UUID {
	return c.processTypeID
}

type ChangeEquipmentStatusCommand struct { //nolint:recvcheck //using for validation
	equipmentID kernel.UUID
	status      catalog.EquipmentStatus

	guard guard.ConstructorGuard
}

func NewChangeEquipmentStatusCommand(
	equipmentID kernel.UUID,
	status catalog.EquipmentStatus,
) (ChangeEquipmentStatusCommand, error) {
	if err := errors.Join(
		requireID("equipmentID", equipmentID),
		status.Validate(),
	); err != nil {
		return ChangeEquipmentStatusCommand{}, err
	}

	return ChangeEquipmentStatusCommand{
		equipmentID: equipmentID,
		status:      status,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeEquipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeEquipmentStatusCommandIsNotConstructed)
}

func (c ChangeEquipmentStatusCommand) EquipmentID() kernel.UUID {
	return c.equipmentID
}

func (c ChangeEquipmentStatusCommand) Status() catalog.EquipmentStatus {
	return c.status
}
