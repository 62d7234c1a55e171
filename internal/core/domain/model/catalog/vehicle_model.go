package catalog

import (
	"errors"
	"strings"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"
)

var ErrVehicleModelIsNotConstructed = errors.New("VehicleModel must be created via NewVehicleModel constructor")

type VehicleModel struct {
	id   kernel.UUID
	name string

	isConstructed bool
}

func NewVehicleModel(id kernel.UUID, name string) (*VehicleModel, error) {
	if err := errors.Join(id.Validate(), validateName("name", name)); err != nil {
		return nil, err
	}
	return &VehicleModel{id: id, name: name, isConstructed: true}, nil
}

func (m *VehicleModel) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrVehicleModelIsNotConstructed
	}
	return nil
}

func (m *VehicleModel) ID() kernel.UUID {
	return m.id
}

func (m *VehicleModel) Name() string {
	return m.name
}

func validateName(paramName, name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}
