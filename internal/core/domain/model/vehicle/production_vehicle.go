// Package vehicle models the vehicles materialised when a production run
// completes.
package vehicle

import (
	"errors"
	"strings"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"
)

var ErrProductionVehicleIsNotConstructed = errors.New(
	"ProductionVehicle must be created via NewProductionVehicle constructor",
)

// ProductionVehicle is one finished vehicle. Serial numbers are unique across
// all productions; the uniqueness check lives with the caller.
type ProductionVehicle struct {
	id           kernel.UUID
	productionID kernel.UUID
	serialNumber string
	completedAt  time.Time

	isConstructed bool
}

func NewProductionVehicle(
	id kernel.UUID,
	productionID kernel.UUID,
	serialNumber string,
	completedAt time.Time,
) (*ProductionVehicle, error) {
	v := &ProductionVehicle{isConstructed: true}

	if err := errors.Join(
		v.setID(id),
		v.setProductionID(productionID),
		v.setSerialNumber(serialNumber),
		kernel.ValidateDate("completedAt", completedAt),
	); err != nil {
		return nil, err
	}

	v.completedAt = completedAt
	return v, nil
}

func RestoreProductionVehicle(
	id kernel.UUID,
	productionID kernel.UUID,
	serialNumber string,
	completedAt time.Time,
) (*ProductionVehicle, error) {
	return NewProductionVehicle(id, productionID, serialNumber, completedAt)
}

func (v *ProductionVehicle) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrProductionVehicleIsNotConstructed
	}
	return nil
}

func (v *ProductionVehicle) ID() kernel.UUID {
	return v.id
}

func (v *ProductionVehicle) ProductionID() kernel.UUID {
	return v.productionID
}

func (v *ProductionVehicle) SerialNumber() string {
	return v.serialNumber
}

func (v *ProductionVehicle) CompletedAt() time.Time {
	return v.completedAt
}

func (v *ProductionVehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *ProductionVehicle) setProductionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productionID", err)
	}
	v.productionID = id
	return nil
}

func (v *ProductionVehicle) setSerialNumber(serialNumber string) error {
	if strings.TrimSpace(serialNumber) == "" {
		return errs.NewValueIsRequiredError("serialNumber")
	}
	v.serialNumber = serialNumber
	return nil
}
