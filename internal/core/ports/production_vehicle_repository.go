package ports

import (
	"context"

	"manufacturing/internal/core/domain/model/vehicle"
)

type ProductionVehicleRepository interface {
	// Add returns errs.DuplicateError for a serial number that already exists.
	Add(ctx context.Context, v *vehicle.ProductionVehicle) error
	ExistsBySerialNumber(ctx context.Context, serialNumber string) (bool, error)
}
