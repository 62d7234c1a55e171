package vehiclerepo

import (
	"context"

	"manufacturing/internal/adapters/out/postgres/pgerrs"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/vehicle"

	"gorm.io/gorm"
)

type GormProductionVehicleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormProductionVehicleRepository(db *gorm.DB, tracker aggregateTracker) *GormProductionVehicleRepository {
	return &GormProductionVehicleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add relies on the unique serial_number index; a collision is reported as
// errs.DuplicateError.
func (r *GormProductionVehicleRepository) Add(ctx context.Context, v *vehicle.ProductionVehicle) error {
	if err := v.Validate(); err != nil {
		return err
	}

	dto := fromDomain(v)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Duplicate(err, "serialNumber", v.SerialNumber())
	}

	r.tracker.TrackAggregate(v.ID(), v)
	return nil
}

func (r *GormProductionVehicleRepository) ExistsBySerialNumber(ctx context.Context, serialNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&ProductionVehicleDTO{}).
		Where("serial_number = ?", serialNumber).
		Count(&count).Error

	return count > 0, err
}
