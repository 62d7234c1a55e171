// Package vehiclerepo persists vehicles produced by completed productions.
package vehiclerepo

import (
	"time"

	"manufacturing/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

type ProductionVehicleDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductionID uuid.UUID `gorm:"type:uuid;not null;index"`
	SerialNumber string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	CompletedAt  time.Time `gorm:"not null"`
}

func (ProductionVehicleDTO) TableName() string {
	return "production_vehicles"
}

func fromDomain(v *vehicle.ProductionVehicle) ProductionVehicleDTO {
	return ProductionVehicleDTO{
		ID:           v.ID().Bytes(),
		ProductionID: v.ProductionID().Bytes(),
		SerialNumber: v.SerialNumber(),
		CompletedAt:  v.CompletedAt(),
	}
}
