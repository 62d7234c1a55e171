// Package productionrepo persists production aggregates. Deleting a
// production cascades to its allocations, process executions and vehicles.
package productionrepo

import (
	"time"

	"manufacturing/internal/adapters/out/postgres/allocationrepo"
	"manufacturing/internal/adapters/out/postgres/executionrepo"
	"manufacturing/internal/adapters/out/postgres/vehiclerepo"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/production"

	"github.com/google/uuid"
)

type ProductionDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	StartDate   time.Time `gorm:"not null"`
	EndDate     *time.Time
	Status      int                                 `gorm:"type:smallint;not null;index"`
	Allocations []allocationrepo.AllocationDTO      `gorm:"foreignKey:ProductionID;constraint:OnDelete:CASCADE"`
	Executions  []executionrepo.ProcessExecutionDTO `gorm:"foreignKey:ProductionID;constraint:OnDelete:CASCADE"`
	Vehicles    []vehiclerepo.ProductionVehicleDTO  `gorm:"foreignKey:ProductionID;constraint:OnDelete:CASCADE"`
}

func (ProductionDTO) TableName() string {
	return "productions"
}

func fromDomain(p *production.Production) ProductionDTO {
	return ProductionDTO{
		ID:        p.ID().Bytes(),
		StartDate: p.StartDate(),
		EndDate:   p.EndDate(),
		Status:    int(p.Status()),
	}
}

func toDomain(dto ProductionDTO) (*production.Production, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	allocations, err := allocationrepo.ToDomainList(dto.Allocations)
	if err != nil {
		return nil, err
	}

	return production.RestoreProduction(
		id,
		dto.StartDate,
		dto.EndDate,
		production.Status(dto.Status),
		allocations,
	)
}
