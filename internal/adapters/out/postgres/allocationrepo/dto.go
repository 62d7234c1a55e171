// Package allocationrepo persists order/production allocations.
package allocationrepo

import (
	"manufacturing/internal/core/domain/model/allocation"
	"manufacturing/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AllocationDTO is owned by both an order and a production; the foreign keys
// with ON DELETE CASCADE are declared on the owning DTOs.
type AllocationDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_allocations_order_production"`
	ProductionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_allocations_order_production;index"`
	Quantity     int       `gorm:"type:int;not null"`
}

func (AllocationDTO) TableName() string {
	return "allocations"
}

func FromDomain(a *allocation.Allocation) AllocationDTO {
	return AllocationDTO{
		ID:           a.ID().Bytes(),
		OrderID:      a.OrderID().Bytes(),
		ProductionID: a.ProductionID().Bytes(),
		Quantity:     a.Quantity(),
	}
}

func ToDomain(dto AllocationDTO) (*allocation.Allocation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	productionID, err := kernel.UUIDFromBytes(dto.ProductionID[:])
	if err != nil {
		return nil, err
	}

	return allocation.RestoreAllocation(id, orderID, productionID, dto.Quantity)
}

// ToDomainList restores a preloaded allocation set.
func ToDomainList(dtos []AllocationDTO) ([]*allocation.Allocation, error) {
	out := make([]*allocation.Allocation, 0, len(dtos))
	for _, dto := range dtos {
		a, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
