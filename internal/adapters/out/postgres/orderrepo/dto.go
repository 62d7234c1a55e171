// Package orderrepo persists order aggregates. Allocations are loaded with
// the order but written through allocationrepo.
package orderrepo

import (
	"time"

	"manufacturing/internal/adapters/out/postgres/allocationrepo"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"

	"github.com/google/uuid"
)

type OrderDTO struct {
	ID             uuid.UUID                      `gorm:"type:uuid;primaryKey"`
	VehicleModelID uuid.UUID                      `gorm:"type:uuid;not null;index"`
	OrderDate      time.Time                      `gorm:"not null"`
	DueDate        time.Time                      `gorm:"not null"`
	Quantity       int                            `gorm:"type:int;not null"`
	Status         int                            `gorm:"type:smallint;not null;index"`
	Allocations    []allocationrepo.AllocationDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:             o.ID().Bytes(),
		VehicleModelID: o.VehicleModelID().Bytes(),
		OrderDate:      o.OrderDate(),
		DueDate:        o.DueDate(),
		Quantity:       o.Quantity(),
		Status:         int(o.Status()),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vehicleModelID, err := kernel.UUIDFromBytes(dto.VehicleModelID[:])
	if err != nil {
		return nil, err
	}

	allocations, err := allocationrepo.ToDomainList(dto.Allocations)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		vehicleModelID,
		dto.OrderDate,
		dto.DueDate,
		dto.Quantity,
		order.Status(dto.Status),
		allocations,
	)
}
