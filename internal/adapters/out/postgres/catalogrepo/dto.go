// Package catalogrepo persists reference data: vehicle models, process types
// and equipment.
package catalogrepo

import (
	"manufacturing/internal/core/domain/model/catalog"
	"manufacturing/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type VehicleModelDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null"`
}

func (VehicleModelDTO) TableName() string {
	return "vehicle_models"
}

type ProcessTypeDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name         string         `gorm:"type:varchar(255);not null"`
	ProcessOrder int            `gorm:"type:int;not null;uniqueIndex"`
	Active       bool           `gorm:"not null"`
	Equipment    []EquipmentDTO `gorm:"foreignKey:ProcessTypeID;constraint:OnDelete:RESTRICT"`
}

func (ProcessTypeDTO) TableName() string {
	return "process_types"
}

type EquipmentDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:varchar(255);not null"`
	ProcessTypeID uuid.UUID `gorm:"type:uuid;not null;index:idx_equipment_process_type_status"`
	Status        int       `gorm:"type:smallint;not null;index:idx_equipment_process_type_status"`
}

func (EquipmentDTO) TableName() string {
	return "equipment"
}

func vehicleModelFromDomain(m *catalog.VehicleModel) VehicleModelDTO {
	return VehicleModelDTO{ID: m.ID().Bytes(), Name: m.Name()}
}

func vehicleModelToDomain(dto VehicleModelDTO) (*catalog.VehicleModel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return catalog.NewVehicleModel(id, dto.Name)
}

func processTypeFromDomain(pt *catalog.ProcessType) ProcessTypeDTO {
	return ProcessTypeDTO{
		ID:           pt.ID().Bytes(),
		Name:         pt.Name(),
		ProcessOrder: pt.ProcessOrder(),
		Active:       pt.IsActive(),
	}
}

func processTypeToDomain(dto ProcessTypeDTO) (*catalog.ProcessType, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return catalog.RestoreProcessType(id, dto.Name, dto.ProcessOrder, dto.Active)
}

func equipmentFromDomain(e *catalog.Equipment) EquipmentDTO {
	return EquipmentDTO{
		ID:            e.ID().Bytes(),
		Name:          e.Name(),
		ProcessTypeID: e.ProcessTypeID().Bytes(),
		Status:        int(e.Status()),
	}
}

func equipmentToDomain(dto EquipmentDTO) (*catalog.Equipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	processTypeID, err := kernel.UUIDFromBytes(dto.ProcessTypeID[:])
	if err != nil {
		return nil, err
	}

	return catalog.RestoreEquipment(id, dto.Name, processTypeID, catalog.EquipmentStatus(dto.Status))
}
