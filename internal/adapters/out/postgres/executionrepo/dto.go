// Package executionrepo persists process executions, the ordered steps of a
// production.
package executionrepo

import (
	"time"

	"manufacturing/internal/core/domain/model/execution"
	"manufacturing/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type ProcessExecutionDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductionID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProcessTypeID  uuid.UUID `gorm:"type:uuid;not null;index"`
	EquipmentID    uuid.UUID `gorm:"type:uuid;not null;index"`
	StartDate      time.Time `gorm:"not null"`
	EndDate        *time.Time
	ExecutionOrder int `gorm:"type:int;not null"`
	Status         int `gorm:"type:smallint;not null;index"`
}

func (ProcessExecutionDTO) TableName() string {
	return "process_executions"
}

func fromDomain(pe *execution.ProcessExecution) ProcessExecutionDTO {
	return ProcessExecutionDTO{
		ID:             pe.ID().Bytes(),
		ProductionID:   pe.ProductionID().Bytes(),
		ProcessTypeID:  pe.ProcessTypeID().Bytes(),
		EquipmentID:    pe.EquipmentID().Bytes(),
		StartDate:      pe.StartDate(),
		EndDate:        pe.EndDate(),
		ExecutionOrder: pe.ExecutionOrder(),
		Status:         int(pe.Status()),
	}
}

func toDomain(dto ProcessExecutionDTO) (*execution.ProcessExecution, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productionID, err := kernel.UUIDFromBytes(dto.ProductionID[:])
	if err != nil {
		return nil, err
	}

	processTypeID, err := kernel.UUIDFromBytes(dto.ProcessTypeID[:])
	if err != nil {
		return nil, err
	}

	equipmentID, err := kernel.UUIDFromBytes(dto.EquipmentID[:])
	if err != nil {
		return nil, err
	}

	plan := execution.Plan{
		ProductionID:   productionID,
		ProcessTypeID:  processTypeID,
		EquipmentID:    equipmentID,
		StartDate:      dto.StartDate,
		EndDate:        dto.EndDate,
		ExecutionOrder: dto.ExecutionOrder,
	}

	return execution.RestoreProcessExecution(id, plan, execution.Status(dto.Status))
}
