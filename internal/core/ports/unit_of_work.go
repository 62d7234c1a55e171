// Package ports declares the persistence contracts used by the application
// layer. Implementations live in internal/adapters/out.
package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one business transaction. Repositories obtained after Begin
// run inside that transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit and Rollback fail when no transaction is active.
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	ProductionRepository() ProductionRepository
	AllocationRepository() AllocationRepository
	ProcessExecutionRepository() ProcessExecutionRepository
	ProductionVehicleRepository() ProductionVehicleRepository
	VehicleModelRepository() VehicleModelRepository
	ProcessTypeRepository() ProcessTypeRepository
	EquipmentRepository() EquipmentRepository
}
