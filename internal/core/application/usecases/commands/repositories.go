// Package commands holds the write side of the application. Every command is
// a value object validated on construction; its handler runs in exactly one
// unit of work and either commits everything or nothing.
package commands

import (
	"context"

	"manufacturing/internal/core/ports"
)

// Each handler depends on the narrowest unit of work that covers the
// repositories it touches. postgres.GormUnitOfWork satisfies all of them.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	ProductionRepoFactory interface {
		ProductionRepository() ports.ProductionRepository
	}

	AllocationRepoFactory interface {
		AllocationRepository() ports.AllocationRepository
	}

	ProcessExecutionRepoFactory interface {
		ProcessExecutionRepository() ports.ProcessExecutionRepository
	}

	ProductionVehicleRepoFactory interface {
		ProductionVehicleRepository() ports.ProductionVehicleRepository
	}

	CatalogRepoFactory interface {
		VehicleModelRepository() ports.VehicleModelRepository
		ProcessTypeRepository() ports.ProcessTypeRepository
		EquipmentRepository() ports.EquipmentRepository
	}

	// OrderUoW covers order maintenance; the catalog is needed to check the
	// vehicle model of a new order.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		CatalogRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AllocationUoW covers linking and unlinking orders and productions.
	AllocationUoW interface {
		TxManager
		OrderRepoFactory
		ProductionRepoFactory
		AllocationRepoFactory
	}

	AllocationUoWFactory interface {
		Create() AllocationUoW
	}

	ProductionUoW interface {
		TxManager
		ProductionRepoFactory
	}

	ProductionUoWFactory interface {
		Create() ProductionUoW
	}

	// ProcessExecutionUoW covers the execution steps and the references they
	// are checked against.
	ProcessExecutionUoW interface {
		TxManager
		ProcessExecutionRepoFactory
		ProductionRepoFactory
		CatalogRepoFactory
	}

	ProcessExecutionUoWFactory interface {
		Create() ProcessExecutionUoW
	}

	CatalogUoW interface {
		TxManager
		CatalogRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// CompletionUoW covers the production completion cascade and the
	// periodic fulfilled-order sweep.
	CompletionUoW interface {
		TxManager
		OrderRepoFactory
		ProductionRepoFactory
		AllocationRepoFactory
		ProcessExecutionRepoFactory
		ProductionVehicleRepoFactory
	}

	CompletionUoWFactory interface {
		Create() CompletionUoW
	}
)

// UoWFactoryFunc adapts a constructor to any of the factory interfaces
// above, e.g. UoWFactoryFunc[CompletionUoW].
type UoWFactoryFunc[T any] func() T

func (f UoWFactoryFunc[T]) Create() T {
	return f()
}
