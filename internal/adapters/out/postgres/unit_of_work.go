// Package postgres implements the unit of work and schema management on top
// of GORM. The repositories live in the *repo subpackages and always run on
// the connection handed out by the unit of work: the open transaction after
// Begin, the plain pool otherwise.
//
// Typical command flow:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	p, err := uow.ProductionRepository().Get(ctx, productionID) // row locked
//	...
//	return uow.Commit(ctx)
//
// Rolling back after a successful Commit returns gorm.ErrInvalidTransaction,
// which the deferred call ignores.
package postgres

import (
	"context"

	"manufacturing/internal/adapters/out/postgres/allocationrepo"
	"manufacturing/internal/adapters/out/postgres/catalogrepo"
	"manufacturing/internal/adapters/out/postgres/executionrepo"
	"manufacturing/internal/adapters/out/postgres/orderrepo"
	"manufacturing/internal/adapters/out/postgres/productionrepo"
	"manufacturing/internal/adapters/out/postgres/vehiclerepo"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory hands out one GormUnitOfWork per business operation.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.CreateGorm()
}

// CreateGorm returns the concrete type, which satisfies every narrower
// unit-of-work interface of the command layer.
func (f *GormUnitOfWorkFactory) CreateGorm() *GormUnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork is not safe for concurrent use; create one per goroutine.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin opens a transaction. A second Begin while one is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ProductionRepository() ports.ProductionRepository {
	return productionrepo.NewGormProductionRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) AllocationRepository() ports.AllocationRepository {
	return allocationrepo.NewGormAllocationRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ProcessExecutionRepository() ports.ProcessExecutionRepository {
	return executionrepo.NewGormProcessExecutionRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ProductionVehicleRepository() ports.ProductionVehicleRepository {
	return vehiclerepo.NewGormProductionVehicleRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) VehicleModelRepository() ports.VehicleModelRepository {
	return catalogrepo.NewGormVehicleModelRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ProcessTypeRepository() ports.ProcessTypeRepository {
	return catalogrepo.NewGormProcessTypeRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) EquipmentRepository() ports.EquipmentRepository {
	return catalogrepo.NewGormEquipmentRepository(uow.conn(), uow)
}

// TrackAggregate is called by repositories after every successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedCount reports how many writes the unit of work has seen since the
// last rollback.
func (uow *GormUnitOfWork) TrackedCount() int {
	return len(uow.trackedAggregates)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
