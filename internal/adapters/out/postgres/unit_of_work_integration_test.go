package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "manufacturing/internal/adapters/out/postgres"
	"manufacturing/internal/core/domain/model/allocation"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"
	"manufacturing/internal/core/domain/model/vehicle"
	"manufacturing/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite runs the unit of work against a real
// PostgreSQL server: row locks, isolation and the constraints created by
// Migrate.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	dsn       string
	db        *gorm.DB
}

func (s *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)
	s.dsn = dsn

	db, err := gorm.Open(gorm_postgres.Open(dsn), postgres_adapter.NewGormConfig())
	s.Require().NoError(err)
	s.db = db

	s.Require().NoError(postgres_adapter.Migrate(db))
}

func (s *UnitOfWorkIntegrationTestSuite) SetupTest() {
	s.Require().NoError(s.db.Exec(
		"TRUNCATE TABLE production_vehicles, process_executions, allocations, productions, orders, " +
			"equipment, process_types, vehicle_models",
	).Error)
}

func (s *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *UnitOfWorkIntegrationTestSuite) TestTransactionIsolation() {
	ctx := context.Background()
	f := newFixture(s.T(), s.db)

	uow1 := f.factory.Create()
	uow2 := f.factory.Create()
	s.Require().NoError(uow1.Begin(ctx))
	s.Require().NoError(uow2.Begin(ctx))

	o1, _ := order.NewOrder(kernel.NewUUID(), f.model.ID(), baseDate, baseDate, 1)
	o2, _ := order.NewOrder(kernel.NewUUID(), f.model.ID(), baseDate, baseDate, 1)
	s.Require().NoError(uow1.OrderRepository().Add(ctx, o1))
	s.Require().NoError(uow2.OrderRepository().Add(ctx, o2))

	_, err := uow1.OrderRepository().Get(ctx, o2.ID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound, "uow1 must not see uncommitted o2")

	s.Require().NoError(uow1.Commit(ctx))
	s.Require().NoError(uow2.Rollback(ctx))

	_, err = f.factory.Create().OrderRepository().Get(ctx, o1.ID())
	s.Require().NoError(err)
	_, err = f.factory.Create().OrderRepository().Get(ctx, o2.ID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *UnitOfWorkIntegrationTestSuite) TestGetLocksRowUntilCommit() {
	ctx := context.Background()
	f := newFixture(s.T(), s.db)
	p := f.production(s.T())

	holder := f.factory.Create()
	s.Require().NoError(holder.Begin(ctx))
	_, err := holder.ProductionRepository().Get(ctx, p.ID())
	s.Require().NoError(err)

	waiterCtx, cancel := context.WithTimeout(ctx, 300*time.Millisecond)
	defer cancel()

	waiter := f.factory.Create()
	s.Require().NoError(waiter.Begin(waiterCtx))
	_, err = waiter.ProductionRepository().Get(waiterCtx, p.ID())
	s.Require().Error(err, "second FOR UPDATE must block until the holder finishes")
	_ = waiter.Rollback(ctx)

	s.Require().NoError(holder.Commit(ctx))
}

func (s *UnitOfWorkIntegrationTestSuite) TestCascadeDelete() {
	ctx := context.Background()
	f := newFixture(s.T(), s.db)
	o := f.order(s.T(), 4)
	p := f.production(s.T())
	allocationID := f.allocate(s.T(), o, p, 4)
	pe := f.execution(s.T(), p.ID(), 1)

	s.Require().NoError(s.db.Exec("DELETE FROM productions WHERE id = ?", p.ID().Bytes()).Error)

	_, err := f.factory.Create().AllocationRepository().Get(ctx, allocationID)
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = f.factory.Create().ProcessExecutionRepository().Get(ctx, pe.ID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)

	loaded, err := f.factory.Create().OrderRepository().Get(ctx, o.ID())
	s.Require().NoError(err)
	s.Empty(loaded.Allocations())
}

func (s *UnitOfWorkIntegrationTestSuite) TestUniqueViolations() {
	ctx := context.Background()
	f := newFixture(s.T(), s.db)
	o := f.order(s.T(), 4)
	p := f.production(s.T())
	f.allocate(s.T(), o, p, 1)

	clash, err := allocation.NewAllocation(kernel.NewUUID(), o.ID(), p.ID(), 1)
	s.Require().NoError(err)
	s.Require().ErrorIs(f.factory.Create().AllocationRepository().Add(ctx, clash), errs.ErrDuplicate)

	v1, _ := vehicle.NewProductionVehicle(kernel.NewUUID(), p.ID(), "VIN-PG-1", baseDate)
	v2, _ := vehicle.NewProductionVehicle(kernel.NewUUID(), p.ID(), "VIN-PG-1", baseDate)
	s.Require().NoError(f.factory.Create().ProductionVehicleRepository().Add(ctx, v1))
	s.Require().ErrorIs(f.factory.Create().ProductionVehicleRepository().Add(ctx, v2), errs.ErrDuplicate)
}

func (s *UnitOfWorkIntegrationTestSuite) TestLibPqDriver() {
	ctx := context.Background()

	pqDB, err := gorm.Open(
		gorm_postgres.New(gorm_postgres.Config{DriverName: postgres_adapter.DriverPq, DSN: s.dsn}),
		postgres_adapter.NewGormConfig(),
	)
	s.Require().NoError(err)

	f := newFixture(s.T(), pqDB)
	p := f.production(s.T())

	v1, _ := vehicle.NewProductionVehicle(kernel.NewUUID(), p.ID(), "VIN-PQ-1", baseDate)
	v2, _ := vehicle.NewProductionVehicle(kernel.NewUUID(), p.ID(), "VIN-PQ-1", baseDate)
	s.Require().NoError(f.factory.Create().ProductionVehicleRepository().Add(ctx, v1))
	s.Require().ErrorIs(f.factory.Create().ProductionVehicleRepository().Add(ctx, v2), errs.ErrDuplicate)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
