package commands_test

import (
	"context"

	"manufacturing/internal/core/domain/model/allocation"
	"manufacturing/internal/core/domain/model/catalog"
	"manufacturing/internal/core/domain/model/execution"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"
	"manufacturing/internal/core/domain/model/production"
	"manufacturing/internal/core/domain/model/vehicle"
	"manufacturing/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepo struct{ mock.Mock }

func (m *MockOrderRepo) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepo) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepo) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepo) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockProductionRepo struct{ mock.Mock }

func (m *MockProductionRepo) Add(ctx context.Context, p *production.Production) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductionRepo) Update(ctx context.Context, p *production.Production) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductionRepo) Get(ctx context.Context, id kernel.UUID) (*production.Production, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*production.Production), args.Error(1)
}

func (m *MockProductionRepo) GetStatuses(
	ctx context.Context,
	ids []kernel.UUID,
) (map[kernel.UUID]production.Status, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]production.Status), args.Error(1)
}

type MockAllocationRepo struct{ mock.Mock }

func (m *MockAllocationRepo) Add(ctx context.Context, a *allocation.Allocation) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAllocationRepo) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAllocationRepo) Get(ctx context.Context, id kernel.UUID) (*allocation.Allocation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*allocation.Allocation), args.Error(1)
}

func (m *MockAllocationRepo) FindOrderIDsByProduction(ctx context.Context, productionID kernel.UUID) ([]kernel.UUID, error) {
	args := m.Called(ctx, productionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

func (m *MockAllocationRepo) FindProductionIDsByOrder(ctx context.Context, orderID kernel.UUID) ([]kernel.UUID, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockExecutionRepo struct{ mock.Mock }

func (m *MockExecutionRepo) Add(ctx context.Context, pe *execution.ProcessExecution) error {
	args := m.Called(ctx, pe)
	return args.Error(0)
}

func (m *MockExecutionRepo) Update(ctx context.Context, pe *execution.ProcessExecution) error {
	args := m.Called(ctx, pe)
	return args.Error(0)
}

func (m *MockExecutionRepo) Get(ctx context.Context, id kernel.UUID) (*execution.ProcessExecution, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*execution.ProcessExecution), args.Error(1)
}

func (m *MockExecutionRepo) CountNotCompletedByProduction(ctx context.Context, productionID kernel.UUID) (int64, error) {
	args := m.Called(ctx, productionID)
	return args.Get(0).(int64), args.Error(1)
}

type MockVehicleRepo struct{ mock.Mock }

func (m *MockVehicleRepo) Add(ctx context.Context, v *vehicle.ProductionVehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepo) ExistsBySerialNumber(ctx context.Context, serialNumber string) (bool, error) {
	args := m.Called(ctx, serialNumber)
	return args.Bool(0), args.Error(1)
}

type MockVehicleModelRepo struct{ mock.Mock }

func (m *MockVehicleModelRepo) Add(ctx context.Context, vm *catalog.VehicleModel) error {
	args := m.Called(ctx, vm)
	return args.Error(0)
}

func (m *MockVehicleModelRepo) Get(ctx context.Context, id kernel.UUID) (*catalog.VehicleModel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.VehicleModel), args.Error(1)
}

type MockProcessTypeRepo struct{ mock.Mock }

func (m *MockProcessTypeRepo) Add(ctx context.Context, pt *catalog.ProcessType) error {
	args := m.Called(ctx, pt)
	return args.Error(0)
}

func (m *MockProcessTypeRepo) Update(ctx context.Context, pt *catalog.ProcessType) error {
	args := m.Called(ctx, pt)
	return args.Error(0)
}

func (m *MockProcessTypeRepo) Get(ctx context.Context, id kernel.UUID) (*catalog.ProcessType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ProcessType), args.Error(1)
}

func (m *MockProcessTypeRepo) ExistsByProcessOrder(ctx context.Context, processOrder int) (bool, error) {
	args := m.Called(ctx, processOrder)
	return args.Bool(0), args.Error(1)
}

type MockEquipmentRepo struct{ mock.Mock }

func (m *MockEquipmentRepo) Add(ctx context.Context, e *catalog.Equipment) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEquipmentRepo) Update(ctx context.Context, e *catalog.Equipment) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEquipmentRepo) Get(ctx context.Context, id kernel.UUID) (*catalog.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Equipment), args.Error(1)
}

// MockUnitOfWork satisfies every unit-of-work interface of the package.
type MockUnitOfWork struct{ mock.Mock }

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUnitOfWork) ProductionRepository() ports.ProductionRepository {
	return m.Called().Get(0).(ports.ProductionRepository)
}

func (m *MockUnitOfWork) AllocationRepository() ports.AllocationRepository {
	return m.Called().Get(0).(ports.AllocationRepository)
}

func (m *MockUnitOfWork) ProcessExecutionRepository() ports.ProcessExecutionRepository {
	return m.Called().Get(0).(ports.ProcessExecutionRepository)
}

func (m *MockUnitOfWork) ProductionVehicleRepository() ports.ProductionVehicleRepository {
	return m.Called().Get(0).(ports.ProductionVehicleRepository)
}

func (m *MockUnitOfWork) VehicleModelRepository() ports.VehicleModelRepository {
	return m.Called().Get(0).(ports.VehicleModelRepository)
}

func (m *MockUnitOfWork) ProcessTypeRepository() ports.ProcessTypeRepository {
	return m.Called().Get(0).(ports.ProcessTypeRepository)
}

func (m *MockUnitOfWork) EquipmentRepository() ports.EquipmentRepository {
	return m.Called().Get(0).(ports.EquipmentRepository)
}

// MockUoWFactory hands out a MockUnitOfWork as whichever unit-of-work
// interface T the handler under test expects.
type MockUoWFactory[T any] struct{ mock.Mock }

func (m *MockUoWFactory[T]) Create() T {
	return m.Called().Get(0).(T)
}

// mockedUoW bundles a unit of work with one mock per repository. Repository
// accessors may be called any number of times; tests order the repository
// calls themselves.
type mockedUoW struct {
	uow           *MockUnitOfWork
	orders        *MockOrderRepo
	productions   *MockProductionRepo
	allocations   *MockAllocationRepo
	executions    *MockExecutionRepo
	vehicles      *MockVehicleRepo
	vehicleModels *MockVehicleModelRepo
	processTypes  *MockProcessTypeRepo
	equipment     *MockEquipmentRepo
}

func newMockedUoW() *mockedUoW {
	m := &mockedUoW{
		uow:           new(MockUnitOfWork),
		orders:        new(MockOrderRepo),
		productions:   new(MockProductionRepo),
		allocations:   new(MockAllocationRepo),
		executions:    new(MockExecutionRepo),
		vehicles:      new(MockVehicleRepo),
		vehicleModels: new(MockVehicleModelRepo),
		processTypes:  new(MockProcessTypeRepo),
		equipment:     new(MockEquipmentRepo),
	}

	m.uow.On("OrderRepository").Return(m.orders).Maybe()
	m.uow.On("ProductionRepository").Return(m.productions).Maybe()
	m.uow.On("AllocationRepository").Return(m.allocations).Maybe()
	m.uow.On("ProcessExecutionRepository").Return(m.executions).Maybe()
	m.uow.On("ProductionVehicleRepository").Return(m.vehicles).Maybe()
	m.uow.On("VehicleModelRepository").Return(m.vehicleModels).Maybe()
	m.uow.On("ProcessTypeRepository").Return(m.processTypes).Maybe()
	m.uow.On("EquipmentRepository").Return(m.equipment).Maybe()

	return m
}

func factoryFor[T any](m *mockedUoW) *MockUoWFactory[T] {
	f := new(MockUoWFactory[T])
	f.On("Create").Return(m.uow).Once()
	return f
}

func (m *mockedUoW) assertExpectations(t mock.TestingT) {
	m.uow.AssertExpectations(t)
	m.orders.AssertExpectations(t)
	m.productions.AssertExpectations(t)
	m.allocations.AssertExpectations(t)
	m.executions.AssertExpectations(t)
	m.vehicles.AssertExpectations(t)
	m.vehicleModels.AssertExpectations(t)
	m.processTypes.AssertExpectations(t)
	m.equipment.AssertExpectations(t)
}
