package commands_test

import (
	"errors"
	"testing"
	"time"

	"manufacturing/internal/core/application/usecases/commands"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"
	"manufacturing/internal/core/domain/model/production"
	"manufacturing/internal/core/domain/model/vehicle"
	"manufacturing/internal/pkg/errs"
	"manufacturing/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func serial(s string) any {
	return mock.MatchedBy(func(v *vehicle.ProductionVehicle) bool {
		return v.SerialNumber() == s
	})
}

func completeProductionHandler(m *mockedUoW) commands.CompleteProductionCommandHandler {
	return commands.NewCompleteProductionCommandHandler(factoryFor[commands.CompletionUoW](m), logger.NewNop())
}

func TestCompleteProductionCommand_Validate(t *testing.T) {
	t.Run("should require production and end date", func(t *testing.T) {
		_, err := commands.NewCompleteProductionCommand(kernel.UUID{}, endDate, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "productionID")

		_, err = commands.NewCompleteProductionCommand(kernel.NewUUID(), time.Time{}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "endDate")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var cmd commands.CompleteProductionCommand
		assert.Equal(t, commands.ErrCompleteProductionCommandIsNotConstructed, cmd.Validate())
	})

	t.Run("serial numbers are copied", func(t *testing.T) {
		serials := []string{"VIN-1"}
		cmd, err := commands.NewCompleteProductionCommand(kernel.NewUUID(), endDate, serials)
		require.NoError(t, err)

		serials[0] = "changed"
		assert.Equal(t, []string{"VIN-1"}, cmd.SerialNumbers())
	})
}

func TestCompleteProductionCommandHandler_Handle_CompletesFulfilledOrder(t *testing.T) {
	ctx := t.Context()
	p := runningProduction(t)
	o := newTestOrder(t, 3)
	link(t, o, p, 3)
	require.Equal(t, order.FullyAllocated, o.Status())

	m := newMockedUoW()
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.productions.On("Get", ctx, p.ID()).Return(p, nil).Once(),
		m.executions.On("CountNotCompletedByProduction", ctx, p.ID()).Return(int64(0), nil).Once(),
		m.productions.On("Update", ctx, p).Return(nil).Once(),
		m.vehicles.On("ExistsBySerialNumber", ctx, "VIN-1").Return(false, nil).Once(),
		m.vehicles.On("Add", ctx, serial("VIN-1")).Return(nil).Once(),
		m.vehicles.On("ExistsBySerialNumber", ctx, "VIN-2").Return(false, nil).Once(),
		m.vehicles.On("Add", ctx, serial("VIN-2")).Return(nil).Once(),
		m.allocations.On("FindOrderIDsByProduction", ctx, p.ID()).Return([]kernel.UUID{o.ID()}, nil).Once(),
		m.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		m.allocations.On("FindProductionIDsByOrder", ctx, o.ID()).Return([]kernel.UUID{p.ID()}, nil).Once(),
		m.productions.On("GetStatuses", ctx, []kernel.UUID{p.ID()}).
			Return(map[kernel.UUID]production.Status{p.ID(): production.Completed}, nil).Once(),
		m.orders.On("Update", ctx, o).Return(nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	cmd, err := commands.NewCompleteProductionCommand(p.ID(), endDate, []string{"VIN-1", "VIN-2"})
	require.NoError(t, err)

	handler := completeProductionHandler(m)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, production.Completed, p.Status())
	assert.Equal(t, endDate, *p.EndDate())
	assert.Equal(t, order.Completed, o.Status())
	m.assertExpectations(t)
}

func TestCompleteProductionCommandHandler_Handle_PendingExecutions(t *testing.T) {
	ctx := t.Context()
	p := runningProduction(t)

	m := newMockedUoW()
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.productions.On("Get", ctx, p.ID()).Return(p, nil).Once(),
		m.executions.On("CountNotCompletedByProduction", ctx, p.ID()).Return(int64(1), nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	cmd, err := commands.NewCompleteProductionCommand(p.ID(), endDate, []string{"VIN-1"})
	require.NoError(t, err)

	handler := completeProductionHandler(m)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStateConflict)
	assert.Contains(t, err.Error(), "1 process executions")
	assert.Equal(t, production.InProgress, p.Status())
	m.uow.AssertNotCalled(t, "Commit", ctx)
	m.assertExpectations(t)
}

func TestCompleteProductionCommandHandler_Handle_SerialNumbers(t *testing.T) {
	t.Run("should reject a serial repeated in the request", func(t *testing.T) {
		ctx := t.Context()
		p := runningProduction(t)

		m := newMockedUoW()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.productions.On("Get", ctx, p.ID()).Return(p, nil).Once(),
			m.executions.On("CountNotCompletedByProduction", ctx, p.ID()).Return(int64(0), nil).Once(),
			m.productions.On("Update", ctx, p).Return(nil).Once(),
			m.vehicles.On("ExistsBySerialNumber", ctx, "VIN-1").Return(false, nil).Once(),
			m.vehicles.On("Add", ctx, serial("VIN-1")).Return(nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewCompleteProductionCommand(p.ID(), endDate, []string{"VIN-1", "VIN-1"})
		require.NoError(t, err)

		handler := completeProductionHandler(m)
		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrDuplicate)
		assert.Contains(t, err.Error(), "VIN-1")
		m.assertExpectations(t)
	})

	t.Run("should reject a serial that already exists", func(t *testing.T) {
		ctx := t.Context()
		p := runningProduction(t)

		m := newMockedUoW()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.productions.On("Get", ctx, p.ID()).Return(p, nil).Once(),
			m.executions.On("CountNotCompletedByProduction", ctx, p.ID()).Return(int64(0), nil).Once(),
			m.productions.On("Update", ctx, p).Return(nil).Once(),
			m.vehicles.On("ExistsBySerialNumber", ctx, "VIN-9").Return(true, nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewCompleteProductionCommand(p.ID(), endDate, []string{"VIN-9"})
		require.NoError(t, err)

		handler := completeProductionHandler(m)
		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrDuplicate)
		m.vehicles.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		m.assertExpectations(t)
	})

	t.Run("should reject a blank serial", func(t *testing.T) {
		ctx := t.Context()
		p := runningProduction(t)

		m := newMockedUoW()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.productions.On("Get", ctx, p.ID()).Return(p, nil).Once(),
			m.executions.On("CountNotCompletedByProduction", ctx, p.ID()).Return(int64(0), nil).Once(),
			m.productions.On("Update", ctx, p).Return(nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewCompleteProductionCommand(p.ID(), endDate, []string{"  "})
		require.NoError(t, err)

		handler := completeProductionHandler(m)
		err = handler.Handle(ctx, cmd)

		assert.True(t, errs.IsValidation(err))
		m.assertExpectations(t)
	})
}

func TestCompleteProductionCommandHandler_Handle_LinkedOrders(t *testing.T) {
	t.Run("should commit without linked orders", func(t *testing.T) {
		ctx := t.Context()
		p := runningProduction(t)

		m := newMockedUoW()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.productions.On("Get", ctx, p.ID()).Return(p, nil).Once(),
			m.executions.On("CountNotCompletedByProduction", ctx, p.ID()).Return(int64(0), nil).Once(),
			m.productions.On("Update", ctx, p).Return(nil).Once(),
			m.allocations.On("FindOrderIDsByProduction", ctx, p.ID()).Return([]kernel.UUID{}, nil).Once(),
			m.uow.On("Commit", ctx).Return(nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewCompleteProductionCommand(p.ID(), endDate, nil)
		require.NoError(t, err)

		handler := completeProductionHandler(m)
		require.NoError(t, handler.Handle(ctx, cmd))
		m.assertExpectations(t)
	})

	t.Run("should skip cancelled orders", func(t *testing.T) {
		ctx := t.Context()
		p := runningProduction(t)
		o := newTestOrder(t, 2)
		link(t, o, p, 2)
		require.NoError(t, o.Cancel())

		m := newMockedUoW()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.productions.On("Get", ctx, p.ID()).Return(p, nil).Once(),
			m.executions.On("CountNotCompletedByProduction", ctx, p.ID()).Return(int64(0), nil).Once(),
			m.productions.On("Update", ctx, p).Return(nil).Once(),
			m.allocations.On("FindOrderIDsByProduction", ctx, p.ID()).Return([]kernel.UUID{o.ID()}, nil).Once(),
			m.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
			m.uow.On("Commit", ctx).Return(nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewCompleteProductionCommand(p.ID(), endDate, nil)
		require.NoError(t, err)

		handler := completeProductionHandler(m)
		require.NoError(t, handler.Handle(ctx, cmd))
		assert.Equal(t, order.Cancelled, o.Status())
		m.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		m.assertExpectations(t)
	})

	t.Run("should leave order open while a sibling production runs", func(t *testing.T) {
		ctx := t.Context()
		p1 := runningProduction(t)
		p2 := runningProduction(t)
		o := newTestOrder(t, 4)
		link(t, o, p1, 2)
		link(t, o, p2, 2)

		m := newMockedUoW()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.productions.On("Get", ctx, p1.ID()).Return(p1, nil).Once(),
			m.executions.On("CountNotCompletedByProduction", ctx, p1.ID()).Return(int64(0), nil).Once(),
			m.productions.On("Update", ctx, p1).Return(nil).Once(),
			m.allocations.On("FindOrderIDsByProduction", ctx, p1.ID()).Return([]kernel.UUID{o.ID()}, nil).Once(),
			m.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
			m.allocations.On("FindProductionIDsByOrder", ctx, o.ID()).
				Return([]kernel.UUID{p1.ID(), p2.ID()}, nil).Once(),
			m.productions.On("GetStatuses", ctx, []kernel.UUID{p1.ID(), p2.ID()}).
				Return(map[kernel.UUID]production.Status{
					p1.ID(): production.Completed,
					p2.ID(): production.InProgress,
				}, nil).Once(),
			m.uow.On("Commit", ctx).Return(nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewCompleteProductionCommand(p1.ID(), endDate, nil)
		require.NoError(t, err)

		handler := completeProductionHandler(m)
		require.NoError(t, handler.Handle(ctx, cmd))
		assert.Equal(t, order.FullyAllocated, o.Status())
		m.assertExpectations(t)
	})
}

func TestCompleteProductionCommandHandler_Handle_Errors(t *testing.T) {
	t.Run("should reject unconstructed command", func(t *testing.T) {
		factory := new(MockUoWFactory[commands.CompletionUoW])
		handler := commands.NewCompleteProductionCommandHandler(factory, logger.NewNop())

		err := handler.Handle(t.Context(), commands.CompleteProductionCommand{})

		require.ErrorIs(t, err, commands.ErrCompleteProductionCommandIsNotConstructed)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("should propagate missing production", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		notFound := errs.NewObjectNotFoundError("production", id)

		m := newMockedUoW()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.productions.On("Get", ctx, id).Return(nil, notFound).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewCompleteProductionCommand(id, endDate, nil)
		require.NoError(t, err)

		handler := completeProductionHandler(m)
		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		m.assertExpectations(t)
	})

	t.Run("should propagate begin failure", func(t *testing.T) {
		ctx := t.Context()
		boom := errors.New("connection refused")

		m := newMockedUoW()
		m.uow.On("Begin", ctx).Return(boom).Once()

		cmd, err := commands.NewCompleteProductionCommand(kernel.NewUUID(), endDate, nil)
		require.NoError(t, err)

		handler := completeProductionHandler(m)
		require.ErrorIs(t, handler.Handle(ctx, cmd), boom)
		m.uow.AssertNotCalled(t, "Rollback", ctx)
	})
}
