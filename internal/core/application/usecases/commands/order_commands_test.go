package commands_test

import (
	"testing"

	"manufacturing/internal/core/application/usecases/commands"
	"manufacturing/internal/core/domain/model/allocation"
	"manufacturing/internal/core/domain/model/catalog"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"
	"manufacturing/internal/core/domain/services"
	"manufacturing/internal/pkg/errs"
	"manufacturing/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommand_Validate_WhenNotConstructed_ShouldReturnError(t *testing.T) {
	// Arrange
	var cmd commands.CreateOrderCommand

	// Act
	err := cmd.Validate()

	// Assert
	assert.Equal(t, commands.ErrCreateOrderCommandIsNotConstructed, err)
}

func TestNewCreateOrderCommand_WhenArgumentsMissing_ShouldJoinErrors(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, kernel.UUID{}, orderDate, dueDate, 1)

	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
	assert.Contains(t, err.Error(), "orderID")
	assert.Contains(t, err.Error(), "vehicleModelID")
}

func TestCreateOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should store order of a known model", func(t *testing.T) {
		ctx := t.Context()
		model, err := catalog.NewVehicleModel(kernel.NewUUID(), "Sedan")
		require.NoError(t, err)
		orderID := kernel.NewUUID()

		m := newMockedUoW()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.vehicleModels.On("Get", ctx, model.ID()).Return(model, nil).Once(),
			m.orders.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
				return o.ID().IsEqual(orderID) && o.Status() == order.Created && o.Quantity() == 10
			})).Return(nil).Once(),
			m.uow.On("Commit", ctx).Return(nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewCreateOrderCommand(orderID, model.ID(), orderDate, dueDate, 10)
		require.NoError(t, err)

		handler := commands.NewCreateOrderCommandHandler(factoryFor[commands.OrderUoW](m))
		require.NoError(t, handler.Handle(ctx, cmd))
		m.assertExpectations(t)
	})

	t.Run("should reject unknown model", func(t *testing.T) {
		ctx := t.Context()
		modelID := kernel.NewUUID()

		m := newMockedUoW()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.vehicleModels.On("Get", ctx, modelID).
				Return(nil, errs.NewObjectNotFoundError("vehicleModel", modelID)).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), modelID, orderDate, dueDate, 10)
		require.NoError(t, err)

		handler := commands.NewCreateOrderCommandHandler(factoryFor[commands.OrderUoW](m))
		require.ErrorIs(t, handler.Handle(ctx, cmd), errs.ErrObjectNotFound)
		m.orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		m.assertExpectations(t)
	})

	t.Run("should reject invalid quantity before opening a transaction", func(t *testing.T) {
		factory := new(MockUoWFactory[commands.OrderUoW])
		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), orderDate, dueDate, 0)
		require.NoError(t, err)

		handler := commands.NewCreateOrderCommandHandler(factory)
		assert.True(t, errs.IsValidation(handler.Handle(t.Context(), cmd)))
		factory.AssertNotCalled(t, "Create")
	})
}

func TestChangeOrderStatusCommandHandler_Handle(t *testing.T) {
	t.Run("should cancel order", func(t *testing.T) {
		ctx := t.Context()
		o := newTestOrder(t, 5)

		m := newMockedUoW()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
			m.orders.On("Update", ctx, o).Return(nil).Once(),
			m.uow.On("Commit", ctx).Return(nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewChangeOrderStatusCommand(o.ID(), commands.CancelOrder)
		require.NoError(t, err)

		handler := commands.NewChangeOrderStatusCommandHandler(factoryFor[commands.OrderUoW](m))
		require.NoError(t, handler.Handle(ctx, cmd))
		assert.Equal(t, order.Cancelled, o.Status())
		m.assertExpectations(t)
	})

	t.Run("should refuse to complete an order that is not fully allocated", func(t *testing.T) {
		ctx := t.Context()
		o := newTestOrder(t, 5)

		m := newMockedUoW()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewChangeOrderStatusCommand(o.ID(), commands.CompleteOrder)
		require.NoError(t, err)

		handler := commands.NewChangeOrderStatusCommandHandler(factoryFor[commands.OrderUoW](m))
		require.ErrorIs(t, handler.Handle(ctx, cmd), errs.ErrStateConflict)
		assert.Equal(t, order.Created, o.Status())
		m.assertExpectations(t)
	})

	t.Run("should reject unknown action", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), commands.OrderAction("ship"))
		assert.True(t, errs.IsValidation(err))
		assert.Contains(t, err.Error(), "ship")
	})
}

func TestAllocateOrderCommandHandler_Handle(t *testing.T) {
	newHandler := func(m *mockedUoW) commands.AllocateOrderCommandHandler {
		return commands.NewAllocateOrderCommandHandler(
			factoryFor[commands.AllocationUoW](m), services.NewAllocator(), logger.NewNop())
	}

	t.Run("should link order and production", func(t *testing.T) {
		ctx := t.Context()
		o := newTestOrder(t, 10)
		p := newTestProduction(t)
		allocationID := kernel.NewUUID()

		m := newMockedUoW()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.productions.On("Get", ctx, p.ID()).Return(p, nil).Once(),
			m.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
			m.allocations.On("Add", ctx, mock.MatchedBy(func(a *allocation.Allocation) bool {
				return a.ID().IsEqual(allocationID) && a.Quantity() == 6
			})).Return(nil).Once(),
			m.orders.On("Update", ctx, o).Return(nil).Once(),
			m.uow.On("Commit", ctx).Return(nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewAllocateOrderCommand(allocationID, o.ID(), p.ID(), 6)
		require.NoError(t, err)

		handler := newHandler(m)
		require.NoError(t, handler.Handle(ctx, cmd))
		assert.Equal(t, order.PartiallyAllocated, o.Status())
		assert.Equal(t, 6, o.AllocatedQuantity())
		assert.Len(t, p.Allocations(), 1)
		m.assertExpectations(t)
	})

	t.Run("should reject over allocation", func(t *testing.T) {
		ctx := t.Context()
		o := newTestOrder(t, 10)
		p1 := newTestProduction(t)
		link(t, o, p1, 6)
		p2 := newTestProduction(t)

		m := newMockedUoW()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.productions.On("Get", ctx, p2.ID()).Return(p2, nil).Once(),
			m.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewAllocateOrderCommand(kernel.NewUUID(), o.ID(), p2.ID(), 5)
		require.NoError(t, err)

		handler := newHandler(m)
		require.ErrorIs(t, handler.Handle(ctx, cmd), errs.ErrStateConflict)
		assert.Equal(t, 6, o.AllocatedQuantity())
		assert.Empty(t, p2.Allocations())
		m.allocations.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		m.assertExpectations(t)
	})
}

func TestDeallocateOrderCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	o := newTestOrder(t, 4)
	p := newTestProduction(t)
	a, err := services.NewAllocator().Allocate(o, p, kernel.NewUUID(), 4)
	require.NoError(t, err)

	m := newMockedUoW()
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.allocations.On("Get", ctx, a.ID()).Return(a, nil).Once(),
		m.productions.On("Get", ctx, p.ID()).Return(p, nil).Once(),
		m.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		m.allocations.On("Delete", ctx, a.ID()).Return(nil).Once(),
		m.orders.On("Update", ctx, o).Return(nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	cmd, err := commands.NewDeallocateOrderCommand(a.ID())
	require.NoError(t, err)

	handler := commands.NewDeallocateOrderCommandHandler(
		factoryFor[commands.AllocationUoW](m), services.NewAllocator(), logger.NewNop())
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, order.Created, o.Status())
	assert.Empty(t, p.Allocations())
	m.assertExpectations(t)
}
