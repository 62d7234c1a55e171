package allocation_test

import (
	"testing"

	"manufacturing/internal/core/domain/model/allocation"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAllocation(t *testing.T) {
	id := kernel.NewUUID()
	orderID := kernel.NewUUID()
	productionID := kernel.NewUUID()

	t.Run("should create allocation with valid parameters", func(t *testing.T) {
		a, err := allocation.NewAllocation(id, orderID, productionID, 6)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.True(t, a.ID().IsEqual(id))
		assert.True(t, a.OrderID().IsEqual(orderID))
		assert.True(t, a.ProductionID().IsEqual(productionID))
		assert.Equal(t, 6, a.Quantity())
	})

	t.Run("should reject non positive quantity", func(t *testing.T) {
		for _, qty := range []int{0, -3} {
			a, err := allocation.NewAllocation(id, orderID, productionID, qty)

			require.Error(t, err)
			assert.Nil(t, a)
			assert.True(t, errs.IsValidation(err))
			assert.Contains(t, err.Error(), "quantity")
		}
	})

	t.Run("should collect every invalid field", func(t *testing.T) {
		_, err := allocation.NewAllocation(kernel.UUID{}, kernel.UUID{}, kernel.UUID{}, 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "orderID")
		assert.Contains(t, err.Error(), "productionID")
		assert.Contains(t, err.Error(), "quantity")
	})
}

func TestAllocation_Validate(t *testing.T) {
	t.Run("should fail for zero value", func(t *testing.T) {
		var a allocation.Allocation
		assert.Equal(t, allocation.ErrAllocationIsNotConstructed, a.Validate())
	})

	t.Run("should fail for nil", func(t *testing.T) {
		var a *allocation.Allocation
		assert.Equal(t, allocation.ErrAllocationIsNotConstructed, a.Validate())
	})
}

func TestSum(t *testing.T) {
	orderID := kernel.NewUUID()
	a1, _ := allocation.NewAllocation(kernel.NewUUID(), orderID, kernel.NewUUID(), 6)
	a2, _ := allocation.NewAllocation(kernel.NewUUID(), orderID, kernel.NewUUID(), 4)

	assert.Equal(t, 0, allocation.Sum(nil))
	assert.Equal(t, 10, allocation.Sum([]*allocation.Allocation{a1, a2}))
}
