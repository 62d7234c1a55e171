package production_test

import (
	"testing"
	"time"

	"manufacturing/internal/core/domain/model/allocation"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/production"
	"manufacturing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var startDate = time.Date(2025, 2, 3, 6, 0, 0, 0, time.UTC)

func newProduction(t *testing.T) *production.Production {
	t.Helper()
	p, err := production.NewProduction(kernel.NewUUID(), startDate)
	require.NoError(t, err)
	return p
}

func inProgress(t *testing.T) *production.Production {
	t.Helper()
	p := newProduction(t)
	require.NoError(t, p.Start())
	return p
}

func TestNewProduction(t *testing.T) {
	t.Run("should create planned production", func(t *testing.T) {
		id := kernel.NewUUID()
		p, err := production.NewProduction(id, startDate)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, startDate, p.StartDate())
		assert.Nil(t, p.EndDate())
		assert.Equal(t, production.Planned, p.Status())
		assert.Empty(t, p.Allocations())
	})

	t.Run("should require id and start date", func(t *testing.T) {
		p, err := production.NewProduction(kernel.UUID{}, time.Time{})

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "startDate")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var p production.Production
		assert.Equal(t, production.ErrProductionIsNotConstructed, p.Validate())
	})
}

func TestProduction_Lifecycle(t *testing.T) {
	t.Run("should run planned to completed", func(t *testing.T) {
		p := newProduction(t)
		endDate := startDate.Add(8 * time.Hour)

		require.NoError(t, p.Start())
		assert.Equal(t, production.InProgress, p.Status())

		require.NoError(t, p.Complete(endDate))
		assert.Equal(t, production.Completed, p.Status())
		assert.True(t, p.IsCompleted())
		require.NotNil(t, p.EndDate())
		assert.Equal(t, endDate, *p.EndDate())
	})

	t.Run("should stop and restart", func(t *testing.T) {
		p := inProgress(t)

		require.NoError(t, p.Stop())
		assert.Equal(t, production.Stopped, p.Status())

		require.NoError(t, p.Restart())
		assert.Equal(t, production.InProgress, p.Status())
	})

	t.Run("should cancel planned production", func(t *testing.T) {
		p := newProduction(t)

		require.NoError(t, p.Cancel())
		assert.Equal(t, production.Cancelled, p.Status())
	})

	t.Run("should reject invalid transitions", func(t *testing.T) {
		planned := newProduction(t)
		require.ErrorIs(t, planned.Complete(startDate.Add(time.Hour)), errs.ErrStateConflict)
		require.ErrorIs(t, planned.Stop(), errs.ErrStateConflict)
		require.ErrorIs(t, planned.Restart(), errs.ErrStateConflict)
		assert.Equal(t, production.Planned, planned.Status())

		running := inProgress(t)
		require.ErrorIs(t, running.Start(), errs.ErrStateConflict)
		require.ErrorIs(t, running.Cancel(), errs.ErrStateConflict)
		assert.Equal(t, production.InProgress, running.Status())
	})

	t.Run("should reject end date before start", func(t *testing.T) {
		p := inProgress(t)

		err := p.Complete(startDate.Add(-time.Minute))

		assert.True(t, errs.IsValidation(err))
		assert.Equal(t, production.InProgress, p.Status())
		assert.Nil(t, p.EndDate())
	})

	t.Run("should report state conflict before a bad end date", func(t *testing.T) {
		planned := newProduction(t)

		err := planned.Complete(startDate.Add(-time.Minute))

		require.ErrorIs(t, err, errs.ErrStateConflict)
		assert.False(t, errs.IsValidation(err))
	})
}

func TestProduction_RescheduleStartDate(t *testing.T) {
	t.Run("should move start of planned production", func(t *testing.T) {
		p := newProduction(t)
		next := startDate.AddDate(0, 0, 2)

		require.NoError(t, p.RescheduleStartDate(next))
		assert.Equal(t, next, p.StartDate())
	})

	t.Run("should reject reschedule once started", func(t *testing.T) {
		p := inProgress(t)

		err := p.RescheduleStartDate(startDate.AddDate(0, 0, 2))

		require.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Equal(t, startDate, p.StartDate())
	})
}

func TestProduction_Allocations(t *testing.T) {
	t.Run("should attach allocations of different orders", func(t *testing.T) {
		p := newProduction(t)
		a1, _ := allocation.NewAllocation(kernel.NewUUID(), kernel.NewUUID(), p.ID(), 2)
		a2, _ := allocation.NewAllocation(kernel.NewUUID(), kernel.NewUUID(), p.ID(), 3)

		require.NoError(t, p.AddAllocation(a1))
		require.NoError(t, p.AddAllocation(a2))

		assert.Len(t, p.Allocations(), 2)
		assert.ElementsMatch(t, []kernel.UUID{a1.OrderID(), a2.OrderID()}, p.OrderIDs())
	})

	t.Run("should reject second allocation of the same order", func(t *testing.T) {
		p := newProduction(t)
		orderID := kernel.NewUUID()
		a1, _ := allocation.NewAllocation(kernel.NewUUID(), orderID, p.ID(), 2)
		a2, _ := allocation.NewAllocation(kernel.NewUUID(), orderID, p.ID(), 1)
		require.NoError(t, p.AddAllocation(a1))

		err := p.AddAllocation(a2)

		require.ErrorIs(t, err, errs.ErrDuplicate)
		assert.Len(t, p.Allocations(), 1)
	})

	t.Run("should reject the same allocation twice", func(t *testing.T) {
		p := newProduction(t)
		a, _ := allocation.NewAllocation(kernel.NewUUID(), kernel.NewUUID(), p.ID(), 2)
		require.NoError(t, p.AddAllocation(a))

		require.ErrorIs(t, p.AddAllocation(a), errs.ErrStateConflict)
	})

	t.Run("should reject allocation of another production", func(t *testing.T) {
		p := newProduction(t)
		a, _ := allocation.NewAllocation(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 2)

		assert.True(t, errs.IsValidation(p.AddAllocation(a)))
	})

	t.Run("should reject allocation on cancelled production", func(t *testing.T) {
		p := newProduction(t)
		require.NoError(t, p.Cancel())
		a, _ := allocation.NewAllocation(kernel.NewUUID(), kernel.NewUUID(), p.ID(), 2)

		require.ErrorIs(t, p.AddAllocation(a), errs.ErrStateConflict)
	})

	t.Run("should remove allocation", func(t *testing.T) {
		p := newProduction(t)
		a, _ := allocation.NewAllocation(kernel.NewUUID(), kernel.NewUUID(), p.ID(), 2)
		require.NoError(t, p.AddAllocation(a))

		require.NoError(t, p.RemoveAllocation(a.ID()))
		assert.Empty(t, p.Allocations())
		require.ErrorIs(t, p.RemoveAllocation(a.ID()), errs.ErrObjectNotFound)
	})
}

func TestRestoreProduction(t *testing.T) {
	id := kernel.NewUUID()
	endDate := startDate.Add(time.Hour)
	a, _ := allocation.NewAllocation(kernel.NewUUID(), kernel.NewUUID(), id, 4)

	p, err := production.RestoreProduction(id, startDate, &endDate, production.Completed, []*allocation.Allocation{a})

	require.NoError(t, err)
	assert.Equal(t, production.Completed, p.Status())
	assert.Equal(t, endDate, *p.EndDate())
	assert.Len(t, p.Allocations(), 1)

	_, err = production.RestoreProduction(id, startDate, nil, production.Status(9), nil)
	assert.True(t, errs.IsValidation(err))
}

func TestStatus(t *testing.T) {
	t.Run("string names round trip", func(t *testing.T) {
		for _, s := range []production.Status{
			production.Planned, production.InProgress, production.Completed, production.Stopped, production.Cancelled,
		} {
			parsed, err := production.ParseStatus(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("unknown is invalid", func(t *testing.T) {
		assert.Error(t, production.Unknown.Validate())
		_, err := production.ParseStatus("Unknown")
		assert.Error(t, err)
	})
}
