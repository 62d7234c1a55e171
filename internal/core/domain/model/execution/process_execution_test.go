package execution_test

import (
	"testing"
	"time"

	"manufacturing/internal/core/domain/model/execution"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2025, 4, 7, 7, 30, 0, 0, time.UTC)

func validPlan() execution.Plan {
	return execution.Plan{
		ProductionID:   kernel.NewUUID(),
		ProcessTypeID:  kernel.NewUUID(),
		EquipmentID:    kernel.NewUUID(),
		StartDate:      start,
		ExecutionOrder: 1,
	}
}

func newExecution(t *testing.T) *execution.ProcessExecution {
	t.Helper()
	pe, err := execution.NewProcessExecution(kernel.NewUUID(), validPlan())
	require.NoError(t, err)
	return pe
}

func TestNewProcessExecution(t *testing.T) {
	t.Run("should create ready step", func(t *testing.T) {
		plan := validPlan()
		id := kernel.NewUUID()

		pe, err := execution.NewProcessExecution(id, plan)

		require.NoError(t, err)
		require.NoError(t, pe.Validate())
		assert.True(t, pe.ID().IsEqual(id))
		assert.True(t, pe.ProductionID().IsEqual(plan.ProductionID))
		assert.True(t, pe.ProcessTypeID().IsEqual(plan.ProcessTypeID))
		assert.True(t, pe.EquipmentID().IsEqual(plan.EquipmentID))
		assert.Equal(t, start, pe.StartDate())
		assert.Nil(t, pe.EndDate())
		assert.Equal(t, 1, pe.ExecutionOrder())
		assert.Equal(t, execution.Ready, pe.Status())
	})

	t.Run("should reject non positive execution order", func(t *testing.T) {
		plan := validPlan()
		plan.ExecutionOrder = 0

		_, err := execution.NewProcessExecution(kernel.NewUUID(), plan)

		assert.True(t, errs.IsValidation(err))
		assert.Contains(t, err.Error(), "executionOrder")
	})

	t.Run("should reject missing references", func(t *testing.T) {
		_, err := execution.NewProcessExecution(kernel.NewUUID(), execution.Plan{ExecutionOrder: 1})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "productionID")
		assert.Contains(t, err.Error(), "processTypeID")
		assert.Contains(t, err.Error(), "equipmentID")
		assert.Contains(t, err.Error(), "startDate")
	})

	t.Run("should reject end before start", func(t *testing.T) {
		plan := validPlan()
		end := start.Add(-time.Hour)
		plan.EndDate = &end

		_, err := execution.NewProcessExecution(kernel.NewUUID(), plan)

		assert.True(t, errs.IsValidation(err))
	})
}

func TestProcessExecution_Operate(t *testing.T) {
	t.Run("should operate ready step", func(t *testing.T) {
		pe := newExecution(t)

		require.NoError(t, pe.Operate())
		assert.Equal(t, execution.InProgress, pe.Status())
	})

	t.Run("should resume stopped step", func(t *testing.T) {
		pe := newExecution(t)
		require.NoError(t, pe.Operate())
		require.NoError(t, pe.Stop())
		require.Equal(t, execution.Stopped, pe.Status())

		require.NoError(t, pe.Operate())
		assert.Equal(t, execution.InProgress, pe.Status())
	})

	t.Run("should reject operating a completed step", func(t *testing.T) {
		pe := newExecution(t)
		require.NoError(t, pe.Operate())
		require.NoError(t, pe.Complete(start.Add(time.Hour)))

		err := pe.Operate()

		require.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Equal(t, execution.Completed, pe.Status())
	})

	t.Run("should reject operating an in progress step", func(t *testing.T) {
		pe := newExecution(t)
		require.NoError(t, pe.Operate())

		require.ErrorIs(t, pe.Operate(), errs.ErrStateConflict)
	})
}

func TestProcessExecution_CompleteAndStop(t *testing.T) {
	t.Run("should complete in progress step and record end", func(t *testing.T) {
		pe := newExecution(t)
		require.NoError(t, pe.Operate())
		end := start.Add(95 * time.Minute)

		require.NoError(t, pe.Complete(end))

		assert.Equal(t, execution.Completed, pe.Status())
		require.NotNil(t, pe.EndDate())
		assert.Equal(t, end, *pe.EndDate())
		assert.Equal(t, int64(95), pe.DurationMinutes())
	})

	t.Run("should reject completion from ready or stopped", func(t *testing.T) {
		pe := newExecution(t)
		require.ErrorIs(t, pe.Complete(start.Add(time.Hour)), errs.ErrStateConflict)

		require.NoError(t, pe.Operate())
		require.NoError(t, pe.Stop())
		require.ErrorIs(t, pe.Complete(start.Add(time.Hour)), errs.ErrStateConflict)
		assert.Nil(t, pe.EndDate())
	})

	t.Run("should report state conflict before a bad end date", func(t *testing.T) {
		pe := newExecution(t)

		err := pe.Complete(start.Add(-time.Minute))

		require.ErrorIs(t, err, errs.ErrStateConflict)
		assert.False(t, errs.IsValidation(err))
	})

	t.Run("should reject stop outside of in progress", func(t *testing.T) {
		pe := newExecution(t)
		require.ErrorIs(t, pe.Stop(), errs.ErrStateConflict)
	})
}

func TestProcessExecution_Update(t *testing.T) {
	t.Run("should replace plan while ready", func(t *testing.T) {
		pe := newExecution(t)
		plan := validPlan()
		plan.ExecutionOrder = 3
		end := start.Add(2 * time.Hour)
		plan.EndDate = &end

		require.NoError(t, pe.Update(plan))

		assert.Equal(t, 3, pe.ExecutionOrder())
		assert.True(t, pe.EquipmentID().IsEqual(plan.EquipmentID))
		assert.Equal(t, end, *pe.EndDate())
	})

	t.Run("should reject update once operated", func(t *testing.T) {
		pe := newExecution(t)
		require.NoError(t, pe.Operate())
		before := pe.ExecutionOrder()

		plan := validPlan()
		plan.ExecutionOrder = 7

		require.ErrorIs(t, pe.Update(plan), errs.ErrStateConflict)
		assert.Equal(t, before, pe.ExecutionOrder())
	})

	t.Run("should validate new plan", func(t *testing.T) {
		pe := newExecution(t)
		plan := validPlan()
		plan.ExecutionOrder = -1

		assert.True(t, errs.IsValidation(pe.Update(plan)))
	})
}

func TestProcessExecution_DurationMinutes(t *testing.T) {
	pe := newExecution(t)
	assert.Equal(t, int64(0), pe.DurationMinutes())
}

func TestRestoreProcessExecution(t *testing.T) {
	pe, err := execution.RestoreProcessExecution(kernel.NewUUID(), validPlan(), execution.Stopped)
	require.NoError(t, err)
	assert.Equal(t, execution.Stopped, pe.Status())

	_, err = execution.RestoreProcessExecution(kernel.NewUUID(), validPlan(), execution.Unknown)
	assert.True(t, errs.IsValidation(err))
}

func TestStatus_ParseStatus(t *testing.T) {
	for _, s := range []execution.Status{execution.Ready, execution.InProgress, execution.Completed, execution.Stopped} {
		parsed, err := execution.ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := execution.ParseStatus("Paused")
	assert.Error(t, err)
}
