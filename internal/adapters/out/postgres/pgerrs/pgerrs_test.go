package pgerrs_test

import (
	"errors"
	"fmt"
	"testing"

	"manufacturing/internal/adapters/out/postgres/pgerrs"
	"manufacturing/internal/pkg/errs"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, pgerrs.IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, pgerrs.IsUniqueViolation(fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey)))
	assert.True(t, pgerrs.IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.False(t, pgerrs.IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, pgerrs.IsUniqueViolation(errors.New("boom")))
}

func TestDuplicate(t *testing.T) {
	err := pgerrs.Duplicate(&pq.Error{Code: "23505"}, "serialNumber", "VIN-1")

	require.ErrorIs(t, err, errs.ErrDuplicate)
	assert.Contains(t, err.Error(), "serialNumber is VIN-1")

	other := errors.New("connection reset")
	assert.Equal(t, other, pgerrs.Duplicate(other, "serialNumber", "VIN-1"))
	assert.NoError(t, pgerrs.Duplicate(nil, "serialNumber", "VIN-1"))
}

func TestNotFound(t *testing.T) {
	err := pgerrs.NotFound(gorm.ErrRecordNotFound, "order", "42")
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	other := errors.New("timeout")
	assert.Equal(t, other, pgerrs.NotFound(other, "order", "42"))
}
