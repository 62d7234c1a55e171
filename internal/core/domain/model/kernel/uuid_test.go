package kernel_test

import (
	"testing"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	orderID := kernel.NewUUID()
	productionID := kernel.NewUUID()

	require.NoError(t, orderID.Validate())
	assert.False(t, orderID.IsEqual(productionID))
	assert.Equal(t, uuid.Version(4), orderID.Bytes().Version())
}

func TestUUIDFromString(t *testing.T) {
	t.Run("should parse path parameter", func(t *testing.T) {
		id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")

		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
	})

	t.Run("should reject malformed path parameter", func(t *testing.T) {
		_, err := kernel.UUIDFromString("order-42")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("nil uuid parses but does not validate", func(t *testing.T) {
		id, err := kernel.UUIDFromString(uuid.Nil.String())

		require.NoError(t, err)
		require.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("should round trip through the storage column", func(t *testing.T) {
		original := kernel.NewUUID()
		column := original.Bytes()

		restored, err := kernel.UUIDFromBytes(column[:])

		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("should reject nil id from storage", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(uuid.Nil[:])

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("should reject truncated column", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{1, 2, 3})

		require.Error(t, err)
	})
}

func TestUUID_ZeroValue(t *testing.T) {
	var id kernel.UUID

	require.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
	assert.True(t, id.IsEqual(kernel.UUID{}))
	assert.False(t, id.IsEqual(kernel.NewUUID()))
}
