package kernel_test

import (
	"testing"

	"printflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	id := kernel.NewUUID()

	require.NoError(t, id.Validate())
	assert.NotEqual(t, uuid.Nil, id.Bytes())
}

func TestUUIDFromString(t *testing.T) {
	t.Run("valid string", func(t *testing.T) {
		id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")

		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
	})

	t.Run("invalid string", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")
		require.Error(t, err)
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		original := kernel.NewUUID()
		raw := original.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("nil uuid bytes are rejected", func(t *testing.T) {
		raw := uuid.Nil
		_, err := kernel.UUIDFromBytes(raw[:])
		require.Error(t, err)
	})

	t.Run("wrong length is rejected", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x01, 0x02})
		require.Error(t, err)
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var id kernel.UUID
		require.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("constructed value is valid", func(t *testing.T) {
		require.NoError(t, kernel.NewUUID().Validate())
	})
}

func TestUUID_IsEqual(t *testing.T) {
	a := kernel.NewUUID()
	b := kernel.NewUUID()
	c := a

	assert.False(t, a.IsEqual(b))
	assert.True(t, a.IsEqual(c))
}
