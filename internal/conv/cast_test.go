//go:build amd64 || arm64

package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUint64ToInt(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := Uint64ToInt(0)
		assert.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("valid max int", func(t *testing.T) {
		got, err := Uint64ToInt(uint64(math.MaxInt))
		assert.NoError(t, err)
		assert.Equal(t, math.MaxInt, got)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := Uint64ToInt(uint64(math.MaxInt) + 1)
		assert.ErrorIs(t, err, ErrOverflow)
	})
}

func TestUint64ToUint32(t *testing.T) {
	t.Run("valid max uint32", func(t *testing.T) {
		got, err := Uint64ToUint32(math.MaxUint32)
		assert.NoError(t, err)
		assert.Equal(t, uint32(math.MaxUint32), got)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := Uint64ToUint32(math.MaxUint32 + 1)
		assert.ErrorIs(t, err, ErrOverflow)
	})
}

func TestMustUint64ToInt(t *testing.T) {
	require.Equal(t, 42, MustUint64ToInt(42))
	require.Panics(t, func() { MustUint64ToInt(math.MaxUint64) })
}
