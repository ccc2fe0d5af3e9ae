package bitvec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutOfBoundsError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		msg  string
	}{
		{
			name: "index",
			err:  &OutOfBoundsError{Op: "GetBit", Index: 9, Len: 8},
			msg:  "bitvec.GetBit: index 9 out of bounds for length 8",
		},
		{
			name: "range",
			err:  &OutOfBoundsError{Op: "GetBits", Index: 4, Count: 6, Len: 8},
			msg:  "bitvec.GetBits: range [4, 10) out of bounds for length 8",
		},
		{
			name: "field width",
			err:  &FieldWidthError{Op: "SetBits", Count: 9, Width: 8},
			msg:  "bitvec.SetBits: field of 9 bits exceeds block width 8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.msg)
			assert.ErrorIs(t, tt.err, ErrOutOfBounds)
		})
	}
}

func TestCheck(t *testing.T) {
	v := NewVecFilled[uint8](12, false)

	t.Run("bit", func(t *testing.T) {
		assert.NoError(t, CheckBit(v, 11))

		err := CheckBit(v, 12)
		require.ErrorIs(t, err, ErrOutOfBounds)

		var oob *OutOfBoundsError
		require.True(t, errors.As(err, &oob))
		assert.Equal(t, uint64(12), oob.Index)
		assert.Equal(t, uint64(12), oob.Len)
	})

	t.Run("block", func(t *testing.T) {
		assert.NoError(t, CheckBlock[uint8](v, 1))
		assert.ErrorIs(t, CheckBlock[uint8](v, 2), ErrOutOfBounds)
		assert.ErrorIs(t, CheckBlock[uint8](v, -1), ErrOutOfBounds)
		assert.NoError(t, CheckBlock[uint16](v, 0))
		assert.ErrorIs(t, CheckBlock[uint16](v, 1), ErrOutOfBounds)
	})

	t.Run("bits", func(t *testing.T) {
		assert.NoError(t, CheckBits[uint8](v, 4, 8))
		assert.NoError(t, CheckBits[uint8](v, 12, 0))
		assert.ErrorIs(t, CheckBits[uint8](v, 5, 8), ErrOutOfBounds)
		assert.ErrorIs(t, CheckBits[uint8](v, ^uint64(0), 2), ErrOutOfBounds)

		err := CheckBits[uint8](v, 0, 9)
		var fw *FieldWidthError
		require.True(t, errors.As(err, &fw))
		assert.Equal(t, uint(9), fw.Count)
		assert.Equal(t, uint(8), fw.Width)
	})
}

func TestPanicsCarryOp(t *testing.T) {
	v := NewVecFilled[uint32](40, false)

	defer func() {
		var oob *OutOfBoundsError
		require.True(t, errors.As(recover().(error), &oob))
		assert.Equal(t, "SetBit", oob.Op)
		assert.Equal(t, uint64(40), oob.Index)
	}()
	v.SetBit(40, true)
}
