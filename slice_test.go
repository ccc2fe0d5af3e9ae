package bitvec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlice(t *testing.T) {
	t.Run("trims to the blocks in use", func(t *testing.T) {
		s := NewSlice(make([]uint8, 4), 6, 3)
		assert.Equal(t, 2, s.BlockLen())
		assert.Len(t, s.Blocks(), 2)
	})

	t.Run("empty", func(t *testing.T) {
		s := NewSlice[uint32](nil, 0, 0)
		assert.Equal(t, uint64(0), s.BitLen())
		assert.Equal(t, 0, s.BlockLen())
	})

	t.Run("offset too large", func(t *testing.T) {
		requireOutOfBounds(t, func() { NewSlice(make([]uint8, 2), 8, 1) })
	})

	t.Run("blocks too short", func(t *testing.T) {
		requireOutOfBounds(t, func() { NewSlice(make([]uint8, 2), 1, 16) })
	})
}

func TestSlice_SetBlockPreservesOutsideBits(t *testing.T) {
	blocks := []uint8{0b00000111, 0b11100000}
	s := NewSlice(blocks, 3, 10)

	s.SetBlock(0, 0xff)
	s.SetBlock(1, 0xff)
	assert.Equal(t, []uint8{0xff, 0xff}, blocks)

	s.SetBlock(0, 0)
	s.SetBlock(1, 0)
	assert.Equal(t, []uint8{0b00000111, 0b11100000}, blocks)

	s.SetBits(0, 8, 0xff)
	s.SetBits(8, 2, 0b11)
	assert.Equal(t, []uint8{0xff, 0xff}, blocks)
	assert.Equal(t, uint8(0b11111000), s.GetBlock(0))
	assert.Equal(t, uint8(0b00011111), s.GetBlock(1))
}

func TestSlice_ReSlice(t *testing.T) {
	blocks := []uint16{0x0000, 0x0000, 0x0000}
	whole := NewSlice(blocks, 0, 48)

	sub := whole.Slice(13, 40)
	assert.Equal(t, uint64(27), sub.BitLen())
	assert.Equal(t, uint(13), sub.BitOffset())
	assert.Equal(t, 3, sub.BlockLen())

	sub.SetBits(0, 16, 0xffff)
	assert.Equal(t, []uint16{0xe000, 0x1fff, 0x0000}, blocks)

	inner := sub.Slice(5, 10)
	assert.Equal(t, uint(2), inner.BitOffset())
	assert.Equal(t, 1, inner.BlockLen())
	assert.Equal(t, uint16(0b11111), inner.GetBits(0, 5))

	inner.SetBits(0, 5, 0)
	assert.Equal(t, []uint16{0xe000, 0x1f83, 0x0000}, blocks)

	t.Run("empty at end", func(t *testing.T) {
		end := whole.Slice(48, 48)
		assert.Equal(t, uint64(0), end.BitLen())
		assert.Equal(t, 0, end.BlockLen())
	})

	t.Run("out of bounds", func(t *testing.T) {
		requireOutOfBounds(t, func() { sub.Slice(10, 28) })
		requireOutOfBounds(t, func() { sub.Slice(5, 4) })
	})

	t.Run("inverted range", func(t *testing.T) {
		defer func() {
			var oob *OutOfBoundsError
			require.True(t, errors.As(recover().(error), &oob))
			assert.Equal(t, "bitvec.Slice: index 5 out of bounds for length 4", oob.Error())
		}()
		sub.Slice(5, 4)
	})
}

func TestSlice_NeighboursStayIntact(t *testing.T) {
	blocks := make([]uint32, 4)
	whole := NewSlice(blocks, 0, 128)

	left := whole.Slice(0, 45)
	mid := whole.Slice(45, 83)
	right := whole.Slice(83, 128)

	Copy[uint32](left, NewVecFilled[uint32](45, true))
	Copy[uint32](right, NewVecFilled[uint32](45, true))
	require.Equal(t, uint64(0), Count[uint32](mid))

	Copy[uint32](mid, NewVecFilled[uint32](38, true))
	assert.Equal(t, uint64(128), Count[uint32](whole))

	Copy[uint32](mid, NewVecFilled[uint32](38, false))
	assert.Equal(t, uint64(45), Count[uint32](left))
	assert.Equal(t, uint64(0), Count[uint32](mid))
	assert.Equal(t, uint64(45), Count[uint32](right))
}

func TestBlocks_Slice(t *testing.T) {
	b := Blocks[uint8]{0b10110000, 0b00000001}

	s := b.Slice(4, 9)
	assert.Equal(t, uint64(5), s.BitLen())
	assert.Equal(t, uint8(0b11011), s.GetBits(0, 5))

	s.SetBit(3, false)
	assert.Equal(t, Blocks[uint8]{0b00110000, 0b00000001}, b)
}
