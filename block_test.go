package bitvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLowMask(t *testing.T) {
	assert.Equal(t, uint8(0), lowMask[uint8](0))
	assert.Equal(t, uint8(0b111), lowMask[uint8](3))
	assert.Equal(t, uint8(0xff), lowMask[uint8](8))
	assert.Equal(t, ^uint64(0), lowMask[uint64](64))
}

func TestRangeMask(t *testing.T) {
	assert.Equal(t, uint8(0b00111000), rangeMask[uint8](3, 6))
	assert.Equal(t, uint8(0b11111000), rangeMask[uint8](3, 8))
	assert.Equal(t, uint8(0), rangeMask[uint8](5, 5))
	assert.Equal(t, uint8(0), rangeMask[uint8](6, 2))
}

func TestBlockBits(t *testing.T) {
	b := uint8(0b10110100)

	assert.True(t, blockBit(b, 2))
	assert.False(t, blockBit(b, 3))
	assert.Equal(t, uint8(0b1101), blockBits(b, 2, 4))
	assert.Equal(t, b, blockBits(b, 0, 8))
	assert.Equal(t, uint8(0), blockBits(b, 3, 0))
}

func TestWithBits(t *testing.T) {
	b := uint8(0b10110100)

	assert.Equal(t, uint8(0b10111100), withBit(b, 3, true))
	assert.Equal(t, uint8(0b10110000), withBit(b, 2, false))

	// Only bits [2, 5) change; excess bits of value are dropped.
	assert.Equal(t, uint8(0b10101100), withBits(b, 2, 3, 0b11111011))
	assert.Equal(t, uint8(0x5a), withBits(b, 0, 8, 0x5a))
	assert.Equal(t, b, withBits(b, 4, 0, 0xff))
}
