package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type bools []bool

func (b bools) BitLen() uint64       { return uint64(len(b)) }
func (b bools) GetBit(i uint64) bool { return b[i] }

func TestRandomField(t *testing.T) {
	rng := NewRNG(4711)

	for count := uint(0); count <= 8; count++ {
		v := RandomField[uint8](rng, count)
		assert.Less(t, uint(v), uint(1)<<count)
	}

	assert.LessOrEqual(t, RandomField[uint64](rng, 64), ^uint64(0))
}

func TestRandomBlocks(t *testing.T) {
	rng := NewRNG(4711)

	blocks := RandomBlocks[uint16](rng, 8)
	assert.Len(t, blocks, 8)
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := rng.Bools(64)

	rng.Reset()
	v2 := rng.Bools(64)

	assert.Equal(t, v1, v2)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestFuzzer(t *testing.T) {
	f := NewFuzzer(0)

	var blocks []uint32
	f.Fuzz(&blocks)

	assert.NotEmpty(t, blocks)
	assert.LessOrEqual(t, len(blocks), 32)
}

func TestBits(t *testing.T) {
	v := bools{true, false, false, true}

	assert.Equal(t, "1001", Bits(v))
	RequireSameBits(t, v, bools{true, false, false, true})
}
