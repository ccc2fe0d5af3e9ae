package bitvec

import (
	"github.com/hupe1980/bitvec/internal/conv"
)

// Bools is a growable bit vector storing one bool per bit.
//
// It is the obviously-correct reference the block-packed vectors are tested
// against. Whole-block operations use the O(W) bit-by-bit defaults with
// 8-bit blocks.
type Bools []bool

var _ BitVecPush[uint8] = (*Bools)(nil)

// BitLen returns the number of bits.
func (b *Bools) BitLen() uint64 { return uint64(len(*b)) }

// BitOffset is always 0.
func (b *Bools) BitOffset() uint { return 0 }

// BlockLen returns the number of 8-bit blocks spanned by b.
func (b *Bools) BlockLen() int { return BlockLen[uint8](b) }

func (b *Bools) GetBit(position uint64) bool {
	checkBit("GetBit", b, position)
	return (*b)[conv.MustUint64ToInt(position)]
}

func (b *Bools) GetBlock(position int) uint8 {
	return GetBlockFromBits[uint8](b, position)
}

func (b *Bools) GetBits(start uint64, count uint) uint8 {
	return GetBits[uint8](b, start, count)
}

func (b *Bools) SetBit(position uint64, value bool) {
	checkBit("SetBit", b, position)
	(*b)[conv.MustUint64ToInt(position)] = value
}

func (b *Bools) SetBlock(position int, value uint8) {
	SetBlockViaBits[uint8](b, position, value)
}

func (b *Bools) SetBits(start uint64, count uint, value uint8) {
	SetBits[uint8](b, start, count, value)
}

func (b *Bools) PushBit(value bool) {
	*b = append(*b, value)
}

func (b *Bools) PopBit() (bool, bool) {
	n := len(*b)
	if n == 0 {
		return false, false
	}
	v := (*b)[n-1]
	*b = (*b)[:n-1]
	return v, true
}

func (b *Bools) AlignBlock(value bool) uint {
	return AlignBlock[uint8](b, value)
}

func (b *Bools) PushBlock(value uint8) {
	PushBlockViaBits[uint8](b, value)
}
