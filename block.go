package bitvec

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Block is the storage unit bits are packed into.
//
// Any unsigned integer type qualifies. Bit 0 of a block is its least
// significant bit.
type Block interface {
	constraints.Unsigned
}

// Width returns the number of bits in a block of type B.
func Width[B Block]() uint {
	return uint(bits.Len64(uint64(^B(0))))
}

// LastBlockBits returns how many bits of the final block are in use when a
// vector spans total bits. An aligned total reports the full width.
func LastBlockBits[B Block](total uint64) uint {
	if r := ModWidth[B](total); r != 0 {
		return r
	}
	return Width[B]()
}

// MulWidth returns the index of the first bit of the given block.
func MulWidth[B Block](blockIndex int) uint64 {
	return uint64(blockIndex) * uint64(Width[B]())
}

// lowMask returns a block with the n lowest bits set.
func lowMask[B Block](n uint) B {
	if n >= Width[B]() {
		return ^B(0)
	}
	return B(1)<<n - 1
}

// rangeMask returns a block with bits [lo, hi) set.
func rangeMask[B Block](lo, hi uint) B {
	if lo >= hi {
		return 0
	}
	return lowMask[B](hi) &^ lowMask[B](lo)
}

func blockBit[B Block](b B, i uint) bool {
	return (b>>i)&1 != 0
}

func withBit[B Block](b B, i uint, value bool) B {
	if value {
		return b | B(1)<<i
	}
	return b &^ (B(1) << i)
}

// blockBits extracts count bits of b starting at off, as a little-endian field.
func blockBits[B Block](b B, off, count uint) B {
	return (b >> off) & lowMask[B](count)
}

// withBits returns b with bits [off, off+count) replaced by the low count bits
// of value. All other bits of b are kept.
func withBits[B Block](b B, off, count uint, value B) B {
	mask := lowMask[B](count) << off
	return (b &^ mask) | ((value << off) & mask)
}
