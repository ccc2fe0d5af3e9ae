package interop

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/bitvec"
)

// BitSet presents a *bitset.BitSet as a growable bit vector of 64-bit
// blocks. Blocks are the bitset's own words, so block reads and writes are
// O(1) and the wrapped set sees every change.
type BitSet struct {
	b *bitset.BitSet
}

var _ bitvec.BitVecPush[uint64] = (*BitSet)(nil)

// NewBitSet wraps b. A nil b starts an empty set.
func NewBitSet(b *bitset.BitSet) *BitSet {
	if b == nil {
		b = bitset.New(0)
	}
	return &BitSet{b: b}
}

// Unwrap returns the wrapped bitset.
func (s *BitSet) Unwrap() *bitset.BitSet { return s.b }

func (s *BitSet) BitLen() uint64 { return uint64(s.b.Len()) }

func (s *BitSet) BitOffset() uint { return 0 }

func (s *BitSet) BlockLen() int { return bitvec.BlockLen[uint64](s) }

func (s *BitSet) GetBit(position uint64) bool {
	must(bitvec.CheckBit(s, position))
	return s.b.Test(uint(position))
}

func (s *BitSet) GetBlock(position int) uint64 {
	must(bitvec.CheckBlock[uint64](s, position))
	return s.b.Words()[position] & bitvec.BlockMask[uint64](s, position)
}

func (s *BitSet) GetBits(start uint64, count uint) uint64 {
	return bitvec.GetBits[uint64](s, start, count)
}

func (s *BitSet) SetBit(position uint64, value bool) {
	must(bitvec.CheckBit(s, position))
	s.b.SetTo(uint(position), value)
}

func (s *BitSet) SetBlock(position int, value uint64) {
	must(bitvec.CheckBlock[uint64](s, position))
	words := s.b.Words()
	words[position] = bitvec.MaskedSetBlock[uint64](s, position, words[position], value)
}

func (s *BitSet) SetBits(start uint64, count uint, value uint64) {
	bitvec.SetBits[uint64](s, start, count, value)
}

func (s *BitSet) PushBit(value bool) {
	n := s.b.Len()
	// Set extends the length, Clear past the end does not.
	s.b.Set(n)
	if !value {
		s.b.Clear(n)
	}
}

func (s *BitSet) PopBit() (bool, bool) {
	n := s.b.Len()
	if n == 0 {
		return false, false
	}
	v := s.b.Test(n - 1)
	s.b.DeleteAt(n - 1)
	return v, true
}

func (s *BitSet) AlignBlock(value bool) uint {
	return bitvec.AlignBlock[uint64](s, value)
}

// PushBlock pads to a word boundary and appends value as a whole word.
func (s *BitSet) PushBlock(value uint64) {
	s.AlignBlock(false)

	n := s.b.Len()
	s.b.Set(n + 63)
	s.b.Words()[n/64] = value
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
