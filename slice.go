package bitvec

// Slice is a view of a range of bits inside block storage.
//
// A Slice never copies: it references the blocks it was created from and
// writes through to them. Its first bit may start in the middle of the first
// block (the anchor), and its last block may be only partially used. Writes
// never touch the bits of those blocks that lie outside the view, so
// neighbouring views over the same storage stay intact.
type Slice[B Block] struct {
	blocks []B
	offset uint
	length uint64
}

var _ BitVecMut[uint64] = Slice[uint64]{}

// NewSlice returns a view of bitLen bits starting offset bits into blocks.
// It panics if offset is not less than the block width or if blocks is too
// short to hold the view.
func NewSlice[B Block](blocks []B, offset uint, bitLen uint64) Slice[B] {
	if w := Width[B](); offset >= w {
		panic(&OutOfBoundsError{Op: "NewSlice", Index: uint64(offset), Len: uint64(w)})
	}

	need := CeilDiv[B](bitLen + uint64(offset))
	if need > len(blocks) {
		panic(&OutOfBoundsError{Op: "NewSlice", Index: uint64(offset), Count: bitLen, Len: MulWidth[B](len(blocks))})
	}

	return Slice[B]{blocks: blocks[:need], offset: offset, length: bitLen}
}

// BitLen returns the length of the view in bits.
func (s Slice[B]) BitLen() uint64 { return s.length }

// BitOffset returns the anchor of the view within its first block.
func (s Slice[B]) BitOffset() uint { return s.offset }

// BlockLen returns the number of blocks the view spans.
func (s Slice[B]) BlockLen() int { return len(s.blocks) }

// Blocks returns the storage spanned by the view. The first and last blocks
// may hold bits that belong to other views.
func (s Slice[B]) Blocks() []B { return s.blocks }

func (s Slice[B]) GetBit(position uint64) bool {
	checkBit("GetBit", s, position)

	a := NewAddress[B](position + uint64(s.offset))
	return blockBit(s.blocks[a.BlockIndex], a.BitOffset)
}

// GetBlock returns the block at position with the bits outside the view
// cleared.
func (s Slice[B]) GetBlock(position int) B {
	checkBlock("GetBlock", position, len(s.blocks))
	return s.blocks[position] & BlockMask[B](s, position)
}

func (s Slice[B]) GetBits(start uint64, count uint) B {
	return GetBits[B](s, start, count)
}

func (s Slice[B]) SetBit(position uint64, value bool) {
	checkBit("SetBit", s, position)

	a := NewAddress[B](position + uint64(s.offset))
	s.blocks[a.BlockIndex] = withBit(s.blocks[a.BlockIndex], a.BitOffset, value)
}

// SetBlock stores value at position, leaving the bits outside the view
// untouched.
func (s Slice[B]) SetBlock(position int, value B) {
	checkBlock("SetBlock", position, len(s.blocks))
	s.blocks[position] = MaskedSetBlock[B](s, position, s.blocks[position], value)
}

func (s Slice[B]) SetBits(start uint64, count uint, value B) {
	SetBits[B](s, start, count, value)
}

// Slice returns the sub-view of bits [start, end) of s, sharing storage.
func (s Slice[B]) Slice(start, end uint64) Slice[B] {
	if start > end {
		panic(&OutOfBoundsError{Op: "Slice", Index: start, Len: end})
	}
	if end > s.length {
		panic(&OutOfBoundsError{Op: "Slice", Index: start, Count: end - start, Len: s.length})
	}

	a := NewAddress[B](uint64(s.offset) + start)
	return NewSlice(s.blocks[a.BlockIndex:], a.BitOffset, end-start)
}
