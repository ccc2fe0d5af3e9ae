package bitvec

// Blocks is a fixed-size array of blocks viewed as a bit vector.
//
// It has no anchor and no partial last block, so every bit of every block is
// part of the vector and GetBlock/SetBlock are plain indexed accesses.
type Blocks[B Block] []B

// BitLen returns len(b) * W.
func (b Blocks[B]) BitLen() uint64 { return uint64(len(b)) * uint64(Width[B]()) }

// BitOffset is always 0.
func (b Blocks[B]) BitOffset() uint { return 0 }

// BlockLen returns len(b).
func (b Blocks[B]) BlockLen() int { return len(b) }

func (b Blocks[B]) GetBit(position uint64) bool {
	return GetBitFromBlock[B](b, position)
}

func (b Blocks[B]) GetBlock(position int) B {
	checkBlock("GetBlock", position, len(b))
	return b[position]
}

func (b Blocks[B]) GetBits(start uint64, count uint) B {
	return GetBits[B](b, start, count)
}

func (b Blocks[B]) SetBit(position uint64, value bool) {
	SetBitViaBlock[B](b, position, value)
}

func (b Blocks[B]) SetBlock(position int, value B) {
	checkBlock("SetBlock", position, len(b))
	b[position] = value
}

func (b Blocks[B]) SetBits(start uint64, count uint, value B) {
	SetBits[B](b, start, count, value)
}

// Slice returns a view of bits [start, end) sharing b's storage.
func (b Blocks[B]) Slice(start, end uint64) Slice[B] {
	return NewSlice[B]([]B(b), 0, b.BitLen()).Slice(start, end)
}
