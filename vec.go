package bitvec

// Vec is a growable bit vector packed into blocks of type B.
//
// Bit i lives in block i/W at offset i%W. The unused high bits of the last
// block read as zero and are overwritten when the vector grows into them,
// whatever the backing storage holds there.
//
// A Vec is not safe for concurrent use.
type Vec[B Block] struct {
	blocks  []B
	length  uint64
	logger  *Logger
	metrics MetricsCollector
}

var _ BitVecPush[uint64] = (*Vec[uint64])(nil)

// NewVec returns an empty vector.
func NewVec[B Block](optFns ...Option) *Vec[B] {
	o := applyOptions(optFns)

	v := &Vec[B]{
		logger:  o.logger.WithWidth(Width[B]()),
		metrics: o.metricsCollector,
	}
	if o.capacity > 0 {
		v.blocks = make([]B, 0, CeilDiv[B](o.capacity))
	}
	return v
}

// NewVecFilled returns a vector of n bits, all set to value.
func NewVecFilled[B Block](n uint64, value bool, optFns ...Option) *Vec[B] {
	v := NewVec[B](optFns...)

	fill := B(0)
	if value {
		fill = ^B(0)
	}
	for i := CeilDiv[B](n); i > 0; i-- {
		v.appendBlock(fill)
	}
	v.length = n
	v.clearTail()
	return v
}

// VecFromBlocks returns a vector of bitLen bits that takes ownership of
// blocks. Bits of blocks past bitLen are cleared. It panics if blocks holds
// fewer than bitLen bits.
func VecFromBlocks[B Block](blocks []B, bitLen uint64, optFns ...Option) *Vec[B] {
	need := CeilDiv[B](bitLen)
	if need > len(blocks) {
		panic(&OutOfBoundsError{Op: "VecFromBlocks", Index: bitLen, Len: MulWidth[B](len(blocks))})
	}

	v := NewVec[B](optFns...)
	v.blocks = blocks[:need]
	v.length = bitLen
	v.clearTail()
	return v
}

// BitLen returns the length of the vector in bits.
func (v *Vec[B]) BitLen() uint64 { return v.length }

// BitOffset is always 0.
func (v *Vec[B]) BitOffset() uint { return 0 }

// BlockLen returns the number of blocks in use.
func (v *Vec[B]) BlockLen() int { return len(v.blocks) }

// Capacity returns the number of bits the vector can hold without
// reallocating.
func (v *Vec[B]) Capacity() uint64 { return MulWidth[B](cap(v.blocks)) }

// Blocks returns the backing blocks. The slice shares storage with v until
// the next operation that grows it.
func (v *Vec[B]) Blocks() []B { return v.blocks }

func (v *Vec[B]) GetBit(position uint64) bool {
	checkBit("GetBit", v, position)

	a := NewAddress[B](position)
	return blockBit(v.blocks[a.BlockIndex], a.BitOffset)
}

func (v *Vec[B]) GetBlock(position int) B {
	checkBlock("GetBlock", position, len(v.blocks))
	return v.blocks[position] & BlockMask[B](v, position)
}

func (v *Vec[B]) GetBits(start uint64, count uint) B {
	return GetBits[B](v, start, count)
}

func (v *Vec[B]) SetBit(position uint64, value bool) {
	checkBit("SetBit", v, position)

	a := NewAddress[B](position)
	v.blocks[a.BlockIndex] = withBit(v.blocks[a.BlockIndex], a.BitOffset, value)
}

// SetBlock stores value at position. On the last block only the bits below
// BitLen are written.
func (v *Vec[B]) SetBlock(position int, value B) {
	checkBlock("SetBlock", position, len(v.blocks))
	v.blocks[position] = MaskedSetBlock[B](v, position, v.blocks[position], value)
}

func (v *Vec[B]) SetBits(start uint64, count uint, value B) {
	SetBits[B](v, start, count, value)
}

func (v *Vec[B]) PushBit(value bool) {
	a := NewAddress[B](v.length)
	if a.BitOffset == 0 {
		v.appendBlock(0)
	}
	v.blocks[a.BlockIndex] = withBit(v.blocks[a.BlockIndex], a.BitOffset, value)
	v.length++
}

func (v *Vec[B]) PopBit() (bool, bool) {
	if v.length == 0 {
		return false, false
	}

	v.length--
	a := NewAddress[B](v.length)
	bit := blockBit(v.blocks[a.BlockIndex], a.BitOffset)
	if a.BitOffset == 0 {
		v.blocks[a.BlockIndex] = 0
		v.blocks = v.blocks[:a.BlockIndex]
	} else {
		v.blocks[a.BlockIndex] = withBit(v.blocks[a.BlockIndex], a.BitOffset, false)
	}
	return bit, true
}

// AlignBlock fills the rest of the last block with value in one step.
func (v *Vec[B]) AlignBlock(value bool) uint {
	r := ModWidth[B](v.length)
	if r == 0 {
		v.metrics.RecordAlign(0)
		return 0
	}

	padded := Width[B]() - r
	last := len(v.blocks) - 1
	if tail := rangeMask[B](r, Width[B]()); value {
		v.blocks[last] |= tail
	} else {
		v.blocks[last] &^= tail
	}
	v.length += uint64(padded)

	v.logger.LogAlign(v.length, padded)
	v.metrics.RecordAlign(padded)
	return padded
}

// PushBlock appends value as a whole block, padding with zeros first if the
// vector is not block-aligned.
func (v *Vec[B]) PushBlock(value B) {
	direct := ModWidth[B](v.length) == 0
	if !direct {
		v.AlignBlock(false)
	}

	v.appendBlock(value)
	v.length += uint64(Width[B]())
	v.metrics.RecordPushBlock(direct)
}

// Truncate shortens the vector to n bits. It panics if n is greater than
// BitLen.
func (v *Vec[B]) Truncate(n uint64) {
	if n > v.length {
		panic(&OutOfBoundsError{Op: "Truncate", Index: n, Len: v.length})
	}

	need := CeilDiv[B](n)
	clear(v.blocks[need:])
	v.blocks = v.blocks[:need]
	v.length = n
	v.clearTail()
}

// Clear removes all bits, keeping the allocated storage.
func (v *Vec[B]) Clear() {
	v.Truncate(0)
}

// Slice returns a view of bits [start, end) sharing v's storage. The view is
// invalidated by any later operation that changes the length of v.
func (v *Vec[B]) Slice(start, end uint64) Slice[B] {
	return NewSlice(v.blocks, 0, v.length).Slice(start, end)
}

// Clone returns a deep copy of v with the same logger and metrics.
func (v *Vec[B]) Clone() *Vec[B] {
	c := &Vec[B]{
		blocks:  make([]B, len(v.blocks)),
		length:  v.length,
		logger:  v.logger,
		metrics: v.metrics,
	}
	copy(c.blocks, v.blocks)
	return c
}

// String returns the bits of v as a string of 0s and 1s, bit 0 first.
func (v *Vec[B]) String() string {
	return Format(v)
}

func (v *Vec[B]) appendBlock(b B) {
	oldCap := cap(v.blocks)
	v.blocks = append(v.blocks, b)

	if newCap := cap(v.blocks); newCap != oldCap {
		v.logger.LogGrow(v.length, oldCap, newCap)
		v.metrics.RecordGrow(oldCap, newCap)
	}
}

// clearTail zeroes the bits of the last block past the end of the vector.
func (v *Vec[B]) clearTail() {
	if r := ModWidth[B](v.length); r != 0 {
		v.blocks[len(v.blocks)-1] &= lowMask[B](r)
	}
}
