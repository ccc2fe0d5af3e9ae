package bitvec

// Lengther reports the logical extent of a bit vector: its length in bits and
// the anchor, the number of bits into the first block at which it starts.
type Lengther interface {
	// BitLen returns the length of the vector in bits.
	BitLen() uint64
	// BitOffset returns the anchor. It is always less than the block width.
	BitOffset() uint
}

// BlockGetter is the minimal read contract for block-packed storage.
type BlockGetter[B Block] interface {
	Lengther
	// GetBlock returns the block at position, bit 0 in the least significant
	// position. Bits of the block outside the vector read as zero.
	GetBlock(position int) B
}

// BitGetter is the minimal read contract for bit-granular storage.
type BitGetter interface {
	Lengther
	// GetBit returns the bit at position.
	GetBit(position uint64) bool
}

// BitVec is the full read-only contract.
//
// A type only has to provide one of GetBit or GetBlock; the other operations
// have defaults (GetBitFromBlock, GetBlockFromBits, GetBits) that Reader and
// BitReader fill in. Types that can do better override them with their own
// methods.
type BitVec[B Block] interface {
	Lengther
	// BlockLen returns the number of blocks spanned by the vector, counting
	// the anchor bits of the first block.
	BlockLen() int
	GetBit(position uint64) bool
	GetBlock(position int) B
	// GetBits returns count bits starting at start as a little-endian
	// integer. count must not exceed the block width.
	GetBits(start uint64, count uint) B
}

// BlockSetter is the minimal mutable contract for block-packed storage.
type BlockSetter[B Block] interface {
	BlockGetter[B]
	// SetBlock stores value at position. Bits of the stored block outside the
	// vector must not change.
	SetBlock(position int, value B)
}

// BitSetter is the minimal mutable contract for bit-granular storage.
type BitSetter interface {
	BitGetter
	SetBit(position uint64, value bool)
}

// BitVecMut adds length-preserving writes to BitVec.
type BitVecMut[B Block] interface {
	BitVec[B]
	SetBit(position uint64, value bool)
	SetBlock(position int, value B)
	// SetBits stores the low count bits of value at [start, start+count).
	SetBits(start uint64, count uint, value B)
}

// BitPusher is the minimal growable contract.
type BitPusher interface {
	BitSetter
	// PushBit appends value to the end of the vector.
	PushBit(value bool)
	// PopBit removes and returns the last bit. ok is false if the vector is
	// empty.
	PopBit() (value bool, ok bool)
}

// BitVecPush adds appending and removing at the end to BitVecMut.
type BitVecPush[B Block] interface {
	BitVecMut[B]
	PushBit(value bool)
	PopBit() (value bool, ok bool)
	// AlignBlock pushes value until the end of the vector is block-aligned
	// and returns the number of bits pushed.
	AlignBlock(value bool) uint
	// PushBlock pads the vector with zeros to a block boundary and then
	// appends all bits of value, least significant first.
	PushBlock(value B)
}

// BlockLen returns the number of blocks of type B spanned by v.
func BlockLen[B Block](v Lengther) int {
	return CeilDiv[B](v.BitLen() + uint64(v.BitOffset()))
}

// BlockMask returns the bits of the block at position that belong to v: all
// of them, except the anchor bits of block 0 and the unused tail of the last
// block.
func BlockMask[B Block](v Lengther, position int) B {
	lo, hi := uint(0), Width[B]()
	if position == 0 {
		lo = v.BitOffset()
	}
	if position == BlockLen[B](v)-1 {
		hi = LastBlockBits[B](v.BitLen() + uint64(v.BitOffset()))
	}
	return rangeMask[B](lo, hi)
}

// MaskedSetBlock merges value into old, replacing only the bits that BlockMask
// reports as part of v. Stores use it to implement SetBlock in O(1).
func MaskedSetBlock[B Block](v Lengther, position int, old, value B) B {
	m := BlockMask[B](v, position)
	return old&^m | value&m
}

// GetBitFromBlock reads a single bit by fetching its block.
func GetBitFromBlock[B Block](v BlockGetter[B], position uint64) bool {
	checkBit("GetBit", v, position)

	a := NewAddress[B](position + uint64(v.BitOffset()))
	return blockBit(v.GetBlock(a.BlockIndex), a.BitOffset)
}

// GetBlockFromBits assembles a block by reading each of its bits. It is a
// slow reference implementation: O(W) calls to GetBit.
func GetBlockFromBits[B Block](v BitGetter, position int) B {
	checkBlock("GetBlock", position, BlockLen[B](v))

	first := MulWidth[B](position)
	off := uint64(v.BitOffset())
	n := v.BitLen()

	var result B
	for i := uint(0); i < Width[B](); i++ {
		phys := first + uint64(i)
		if phys < off || phys-off >= n {
			continue
		}
		if v.GetBit(phys - off) {
			result |= B(1) << i
		}
	}
	return result
}

// GetBits reads a little-endian field of count bits starting at start.
//
// The field touches at most two blocks. When it does not fit in the room left
// in the first block, the low bits come from the top of that block and the
// high bits from the bottom of the next one.
func GetBits[B Block](v BlockGetter[B], start uint64, count uint) B {
	checkBits[B]("GetBits", v, start, count)
	if count == 0 {
		return 0
	}

	a := NewAddress[B](start + uint64(v.BitOffset()))
	margin := Width[B]() - a.BitOffset

	if margin >= count {
		return blockBits(v.GetBlock(a.BlockIndex), a.BitOffset, count)
	}

	low := blockBits(v.GetBlock(a.BlockIndex), a.BitOffset, margin)
	high := blockBits(v.GetBlock(a.BlockIndex+1), 0, count-margin)
	return high<<margin | low
}

// SetBitViaBlock writes a single bit with a read-modify-write of its block.
func SetBitViaBlock[B Block](v BlockSetter[B], position uint64, value bool) {
	checkBit("SetBit", v, position)

	a := NewAddress[B](position + uint64(v.BitOffset()))
	v.SetBlock(a.BlockIndex, withBit(v.GetBlock(a.BlockIndex), a.BitOffset, value))
}

// SetBlockViaBits writes a block by setting each of its bits that belongs to
// v. It is a slow reference implementation: O(W) calls to SetBit.
func SetBlockViaBits[B Block](v BitSetter, position int, value B) {
	checkBlock("SetBlock", position, BlockLen[B](v))

	first := MulWidth[B](position)
	off := uint64(v.BitOffset())

	lo := uint(0)
	if position == 0 {
		lo = v.BitOffset()
	}
	hi := Width[B]()
	if position == BlockLen[B](v)-1 {
		hi = LastBlockBits[B](v.BitLen() + off)
	}

	for i := lo; i < hi; i++ {
		v.SetBit(first+uint64(i)-off, blockBit(value, i))
	}
}

// SetBits stores the low count bits of value as a little-endian field at
// start, touching at most two blocks.
func SetBits[B Block](v BlockSetter[B], start uint64, count uint, value B) {
	checkBits[B]("SetBits", v, start, count)
	if count == 0 {
		return
	}

	a := NewAddress[B](start + uint64(v.BitOffset()))
	margin := Width[B]() - a.BitOffset

	if margin >= count {
		v.SetBlock(a.BlockIndex, withBits(v.GetBlock(a.BlockIndex), a.BitOffset, count, value))
		return
	}

	first := withBits(v.GetBlock(a.BlockIndex), a.BitOffset, margin, value)
	second := withBits(v.GetBlock(a.BlockIndex+1), 0, count-margin, value>>margin)
	v.SetBlock(a.BlockIndex, first)
	v.SetBlock(a.BlockIndex+1, second)
}

// AlignBlock pushes value onto v until its end is aligned to a block of type
// B. It returns the number of bits pushed.
func AlignBlock[B Block](v BitPusher, value bool) uint {
	var n uint
	for ModWidth[B](v.BitLen()+uint64(v.BitOffset())) != 0 {
		v.PushBit(value)
		n++
	}
	return n
}

// PushBlockViaBits aligns v with zeros and then pushes the bits of value one
// at a time, least significant first.
func PushBlockViaBits[B Block](v BitPusher, value B) {
	AlignBlock[B](v, false)
	for i := uint(0); i < Width[B](); i++ {
		v.PushBit(blockBit(value, i))
	}
}
