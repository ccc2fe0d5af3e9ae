package bitvec

// Address locates a bit inside block storage.
type Address struct {
	// BlockIndex is the index of the block holding the bit.
	BlockIndex int
	// BitOffset is the position of the bit within that block, always less
	// than the block width.
	BitOffset uint
}

// NewAddress translates a global bit index into a block index and an offset
// within that block.
func NewAddress[B Block](bit uint64) Address {
	w := uint64(Width[B]())
	return Address{
		BlockIndex: int(bit / w),
		BitOffset:  uint(bit % w),
	}
}

// CeilDiv returns the number of blocks needed to hold totalBits bits.
func CeilDiv[B Block](totalBits uint64) int {
	w := uint64(Width[B]())
	n := totalBits / w
	if totalBits%w != 0 {
		n++
	}
	return int(n)
}

// ModWidth returns bits modulo the block width.
func ModWidth[B Block](bits uint64) uint {
	return uint(bits % uint64(Width[B]()))
}
