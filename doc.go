// Package bitvec provides bit-level addressing over arrays of fixed-width
// blocks.
//
// A bit vector is an ordered sequence of bits packed into blocks of an
// unsigned integer type B. Bit i of a vector lives in block (i+anchor)/W at
// offset (i+anchor)%W, where W is the width of B and the anchor lets a vector
// start in the middle of its first block. Bit 0 of a block is its least
// significant bit, and multi-bit fields are little-endian integers that may
// straddle two blocks.
//
// # Contracts
//
// Three interfaces describe what a vector can do:
//
//	BitVec[B]      read bits, blocks and fields
//	BitVecMut[B]   write them without changing the length
//	BitVecPush[B]  append and remove bits and blocks at the end
//
// Storage only has to provide the minimal operations (BlockGetter,
// BlockSetter, or the bit-granular BitGetter, BitSetter, BitPusher). The
// package functions GetBits, SetBits, GetBlockFromBits, SetBlockViaBits,
// AlignBlock and friends supply the rest, and Reader, Mutator and Pusher wrap
// a minimal implementation into the full contract:
//
//	type words struct{ w []uint64 }
//
//	func (s words) BitLen() uint64                 { return uint64(len(s.w)) * 64 }
//	func (s words) BitOffset() uint                { return 0 }
//	func (s words) GetBlock(i int) uint64          { return s.w[i] }
//	func (s words) SetBlock(i int, value uint64)   { s.w[i] = value }
//
//	v := bitvec.Mutator[uint64](words{make([]uint64, 4)})
//	v.SetBits(60, 8, 0xff) // spans blocks 0 and 1
//
// # Implementations
//
//	Blocks[B]  fixed []B, every bit in use
//	Slice[B]   zero-copy view of a bit range of []B, may start mid-block
//	Vec[B]     growable packed vector
//	Bools      one bool per bit; the reference oracle for tests
//
// # Bits outside a vector
//
// Blocks at either end of a vector may hold bits that are not part of it:
// the anchor bits of block 0 and the unused tail of the last block. Every
// GetBlock in this package returns those bits as zero, and every SetBlock
// leaves them unchanged.
//
// # Errors
//
// Out of range positions are programming errors. Operations panic with an
// *OutOfBoundsError (errors.Is(err, ErrOutOfBounds) holds) as soon as the
// bound is violated. CheckBit, CheckBlock and CheckBits validate up front
// for callers that need an error instead. PopBit on an empty vector is not an
// error and reports ok == false.
//
// # Concurrency
//
// No type in this package is safe for concurrent mutation.
package bitvec
