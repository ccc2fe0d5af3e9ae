// Package interop connects bit containers from other libraries to the bitvec
// contracts.
//
//   - BitSet wraps a *bitset.BitSet (github.com/bits-and-blooms/bitset) as a
//     growable vector of 64-bit blocks, writing straight into its words.
//   - BitlistView and BitvectorView expose SSZ bitfields
//     (github.com/prysmaticlabs/go-bitfield) as zero-copy byte-block views.
//     The length bit of a bitlist lies just past the view and survives every
//     write.
//   - ToRoaring and FromRoaring move set positions to and from roaring
//     bitmaps (github.com/RoaringBitmap/roaring/v2).
package interop
