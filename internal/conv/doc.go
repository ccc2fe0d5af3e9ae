// Package conv provides safe integer type conversion utilities.
//
// Bit positions are carried as uint64 throughout bitvec, while Go slices are
// indexed with the platform-sized int. These helpers perform the bounds check
// needed when a position crosses that boundary on the naive reference paths.
//
// For conversions that are provably safe by construction (block indices derived
// from a slice length, loop counters bounded by a block width), use direct type
// casts instead to avoid overhead.
package conv
