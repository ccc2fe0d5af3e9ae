package bitvec

import (
	"math/bits"
	"strings"
)

// Copy copies min(dst.BitLen(), src.BitLen()) bits from src to dst, a block
// width at a time, and returns the number of bits copied. The two vectors may
// have different anchors.
func Copy[B Block](dst BitVecMut[B], src BitVec[B]) uint64 {
	n := min(dst.BitLen(), src.BitLen())
	w := uint64(Width[B]())

	var i uint64
	for ; n-i >= w; i += w {
		dst.SetBits(i, uint(w), src.GetBits(i, uint(w)))
	}
	if r := uint(n - i); r > 0 {
		dst.SetBits(i, r, src.GetBits(i, r))
	}
	return n
}

// Equal reports whether a and b hold the same bits. Anchors and bits outside
// the vectors are not compared.
func Equal[B Block](a, b BitVec[B]) bool {
	n := a.BitLen()
	if n != b.BitLen() {
		return false
	}

	w := uint64(Width[B]())
	for i := uint64(0); i < n; i += w {
		c := uint(min(w, n-i))
		if a.GetBits(i, c) != b.GetBits(i, c) {
			return false
		}
	}
	return true
}

// Count returns the number of set bits in v.
func Count[B Block](v BitVec[B]) uint64 {
	n := v.BitLen()
	w := uint64(Width[B]())

	var total uint64
	for i := uint64(0); i < n; i += w {
		total += uint64(bits.OnesCount64(uint64(v.GetBits(i, uint(min(w, n-i))))))
	}
	return total
}

// Format renders v as a string of '0' and '1', bit 0 first.
func Format(v BitGetter) string {
	var sb strings.Builder
	sb.Grow(int(v.BitLen()))
	for i := uint64(0); i < v.BitLen(); i++ {
		if v.GetBit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
