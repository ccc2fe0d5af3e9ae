package interop

import (
	"github.com/hupe1980/bitvec"
	"github.com/prysmaticlabs/go-bitfield"
)

// BitlistView returns a view of the data bits of b. Writes through the view
// change b in place; the terminating length bit is outside the view and is
// never modified.
func BitlistView(b bitfield.Bitlist) bitvec.Slice[uint8] {
	return bitvec.NewSlice([]byte(b), 0, b.Len())
}

type bitvector interface {
	~[]byte
	Len() uint64
}

// BitvectorView returns a view of a fixed-length bitvector such as
// bitfield.Bitvector64 or bitfield.Bitvector4.
func BitvectorView[T bitvector](b T) bitvec.Slice[uint8] {
	return bitvec.NewSlice([]byte(b), 0, b.Len())
}

// ToBitlist copies v into a new SSZ bitlist of the same length.
func ToBitlist(v bitvec.BitGetter) bitfield.Bitlist {
	bl := bitfield.NewBitlist(v.BitLen())
	for i := uint64(0); i < v.BitLen(); i++ {
		if v.GetBit(i) {
			bl.SetBitAt(i, true)
		}
	}
	return bl
}
