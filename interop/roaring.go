package interop

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/internal/conv"
)

// ToRoaring returns a bitmap of the positions of the set bits of v. It fails
// if a set position does not fit in 32 bits.
func ToRoaring(v bitvec.BitGetter) (*roaring.Bitmap, error) {
	rb := roaring.New()
	for i := uint64(0); i < v.BitLen(); i++ {
		if !v.GetBit(i) {
			continue
		}
		x, err := conv.Uint64ToUint32(i)
		if err != nil {
			return nil, err
		}
		rb.Add(x)
	}
	return rb, nil
}

// FromRoaring sets the bits of dst at the positions in rb. Other bits are
// left alone. If rb holds a position past the end of dst, nothing is written
// and the error wraps bitvec.ErrOutOfBounds.
func FromRoaring(dst bitvec.BitSetter, rb *roaring.Bitmap) error {
	if rb.IsEmpty() {
		return nil
	}
	if err := bitvec.CheckBit(dst, uint64(rb.Maximum())); err != nil {
		return err
	}

	it := rb.Iterator()
	for it.HasNext() {
		dst.SetBit(uint64(it.Next()), true)
	}
	return nil
}
