package bitvec_test

import (
	"fmt"

	"github.com/hupe1980/bitvec"
)

// Example_fields reads and writes multi-bit fields that straddle blocks.
func Example_fields() {
	v := bitvec.NewVecFilled[uint8](24, false)

	v.SetBits(6, 5, 0b10111)
	fmt.Println(v.String())
	fmt.Printf("%#x %#x\n", v.GetBlock(0), v.GetBlock(1))
	fmt.Printf("%#b\n", v.GetBits(6, 5))
	// Output:
	// 000000111010000000000000
	// 0xc0 0x5
	// 0b10111
}

// Example_slice writes through a view that starts in the middle of a block.
func Example_slice() {
	blocks := []uint16{0xffff, 0x0000}
	s := bitvec.NewSlice(blocks, 12, 8)

	s.SetBlock(0, 0)
	s.SetBits(4, 4, 0b1111)
	fmt.Printf("%#04x %#04x\n", blocks[0], blocks[1])
	fmt.Println(bitvec.Count[uint16](s))
	// Output:
	// 0x0fff 0x000f
	// 4
}

// Example_push grows a vector bit by bit and block by block.
func Example_push() {
	v := bitvec.NewVec[uint8]()

	v.PushBit(true)
	v.PushBit(true)
	fmt.Println(v.AlignBlock(false))
	v.PushBit(true)
	v.PushBlock(0xaa)
	fmt.Println(v.BitLen(), v.Blocks())

	b, ok := v.PopBit()
	fmt.Println(b, ok)
	// Output:
	// 6
	// 24 [3 1 170]
	// true true
}

type words []uint32

func (w words) BitLen() uint64                  { return uint64(len(w)) * 32 }
func (w words) BitOffset() uint                 { return 0 }
func (w words) GetBlock(position int) uint32    { return w[position] }
func (w words) SetBlock(position int, v uint32) { w[position] = v }

// ExampleMutator lifts a minimal block store into a full mutable vector.
func ExampleMutator() {
	w := words{0, 0}
	v := bitvec.Mutator[uint32](w)

	v.SetBits(28, 8, 0xff)
	v.SetBit(0, true)
	fmt.Printf("%#x %#x\n", w[0], w[1])
	fmt.Println(v.GetBits(24, 16))
	// Output:
	// 0xf0000001 0xf
	// 4080
}

func ExampleCheckBits() {
	v := bitvec.NewVecFilled[uint8](12, false)

	fmt.Println(bitvec.CheckBits[uint8](v, 4, 8))
	fmt.Println(bitvec.CheckBits[uint8](v, 8, 8))
	fmt.Println(bitvec.CheckBits[uint8](v, 0, 9))
	// Output:
	// <nil>
	// bitvec.CheckBits: range [8, 16) out of bounds for length 12
	// bitvec.CheckBits: field of 9 bits exceeds block width 8
}
