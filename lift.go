package bitvec

// Reader completes a block-granular implementation to the full BitVec
// contract. If v already implements BitVec it is returned as is.
func Reader[B Block](v BlockGetter[B]) BitVec[B] {
	if bv, ok := v.(BitVec[B]); ok {
		return bv
	}
	return blockReader[B]{v: v}
}

// BitReader completes a bit-granular implementation to the full BitVec
// contract, using the O(W) GetBlockFromBits for whole blocks.
func BitReader[B Block](v BitGetter) BitVec[B] {
	if bv, ok := v.(BitVec[B]); ok {
		return bv
	}
	return bitReader[B]{v: v}
}

// Mutator completes a block-granular implementation to BitVecMut.
func Mutator[B Block](v BlockSetter[B]) BitVecMut[B] {
	if bv, ok := v.(BitVecMut[B]); ok {
		return bv
	}
	return blockMutator[B]{blockReader: blockReader[B]{v: v}, s: v}
}

// BitMutator completes a bit-granular implementation to BitVecMut, using the
// O(W) SetBlockViaBits for whole blocks.
func BitMutator[B Block](v BitSetter) BitVecMut[B] {
	if bv, ok := v.(BitVecMut[B]); ok {
		return bv
	}
	return bitMutator[B]{bitReader: bitReader[B]{v: v}, s: v}
}

// Pusher completes a bit-granular growable implementation to BitVecPush.
func Pusher[B Block](v BitPusher) BitVecPush[B] {
	if bv, ok := v.(BitVecPush[B]); ok {
		return bv
	}
	return bitPusher[B]{bitMutator: bitMutator[B]{bitReader: bitReader[B]{v: v}, s: v}, p: v}
}

type blockReader[B Block] struct {
	v BlockGetter[B]
}

func (r blockReader[B]) BitLen() uint64  { return r.v.BitLen() }
func (r blockReader[B]) BitOffset() uint { return r.v.BitOffset() }
func (r blockReader[B]) BlockLen() int   { return BlockLen[B](r.v) }

func (r blockReader[B]) GetBit(position uint64) bool {
	return GetBitFromBlock[B](r, position)
}

func (r blockReader[B]) GetBlock(position int) B {
	checkBlock("GetBlock", position, r.BlockLen())
	return r.v.GetBlock(position) & BlockMask[B](r.v, position)
}

func (r blockReader[B]) GetBits(start uint64, count uint) B {
	return GetBits[B](r, start, count)
}

type blockMutator[B Block] struct {
	blockReader[B]
	s BlockSetter[B]
}

func (m blockMutator[B]) SetBit(position uint64, value bool) {
	SetBitViaBlock[B](m, position, value)
}

func (m blockMutator[B]) SetBlock(position int, value B) {
	checkBlock("SetBlock", position, m.BlockLen())
	m.s.SetBlock(position, MaskedSetBlock[B](m.s, position, m.s.GetBlock(position), value))
}

func (m blockMutator[B]) SetBits(start uint64, count uint, value B) {
	SetBits[B](m, start, count, value)
}

type bitReader[B Block] struct {
	v BitGetter
}

func (r bitReader[B]) BitLen() uint64  { return r.v.BitLen() }
func (r bitReader[B]) BitOffset() uint { return r.v.BitOffset() }
func (r bitReader[B]) BlockLen() int   { return BlockLen[B](r.v) }

func (r bitReader[B]) GetBit(position uint64) bool {
	checkBit("GetBit", r.v, position)
	return r.v.GetBit(position)
}

func (r bitReader[B]) GetBlock(position int) B {
	return GetBlockFromBits[B](r.v, position)
}

func (r bitReader[B]) GetBits(start uint64, count uint) B {
	return GetBits[B](r, start, count)
}

type bitMutator[B Block] struct {
	bitReader[B]
	s BitSetter
}

func (m bitMutator[B]) SetBit(position uint64, value bool) {
	checkBit("SetBit", m.s, position)
	m.s.SetBit(position, value)
}

func (m bitMutator[B]) SetBlock(position int, value B) {
	SetBlockViaBits[B](m.s, position, value)
}

func (m bitMutator[B]) SetBits(start uint64, count uint, value B) {
	SetBits[B](m, start, count, value)
}

type bitPusher[B Block] struct {
	bitMutator[B]
	p BitPusher
}

func (p bitPusher[B]) PushBit(value bool) { p.p.PushBit(value) }

func (p bitPusher[B]) PopBit() (bool, bool) { return p.p.PopBit() }

func (p bitPusher[B]) AlignBlock(value bool) uint {
	return AlignBlock[B](p.p, value)
}

func (p bitPusher[B]) PushBlock(value B) {
	PushBlockViaBits[B](p.p, value)
}
