package bitvec

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned (or carried by a panic) when a bit, block or
	// field position falls outside a vector.
	ErrOutOfBounds = errors.New("out of bounds")
)

// OutOfBoundsError describes a violated bound.
//
// Contract operations panic with a *OutOfBoundsError, in the same way Go
// panics on an out of range slice index. errors.Is(err, ErrOutOfBounds)
// reports true for it.
type OutOfBoundsError struct {
	// Op is the operation that was called, e.g. "GetBits".
	Op string
	// Index is the offending bit or block position.
	Index uint64
	// Count is the field width for range operations and 0 otherwise.
	Count uint64
	// Len is the bound that was exceeded.
	Len uint64
}

func (e *OutOfBoundsError) Error() string {
	if e.Count > 0 {
		return fmt.Sprintf("bitvec.%s: range [%d, %d) out of bounds for length %d",
			e.Op, e.Index, e.Index+e.Count, e.Len)
	}
	return fmt.Sprintf("bitvec.%s: index %d out of bounds for length %d", e.Op, e.Index, e.Len)
}

func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }

// FieldWidthError reports a field wider than the block it is returned in.
type FieldWidthError struct {
	Op    string
	Count uint
	Width uint
}

func (e *FieldWidthError) Error() string {
	return fmt.Sprintf("bitvec.%s: field of %d bits exceeds block width %d", e.Op, e.Count, e.Width)
}

func (e *FieldWidthError) Unwrap() error { return ErrOutOfBounds }

// CheckBit returns an error if position is not a valid bit index of v.
func CheckBit(v Lengther, position uint64) error {
	if position >= v.BitLen() {
		return &OutOfBoundsError{Op: "CheckBit", Index: position, Len: v.BitLen()}
	}
	return nil
}

// CheckBlock returns an error if position is not a valid block index of v
// for blocks of type B.
func CheckBlock[B Block](v Lengther, position int) error {
	if n := BlockLen[B](v); position < 0 || position >= n {
		return &OutOfBoundsError{Op: "CheckBlock", Index: uint64(position), Len: uint64(n)}
	}
	return nil
}

// CheckBits returns an error if the field [start, start+count) does not lie
// within v or is wider than a block of type B.
func CheckBits[B Block](v Lengther, start uint64, count uint) error {
	if w := Width[B](); count > w {
		return &FieldWidthError{Op: "CheckBits", Count: count, Width: w}
	}
	if start+uint64(count) > v.BitLen() || start+uint64(count) < start {
		return &OutOfBoundsError{Op: "CheckBits", Index: start, Count: uint64(count), Len: v.BitLen()}
	}
	return nil
}

func checkBit(op string, v Lengther, position uint64) {
	if position >= v.BitLen() {
		panic(&OutOfBoundsError{Op: op, Index: position, Len: v.BitLen()})
	}
}

func checkBlock(op string, position, blockLen int) {
	if position < 0 || position >= blockLen {
		panic(&OutOfBoundsError{Op: op, Index: uint64(position), Len: uint64(blockLen)})
	}
}

func checkBits[B Block](op string, v Lengther, start uint64, count uint) {
	if w := Width[B](); count > w {
		panic(&FieldWidthError{Op: op, Count: count, Width: w})
	}
	if limit := start + uint64(count); limit > v.BitLen() || limit < start {
		panic(&OutOfBoundsError{Op: op, Index: start, Count: uint64(count), Len: v.BitLen()})
	}
}
