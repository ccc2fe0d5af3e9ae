package testutil

import (
	"math/rand"
	"strings"
	"sync"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64n returns a pseudo-random number in [0,n). n must be positive.
func (r *RNG) Uint64n(n uint64) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64() % n
}

// Uint64 returns a pseudo-random 64-bit value.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Bool returns a pseudo-random bool.
func (r *RNG) Bool() bool {
	return r.Uint64()&1 == 1
}

// Bools returns n pseudo-random bools.
func (r *RNG) Bools(n int) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]bool, n)
	for i := range out {
		out[i] = r.rand.Intn(2) == 1
	}
	return out
}

// RandomBlocks returns n blocks with every bit random.
func RandomBlocks[B constraints.Unsigned](r *RNG, n int) []B {
	out := make([]B, n)
	for i := range out {
		out[i] = B(r.Uint64())
	}
	return out
}

// RandomField returns a random value of at most count bits.
func RandomField[B constraints.Unsigned](r *RNG, count uint) B {
	v := B(r.Uint64())
	if count >= 64 {
		return v
	}
	return v & B(uint64(1)<<count-1)
}

// NewFuzzer returns a deterministic gofuzz fuzzer that never produces nil
// values and keeps slices short enough for exhaustive bit comparisons.
func NewFuzzer(seed int64) *fuzz.Fuzzer {
	return fuzz.NewWithSeed(seed).NilChance(0).NumElements(1, 32)
}

// BitVector is the part of a bit vector RequireSameBits looks at.
type BitVector interface {
	BitLen() uint64
	GetBit(position uint64) bool
}

// RequireSameBits fails the test unless want and got have the same length and
// the same bits.
func RequireSameBits(t require.TestingT, want, got BitVector, msgAndArgs ...any) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	require.Equal(t, want.BitLen(), got.BitLen(), msgAndArgs...)
	require.Equal(t, Bits(want), Bits(got), msgAndArgs...)
}

// Bits renders v as a string of '0' and '1', bit 0 first.
func Bits(v BitVector) string {
	var sb strings.Builder
	for i := uint64(0); i < v.BitLen(); i++ {
		if v.GetBit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
