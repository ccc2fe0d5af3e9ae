// Package testutil provides testing utilities for bitvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded random data for property tests and assertions that
// compare two bit vectors bit by bit.
//
// # Random Data
//
//	rng := testutil.NewRNG(seed)
//	words := testutil.RandomBlocks[uint64](rng, 16)
//	field := testutil.RandomField[uint8](rng, 5) // value < 1<<5
//	oracle := rng.Bools(100)
//
// # Fuzzing
//
//	f := testutil.NewFuzzer(seed)
//	var blocks []uint16
//	f.Fuzz(&blocks)
//
// # Comparing Vectors
//
//	testutil.RequireSameBits(t, oracle, packed)
package testutil
