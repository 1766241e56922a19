// Package testutil provides testing utilities for vecindex.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating reproducible random vectors and
// verifying search recall against an exact baseline.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	data := rng.UniformVectors(1000, 16)     // [][]float64 in [0, 1)
//	data32 := rng.UnitVectors32(1000, 16)    // [][]float32 on the unit sphere
//
// # Recall Verification
//
//	recall := testutil.ComputeRecall(exactKeys, approxKeys)
package testutil
