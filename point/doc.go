// Package point defines the distance capability every indexed value must
// provide, plus a few ready-made vector types.
//
// A Point only needs a Distance method. The index treats distances purely
// as an ordering: they must be non-negative and symmetric, but need not
// satisfy the triangle inequality.
//
// # Vector Types
//
//   - Vector: []float64 with cosine distance (gonum)
//   - EuclideanVector: []float64 with L2 distance (gonum)
//   - Float32Vector: []float32 with cosine distance (vek32, SIMD accelerated)
//
// Comparing vectors of different lengths fails with *ErrDimensionMismatch.
package point
