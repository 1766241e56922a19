package point

import (
	"slices"

	"github.com/viterin/vek/vek32"
	"gonum.org/v1/gonum/floats"
)

// maxCosineDistance is returned when exactly one side is the zero vector.
const maxCosineDistance = 2.0

// Compile time checks to ensure the vector types satisfy Point and Cloner.
var (
	_ Point[Vector]           = Vector(nil)
	_ Point[EuclideanVector]  = EuclideanVector(nil)
	_ Point[Float32Vector]    = Float32Vector(nil)
	_ Cloner[Vector]          = Vector(nil)
	_ Cloner[EuclideanVector] = EuclideanVector(nil)
	_ Cloner[Float32Vector]   = Float32Vector(nil)
)

// Vector is a float64 vector compared by cosine distance (1 - cosine similarity).
type Vector []float64

// Distance implements Point.
//
// The zero vector has no direction: it is at distance 0 from another zero
// vector and at the maximal distance 2 from everything else.
func (v Vector) Distance(other Vector) (float64, error) {
	if len(v) != len(other) {
		return 0, &ErrDimensionMismatch{Expected: len(v), Actual: len(other)}
	}

	na := floats.Norm(v, 2)
	nb := floats.Norm(other, 2)

	return cosineDistance(floats.Dot(v, other), na, nb), nil
}

// Clone implements Cloner.
func (v Vector) Clone() Vector { return slices.Clone(v) }

// Dimension returns the vector length.
func (v Vector) Dimension() int { return len(v) }

// EuclideanVector is a float64 vector compared by L2 distance.
type EuclideanVector []float64

// Distance implements Point.
func (v EuclideanVector) Distance(other EuclideanVector) (float64, error) {
	if len(v) != len(other) {
		return 0, &ErrDimensionMismatch{Expected: len(v), Actual: len(other)}
	}
	return floats.Distance(v, other, 2), nil
}

// Clone implements Cloner.
func (v EuclideanVector) Clone() EuclideanVector { return slices.Clone(v) }

// Dimension returns the vector length.
func (v EuclideanVector) Dimension() int { return len(v) }

// Float32Vector is a float32 vector compared by cosine distance.
// Kernels are SIMD accelerated where the CPU supports it.
type Float32Vector []float32

// Distance implements Point. Zero vectors follow the same rule as Vector.
func (v Float32Vector) Distance(other Float32Vector) (float64, error) {
	if len(v) != len(other) {
		return 0, &ErrDimensionMismatch{Expected: len(v), Actual: len(other)}
	}
	if len(v) == 0 {
		return 0, nil
	}

	na := float64(vek32.Norm(v))
	nb := float64(vek32.Norm(other))

	return cosineDistance(float64(vek32.Dot(v, other)), na, nb), nil
}

// Clone implements Cloner.
func (v Float32Vector) Clone() Float32Vector { return slices.Clone(v) }

// Dimension returns the vector length.
func (v Float32Vector) Dimension() int { return len(v) }

func cosineDistance(dot, na, nb float64) float64 {
	switch {
	case na == 0 && nb == 0:
		return 0
	case na == 0 || nb == 0:
		return maxCosineDistance
	}

	d := 1 - dot/(na*nb)

	// Rounding can push identical directions slightly below zero.
	return min(max(d, 0), maxCosineDistance)
}
