package point

import (
	"errors"
	"fmt"
)

// Point is any value that can measure its distance to another value of the
// same type.
type Point[P any] interface {
	// Distance returns a non-negative, symmetric distance to other.
	Distance(other P) (float64, error)
}

// Cloner is implemented by points that share mutable backing storage (for
// example slices). Indexes return clones so callers never alias stored data.
type Cloner[P any] interface {
	Clone() P
}

// Clone returns an owned copy of p when P implements Cloner, p otherwise.
func Clone[P any](p P) P {
	if c, ok := any(p).(Cloner[P]); ok {
		return c.Clone()
	}
	return p
}

// ErrDimensionMismatchKind matches every *ErrDimensionMismatch via errors.Is.
var ErrDimensionMismatchKind = errors.New("dimension mismatch")

// ErrDimensionMismatch is returned when two points have incomparable shapes.
type ErrDimensionMismatch struct {
	Expected int // Expected dimensions
	Actual   int // Actual dimensions
}

// Error returns the error message for dimension mismatch
func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// Is reports whether target is ErrDimensionMismatchKind.
func (e *ErrDimensionMismatch) Is(target error) bool {
	return target == ErrDimensionMismatchKind
}
