package index

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/hupe1980/vecindex/point"
)

var (
	// ErrEmptyIndex is returned when querying an index without entries.
	ErrEmptyIndex = errors.New("index is empty")

	// ErrDuplicateKey is returned when inserting a key that already exists.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrInvalidParameterKind matches every *ErrInvalidParameter via errors.Is.
	ErrInvalidParameterKind = errors.New("invalid parameter")
)

// ErrInvalidParameter indicates a degenerate construction or query argument.
type ErrInvalidParameter struct {
	Name   string
	Value  any
	Reason string
}

// Error returns the error message for an invalid parameter.
func (e *ErrInvalidParameter) Error() string {
	return fmt.Sprintf("invalid parameter %s=%v: %s", e.Name, e.Value, e.Reason)
}

// Is reports whether target is ErrInvalidParameterKind.
func (e *ErrInvalidParameter) Is(target error) bool {
	return target == ErrInvalidParameterKind
}

// DuplicateKeyError wraps ErrDuplicateKey with the offending key.
func DuplicateKeyError[K any](key K) error {
	return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
}

// Result is a single search hit.
type Result[K cmp.Ordered, P any] struct {
	// Key is the caller-supplied identifier of the point.
	Key K

	// Point is an owned copy of the stored point (see point.Cloner).
	Point P

	// Distance is the distance between the query and Point.
	Distance float64
}

// Index represents a nearest-neighbor index over points of type P keyed by K.
type Index[K cmp.Ordered, P point.Point[P]] interface {
	// Insert adds a new entry. Existing keys are rejected with ErrDuplicateKey.
	Insert(key K, p P) error

	// Find returns up to n entries ordered by ascending distance to query.
	Find(query P, n int) ([]Result[K, P], error)

	// FindKeys is Find projected to keys.
	FindKeys(query P, n int) ([]K, error)

	// Len returns the number of entries.
	Len() int
}
