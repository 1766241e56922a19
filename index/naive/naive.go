// Package naive provides an exact nearest-neighbor index that scans every point.
//
// It is the correctness oracle for approximate backends: Find always
// returns the true nearest entries, at linear cost per query.
package naive

import (
	"cmp"

	"github.com/tidwall/btree"

	"github.com/hupe1980/vecindex/index"
	"github.com/hupe1980/vecindex/point"
)

// Index is a brute-force index. The store is ordered by key so scans, and
// therefore ties between equal distances, are deterministic.
//
// Index is not safe for concurrent mutation; concurrent Find calls are safe
// while no Insert is in flight.
type Index[K cmp.Ordered, P point.Point[P]] struct {
	points btree.Map[K, P]
}

// New creates an empty naive index.
func New[K cmp.Ordered, P point.Point[P]]() *Index[K, P] {
	return &Index[K, P]{}
}

// Name returns the name of the index.
func (*Index[K, P]) Name() string { return "Naive" }

// Insert adds a point under key.
//
// The point is compared against an existing entry first, so incomparable
// points (e.g. a dimension mismatch) are rejected before the store changes.
func (ix *Index[K, P]) Insert(key K, p P) error {
	if _, ok := ix.points.Get(key); ok {
		return index.DuplicateKeyError(key)
	}

	if _, existing, ok := ix.points.Min(); ok {
		if _, err := p.Distance(existing); err != nil {
			return err
		}
	}

	ix.points.Set(key, point.Clone(p))

	return nil
}

// Find returns the n entries closest to query, ascending by distance.
func (ix *Index[K, P]) Find(query P, n int) ([]index.Result[K, P], error) {
	if err := index.CheckN(n); err != nil {
		return nil, err
	}
	if ix.points.Len() == 0 {
		return nil, index.ErrEmptyIndex
	}
	if n == 0 {
		return []index.Result[K, P]{}, nil
	}

	results := make([]index.Result[K, P], 0, ix.points.Len())

	var distErr error
	ix.points.Scan(func(key K, p P) bool {
		d, err := query.Distance(p)
		if err != nil {
			distErr = err
			return false
		}
		results = append(results, index.Result[K, P]{Key: key, Point: p, Distance: d})
		return true
	})
	if distErr != nil {
		return nil, distErr
	}

	index.SortResults(results)

	if len(results) > n {
		results = results[:n]
	}
	for i := range results {
		results[i].Point = point.Clone(results[i].Point)
	}

	return results, nil
}

// FindKeys returns the keys of the n entries closest to query.
func (ix *Index[K, P]) FindKeys(query P, n int) ([]K, error) {
	results, err := ix.Find(query, n)
	if err != nil {
		return nil, err
	}
	return index.Keys(results), nil
}

// Len returns the number of entries.
func (ix *Index[K, P]) Len() int {
	return ix.points.Len()
}
