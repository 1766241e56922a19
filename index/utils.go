package index

import (
	"cmp"
	"slices"
)

// CheckN validates the requested result count of a query.
func CheckN(n int) error {
	if n < 0 {
		return &ErrInvalidParameter{Name: "n", Value: n, Reason: "must not be negative"}
	}
	return nil
}

// Keys projects results to their keys, preserving order.
func Keys[K cmp.Ordered, P any](results []Result[K, P]) []K {
	keys := make([]K, len(results))
	for i, r := range results {
		keys[i] = r.Key
	}
	return keys
}

// CompareResults orders results by ascending distance, then by key.
func CompareResults[K cmp.Ordered, P any](a, b Result[K, P]) int {
	if c := cmp.Compare(a.Distance, b.Distance); c != 0 {
		return c
	}
	return cmp.Compare(a.Key, b.Key)
}

// SortResults sorts results in place by ascending distance, ties by key.
func SortResults[K cmp.Ordered, P any](results []Result[K, P]) {
	slices.SortStableFunc(results, CompareResults[K, P])
}
