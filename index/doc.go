// Package index defines the contract shared by every nearest-neighbor backend.
//
// Two backends implement it:
//
//   - naive: exact search by scanning every point (correctness oracle)
//   - hnsw: approximate search over a Hierarchical Navigable Small World graph
//
// # Index Interface
//
//	type Index[K cmp.Ordered, P point.Point[P]] interface {
//	    Insert(key K, p P) error
//	    Find(query P, n int) ([]Result[K, P], error)
//	    FindKeys(query P, n int) ([]K, error)
//	    Len() int
//	}
//
// Results are ordered by ascending distance to the query. Callers can swap
// one backend for another without touching call sites.
//
// # Errors
//
//   - ErrEmptyIndex: Find on an index without entries
//   - ErrDuplicateKey: Insert with a key that is already present
//   - *ErrInvalidParameter: degenerate construction or query arguments
//   - *point.ErrDimensionMismatch: incomparable points
package index
