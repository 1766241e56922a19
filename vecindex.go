package vecindex

import (
	"cmp"

	"github.com/hupe1980/vecindex/index"
	"github.com/hupe1980/vecindex/index/hnsw"
	"github.com/hupe1980/vecindex/index/naive"
	"github.com/hupe1980/vecindex/point"
)

// Index is the contract shared by every backend.
type Index[K cmp.Ordered, P point.Point[P]] = index.Index[K, P]

// Result is a single search hit.
type Result[K cmp.Ordered, P any] = index.Result[K, P]

// NewHNSW creates an empty HNSW index.
func NewHNSW[K cmp.Ordered, P point.Point[P]](optFns ...func(o *hnsw.Options)) (*hnsw.Index[K, P], error) {
	return hnsw.New[K, P](optFns...)
}

// NewNaive creates an empty exact index.
func NewNaive[K cmp.Ordered, P point.Point[P]]() *naive.Index[K, P] {
	return naive.New[K, P]()
}

// name reports the backend name of idx, unwrapping wrappers.
func name[K cmp.Ordered, P point.Point[P]](idx Index[K, P]) string {
	if n, ok := idx.(interface{ Name() string }); ok {
		return n.Name()
	}
	return "unknown"
}
