// Package visited provides the pooled visited sets used by graph traversal.
package visited

import (
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
)

// VisitedSet tracks visited node ordinals in a roaring bitmap.
type VisitedSet struct {
	rb *roaring.Bitmap
}

var pool = sync.Pool{
	New: func() any {
		return &VisitedSet{rb: roaring.New()}
	},
}

// Get takes an empty visited set from the pool. Call Put when done.
func Get() *VisitedSet {
	v := pool.Get().(*VisitedSet)
	v.rb.Clear()
	return v
}

// Put returns a visited set to the pool.
func Put(v *VisitedSet) {
	if v == nil {
		return
	}
	v.rb.Clear()
	pool.Put(v)
}

// Visit marks a node as visited. It reports whether the node was unvisited before.
func (v *VisitedSet) Visit(id uint32) bool {
	return v.rb.CheckedAdd(id)
}
