package queue

import "cmp"

// Item represents an entry in the priority queue.
type Item[K cmp.Ordered, V any] struct {
	Key      K       // Key breaks distance ties.
	Value    V       // Value is the payload of the item.
	Distance float64 // Distance is the priority of the item in the queue.
}

// PriorityQueue is a binary heap of items ordered by (Distance, Key).
// A min-heap pops the closest item first, a max-heap the farthest.
type PriorityQueue[K cmp.Ordered, V any] struct {
	isMaxHeap bool
	items     []Item[K, V]
}

// NewMin initializes a new priority queue with minimum priority.
func NewMin[K cmp.Ordered, V any](capacity int) *PriorityQueue[K, V] {
	return &PriorityQueue[K, V]{
		isMaxHeap: false,
		items:     make([]Item[K, V], 0, capacity),
	}
}

// NewMax initializes a new priority queue with maximum priority.
func NewMax[K cmp.Ordered, V any](capacity int) *PriorityQueue[K, V] {
	return &PriorityQueue[K, V]{
		isMaxHeap: true,
		items:     make([]Item[K, V], 0, capacity),
	}
}

// Len returns the number of elements in the priority queue.
func (pq *PriorityQueue[K, V]) Len() int { return len(pq.items) }

// TopItem returns the top element of the heap.
func (pq *PriorityQueue[K, V]) TopItem() (Item[K, V], bool) {
	if len(pq.items) == 0 {
		return Item[K, V]{}, false
	}
	return pq.items[0], true
}

// PushItem inserts an item while maintaining the heap invariant.
func (pq *PriorityQueue[K, V]) PushItem(item Item[K, V]) {
	pq.items = append(pq.items, item)
	pq.siftUp(len(pq.items) - 1)
}

// PopItem removes and returns the top element while maintaining the heap invariant.
func (pq *PriorityQueue[K, V]) PopItem() (Item[K, V], bool) {
	n := len(pq.items)
	if n == 0 {
		return Item[K, V]{}, false
	}
	root := pq.items[0]
	last := pq.items[n-1]
	pq.items[n-1] = Item[K, V]{}
	pq.items = pq.items[:n-1]
	if n-1 > 0 {
		pq.items[0] = last
		pq.siftDown(0)
	}
	return root, true
}

// Drain empties the queue and returns its items in ascending
// (Distance, Key) order regardless of the heap direction.
func (pq *PriorityQueue[K, V]) Drain() []Item[K, V] {
	out := make([]Item[K, V], len(pq.items))
	if pq.isMaxHeap {
		for i := len(out) - 1; i >= 0; i-- {
			out[i], _ = pq.PopItem()
		}
		return out
	}
	for i := range out {
		out[i], _ = pq.PopItem()
	}
	return out
}

// Compare orders two items by distance, then by key.
func Compare[K cmp.Ordered, V any](a, b Item[K, V]) int {
	if c := cmp.Compare(a.Distance, b.Distance); c != 0 {
		return c
	}
	return cmp.Compare(a.Key, b.Key)
}

// Less reports whether a sorts before b under Compare.
func Less[K cmp.Ordered, V any](a, b Item[K, V]) bool {
	return Compare(a, b) < 0
}

func (pq *PriorityQueue[K, V]) less(i, j int) bool {
	if pq.isMaxHeap {
		return Less(pq.items[j], pq.items[i])
	}
	return Less(pq.items[i], pq.items[j])
}

func (pq *PriorityQueue[K, V]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !pq.less(i, p) {
			return
		}
		pq.items[i], pq.items[p] = pq.items[p], pq.items[i]
		i = p
	}
}

func (pq *PriorityQueue[K, V]) siftDown(i int) {
	n := len(pq.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		r := l + 1
		if r < n && pq.less(r, l) {
			best = r
		}
		if !pq.less(best, i) {
			return
		}
		pq.items[i], pq.items[best] = pq.items[best], pq.items[i]
		i = best
	}
}
