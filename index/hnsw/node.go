package hnsw

import (
	"cmp"
	"slices"

	"github.com/tidwall/btree"

	"github.com/hupe1980/vecindex/internal/queue"
)

// edge is one half of an undirected link. The distance is cached so
// pruning never recomputes it.
type edge[K cmp.Ordered, P any] struct {
	to   *node[K, P]
	dist float64
}

// node is a stored point plus its per-level adjacency.
type node[K cmp.Ordered, P any] struct {
	key   K
	point P
	ord   uint32                      // dense ordinal for visited sets
	links []*btree.Map[K, edge[K, P]] // levels 0..level, keyed by neighbor
}

// candidate is a node at a known distance from the current query.
type candidate[K cmp.Ordered, P any] = queue.Item[K, *node[K, P]]

func newNode[K cmp.Ordered, P any](key K, p P, ord uint32, level int) *node[K, P] {
	n := &node[K, P]{
		key:   key,
		point: p,
		ord:   ord,
		links: make([]*btree.Map[K, edge[K, P]], level+1),
	}
	for i := range n.links {
		n.links[i] = &btree.Map[K, edge[K, P]]{}
	}
	return n
}

func (n *node[K, P]) level() int { return len(n.links) - 1 }

// neighbors returns the key-ordered neighbor keys at level.
func (n *node[K, P]) neighbors(level int) []K {
	return n.links[level].Keys()
}

// link connects a and b at level in both directions.
func link[K cmp.Ordered, P any](a, b *node[K, P], level int, dist float64) {
	a.links[level].Set(b.key, edge[K, P]{to: b, dist: dist})
	b.links[level].Set(a.key, edge[K, P]{to: a, dist: dist})
}

// unlink removes the edge between a and b at level in both directions.
func unlink[K cmp.Ordered, P any](a, b *node[K, P], level int) {
	a.links[level].Delete(b.key)
	b.links[level].Delete(a.key)
}

// prune shrinks n's neighbor set at level to its m closest entries
// (ties by key). Dropped edges are removed on both ends.
func prune[K cmp.Ordered, P any](n *node[K, P], level, m int) {
	links := n.links[level]
	if links.Len() <= m {
		return
	}

	edges := make([]candidate[K, P], 0, links.Len())
	links.Scan(func(key K, e edge[K, P]) bool {
		edges = append(edges, candidate[K, P]{Key: key, Value: e.to, Distance: e.dist})
		return true
	})
	slices.SortFunc(edges, queue.Compare[K, *node[K, P]])

	for _, e := range edges[m:] {
		unlink(n, e.Value, level)
	}
}
