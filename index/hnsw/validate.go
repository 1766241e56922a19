package hnsw

import (
	"errors"
	"fmt"
)

// ErrCorruptGraph is returned by Validate when a structural invariant is broken.
var ErrCorruptGraph = errors.New("hnsw: corrupt graph")

// Validate checks the structural invariants of the graph: every edge is
// symmetric, no node links to itself or above its level, degrees are
// bounded by M, and the entry point sits on the maximum level.
func (h *Index[K, P]) Validate() error {
	var err error

	top := -1
	h.nodes.Scan(func(key K, n *node[K, P]) bool {
		if n.key != key {
			err = fmt.Errorf("%w: node stored under %v has key %v", ErrCorruptGraph, key, n.key)
			return false
		}

		top = max(top, n.level())

		for l, links := range n.links {
			if links.Len() > h.opts.M {
				err = fmt.Errorf("%w: node %v has degree %d > %d at level %d", ErrCorruptGraph, key, links.Len(), h.opts.M, l)
				return false
			}

			links.Scan(func(nk K, e edge[K, P]) bool {
				switch stored, ok := h.nodes.Get(nk); {
				case nk == key:
					err = fmt.Errorf("%w: node %v links to itself at level %d", ErrCorruptGraph, key, l)
				case !ok || stored != e.to:
					err = fmt.Errorf("%w: node %v links to unknown node %v at level %d", ErrCorruptGraph, key, nk, l)
				case e.to.level() < l:
					err = fmt.Errorf("%w: node %v links to %v above its level at level %d", ErrCorruptGraph, key, nk, l)
				default:
					if back, ok := e.to.links[l].Get(key); !ok || back.to != n {
						err = fmt.Errorf("%w: edge %v -> %v at level %d is not symmetric", ErrCorruptGraph, key, nk, l)
					}
				}
				return err == nil
			})
			if err != nil {
				return false
			}
		}

		return true
	})
	if err != nil {
		return err
	}

	if h.nodes.Len() == 0 {
		if h.entry != nil || h.maxLevel != 0 {
			return fmt.Errorf("%w: empty graph has an entry point", ErrCorruptGraph)
		}
		return nil
	}

	if h.entry == nil {
		return fmt.Errorf("%w: missing entry point", ErrCorruptGraph)
	}
	if top != h.maxLevel {
		return fmt.Errorf("%w: max level %d, highest node level %d", ErrCorruptGraph, h.maxLevel, top)
	}
	if h.entry.level() != h.maxLevel {
		return fmt.Errorf("%w: entry point %v has level %d, want %d", ErrCorruptGraph, h.entry.key, h.entry.level(), h.maxLevel)
	}

	return nil
}
