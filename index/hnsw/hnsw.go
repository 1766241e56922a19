package hnsw

import (
	"cmp"
	"log/slog"

	"github.com/tidwall/btree"

	"github.com/hupe1980/vecindex/index"
	"github.com/hupe1980/vecindex/point"
)

// Compile time check to ensure Index satisfies the index interface.
var _ index.Index[int, point.Vector] = (*Index[int, point.Vector])(nil)

// Index represents the Hierarchical Navigable Small World graph.
//
// Index is not safe for concurrent mutation. Concurrent Find calls are safe
// while no Insert is in flight.
type Index[K cmp.Ordered, P point.Point[P]] struct {
	opts            Options
	layerMultiplier float64
	rng             RandomSource
	logger          *slog.Logger

	nodes    btree.Map[K, *node[K, P]]
	entry    *node[K, P]
	maxLevel int
}

// New creates a new, empty HNSW index.
func New[K cmp.Ordered, P point.Point[P]](optFns ...func(o *Options)) (*Index[K, P], error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	if err := opts.validate(); err != nil {
		return nil, err
	}

	rng := opts.RandomSource
	if rng == nil {
		rng = NewSeededSource(opts.RandomSeed)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Index[K, P]{
		opts:            opts,
		layerMultiplier: opts.levelMultiplier(),
		rng:             rng,
		logger:          logger,
	}, nil
}

// Name returns the name of the index.
func (*Index[K, P]) Name() string { return "HNSW" }

// Len returns the number of entries.
func (h *Index[K, P]) Len() int { return h.nodes.Len() }

// layerPlan holds the neighbors selected for the new node on one level.
type layerPlan[K cmp.Ordered, P any] struct {
	level     int
	neighbors []candidate[K, P]
}

// insertPlan is everything Insert needs to mutate the graph.
type insertPlan[K cmp.Ordered, P any] struct {
	key    K
	point  P
	level  int
	layers []layerPlan[K, P]
}

// Insert adds p under key.
//
// The insert is planned against the current graph first (validation,
// level draw, searches, neighbor selection) and committed afterwards. All
// distance computations happen while planning, so an error leaves the
// graph exactly as it was.
func (h *Index[K, P]) Insert(key K, p P) error {
	plan, err := h.plan(key, p)
	if err != nil {
		return err
	}

	h.commit(plan)

	return nil
}

func (h *Index[K, P]) plan(key K, p P) (*insertPlan[K, P], error) {
	if _, ok := h.nodes.Get(key); ok {
		return nil, index.DuplicateKeyError(key)
	}

	var entry candidate[K, P]
	if h.entry != nil {
		dist, err := p.Distance(h.entry.point)
		if err != nil {
			return nil, err
		}
		entry = candidate[K, P]{Key: h.entry.key, Value: h.entry, Distance: dist}
	}

	pl := &insertPlan[K, P]{
		key:   key,
		point: point.Clone(p),
		level: drawLevel(h.rng, h.layerMultiplier),
	}

	if h.entry == nil {
		return pl, nil
	}

	// Levels are searched top down; a level's links never influence the
	// search of the level below, so planning every level before linking
	// yields the same graph as interleaving.
	for level := min(pl.level, h.maxLevel); level >= 0; level-- {
		candidates, err := h.searchLayer(p, entry, h.opts.EFConstruction, level)
		if err != nil {
			return nil, err
		}

		neighbors, err := h.selectNeighbors(candidates, h.opts.M)
		if err != nil {
			return nil, err
		}

		pl.layers = append(pl.layers, layerPlan[K, P]{level: level, neighbors: neighbors})
		entry = candidates[0]
	}

	return pl, nil
}

// commit applies a plan. It computes no distances and cannot fail.
func (h *Index[K, P]) commit(pl *insertPlan[K, P]) {
	n := newNode(pl.key, pl.point, uint32(h.nodes.Len()), pl.level)
	h.nodes.Set(pl.key, n)

	for _, lp := range pl.layers {
		for _, nb := range lp.neighbors {
			link(n, nb.Value, lp.level, nb.Distance)
			prune(nb.Value, lp.level, h.opts.M)
		}
	}

	if h.entry == nil || pl.level > h.maxLevel {
		h.logger.Debug("hnsw: entry point changed", "key", pl.key, "level", pl.level, "previous_level", h.maxLevel)
		h.entry = n
		h.maxLevel = pl.level
	}
}

// Find returns up to n entries closest to query, ascending by distance.
// The base layer is searched with breadth max(n, EFSearch).
func (h *Index[K, P]) Find(query P, n int) ([]index.Result[K, P], error) {
	return h.FindWithEF(query, n, h.opts.EFSearch)
}

// FindWithEF is Find with a per-call base layer breadth of max(n, ef).
func (h *Index[K, P]) FindWithEF(query P, n, ef int) ([]index.Result[K, P], error) {
	if err := index.CheckN(n); err != nil {
		return nil, err
	}
	if ef < 0 {
		return nil, &index.ErrInvalidParameter{Name: "ef", Value: ef, Reason: "must not be negative"}
	}
	if h.entry == nil {
		return nil, index.ErrEmptyIndex
	}
	if n == 0 {
		return []index.Result[K, P]{}, nil
	}

	dist, err := query.Distance(h.entry.point)
	if err != nil {
		return nil, err
	}
	entry := candidate[K, P]{Key: h.entry.key, Value: h.entry, Distance: dist}

	for level := h.maxLevel; level >= 1; level-- {
		closest, err := h.searchLayer(query, entry, 1, level)
		if err != nil {
			return nil, err
		}
		entry = closest[0]
	}

	candidates, err := h.searchLayer(query, entry, max(n, ef), 0)
	if err != nil {
		return nil, err
	}
	if len(candidates) > n {
		candidates = candidates[:n]
	}

	results := make([]index.Result[K, P], len(candidates))
	for i, c := range candidates {
		results[i] = index.Result[K, P]{
			Key:      c.Key,
			Point:    point.Clone(c.Value.point),
			Distance: c.Distance,
		}
	}

	return results, nil
}

// FindKeys returns the keys of the n entries closest to query.
func (h *Index[K, P]) FindKeys(query P, n int) ([]K, error) {
	results, err := h.Find(query, n)
	if err != nil {
		return nil, err
	}
	return index.Keys(results), nil
}
