package hnsw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecindex/point"
)

func TestPrune(t *testing.T) {
	hub := newNode(0, point.EuclideanVector{0}, 0, 0)
	a := newNode(1, point.EuclideanVector{1}, 1, 0)
	b := newNode(2, point.EuclideanVector{2}, 2, 0)
	c := newNode(3, point.EuclideanVector{2}, 3, 0)

	link(hub, a, 0, 1)
	link(hub, b, 0, 2)
	link(hub, c, 0, 2)

	prune(hub, 0, 2)

	// Equal distances keep the smaller key.
	assert.Equal(t, []int{1, 2}, hub.neighbors(0))
	assert.Equal(t, []int{0}, b.neighbors(0))
	assert.Empty(t, c.neighbors(0))

	prune(hub, 0, 2)
	assert.Equal(t, []int{1, 2}, hub.neighbors(0))
}

func TestSelectNeighbors(t *testing.T) {
	// Candidates of the origin on a line: 1 and 2 sit together, -3 is alone.
	near := newNode(1, point.EuclideanVector{1}, 0, 0)
	twin := newNode(2, point.EuclideanVector{1.1}, 1, 0)
	far := newNode(3, point.EuclideanVector{-3}, 2, 0)
	candidates := []candidate[int, point.EuclideanVector]{
		{Key: 1, Value: near, Distance: 1},
		{Key: 2, Value: twin, Distance: 1.1},
		{Key: 3, Value: far, Distance: 3},
	}

	keys := func(cs []candidate[int, point.EuclideanVector]) []int {
		out := make([]int, len(cs))
		for i, c := range cs {
			out[i] = c.Key
		}
		return out
	}

	t.Run("Simple", func(t *testing.T) {
		h, err := New[int, point.EuclideanVector]()
		require.NoError(t, err)

		selected, err := h.selectNeighbors(candidates, 2)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, keys(selected))
	})

	t.Run("Heuristic", func(t *testing.T) {
		h, err := New[int, point.EuclideanVector](func(o *Options) { o.Heuristic = true })
		require.NoError(t, err)

		selected, err := h.selectNeighbors(candidates, 2)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 3}, keys(selected))

		// Candidate lists that already fit are kept as they are.
		selected, err = h.selectNeighbors(candidates[:2], 2)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, keys(selected))
	})
}

func TestSearchLayer(t *testing.T) {
	h, err := New[int, point.EuclideanVector](func(o *Options) {
		o.M = 2
		o.RandomSource = NewScriptedSource(0)
	})
	require.NoError(t, err)

	// Points on a line with M=2 form the path 0-1-...-9.
	for i := range 10 {
		require.NoError(t, h.Insert(i, point.EuclideanVector{float64(i)}))
	}
	require.NoError(t, h.Validate())

	query := point.EuclideanVector{9}
	dist, err := query.Distance(h.entry.point)
	require.NoError(t, err)
	entry := candidate[int, point.EuclideanVector]{Key: h.entry.key, Value: h.entry, Distance: dist}

	results, err := h.searchLayer(query, entry, 1, 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 9, results[0].Key)

	results, err = h.searchLayer(query, entry, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{9, 8, 7}, []int{results[0].Key, results[1].Key, results[2].Key})
}
