package vecindex

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecindex/index/hnsw"
	"github.com/hupe1980/vecindex/point"
	"github.com/hupe1980/vecindex/testutil"
)

func TestConstructors(t *testing.T) {
	h, err := NewHNSW[int, point.Vector](func(o *hnsw.Options) { o.M = 8 })
	require.NoError(t, err)
	assert.Equal(t, "HNSW", h.Name())

	_, err = NewHNSW[int, point.Vector](func(o *hnsw.Options) { o.M = 0 })
	assert.ErrorIs(t, err, ErrInvalidParameter)

	n := NewNaive[string, point.EuclideanVector]()
	assert.Equal(t, "Naive", n.Name())
}

func TestBackendsAreInterchangeable(t *testing.T) {
	h, err := NewHNSW[int, point.Vector]()
	require.NoError(t, err)

	for _, idx := range []Index[int, point.Vector]{h, NewNaive[int, point.Vector]()} {
		_, err := idx.Find(point.Vector{1, 0}, 1)
		assert.ErrorIs(t, err, ErrEmptyIndex)

		require.NoError(t, idx.Insert(0, point.Vector{1, 0}))
		require.NoError(t, idx.Insert(1, point.Vector{0, 1}))
		require.NoError(t, idx.Insert(2, point.Vector{0, 0}))
		require.NoError(t, idx.Insert(3, point.Vector{1, 1}))

		assert.ErrorIs(t, idx.Insert(3, point.Vector{1, 1}), ErrDuplicateKey)
		assert.ErrorIs(t, idx.Insert(4, point.Vector{1, 1, 1}), ErrDimensionMismatch)

		keys, err := idx.FindKeys(point.Vector{1, 0}, 3)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 3, 1}, keys)
		assert.Equal(t, 4, idx.Len())
	}
}

func TestSynchronized(t *testing.T) {
	h, err := NewHNSW[int, point.EuclideanVector](func(o *hnsw.Options) { o.M = 8; o.EFConstruction = 32 })
	require.NoError(t, err)
	idx := Synchronize[int, point.EuclideanVector](h)
	assert.Equal(t, "HNSW", idx.Name())

	const (
		writers   = 4
		perWriter = 50
	)

	vectors := testutil.NewRNG(11).UniformVectors(writers*perWriter, 4)

	var wg sync.WaitGroup
	for w := range writers {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := range perWriter {
				key := w*perWriter + j
				assert.NoError(t, idx.Insert(key, point.EuclideanVector(vectors[key])))
			}
		}()
		go func() {
			defer wg.Done()
			for range perWriter {
				_, err := idx.FindKeys(point.EuclideanVector{0.5, 0.5, 0.5, 0.5}, 3)
				if err != nil {
					assert.ErrorIs(t, err, ErrEmptyIndex)
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, writers*perWriter, idx.Len())
	idx.Do(func(inner Index[int, point.EuclideanVector]) {
		assert.NoError(t, inner.(*hnsw.Index[int, point.EuclideanVector]).Validate())
	})
}

func TestInstrumented(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	mc := &BasicMetricsCollector{}

	idx := Instrument[int, point.Vector](NewNaive[int, point.Vector](), WithLogger(logger), WithMetricsCollector(mc))
	assert.Equal(t, "Naive", idx.Name())

	require.NoError(t, idx.Insert(1, point.Vector{1, 0}))
	require.Error(t, idx.Insert(1, point.Vector{1, 0}))
	_, err := idx.FindKeys(point.Vector{1, 0}, 1)
	require.NoError(t, err)
	_, err = idx.Find(point.Vector{1, 0}, -1)
	require.Error(t, err)
	assert.Equal(t, 1, idx.Len())

	stats := mc.GetStats()
	assert.Equal(t, int64(2), stats.InsertCount)
	assert.Equal(t, int64(1), stats.InsertErrors)
	assert.Equal(t, int64(2), stats.FindCount)
	assert.Equal(t, int64(1), stats.FindErrors)

	out := buf.String()
	assert.Contains(t, out, "insert completed")
	assert.Contains(t, out, "insert failed")
	assert.Contains(t, out, "find completed")
	assert.Contains(t, out, "index=Naive")
}

func TestFindBatch(t *testing.T) {
	h, err := NewHNSW[int, point.EuclideanVector]()
	require.NoError(t, err)

	rng := testutil.NewRNG(21)
	for i, v := range rng.UniformVectors(200, 4) {
		require.NoError(t, h.Insert(i, point.EuclideanVector(v)))
	}

	raw := rng.UniformVectors(32, 4)
	queries := make([]point.EuclideanVector, len(raw))
	for i, q := range raw {
		queries[i] = point.EuclideanVector(q)
	}

	t.Run("MatchesSequential", func(t *testing.T) {
		mc := &BasicMetricsCollector{}
		batch, err := FindBatch[int, point.EuclideanVector](context.Background(), h, queries, 5, WithConcurrency(4), WithMetricsCollector(mc))
		require.NoError(t, err)
		require.Len(t, batch, len(queries))

		for i, q := range queries {
			want, err := h.Find(q, 5)
			require.NoError(t, err)
			assert.Equal(t, want, batch[i])
		}

		stats := mc.GetStats()
		assert.Equal(t, int64(1), stats.BatchFindCount)
		assert.Equal(t, int64(len(queries)), stats.BatchFindQueries)
	})

	t.Run("PropagatesErrors", func(t *testing.T) {
		bad := append([]point.EuclideanVector{}, queries...)
		bad[7] = point.EuclideanVector{1}

		_, err := FindBatch[int, point.EuclideanVector](context.Background(), h, bad, 5)
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})

	t.Run("Canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := FindBatch[int, point.EuclideanVector](ctx, h, queries, 5)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Empty", func(t *testing.T) {
		batch, err := FindBatch[int, point.EuclideanVector](context.Background(), h, nil, 5)
		require.NoError(t, err)
		assert.Empty(t, batch)
	})
}
