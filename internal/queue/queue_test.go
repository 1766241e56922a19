package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinQueue(t *testing.T) {
	pq := NewMin[int, string](4)
	pq.PushItem(Item[int, string]{Key: 3, Value: "c", Distance: 0.5})
	pq.PushItem(Item[int, string]{Key: 1, Value: "a", Distance: 0.1})
	pq.PushItem(Item[int, string]{Key: 2, Value: "b", Distance: 0.5})

	top, ok := pq.TopItem()
	require.True(t, ok)
	assert.Equal(t, 1, top.Key)

	var keys []int
	for pq.Len() > 0 {
		item, _ := pq.PopItem()
		keys = append(keys, item.Key)
	}
	// Equal distances pop in key order.
	assert.Equal(t, []int{1, 2, 3}, keys)

	_, ok = pq.PopItem()
	assert.False(t, ok)
}

func TestMaxQueue(t *testing.T) {
	pq := NewMax[int, struct{}](4)
	for i, d := range []float64{0.3, 0.9, 0.1, 0.9} {
		pq.PushItem(Item[int, struct{}]{Key: i, Distance: d})
	}

	top, ok := pq.TopItem()
	require.True(t, ok)
	assert.Equal(t, 3, top.Key)
	assert.InDelta(t, 0.9, top.Distance, 1e-12)
}

func TestDrain(t *testing.T) {
	for _, pq := range []*PriorityQueue[int, struct{}]{NewMin[int, struct{}](0), NewMax[int, struct{}](0)} {
		for i, d := range []float64{0.4, 0.2, 0.8, 0.2} {
			pq.PushItem(Item[int, struct{}]{Key: i, Distance: d})
		}

		items := pq.Drain()
		require.Len(t, items, 4)
		keys := make([]int, len(items))
		for i, item := range items {
			keys[i] = item.Key
		}
		assert.Equal(t, []int{1, 3, 0, 2}, keys)
		assert.Zero(t, pq.Len())
	}
}
