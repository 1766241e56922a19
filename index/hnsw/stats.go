package hnsw

import (
	"fmt"
	"strconv"
)

// LevelStats describes one level of the graph.
type LevelStats struct {
	Level          int
	Nodes          int // nodes resident on the level
	Connections    int // directed edge count, twice the undirected links
	AvgConnections int
}

// Stats contains statistics about the HNSW graph.
type Stats struct {
	Options    map[string]string
	Parameters map[string]string
	Storage    map[string]string
	Levels     []LevelStats
}

// Stats returns statistics about the HNSW graph.
func (h *Index[K, P]) Stats() Stats {
	levels := make([]LevelStats, h.maxLevel+1)
	for i := range levels {
		levels[i].Level = i
	}

	h.nodes.Scan(func(_ K, n *node[K, P]) bool {
		for l := 0; l <= n.level(); l++ {
			levels[l].Nodes++
			levels[l].Connections += n.links[l].Len()
		}
		return true
	})

	for i := range levels {
		if levels[i].Nodes > 0 {
			levels[i].AvgConnections = levels[i].Connections / levels[i].Nodes
		}
	}

	return Stats{
		Options: map[string]string{
			"Type":      h.Name(),
			"Heuristic": strconv.FormatBool(h.opts.Heuristic),
		},
		Parameters: map[string]string{
			"M":                   strconv.Itoa(h.opts.M),
			"EFConstruction":      strconv.Itoa(h.opts.EFConstruction),
			"EFSearch":            strconv.Itoa(h.opts.EFSearch),
			"NormalizationFactor": fmt.Sprintf("%g", h.layerMultiplier),
		},
		Storage: map[string]string{
			"Nodes":    strconv.Itoa(h.nodes.Len()),
			"MaxLevel": strconv.Itoa(h.maxLevel),
		},
		Levels: levels,
	}
}

// Neighbors returns the key-ordered neighbors of key at level. It reports
// false when key is unknown or does not reach level.
func (h *Index[K, P]) Neighbors(key K, level int) ([]K, bool) {
	n, ok := h.nodes.Get(key)
	if !ok || level < 0 || level > n.level() {
		return nil, false
	}
	return n.neighbors(level), true
}

// Level returns the level assigned to key.
func (h *Index[K, P]) Level(key K) (int, bool) {
	n, ok := h.nodes.Get(key)
	if !ok {
		return 0, false
	}
	return n.level(), true
}

// MaxLevel returns the highest level of the graph, 0 when empty.
func (h *Index[K, P]) MaxLevel() int { return h.maxLevel }

// EntryPoint returns the key searches start from.
func (h *Index[K, P]) EntryPoint() (K, bool) {
	if h.entry == nil {
		var zero K
		return zero, false
	}
	return h.entry.key, true
}
