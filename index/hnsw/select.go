package hnsw

import (
	"slices"

	"github.com/hupe1980/vecindex/internal/queue"
)

// selectNeighbors picks at most m of the ascending candidates.
func (h *Index[K, P]) selectNeighbors(candidates []candidate[K, P], m int) ([]candidate[K, P], error) {
	if h.opts.Heuristic {
		return h.selectNeighborsHeuristic(candidates, m)
	}
	return selectNeighborsSimple(candidates, m), nil
}

// selectNeighborsSimple keeps the m closest candidates.
func selectNeighborsSimple[V any](candidates []V, m int) []V {
	if len(candidates) > m {
		return candidates[:m]
	}
	return candidates
}

// selectNeighborsHeuristic prefers candidates that are closer to the new
// point than to any already selected neighbor, then fills up with the
// closest remaining candidates.
func (h *Index[K, P]) selectNeighborsHeuristic(candidates []candidate[K, P], m int) ([]candidate[K, P], error) {
	if len(candidates) <= m {
		return candidates, nil
	}

	result := make([]candidate[K, P], 0, m)

	for _, cand := range candidates {
		if len(result) >= m {
			break
		}

		good := true
		for _, r := range result {
			dist, err := cand.Value.point.Distance(r.Value.point)
			if err != nil {
				return nil, err
			}
			if dist < cand.Distance {
				good = false
				break
			}
		}

		if good {
			result = append(result, cand)
		}
	}

	for _, cand := range candidates {
		if len(result) >= m {
			break
		}
		if !slices.ContainsFunc(result, func(r candidate[K, P]) bool { return r.Key == cand.Key }) {
			result = append(result, cand)
		}
	}

	slices.SortFunc(result, queue.Compare[K, *node[K, P]])

	return result, nil
}
