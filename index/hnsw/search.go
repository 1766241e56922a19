package hnsw

import (
	"github.com/hupe1980/vecindex/internal/queue"
	"github.com/hupe1980/vecindex/internal/visited"
)

// searchLayer runs a greedy best-first search on one level, starting at
// entry, and returns up to ef candidates in ascending (distance, key) order.
//
// The search stops once the closest unexpanded candidate is worse than the
// worst of a full result list. Neighbors are expanded in key order.
func (h *Index[K, P]) searchLayer(query P, entry candidate[K, P], ef, level int) ([]candidate[K, P], error) {
	vis := visited.Get()
	defer visited.Put(vis)

	frontier := queue.NewMin[K, *node[K, P]](ef)
	results := queue.NewMax[K, *node[K, P]](ef + 1)

	vis.Visit(entry.Value.ord)
	frontier.PushItem(entry)
	results.PushItem(entry)

	var err error

	for frontier.Len() > 0 {
		cur, _ := frontier.PopItem()

		if worst, _ := results.TopItem(); results.Len() >= ef && queue.Less(worst, cur) {
			break
		}

		cur.Value.links[level].Scan(func(key K, e edge[K, P]) bool {
			if !vis.Visit(e.to.ord) {
				return true
			}

			var dist float64
			if dist, err = query.Distance(e.to.point); err != nil {
				return false
			}

			c := candidate[K, P]{Key: key, Value: e.to, Distance: dist}
			frontier.PushItem(c)

			if results.Len() < ef {
				results.PushItem(c)
			} else if worst, _ := results.TopItem(); queue.Less(c, worst) {
				_, _ = results.PopItem()
				results.PushItem(c)
			}

			return true
		})

		if err != nil {
			return nil, err
		}
	}

	return results.Drain(), nil
}
