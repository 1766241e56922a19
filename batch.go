package vecindex

import (
	"cmp"
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/vecindex/point"
)

// FindBatch runs Find for every query concurrently and returns the results
// in query order. The first failing query cancels the rest.
//
// idx must tolerate concurrent reads: a Synchronized index, or any backend
// with no insert in flight.
func FindBatch[K cmp.Ordered, P point.Point[P]](ctx context.Context, idx Index[K, P], queries []P, n int, opts ...Option) ([][]Result[K, P], error) {
	o := applyOptions(opts)
	start := time.Now()

	results, err := findBatch(ctx, idx, queries, n, o.concurrency)

	o.metricsCollector.RecordBatchFind(len(queries), time.Since(start), err)
	o.logger.LogBatchFind(len(queries), n, err)

	return results, err
}

func findBatch[K cmp.Ordered, P point.Point[P]](ctx context.Context, idx Index[K, P], queries []P, n, limit int) ([][]Result[K, P], error) {
	results := make([][]Result[K, P], len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, q := range queries {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := idx.Find(q, n)
			if err != nil {
				return fmt.Errorf("query %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
