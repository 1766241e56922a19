package vecindex

import (
	"cmp"
	"time"

	"github.com/hupe1980/vecindex/index"
	"github.com/hupe1980/vecindex/point"
)

// Instrumented logs and measures every operation of the wrapped index.
type Instrumented[K cmp.Ordered, P point.Point[P]] struct {
	idx     Index[K, P]
	logger  *Logger
	metrics MetricsCollector
}

// Instrument wraps idx with the logger and metrics collector from opts.
func Instrument[K cmp.Ordered, P point.Point[P]](idx Index[K, P], opts ...Option) *Instrumented[K, P] {
	o := applyOptions(opts)
	return &Instrumented[K, P]{
		idx:     idx,
		logger:  o.logger.WithIndex(name(idx)),
		metrics: o.metricsCollector,
	}
}

// Name returns the name of the wrapped index.
func (i *Instrumented[K, P]) Name() string { return name(i.idx) }

// Insert adds p under key.
func (i *Instrumented[K, P]) Insert(key K, p P) error {
	start := time.Now()
	err := i.idx.Insert(key, p)
	i.metrics.RecordInsert(time.Since(start), err)
	i.logger.LogInsert(key, err)
	return err
}

// Find returns the n entries closest to query.
func (i *Instrumented[K, P]) Find(query P, n int) ([]Result[K, P], error) {
	start := time.Now()
	results, err := i.idx.Find(query, n)
	i.metrics.RecordFind(n, time.Since(start), err)
	i.logger.LogFind(n, len(results), err)
	return results, err
}

// FindKeys returns the keys of the n entries closest to query.
func (i *Instrumented[K, P]) FindKeys(query P, n int) ([]K, error) {
	results, err := i.Find(query, n)
	if err != nil {
		return nil, err
	}
	return index.Keys(results), nil
}

// Len returns the number of entries.
func (i *Instrumented[K, P]) Len() int { return i.idx.Len() }
