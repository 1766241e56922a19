// Package prom exports vecindex metrics to Prometheus.
package prom

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/vecindex"
)

// Compile time check to ensure Collector satisfies the metrics interface.
var _ vecindex.MetricsCollector = (*Collector)(nil)

const (
	opInsert    = "insert"
	opFind      = "find"
	opBatchFind = "batch_find"
)

// Options configures the Prometheus collector.
type Options struct {
	// Namespace prefixes every metric name.
	Namespace string

	// Buckets are the latency histogram buckets in seconds.
	Buckets []float64

	// ConstLabels are attached to every metric, e.g. the index name.
	ConstLabels prometheus.Labels
}

// DefaultOptions contains the default options for the collector.
var DefaultOptions = Options{
	Namespace: "vecindex",
	Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1, .5, 1},
}

// Collector implements vecindex.MetricsCollector on Prometheus metrics.
type Collector struct {
	opLatency    *prometheus.HistogramVec
	ops          *prometheus.CounterVec
	requestedN   prometheus.Histogram
	batchQueries prometheus.Counter
}

// New creates a collector and registers its metrics on reg.
func New(reg prometheus.Registerer, optFns ...func(o *Options)) (*Collector, error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	c := &Collector{
		opLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   opts.Namespace,
			Name:        "operation_latency_seconds",
			Help:        "Latency of index operations",
			Buckets:     opts.Buckets,
			ConstLabels: opts.ConstLabels,
		}, []string{"op", "status"}),
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   opts.Namespace,
			Name:        "operations_total",
			Help:        "Total index operations processed",
			ConstLabels: opts.ConstLabels,
		}, []string{"op", "status"}),
		requestedN: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   opts.Namespace,
			Name:        "find_requested_results",
			Help:        "Number of neighbors requested per find",
			Buckets:     prometheus.ExponentialBuckets(1, 2, 10),
			ConstLabels: opts.ConstLabels,
		}),
		batchQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   opts.Namespace,
			Name:        "batch_find_queries_total",
			Help:        "Total queries submitted through batch find",
			ConstLabels: opts.ConstLabels,
		}),
	}

	for _, m := range []prometheus.Collector{c.opLatency, c.ops, c.requestedN, c.batchQueries} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// RecordInsert implements vecindex.MetricsCollector.
func (c *Collector) RecordInsert(duration time.Duration, err error) {
	c.observe(opInsert, duration, err)
}

// RecordFind implements vecindex.MetricsCollector.
func (c *Collector) RecordFind(n int, duration time.Duration, err error) {
	c.observe(opFind, duration, err)
	c.requestedN.Observe(float64(n))
}

// RecordBatchFind implements vecindex.MetricsCollector.
func (c *Collector) RecordBatchFind(queries int, duration time.Duration, err error) {
	c.observe(opBatchFind, duration, err)
	c.batchQueries.Add(float64(queries))
}

func (c *Collector) observe(op string, duration time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	c.opLatency.WithLabelValues(op, status).Observe(duration.Seconds())
	c.ops.WithLabelValues(op, status).Inc()
}
