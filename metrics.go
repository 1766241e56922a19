package vecindex

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; the
// metrics/prom package provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordInsert is called after each insert operation.
	// duration is the total time taken, err is nil if successful.
	RecordInsert(duration time.Duration, err error)

	// RecordFind is called after each find operation.
	// n is the number of neighbors requested, duration is the time taken,
	// err is nil if successful.
	RecordFind(n int, duration time.Duration, err error)

	// RecordBatchFind is called after each batch find.
	// queries is the number of queries submitted.
	RecordBatchFind(queries int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration, error)         {}
func (NoopMetricsCollector) RecordFind(int, time.Duration, error)      {}
func (NoopMetricsCollector) RecordBatchFind(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount      atomic.Int64
	InsertErrors     atomic.Int64
	InsertTotalNanos atomic.Int64
	FindCount        atomic.Int64
	FindErrors       atomic.Int64
	FindTotalNanos   atomic.Int64
	BatchFindCount   atomic.Int64
	BatchFindQueries atomic.Int64
	BatchFindErrors  atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, err error) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InsertErrors.Add(1)
	}
}

// RecordFind implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFind(n int, duration time.Duration, err error) {
	b.FindCount.Add(1)
	b.FindTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FindErrors.Add(1)
	}
}

// RecordBatchFind implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchFind(queries int, duration time.Duration, err error) {
	b.BatchFindCount.Add(1)
	b.BatchFindQueries.Add(int64(queries))
	if err != nil {
		b.BatchFindErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:      b.InsertCount.Load(),
		InsertErrors:     b.InsertErrors.Load(),
		InsertAvgNanos:   avgNanos(b.InsertTotalNanos.Load(), b.InsertCount.Load()),
		FindCount:        b.FindCount.Load(),
		FindErrors:       b.FindErrors.Load(),
		FindAvgNanos:     avgNanos(b.FindTotalNanos.Load(), b.FindCount.Load()),
		BatchFindCount:   b.BatchFindCount.Load(),
		BatchFindQueries: b.BatchFindQueries.Load(),
		BatchFindErrors:  b.BatchFindErrors.Load(),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InsertCount      int64
	InsertErrors     int64
	InsertAvgNanos   int64
	FindCount        int64
	FindErrors       int64
	FindAvgNanos     int64
	BatchFindCount   int64
	BatchFindQueries int64
	BatchFindErrors  int64
}
