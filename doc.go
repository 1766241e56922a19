// Package vecindex provides generic nearest-neighbor indexes for Go.
//
// Two backends share one interface, so callers can swap strategies without
// changing call sites:
//
//   - naive: exact brute-force scan, the correctness baseline
//   - hnsw: Hierarchical Navigable Small World graph, approximate and fast
//
// # Quick Start
//
//	idx, _ := vecindex.NewHNSW[int, point.Vector](func(o *hnsw.Options) {
//	    o.M = 16
//	    o.EFConstruction = 200
//	})
//	_ = idx.Insert(1, point.Vector{0.1, 0.9})
//	keys, _ := idx.FindKeys(point.Vector{0.2, 0.8}, 10)
//
// # Points
//
// Any type implementing point.Point can be indexed. The point package ships
// cosine (float64 and float32) and Euclidean vectors.
//
// # Concurrency
//
// Indexes are single-writer. Wrap an index with Synchronize to share it
// between goroutines, and use FindBatch to fan out read-only queries.
//
// # Observability
//
// Instrument wraps an index with structured logging (log/slog) and a
// MetricsCollector. The metrics/prom package adapts the collector to
// Prometheus.
package vecindex
