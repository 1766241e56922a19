// Package hnsw implements Hierarchical Navigable Small World graphs.
//
// HNSW provides approximate nearest neighbor search with high recall and
// sub-linear query time over any point type that can measure distances.
//
// # Features
//
//   - Generic over ordered keys and point types
//   - Deterministic construction (seeded or scripted level draws)
//   - Atomic inserts: a failed insert leaves the graph untouched
//   - Symmetric adjacency with bounded degree
//   - Optional diversity heuristic for neighbor selection
//
// # Parameters
//
//   - M: Max connections per node and level (default: 16)
//   - EFConstruction: Construction candidate list size (default: 100)
//   - EFSearch: Base layer search breadth (default: the requested n)
//   - NormalizationFactor: Level distribution multiplier (default: 1/ln(M))
//
// # Reference
//
// Malkov & Yashunin, "Efficient and robust approximate nearest neighbor search
// using Hierarchical Navigable Small World graphs", IEEE TPAMI 2018.
package hnsw
