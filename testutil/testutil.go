package testutil

import (
	"math/rand"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// UniformVectors generates random vectors with values in range [0, 1).
// Every vector has its own backing array so callers may mutate them freely.
func (r *RNG) UniformVectors(num int, dimensions int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	vectors := make([][]float64, num)
	for i := range vectors {
		vec := make([]float64, dimensions)
		for j := range vec {
			vec[j] = r.rand.Float64()
		}
		vectors[i] = vec
	}

	return vectors
}

// gaussianVectors generates random vectors with values from a standard normal distribution.
func (r *RNG) gaussianVectors(num int, dimensions int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	vectors := make([][]float64, num)
	for i := range vectors {
		vec := make([]float64, dimensions)
		for j := range vec {
			vec[j] = r.rand.NormFloat64()
		}
		vectors[i] = vec
	}

	return vectors
}

// UnitVectors generates L2-normalized random vectors (on the hypersphere).
// Uses Gaussian distribution for uniform distribution on the sphere.
func (r *RNG) UnitVectors(num int, dimensions int) [][]float64 {
	vectors := r.gaussianVectors(num, dimensions)
	for _, vec := range vectors {
		norm := floats.Norm(vec, 2)
		if norm == 0 {
			continue
		}
		floats.Scale(1/norm, vec)
	}
	return vectors
}

// UnitVectors32 is UnitVectors converted to float32.
func (r *RNG) UnitVectors32(num int, dimensions int) [][]float32 {
	src := r.UnitVectors(num, dimensions)
	vectors := make([][]float32, num)
	for i, vec := range src {
		v32 := make([]float32, len(vec))
		for j, x := range vec {
			v32[j] = float32(x)
		}
		vectors[i] = v32
	}
	return vectors
}

// ClusteredVectors generates vectors clustered around random centroids.
// Useful for testing ANN index quality on non-uniform data.
func (r *RNG) ClusteredVectors(num, dim, clusters int, spread float64) [][]float64 {
	centroids := r.UnitVectors(clusters, dim)

	r.mu.Lock()
	defer r.mu.Unlock()

	vectors := make([][]float64, num)
	for i := range vectors {
		centroid := centroids[i%clusters]
		vec := make([]float64, dim)
		for j := range vec {
			vec[j] = centroid[j] + r.rand.NormFloat64()*spread
		}
		vectors[i] = vec
	}

	return vectors
}

// ComputeRecall computes recall@k by comparing approximate keys against ground truth.
func ComputeRecall[K comparable](groundTruth, approximate []K) float64 {
	if len(groundTruth) == 0 || len(approximate) == 0 {
		if len(groundTruth) == 0 && len(approximate) == 0 {
			return 1.0
		}
		return 0.0
	}

	k := min(len(approximate), len(groundTruth))

	truthSet := make(map[K]struct{}, k)
	for i := range k {
		truthSet[groundTruth[i]] = struct{}{}
	}

	hits := 0
	for _, key := range approximate[:k] {
		if _, ok := truthSet[key]; ok {
			hits++
		}
	}

	return float64(hits) / float64(k)
}
