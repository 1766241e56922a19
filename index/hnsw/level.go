package hnsw

import (
	"math"
	"math/rand/v2"
)

// LevelCap is the highest level a node can be assigned. Draws that would
// land above it (huge NormalizationFactor values or draws close to 1) are
// clamped.
const LevelCap = 64

// RandomSource yields uniform draws in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// NewSeededSource returns a deterministic PCG stream for seed.
func NewSeededSource(seed int64) RandomSource {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// ScriptedSource replays a fixed sequence of draws, cycling when exhausted.
// It pins node levels in tests.
type ScriptedSource struct {
	values []float64
	next   int
}

// NewScriptedSource creates a source that returns values in order.
func NewScriptedSource(values ...float64) *ScriptedSource {
	return &ScriptedSource{values: values}
}

// Float64 returns the next scripted value, or 0 for an empty script.
func (s *ScriptedSource) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// DrawForLevel returns a draw that maps to level under multiplier.
// Feed its results to a ScriptedSource to build graphs with known levels.
func DrawForLevel(level int, multiplier float64) float64 {
	return 1 - math.Exp(-(float64(level)+0.5)/multiplier)
}

// drawLevel maps one draw x to floor(-ln(1-x) * multiplier), at most LevelCap.
func drawLevel(src RandomSource, multiplier float64) int {
	x := src.Float64()
	if x < 0 || math.IsNaN(x) {
		x = 0
	}

	u := 1 - x
	if u <= 0 {
		u = math.SmallestNonzeroFloat64
	}

	level := math.Floor(-math.Log(u) * multiplier)
	if level > LevelCap {
		return LevelCap
	}

	return int(level)
}
