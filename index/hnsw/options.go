package hnsw

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/vecindex/index"
)

const (
	// DefaultM is the default number of bidirectional links per level.
	DefaultM = 16

	// DefaultEFConstruction is the default size of the dynamic candidate list.
	DefaultEFConstruction = 100

	// DefaultSeed seeds the level generator when no RandomSource is given.
	DefaultSeed int64 = 0
)

// Options represents the options for configuring HNSW.
type Options struct {
	// M bounds the degree of every node on every level.
	M int `yaml:"m"`

	// EFConstruction is the search breadth used while inserting.
	EFConstruction int `yaml:"ef_construction"`

	// EFSearch is the minimum base layer breadth of Find. Zero uses n.
	EFSearch int `yaml:"ef_search"`

	// NormalizationFactor scales the level distribution. Zero selects 1/ln(M).
	NormalizationFactor float64 `yaml:"normalization_factor"`

	// Heuristic enables diversity-aware neighbor selection.
	Heuristic bool `yaml:"heuristic"`

	// RandomSeed seeds the default level generator.
	RandomSeed int64 `yaml:"random_seed"`

	// RandomSource overrides the level generator.
	RandomSource RandomSource `yaml:"-"`

	// Logger receives debug events. Nil discards them.
	Logger *slog.Logger `yaml:"-"`
}

// DefaultOptions contains the default options for HNSW.
var DefaultOptions = Options{
	M:              DefaultM,
	EFConstruction: DefaultEFConstruction,
	RandomSeed:     DefaultSeed,
}

// ParseOptions decodes YAML on top of DefaultOptions and validates the result.
// Unknown fields are rejected.
func ParseOptions(data []byte) (Options, error) {
	opts := DefaultOptions

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("hnsw: decode options: %w", err)
	}

	if err := opts.validate(); err != nil {
		return Options{}, err
	}

	return opts, nil
}

func (o *Options) validate() error {
	if o.M <= 0 {
		return &index.ErrInvalidParameter{Name: "M", Value: o.M, Reason: "must be positive"}
	}

	if o.EFConstruction <= 0 {
		return &index.ErrInvalidParameter{Name: "EFConstruction", Value: o.EFConstruction, Reason: "must be positive"}
	}

	if o.EFSearch < 0 {
		return &index.ErrInvalidParameter{Name: "EFSearch", Value: o.EFSearch, Reason: "must not be negative"}
	}

	nf := o.NormalizationFactor
	if nf < 0 || math.IsNaN(nf) || math.IsInf(nf, 0) {
		return &index.ErrInvalidParameter{Name: "NormalizationFactor", Value: nf, Reason: "must be positive and finite"}
	}

	return nil
}

// levelMultiplier returns the normalization factor, resolving the zero default.
func (o *Options) levelMultiplier() float64 {
	if o.NormalizationFactor > 0 {
		return o.NormalizationFactor
	}
	if o.M == 1 {
		return 1 / math.Ln2
	}
	return 1 / math.Log(float64(o.M))
}
