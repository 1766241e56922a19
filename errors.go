package vecindex

import (
	"github.com/hupe1980/vecindex/index"
	"github.com/hupe1980/vecindex/index/hnsw"
	"github.com/hupe1980/vecindex/point"
)

var (
	// ErrEmptyIndex is returned when querying an index without entries.
	ErrEmptyIndex = index.ErrEmptyIndex

	// ErrDuplicateKey is returned when inserting a key that already exists.
	ErrDuplicateKey = index.ErrDuplicateKey

	// ErrInvalidParameter matches every invalid parameter error via errors.Is.
	ErrInvalidParameter = index.ErrInvalidParameterKind

	// ErrDimensionMismatch matches every dimension mismatch via errors.Is.
	ErrDimensionMismatch = point.ErrDimensionMismatchKind

	// ErrCorruptGraph is returned when an HNSW graph fails validation.
	ErrCorruptGraph = hnsw.ErrCorruptGraph
)
