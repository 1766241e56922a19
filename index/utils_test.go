package index

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckN(t *testing.T) {
	assert.NoError(t, CheckN(0))
	assert.NoError(t, CheckN(10))

	err := CheckN(-1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidParameterKind)

	var ip *ErrInvalidParameter
	require.True(t, errors.As(err, &ip))
	assert.Equal(t, "n", ip.Name)
	assert.Equal(t, -1, ip.Value)
}

func TestSortResults(t *testing.T) {
	results := []Result[int, string]{
		{Key: 3, Point: "c", Distance: 0.5},
		{Key: 1, Point: "a", Distance: 0.5},
		{Key: 2, Point: "b", Distance: 0.1},
	}

	SortResults(results)

	assert.Equal(t, []int{2, 1, 3}, Keys(results))
}

func TestDuplicateKeyError(t *testing.T) {
	err := DuplicateKeyError("doc-1")
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.Equal(t, "duplicate key: doc-1", err.Error())
}
