package quicksort

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandom(t *testing.T) {
	data, err := GenerateRandom(10000)
	require.NoError(t, err)
	assert.Len(t, data, 10000)

	negative := 0
	for _, v := range data {
		assert.GreaterOrEqual(t, v, math.MinInt32)
		assert.LessOrEqual(t, v, math.MaxInt32)
		if v < 0 {
			negative++
		}
	}
	assert.Greater(t, negative, 0)
}

func TestGenerateRandomEmpty(t *testing.T) {
	data, err := GenerateRandom(0)
	require.NoError(t, err)
	assert.NotNil(t, data)
	assert.Empty(t, data)
}

func TestGenerateRandomNegative(t *testing.T) {
	data, err := GenerateRandom(-1)
	require.Error(t, err)
	assert.Nil(t, data)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Contains(t, err.Error(), "cannot be negative")
}

func TestGenerateRandomSeeded(t *testing.T) {
	a, err := GenerateRandom(100, WithRand(NewRand(42)))
	require.NoError(t, err)
	b, err := GenerateRandom(100, WithRand(NewRand(42)))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := GenerateRandom(100, WithRand(NewRand(43)))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}
