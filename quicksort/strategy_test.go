package quicksort

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategyNames(t *testing.T) {
	assert.Equal(t, "FIRST_ELEMENT", FirstElement.String())
	assert.Equal(t, "RANDOM_ELEMENT", RandomElement.String())
	assert.Equal(t, "MEDIAN_OF_THREE_ELEMENTS", MedianOfThree.String())
	assert.Equal(t, "UNKNOWN", Strategy(-1).String())
	assert.False(t, Strategy(3).Valid())
}

func TestParseStrategy(t *testing.T) {
	for _, s := range Strategies() {
		got, err := ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	got, err := ParseStrategy(" median_of_three_elements ")
	require.NoError(t, err)
	assert.Equal(t, MedianOfThree, got)

	_, err = ParseStrategy("MEDIAN_OF_THREE_RANDOM_ELEMENTS")
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}
