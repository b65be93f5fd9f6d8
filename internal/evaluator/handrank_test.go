package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandRankOrdinalRoundTrip(t *testing.T) {
	hr := newHandRank(CategoryFlush, 1234)
	assert.Equal(t, CategoryFlush, hr.Category())
	assert.Equal(t, 1234, hr.Ordinal())
}

func TestHandRankCategoryDominatesOrdinal(t *testing.T) {
	weakestStraightFlush := newHandRank(CategoryStraightFlush, 0)
	strongestFourOfAKind := newHandRank(CategoryFourOfAKind, 1<<categoryShift-1)
	require.Greater(t, weakestStraightFlush, strongestFourOfAKind,
		"any straight flush must outrank any four of a kind regardless of ordinal")
}

func TestHandRankCompare(t *testing.T) {
	low := newHandRank(CategoryHighCard, 0)
	high := newHandRank(CategoryHighCard, 1)

	assert.Equal(t, -1, low.Compare(high))
	assert.Equal(t, 1, high.Compare(low))
	assert.Equal(t, 0, low.Compare(low))
}

func TestHandRankInvalidIsWeakestPossible(t *testing.T) {
	weakestReal := newHandRank(CategoryHighCard, 0)
	assert.Less(t, HandRankInvalid, weakestReal)
}

func TestCategoryOrderingAscending(t *testing.T) {
	categories := []Category{
		CategoryHighCard, CategoryOnePair, CategoryTwoPair, CategoryThreeOfAKind,
		CategoryStraight, CategoryFlush, CategoryFullHouse, CategoryFourOfAKind,
		CategoryStraightFlush,
	}
	for i := 1; i < len(categories); i++ {
		require.Less(t, categories[i-1], categories[i])
	}
}
