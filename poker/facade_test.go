package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerjump/internal/deck"
)

func TestInitAndEvaluate(t *testing.T) {
	if testing.Short() {
		t.Skip("full table generation is too slow for -short")
	}

	require.NoError(t, Init(t.TempDir()+"/tables.bin"))

	hole := [2]deck.Card{deck.MustParseCard("As"), deck.MustParseCard("Ks")}
	board := []deck.Card{deck.MustParseCard("Qs"), deck.MustParseCard("Js"), deck.MustParseCard("Ts")}

	rank := Evaluate(hole, board)
	assert.Equal(t, Category(9), rank.Category()) // straight flush is category 9
}

func TestCompareHands(t *testing.T) {
	weak := HandRank(100)
	strong := HandRank(200)
	assert.Equal(t, -1, CompareHands(weak, strong))
	assert.Equal(t, 1, CompareHands(strong, weak))
	assert.Equal(t, 0, CompareHands(weak, weak))
}

func TestBestOfK(t *testing.T) {
	ranks := []HandRank{100, 300, 200}
	best, idx := BestOfK(ranks)
	assert.Equal(t, HandRank(300), best)
	assert.Equal(t, 1, idx)
}

func TestBestOfKPanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() { BestOfK(nil) })
}
