package evaluator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerjump/internal/deck"
)

func evalFive(t *testing.T, tbl *primitiveTables, ss ...string) HandRank {
	t.Helper()
	require.Len(t, ss, 5)
	var arr [5]deck.Card
	for i, s := range ss {
		arr[i] = deck.MustParseCard(s)
	}
	return tbl.evaluate5(arr)
}

func TestEvaluate5Categories(t *testing.T) {
	tbl := buildPrimitiveTables()

	tests := []struct {
		name string
		hand []string
		want Category
	}{
		{"royal flush", []string{"As", "Ks", "Qs", "Js", "Ts"}, CategoryStraightFlush},
		{"steel wheel", []string{"As", "2s", "3s", "4s", "5s"}, CategoryStraightFlush},
		{"quads", []string{"Ah", "Ac", "Ad", "As", "Kc"}, CategoryFourOfAKind},
		{"full house", []string{"Kh", "Kc", "Kd", "2s", "2c"}, CategoryFullHouse},
		{"flush", []string{"2h", "7h", "9h", "Jh", "Kh"}, CategoryFlush},
		{"straight", []string{"4h", "5c", "6d", "7s", "8h"}, CategoryStraight},
		{"wheel straight", []string{"Ah", "2c", "3d", "4s", "5h"}, CategoryStraight},
		{"trips", []string{"9h", "9c", "9d", "2s", "5h"}, CategoryThreeOfAKind},
		{"two pair", []string{"Jh", "Jc", "4d", "4s", "9h"}, CategoryTwoPair},
		{"one pair", []string{"6h", "6c", "2d", "9s", "Kh"}, CategoryOnePair},
		{"high card", []string{"2h", "5c", "9d", "Js", "Kh"}, CategoryHighCard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := evalFive(t, tbl, tt.hand...)
			assert.Equal(t, tt.want, got.Category())
		})
	}
}

func TestEvaluate5RoyalFlushIsMaximum(t *testing.T) {
	tbl := buildPrimitiveTables()
	royal := evalFive(t, tbl, "As", "Ks", "Qs", "Js", "Ts")
	quads := evalFive(t, tbl, "2h", "2c", "2d", "2s", "3h")
	assert.Greater(t, royal, quads)
}

func TestEvaluate5WheelIsWeakestStraight(t *testing.T) {
	tbl := buildPrimitiveTables()
	wheel := evalFive(t, tbl, "Ah", "2c", "3d", "4s", "5h")
	sixHigh := evalFive(t, tbl, "2h", "3c", "4d", "5s", "6h")
	assert.Less(t, wheel, sixHigh)
}

func TestEvaluate5FlushBeatsStraight(t *testing.T) {
	tbl := buildPrimitiveTables()
	flush := evalFive(t, tbl, "2h", "7h", "9h", "Jh", "Kh")
	straight := evalFive(t, tbl, "9h", "8c", "7d", "6s", "5h")
	assert.Greater(t, flush, straight)
}

func TestEvaluate5FullHouseRanksByTripsThenPair(t *testing.T) {
	tbl := buildPrimitiveTables()
	aaaKK := evalFive(t, tbl, "Ah", "Ac", "Ad", "Kc", "Ks")
	kkkAA := evalFive(t, tbl, "Kh", "Kc", "Kd", "Ac", "As")
	assert.Greater(t, aaaKK, kkkAA, "full house strength is decided by the trips rank first")
}

func TestEvaluate5TotalOrderingOnRandomHands(t *testing.T) {
	tbl := buildPrimitiveTables()
	rng := rand.New(rand.NewSource(7))

	universe := make([]deck.Card, 52)
	for i := range universe {
		universe[i] = deck.CardFromIndex(i)
	}

	for i := 0; i < 2000; i++ {
		rng.Shuffle(len(universe), func(a, b int) { universe[a], universe[b] = universe[b], universe[a] })
		var hand [5]deck.Card
		copy(hand[:], universe[:5])
		rank := tbl.evaluate5(hand)
		require.NotEqual(t, HandRankInvalid, rank, "every 5-card hand must resolve to a real rank")
	}
}
