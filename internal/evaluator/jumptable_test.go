package evaluator

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lox/pokerjump/internal/deck"
)

// Building the full jump table walks every 6- and 7-card combination of
// a 52-card deck, which takes real wall-clock time. testTables shares
// one build across this file's test functions and is skipped entirely
// under -short.
var (
	testJumpTableOnce sync.Once
	testJumpTableVal  *jumpTable
	testPrimitiveVal  *primitiveTables
)

func testTables(t *testing.T) (*primitiveTables, *jumpTable) {
	t.Helper()
	if testing.Short() {
		t.Skip("full jump-table construction is too slow for -short")
	}
	testJumpTableOnce.Do(func() {
		testPrimitiveVal = buildPrimitiveTables()
		jt, err := buildJumpTable(testPrimitiveVal)
		require.NoError(t, err)
		testJumpTableVal = jt
	})
	return testPrimitiveVal, testJumpTableVal
}

// bruteBest7 computes the best 5-card hand out of 7 by brute force,
// independent of the jump table, as the correctness oracle.
func bruteBest7(prim *primitiveTables, hand []deck.Card) HandRank {
	best := HandRank(0)
	for combo := range subsetsOf(hand, 5) {
		var arr [5]deck.Card
		copy(arr[:], combo)
		if r := prim.evaluate5(arr); r > best {
			best = r
		}
	}
	return best
}

func bruteBest6(prim *primitiveTables, hand []deck.Card) HandRank {
	best := HandRank(0)
	for combo := range subsetsOf(hand, 5) {
		var arr [5]deck.Card
		copy(arr[:], combo)
		if r := prim.evaluate5(arr); r > best {
			best = r
		}
	}
	return best
}

func TestJumpTableEvaluate7MatchesBruteForce(t *testing.T) {
	prim, jt := testTables(t)

	universe := make([]deck.Card, 52)
	for i := range universe {
		universe[i] = deck.CardFromIndex(i)
	}
	rng := rand.New(rand.NewSource(12345))

	for i := 0; i < 500; i++ {
		rng.Shuffle(len(universe), func(a, b int) { universe[a], universe[b] = universe[b], universe[a] })
		var hand [7]deck.Card
		copy(hand[:], universe[:7])

		want := bruteBest7(prim, hand[:])
		got := jt.evaluate7(hand)
		require.Equal(t, want, got, "hand %v", hand)
	}
}

func TestJumpTableEvaluate6MatchesBruteForce(t *testing.T) {
	prim, jt := testTables(t)

	universe := make([]deck.Card, 52)
	for i := range universe {
		universe[i] = deck.CardFromIndex(i)
	}
	rng := rand.New(rand.NewSource(54321))

	for i := 0; i < 500; i++ {
		rng.Shuffle(len(universe), func(a, b int) { universe[a], universe[b] = universe[b], universe[a] })
		var hand [6]deck.Card
		copy(hand[:], universe[:6])

		want := bruteBest6(prim, hand[:])
		got := jt.evaluate6(hand)
		require.Equal(t, want, got, "hand %v", hand)
	}
}
