// Package poker is the public query ABI (spec.md §6): a thin facade
// over the evaluator singleton that accepts hole cards and a board and
// returns a comparable hand strength, without exposing any of the
// table-building machinery underneath.
package poker

import (
	"github.com/lox/pokerjump/internal/deck"
	"github.com/lox/pokerjump/internal/evaluator"
)

// HandRank is a totally-ordered hand strength: stronger hands compare
// strictly greater. It is re-exported from internal/evaluator so callers
// never need to import that package directly.
type HandRank = evaluator.HandRank

// Category is one of the nine standard poker hand classes.
type Category = evaluator.Category

// Init loads or generates the process-wide evaluation tables. It must
// be called once, before any other function in this package, normally
// at process startup.
func Init(tablesPath string) error {
	return evaluator.InitDefault(tablesPath, nil)
}

// Evaluate ranks a hand formed from hole cards plus a partial or
// complete board (spec.md §6). len(hole)+len(board) must be 5, 6, or 7;
// any other size returns evaluator.HandRankInvalid.
func Evaluate(hole [2]deck.Card, board []deck.Card) HandRank {
	cards := make([]deck.Card, 0, 2+len(board))
	cards = append(cards, hole[0], hole[1])
	cards = append(cards, board...)

	hand, err := deck.NewHand(cards...)
	if err != nil {
		return evaluator.HandRankInvalid
	}
	return evaluator.Default().Evaluate(hand)
}

// EvaluateHand ranks an arbitrary 5-7 card hand directly, for callers
// that already hold a deck.Hand rather than separate hole/board slices.
func EvaluateHand(hand deck.Hand) HandRank {
	return evaluator.Default().Evaluate(hand)
}

// CompareHands returns -1, 0, or 1 as a is weaker than, equal to, or
// stronger than b.
func CompareHands(a, b HandRank) int {
	return a.Compare(b)
}

// BestOfK returns the strongest hand among candidates, and its index.
// It panics if candidates is empty.
func BestOfK(candidates []HandRank) (best HandRank, index int) {
	if len(candidates) == 0 {
		panic("poker: BestOfK called with no candidates")
	}
	best, index = candidates[0], 0
	for i, c := range candidates[1:] {
		if c.Compare(best) > 0 {
			best, index = c, i+1
		}
	}
	return best, index
}
