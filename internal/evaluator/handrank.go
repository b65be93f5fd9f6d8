// Package evaluator implements the table-driven poker hand evaluation
// engine: a five-card primitive ranker (C2), the sub-table builders that
// feed it (C3), a suit canonicalizer (C4), a three-level jump-table
// builder for six- and seven-card hands (C5), on-disk table persistence
// with integrity checks (C6), and the process-wide runtime evaluator
// that ties them together (C7).
//
// The core algorithm traces back to Cactus Kev's bit-packed card
// encoding and prime-product hand identification, extended here with a
// canonicalized, minimally-perfect-hashed jump table so that 6- and
// 7-card hands resolve in a fixed number of array lookups instead of
// on-the-fly combinatorics.
package evaluator

import "fmt"

// Category is one of the nine standard poker hand classes, ordered
// weakest to strongest to match spec.md §6's canonical evaluation order.
type Category uint8

const (
	// categoryInvalid is never assigned to a real hand; HandRank(0)
	// decodes to it.
	categoryInvalid Category = iota
	CategoryHighCard
	CategoryOnePair
	CategoryTwoPair
	CategoryThreeOfAKind
	CategoryStraight
	CategoryFlush
	CategoryFullHouse
	CategoryFourOfAKind
	CategoryStraightFlush
)

// String returns the human-readable category name.
func (c Category) String() string {
	switch c {
	case CategoryHighCard:
		return "High Card"
	case CategoryOnePair:
		return "One Pair"
	case CategoryTwoPair:
		return "Two Pair"
	case CategoryThreeOfAKind:
		return "Three of a Kind"
	case CategoryStraight:
		return "Straight"
	case CategoryFlush:
		return "Flush"
	case CategoryFullHouse:
		return "Full House"
	case CategoryFourOfAKind:
		return "Four of a Kind"
	case CategoryStraightFlush:
		return "Straight Flush"
	default:
		return "Invalid"
	}
}

// categoryShift is how many low bits of a HandRank are reserved for the
// intra-category ordinal. 2^20 comfortably exceeds the largest category
// (one pair, 2,860 distinct rank patterns), leaving headroom to spare.
const categoryShift = 20

// HandRank is a totally-ordered 32-bit hand strength: the category
// occupies the high bits, the intra-category ordinal the low
// categoryShift bits, so integer comparison alone decides a winner
// (spec.md §3, §6) and no kicker re-examination is ever needed at query
// time. Stronger hands compare strictly greater; HandRankInvalid (0) is
// the sentinel for inputs too small to rank (spec.md §4.7).
//
// This is the opposite sign convention from the "lower score wins" style
// some Cactus Kev derivatives use (including this repository's own
// teacher evaluator): encoding ascending strength directly means
// HandRank.Compare, Go's native ordering operators, and sort.Slice all
// agree without any inversion, and the wire format documented in
// spec.md §6 ("H1 beats H2 iff rank(H1) > rank(H2)") falls out for free.
type HandRank uint32

// HandRankInvalid is returned by Evaluate when the input has fewer than
// five cards.
const HandRankInvalid HandRank = 0

func newHandRank(cat Category, ordinal int) HandRank {
	return HandRank(uint32(cat)<<categoryShift | uint32(ordinal))
}

// Category returns the hand's category.
func (h HandRank) Category() Category {
	return Category(h >> categoryShift)
}

// Ordinal returns the intra-category ordering value. It has no meaning
// outside of hands sharing the same Category.
func (h HandRank) Ordinal() int {
	return int(h & (1<<categoryShift - 1))
}

// Compare returns -1, 0, or 1 as h is weaker than, equal to, or stronger
// than other.
func (h HandRank) Compare(other HandRank) int {
	switch {
	case h < other:
		return -1
	case h > other:
		return 1
	default:
		return 0
	}
}

// String renders the category name, or "Invalid" for HandRankInvalid.
func (h HandRank) String() string {
	if h == HandRankInvalid {
		return "Invalid"
	}
	return fmt.Sprintf("%s", h.Category())
}
