package evaluator

import (
	"sort"

	"github.com/lox/pokerjump/internal/deck"
)

// canonicalize reduces cards to a representative form under suit
// relabeling (spec.md §4.4) that depends only on the card set, not on
// the order the caller presents the cards in. Hand strength never
// depends on which physical suit a flush is drawn in, only on which
// ranks share a suit, so merging suit-relabeled hands shrinks the six-
// and seven-card jump tables.
//
// The cards are sorted by (rank, raw suit), which fixes the walk order
// for a given card set whatever order it arrived in, then suits are
// renumbered in the order they first appear in that walk, and the result
// is sorted by (rank, new suit label). Hands whose ranks are all distinct
// canonicalize to the same result under every suit relabeling. When a
// rank repeats, the raw-suit tie-break can give two suit relabelings of
// one hand different results (2c 2d 3c and 2d 2c 3d end with the 3 on
// label 0 and label 1 respectively), so the 24-way symmetry is not fully
// collapsed. Every result keeps which ranks share a suit, so it has the
// same hand rank as the input, and applying canonicalize to an
// already-canonical hand is a no-op (spec.md §8, idempotence).
func canonicalize(cards []deck.Card) []deck.Card {
	sorted := make([]deck.Card, len(cards))
	copy(sorted, cards)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Rank != sorted[j].Rank {
			return sorted[i].Rank < sorted[j].Rank
		}
		return sorted[i].Suit < sorted[j].Suit
	})

	var assigned [deck.NumSuits]bool
	var mapping [deck.NumSuits]deck.Suit
	next := deck.Suit(0)

	out := make([]deck.Card, len(sorted))
	for i, c := range sorted {
		if !assigned[c.Suit] {
			mapping[c.Suit] = next
			assigned[c.Suit] = true
			next++
		}
		out[i] = deck.NewCard(c.Rank, mapping[c.Suit])
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Rank != out[j].Rank {
			return out[i].Rank < out[j].Rank
		}
		return out[i].Suit < out[j].Suit
	})

	return out
}

// canonicalKey packs a canonicalized card set into a byte slice suitable
// as a perfect-hash or map key. cards must already be canonicalize's
// output: sorted by (rank, new suit label), which is what makes the key
// depend only on the card set and not on the caller's original order.
func canonicalKey(cards []deck.Card) []byte {
	key := make([]byte, len(cards))
	for i, c := range cards {
		key[i] = byte(c.Index())
	}
	return key
}
