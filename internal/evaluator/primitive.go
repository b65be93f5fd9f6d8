package evaluator

import "github.com/lox/pokerjump/internal/deck"

// evaluate5 ranks an exact five-card hand using the bit-packed encoding
// from deck.Card.Word (spec.md §4.2):
//
//  1. OR the five words together; bits 16-28 of the result are the
//     rank bitmask of the hand.
//  2. AND the five words together; if the suit nibble survives, all five
//     cards share a suit and the hand is a flush (or straight flush).
//  3. If it's a flush, the rank bitmask indexes directly into the flush
//     table. Otherwise probe the no-pair/straight table with the same
//     bitmask; a non-zero hit means five distinct ranks, no pair.
//  4. Otherwise the hand has a repeated rank: multiply the five
//     primes together and look the product up in the paired table.
//
// evaluate5 is the only path that ever inspects raw hand bits; everything
// else in the package works over canonicalized hands and jump-table
// indices built from this function's output.
func (t *primitiveTables) evaluate5(cards [5]deck.Card) HandRank {
	var or, and uint32
	and = 0xFFFFFFFF
	product := uint32(1)
	for _, c := range cards {
		w := c.Word()
		or |= w
		and &= w
		product *= w & 0xFF
	}

	q := (or >> 16) & (rankSpace - 1)

	if and&0xF000 != 0 {
		return t.flush[q]
	}
	if u := t.unique[q]; u != HandRankInvalid {
		return u
	}
	return t.paired.lookup(product)
}
