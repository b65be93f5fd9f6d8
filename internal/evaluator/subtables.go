package evaluator

import (
	"sort"

	"github.com/lox/pokerjump/internal/deck"
)

// rankSpace is the size of the 13-bit rank-bitmask key space the flush
// and no-pair tables are indexed by (spec.md §4.2, §4.3).
const rankSpace = 1 << deck.NumRanks

// straightMasks lists the ten 13-bit rank bitmasks that form a straight,
// ordered weakest (the wheel, A-2-3-4-5) to strongest (the royal,
// T-J-Q-K-A). Unlike the other 1,277 five-distinct-rank masks, a
// straight's numeric bit value does not track its poker strength: the
// wheel sets the Ace bit (the highest rank bit) alongside the four
// lowest rank bits, so it does not sit next to the other straights when
// masks are ordered by raw integer value. This table is the same fix
// Cactus Kev's original straight/flush generator applies, just walked in
// ascending rather than descending strength order (see handrank.go).
var straightMasks = [10]uint32{
	0b1000000001111, // wheel: A,2,3,4,5
	0b0000000011111, // 6-high
	0b0000000111110,
	0b0000001111100,
	0b0000011111000,
	0b0000111110000,
	0b0001111100000,
	0b0011111000000,
	0b0111110000000,
	0b1111100000000, // royal: T,J,Q,K,A
}

func isStraightMask(mask uint32) bool {
	for _, s := range straightMasks {
		if s == mask {
			return true
		}
	}
	return false
}

// pairedTables holds the five categories whose rank pattern includes a
// repeated rank, keyed by prime product (spec.md §4.2 step 4, §4.3).
type pairedTables struct {
	keys  []uint32
	ranks []HandRank
}

// lookup returns the HandRank for a prime product, or HandRankInvalid if
// the product does not correspond to any five-card rank-multiset built
// from these five categories (i.e. it belongs in the flush/unique
// tables instead).
func (p *pairedTables) lookup(product uint32) HandRank {
	i := sort.Search(len(p.keys), func(i int) bool { return p.keys[i] >= product })
	if i < len(p.keys) && p.keys[i] == product {
		return p.ranks[i]
	}
	return HandRankInvalid
}

// primitiveTables is the complete C3 output: the flush table, the
// no-flush table (covering straights and no-pair hands, keyed by rank
// bitmask), and the paired table (covering one pair through four of a
// kind plus full house, keyed by prime product). Together they let
// Evaluate5 resolve any five-card hand in a handful of array/slice
// operations (spec.md §4.2).
type primitiveTables struct {
	flush  [rankSpace]HandRank
	unique [rankSpace]HandRank
	paired pairedTables
}

// buildPrimitiveTables constructs the full set of C2 lookup tables. It
// runs once, at table-generation time; nothing here executes on the
// per-query hot path.
func buildPrimitiveTables() *primitiveTables {
	t := &primitiveTables{}

	buildStraightAndHighCard(t)
	buildPairedCategories(t)

	return t
}

// buildStraightAndHighCard fills in the straight, straight-flush,
// flush, and high-card entries of t. These four categories all consist
// of five cards with distinct ranks, so they share the same 13-bit
// rank-bitmask key space; only the straight patterns need special-casing
// (see straightMasks).
func buildStraightAndHighCard(t *primitiveTables) {
	for i, mask := range straightMasks {
		t.unique[mask] = newHandRank(CategoryStraight, i)
		t.flush[mask] = newHandRank(CategoryStraightFlush, i)
	}

	// Every other 5-bit pattern in ascending numeric order is a
	// non-straight five-distinct-rank hand. Ascending bitmask value
	// tracks ascending poker strength here because comparing two such
	// masks as integers is exactly comparing their cards highest-rank
	// first, which is how high-card (and flush) hands are ranked.
	var nonStraight []uint32
	for mask := range fiveBitMasks() {
		if !isStraightMask(mask) {
			nonStraight = append(nonStraight, mask)
		}
	}
	for i, mask := range nonStraight {
		t.unique[mask] = newHandRank(CategoryHighCard, i)
		t.flush[mask] = newHandRank(CategoryFlush, i)
	}
}

// fiveBitMasks yields every 13-bit value with exactly five bits set, in
// ascending numeric order, via Gosper's hack for the next bit
// permutation of a given popcount.
func fiveBitMasks() func(yield func(uint32) bool) {
	return func(yield func(uint32) bool) {
		const limit = 1 << deck.NumRanks
		v := uint32(0b11111)
		for v < limit {
			if !yield(v) {
				return
			}
			c := v & -v
			r := v + c
			v = (((r ^ v) >> 2) / c) | r
		}
	}
}

// buildPairedCategories fills in one pair, two pair, three of a kind,
// full house, and four of a kind, keyed by the prime product of the
// five ranks involved (repeated ranks contribute their prime squared or
// cubed). The enumeration walks primary rank from Ace down to Two, and
// kickers in the same descending order, so each category is discovered
// strongest-hand-first; ordinals are assigned by inverting that
// discovery order so the weakest hand in each category lands on 0.
func buildPairedCategories(t *primitiveTables) {
	ranksDescending := [deck.NumRanks]deck.Rank{}
	for i := range ranksDescending {
		ranksDescending[i] = deck.Rank(deck.NumRanks - 1 - i)
	}

	dropRank := func(ranks []deck.Rank, r deck.Rank) []deck.Rank {
		out := make([]deck.Rank, 0, len(ranks)-1)
		for _, x := range ranks {
			if x != r {
				out = append(out, x)
			}
		}
		return out
	}

	var fourKeys, fullHouseKeys, threeKeys, twoPairKeys, pairKeys []uint32

	full := ranksDescending[:]
	for i, primary := range ranksDescending {
		kickers := dropRank(full, primary)

		for _, k := range kickers {
			fourKeys = append(fourKeys, primary.Prime()*primary.Prime()*primary.Prime()*primary.Prime()*k.Prime())
			fullHouseKeys = append(fullHouseKeys, primary.Prime()*primary.Prime()*primary.Prime()*k.Prime()*k.Prime())
		}

		for j := 0; j < len(kickers)-1; j++ {
			for l := j + 1; l < len(kickers); l++ {
				threeKeys = append(threeKeys, primary.Prime()*primary.Prime()*primary.Prime()*kickers[j].Prime()*kickers[l].Prime())
			}
		}

		for j := i + 1; j < deck.NumRanks; j++ {
			secondary := ranksDescending[j]
			rest := dropRank(kickers, secondary)
			for _, k := range rest {
				twoPairKeys = append(twoPairKeys, primary.Prime()*primary.Prime()*secondary.Prime()*secondary.Prime()*k.Prime())
			}
		}

		for a := 0; a < len(kickers)-2; a++ {
			for b := a + 1; b < len(kickers)-1; b++ {
				for c := b + 1; c < len(kickers); c++ {
					pairKeys = append(pairKeys, primary.Prime()*primary.Prime()*kickers[a].Prime()*kickers[b].Prime()*kickers[c].Prime())
				}
			}
		}
	}

	assign := func(cat Category, keys []uint32) {
		n := len(keys)
		for pos, key := range keys {
			ordinal := n - 1 - pos
			t.paired.keys = append(t.paired.keys, key)
			t.paired.ranks = append(t.paired.ranks, newHandRank(cat, ordinal))
		}
	}
	assign(CategoryFourOfAKind, fourKeys)
	assign(CategoryFullHouse, fullHouseKeys)
	assign(CategoryThreeOfAKind, threeKeys)
	assign(CategoryTwoPair, twoPairKeys)
	assign(CategoryOnePair, pairKeys)

	sort.Sort(&t.paired)
}

func (p *pairedTables) Len() int      { return len(p.keys) }
func (p *pairedTables) Swap(i, j int) { p.keys[i], p.keys[j] = p.keys[j], p.keys[i]; p.ranks[i], p.ranks[j] = p.ranks[j], p.ranks[i] }
func (p *pairedTables) Less(i, j int) bool { return p.keys[i] < p.keys[j] }
