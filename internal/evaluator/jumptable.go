package evaluator

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerjump/internal/deck"
)

// jumpLevel is one layer of the three-level trie described in
// spec.md §4.5. Level 5 stores hand ranks directly; levels 6 and 7
// store indices into the level below, so resolving a seven-card hand is
// two pointer-following hops plus one rank lookup, none of which touch
// the primitive evaluator at query time.
type jumpLevel struct {
	hash   *perfectHash
	values []uint32
}

func (l *jumpLevel) lookup(key []byte) uint32 {
	return l.values[l.hash.find(key)]
}

// jumpTable is the complete C5 structure: a perfectly-hashed canonical
// hand index at each of 5, 6, and 7 cards.
type jumpTable struct {
	level5 *jumpLevel // index -> HandRank, as uint32
	level6 *jumpLevel // index -> level5 index
	level7 *jumpLevel // index -> level6 index
}

// evaluate6 resolves a six-card hand via one jump-table hop into level5.
func (j *jumpTable) evaluate6(cards [6]deck.Card) HandRank {
	key := canonicalKey(canonicalize(cards[:]))
	idx5 := j.level6.lookup(key)
	return HandRank(j.level5.values[idx5])
}

// evaluate7 resolves a seven-card hand via two jump-table hops.
func (j *jumpTable) evaluate7(cards [7]deck.Card) HandRank {
	key := canonicalKey(canonicalize(cards[:]))
	idx6 := j.level7.lookup(key)
	idx5 := j.level6.values[idx6]
	return HandRank(j.level5.values[idx5])
}

// buildJumpTable runs the full C5 generation pipeline: enumerate every
// canonical hand at 5, 6, and 7 cards, evaluate or fold upward into the
// level below, and perfect-hash each level. Enumeration order is fixed
// (ascending dense card index, per combinations' contract) so two runs
// over the same card universe produce byte-identical tables
// (spec.md §5).
func buildJumpTable(prim *primitiveTables) (*jumpTable, error) {
	universe := make([]deck.Card, 52)
	for i := range universe {
		universe[i] = deck.CardFromIndex(i)
	}

	level5, err := build5(prim, universe)
	if err != nil {
		return nil, fmt.Errorf("evaluator: build level 5: %w", err)
	}

	level6, err := build6(level5, universe)
	if err != nil {
		return nil, fmt.Errorf("evaluator: build level 6: %w", err)
	}

	level7, err := build7(level5, level6, universe)
	if err != nil {
		return nil, fmt.Errorf("evaluator: build level 7: %w", err)
	}

	return &jumpTable{level5: level5, level6: level6, level7: level7}, nil
}

// collectCanonical enumerates every k-card subset of universe, reduces
// each to its canonical form, and returns the distinct canonical hands
// in first-encountered order. That order is deterministic because
// combinations (via subsetsOf) always walks the universe the same way.
func collectCanonical(universe []deck.Card, k int) [][]deck.Card {
	seen := make(map[string]struct{})
	var hands [][]deck.Card
	for combo := range subsetsOf(universe, k) {
		canon := canonicalize(combo)
		key := string(canonicalKey(canon))
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		hands = append(hands, canon)
	}
	return hands
}

func build5(prim *primitiveTables, universe []deck.Card) (*jumpLevel, error) {
	hands := collectCanonical(universe, 5)

	keys := make([][]byte, len(hands))
	for i, h := range hands {
		keys[i] = canonicalKey(h)
	}
	hash, err := buildPerfectHash(keys)
	if err != nil {
		return nil, err
	}

	values := make([]uint32, len(hands))
	for i, h := range hands {
		var arr [5]deck.Card
		copy(arr[:], h)
		values[hash.find(keys[i])] = uint32(prim.evaluate5(arr))
	}

	return &jumpLevel{hash: hash, values: values}, nil
}

// foldUp computes, for each canonical k-card hand, the index (in the
// level-below hash) of its best (k-1)-card subset, where "best" is
// decided by comparing ranks (transitively, through rankOf).
//
// Each hand's result depends only on its own subsets and the read-only
// level below, so the work is sharded across GOMAXPROCS worker
// goroutines with errgroup; every worker writes to a disjoint slice of
// values by index, which keeps the output identical regardless of
// scheduling (spec.md §5's determinism requirement).
func foldUp(hands [][]deck.Card, below *jumpLevel, rankOf func(idx uint32) HandRank) []uint32 {
	values := make([]uint32, len(hands))
	workers := runtime.GOMAXPROCS(0)
	if workers > len(hands) {
		workers = len(hands)
	}
	if workers < 1 {
		workers = 1
	}

	var g errgroup.Group
	chunk := (len(hands) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := min(start+chunk, len(hands))
		if start >= end {
			continue
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				h := hands[i]
				best := uint32(0)
				var bestRank HandRank
				first := true
				for sub := range subsetsOf(h, len(h)-1) {
					idx := below.hash.find(canonicalKey(canonicalize(sub)))
					rank := rankOf(idx)
					if first || rank > bestRank {
						best, bestRank, first = idx, rank, false
					}
				}
				values[i] = best
			}
			return nil
		})
	}
	_ = g.Wait() // workers never return an error

	return values
}

func build6(level5 *jumpLevel, universe []deck.Card) (*jumpLevel, error) {
	hands := collectCanonical(universe, 6)

	keys := make([][]byte, len(hands))
	for i, h := range hands {
		keys[i] = canonicalKey(h)
	}
	hash, err := buildPerfectHash(keys)
	if err != nil {
		return nil, err
	}

	idx5ByHand := foldUp(hands, level5, func(idx uint32) HandRank { return HandRank(level5.values[idx]) })
	values := make([]uint32, len(hands))
	for i := range hands {
		values[hash.find(keys[i])] = idx5ByHand[i]
	}

	return &jumpLevel{hash: hash, values: values}, nil
}

func build7(level5, level6 *jumpLevel, universe []deck.Card) (*jumpLevel, error) {
	hands := collectCanonical(universe, 7)

	keys := make([][]byte, len(hands))
	for i, h := range hands {
		keys[i] = canonicalKey(h)
	}
	hash, err := buildPerfectHash(keys)
	if err != nil {
		return nil, err
	}

	// Comparing candidate six-card subsets of a seven-card hand means
	// resolving two hops down to an actual rank: level6 index -> level5
	// index -> HandRank.
	idx7ByHand := foldUp(hands, level6, func(idx6 uint32) HandRank {
		idx5 := level6.values[idx6]
		return HandRank(level5.values[idx5])
	})

	values := make([]uint32, len(hands))
	for i := range hands {
		values[hash.find(keys[i])] = idx7ByHand[i]
	}

	return &jumpLevel{hash: hash, values: values}, nil
}
