package evaluator

import (
	"fmt"

	"github.com/opencoff/go-chd"
)

// loadFactor controls how densely go-chd packs its displacement table.
// 1.0 is the conservative default; lower values trade table size for
// faster, more reliable builds on the six- and seven-card key spaces,
// which run into the millions of keys (spec.md §4.5).
const loadFactor = 1.0

// perfectHash is a minimal perfect hash over a fixed, known-in-advance
// set of byte-slice keys: every key maps to a distinct index in
// [0, n), with no collisions and no probing, built once during table
// generation (C5) and treated as read-only afterward (spec.md §5).
//
// This is the structural core of the jump table: instead of storing
// canonical hands in a map, each level stores a flat array sized to the
// number of canonical hands at that level, indexed by this hash.
type perfectHash struct {
	chd *chd.CHD
	n   int
}

// buildPerfectHash constructs a minimal perfect hash over keys. Keys
// must be unique; behavior is undefined otherwise, matching the
// contract of the underlying CHD builder.
func buildPerfectHash(keys [][]byte) (*perfectHash, error) {
	b, err := chd.NewBuilder(loadFactor)
	if err != nil {
		return nil, fmt.Errorf("evaluator: new chd builder: %w", err)
	}
	for _, k := range keys {
		if err := b.Add(k); err != nil {
			return nil, fmt.Errorf("evaluator: add key to chd builder: %w", err)
		}
	}
	h, err := b.Freeze()
	if err != nil {
		return nil, fmt.Errorf("evaluator: freeze chd: %w", err)
	}
	return &perfectHash{chd: h, n: len(keys)}, nil
}

// find returns the index assigned to key. The result is only meaningful
// for keys that were present when the hash was built; querying with an
// unknown key returns an unspecified index in range, not an error,
// exactly like the underlying CHD.
func (p *perfectHash) find(key []byte) uint32 {
	return p.chd.Find(key)
}

// Len returns the number of keys the hash was built over.
func (p *perfectHash) Len() int {
	return p.n
}

// MarshalBinary serializes the hash for on-disk persistence (C6).
func (p *perfectHash) MarshalBinary() ([]byte, error) {
	return p.chd.MarshalBinary()
}

// unmarshalPerfectHash reconstructs a perfectHash previously serialized
// by MarshalBinary. n must be the original key count; it is not
// recoverable from the CHD encoding alone.
func unmarshalPerfectHash(data []byte, n int) (*perfectHash, error) {
	var h chd.CHD
	if err := h.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("evaluator: unmarshal chd: %w", err)
	}
	return &perfectHash{chd: &h, n: n}, nil
}
