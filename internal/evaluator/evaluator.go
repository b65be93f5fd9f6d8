package evaluator

import (
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/lox/pokerjump/internal/deck"
)

// state tracks the lifecycle of the process-wide evaluator singleton
// (spec.md §5): it starts Uninitialized, moves to Initializing the
// moment Init is first called, then lands on Ready or Failed forever.
// No query path ever re-attempts initialization once it has failed.
type state int32

const (
	stateUninitialized state = iota
	stateInitializing
	stateReady
	stateFailed
)

// Evaluator answers hand-strength queries against a fixed set of tables.
// A zero Evaluator is not usable; construct one with Init or
// InitDefault. All query methods are safe for concurrent use by any
// number of goroutines: after initialization nothing mutates, so there
// is no locking on the hot path (spec.md §5).
type Evaluator struct {
	state atomic.Int32
	once  sync.Once

	tables *Tables
	err    error
}

var defaultEvaluator Evaluator

// InitDefault initializes the process-wide default evaluator, loading
// tables from path (generating and persisting them on first run). It is
// safe to call from multiple goroutines; only the first call does any
// work, and every caller observes the same outcome.
func InitDefault(path string, logger *log.Logger) error {
	return defaultEvaluator.Init(path, logger)
}

// Default returns the process-wide evaluator. It panics if InitDefault
// has not been called and completed successfully; this mirrors the
// teacher's convention that singleton accessors fail loudly rather than
// silently returning a useless zero value.
func Default() *Evaluator {
	if state(defaultEvaluator.state.Load()) != stateReady {
		panic("evaluator: Default() called before successful InitDefault()")
	}
	return &defaultEvaluator
}

// Init loads or generates e's tables exactly once. Subsequent calls
// return the result of the first call without doing any work, matching
// the Uninitialized -> Initializing -> Ready/Failed state machine
// (spec.md §5, §7).
func (e *Evaluator) Init(path string, logger *log.Logger) error {
	e.once.Do(func() {
		e.state.Store(int32(stateInitializing))
		t, err := LoadOrGenerate(path, logger)
		if err != nil {
			e.err = err
			e.state.Store(int32(stateFailed))
			return
		}
		e.tables = t
		e.state.Store(int32(stateReady))
	})
	if state(e.state.Load()) == stateFailed {
		return e.err
	}
	return nil
}

// Ready reports whether e has completed initialization successfully.
func (e *Evaluator) Ready() bool {
	return state(e.state.Load()) == stateReady
}

// Evaluate ranks hand according to its size: fewer than five cards
// yields HandRankInvalid, five cards uses the primitive tables directly,
// six or seven use the jump table. Sizes above seven are not part of the
// query ABI and also yield HandRankInvalid.
func (e *Evaluator) Evaluate(hand deck.Hand) HandRank {
	if !e.Ready() {
		return HandRankInvalid
	}
	cards := hand.Cards()
	switch len(cards) {
	case 5:
		var arr [5]deck.Card
		copy(arr[:], cards)
		return e.tables.primitive.evaluate5(arr)
	case 6:
		var arr [6]deck.Card
		copy(arr[:], cards)
		return e.tables.jump.evaluate6(arr)
	case 7:
		var arr [7]deck.Card
		copy(arr[:], cards)
		return e.tables.jump.evaluate7(arr)
	default:
		return HandRankInvalid
	}
}

// Evaluate5 ranks an exact five-card hand.
func (e *Evaluator) Evaluate5(cards [5]deck.Card) HandRank {
	if !e.Ready() {
		return HandRankInvalid
	}
	return e.tables.primitive.evaluate5(cards)
}

// Evaluate6 ranks an exact six-card hand: the best five-card hand it
// contains.
func (e *Evaluator) Evaluate6(cards [6]deck.Card) HandRank {
	if !e.Ready() {
		return HandRankInvalid
	}
	return e.tables.jump.evaluate6(cards)
}

// Evaluate7 ranks an exact seven-card hand: the best five-card hand it
// contains. This is the common case for Texas hold'em, where a player's
// final hand is drawn from two hole cards and a five-card board.
func (e *Evaluator) Evaluate7(cards [7]deck.Card) HandRank {
	if !e.Ready() {
		return HandRankInvalid
	}
	return e.tables.jump.evaluate7(cards)
}
