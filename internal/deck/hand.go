package deck

import "fmt"

// MaxHandSize is the largest card set the evaluator accepts (spec.md §3).
const MaxHandSize = 7

// MinHandSize is the smallest card set the evaluator will assign a rank
// to; anything smaller evaluates to HandRank's invalid sentinel.
const MinHandSize = 5

// Hand is an unordered set of up to seven cards with no duplicates,
// immutable once evaluation begins. No minimum size is enforced: a Hand
// starts empty and grows one Add at a time. Cards are stored in insertion order;
// equality is defined over the multiset, not the order (spec.md §4.1).
type Hand struct {
	cards [MaxHandSize]Card
	n     int
}

// NewHand builds a Hand from cards, rejecting duplicates and overflow in
// the same order Add would.
func NewHand(cards ...Card) (Hand, error) {
	var h Hand
	for _, c := range cards {
		if err := h.Add(c); err != nil {
			return Hand{}, err
		}
	}
	return h, nil
}

// Add appends c to the hand. It returns ErrDuplicateCard if c is already
// present and ErrHandFull if the hand is already at MaxHandSize.
func (h *Hand) Add(c Card) error {
	for i := 0; i < h.n; i++ {
		if h.cards[i] == c {
			return fmt.Errorf("card %s already in hand: %w", c, ErrDuplicateCard)
		}
	}
	if h.n >= MaxHandSize {
		return fmt.Errorf("hand already holds %d cards: %w", MaxHandSize, ErrHandFull)
	}
	h.cards[h.n] = c
	h.n++
	return nil
}

// Len returns the number of cards currently in the hand.
func (h Hand) Len() int {
	return h.n
}

// Cards returns the hand's cards in insertion order. The returned slice
// aliases no caller-visible storage beyond this call; mutating the array
// backing it does not affect h.
func (h Hand) Cards() []Card {
	out := make([]Card, h.n)
	copy(out, h.cards[:h.n])
	return out
}

// Contains reports whether c is present in the hand.
func (h Hand) Contains(c Card) bool {
	for i := 0; i < h.n; i++ {
		if h.cards[i] == c {
			return true
		}
	}
	return false
}

// Equal reports whether h and other contain the same card multiset,
// regardless of insertion order.
func (h Hand) Equal(other Hand) bool {
	if h.n != other.n {
		return false
	}
	for i := 0; i < h.n; i++ {
		if !other.Contains(h.cards[i]) {
			return false
		}
	}
	return true
}

// String renders the hand's cards space-separated in insertion order.
func (h Hand) String() string {
	buf := make([]byte, 0, h.n*3)
	for i := 0; i < h.n; i++ {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, h.cards[i].String()...)
	}
	return string(buf)
}
