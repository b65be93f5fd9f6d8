package deck

import "errors"

// Sentinel errors returned by card and hand construction. Callers should
// compare against these with errors.Is rather than inspecting messages.
var (
	// ErrInvalidCard is returned when a two-character card string does not
	// parse to a known rank/suit pair.
	ErrInvalidCard = errors.New("deck: invalid card")

	// ErrInvalidRange is returned when a Rank or Suit constructor is given
	// a value outside [0,12] or [0,3] respectively.
	ErrInvalidRange = errors.New("deck: value out of range")

	// ErrDuplicateCard is returned when a Hand is asked to add a card it
	// already contains.
	ErrDuplicateCard = errors.New("deck: duplicate card")

	// ErrHandFull is returned when a Hand is asked to grow past its
	// seven-card capacity.
	ErrHandFull = errors.New("deck: hand is full")
)
