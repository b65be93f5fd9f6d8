package deck

import (
	"errors"
	"testing"
)

func TestHandAddDuplicate(t *testing.T) {
	var h Hand
	c := MustParseCard("As")
	if err := h.Add(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := h.Add(c); !errors.Is(err, ErrDuplicateCard) {
		t.Errorf("Add duplicate: got %v, want ErrDuplicateCard", err)
	}
}

func TestHandAddFull(t *testing.T) {
	var h Hand
	for i := 0; i < MaxHandSize; i++ {
		if err := h.Add(CardFromIndex(i)); err != nil {
			t.Fatalf("unexpected error adding card %d: %v", i, err)
		}
	}
	if err := h.Add(CardFromIndex(MaxHandSize)); !errors.Is(err, ErrHandFull) {
		t.Errorf("Add past capacity: got %v, want ErrHandFull", err)
	}
}

func TestHandEqual(t *testing.T) {
	a, err := NewHand(MustParseCard("As"), MustParseCard("Kd"), MustParseCard("2c"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewHand(MustParseCard("2c"), MustParseCard("As"), MustParseCard("Kd"))
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Error("hands with same cards in different order should be equal")
	}

	c, err := NewHand(MustParseCard("As"), MustParseCard("Kd"), MustParseCard("3c"))
	if err != nil {
		t.Fatal(err)
	}
	if a.Equal(c) {
		t.Error("hands with different cards should not be equal")
	}
}

func TestHandLenAndCards(t *testing.T) {
	h, err := NewHand(MustParseCard("As"), MustParseCard("Kd"))
	if err != nil {
		t.Fatal(err)
	}
	if h.Len() != 2 {
		t.Errorf("Len() = %d, want 2", h.Len())
	}
	cards := h.Cards()
	if len(cards) != 2 || cards[0] != MustParseCard("As") || cards[1] != MustParseCard("Kd") {
		t.Errorf("Cards() = %v, want insertion order", cards)
	}
}
