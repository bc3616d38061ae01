package deck

import (
	"errors"
	"testing"
)

func TestNewDeckHas52UniqueCards(t *testing.T) {
	d := NewSeeded(1)
	if d.Remaining() != 52 {
		t.Fatalf("new deck has %d cards, want 52", d.Remaining())
	}

	seen := make(map[Card]bool)
	cards, err := d.Deal(52)
	if err != nil {
		t.Fatalf("Deal(52) error = %v", err)
	}
	for _, c := range cards {
		if seen[c] {
			t.Errorf("duplicate card %v", c)
		}
		seen[c] = true
	}
}

func TestDealMovesCardsToDealtLog(t *testing.T) {
	d := NewSeeded(1)
	cards, err := d.Deal(5)
	if err != nil {
		t.Fatalf("Deal(5) error = %v", err)
	}
	if d.Remaining() != 47 {
		t.Errorf("Remaining() = %d, want 47", d.Remaining())
	}
	dealt := d.Dealt()
	if len(dealt) != 5 {
		t.Fatalf("Dealt() has %d cards, want 5", len(dealt))
	}
	for i := range cards {
		if dealt[i] != cards[i] {
			t.Errorf("dealt log[%d] = %v, want %v", i, dealt[i], cards[i])
		}
	}
}

func TestDealInsufficientCards(t *testing.T) {
	d := NewSeeded(1)
	if _, err := d.Deal(50); err != nil {
		t.Fatalf("Deal(50) error = %v", err)
	}
	_, err := d.Deal(3)
	if !errors.Is(err, ErrInsufficientCards) {
		t.Errorf("Deal(3) error = %v, want ErrInsufficientCards", err)
	}
	// A failed deal must not consume cards.
	if d.Remaining() != 2 {
		t.Errorf("Remaining() = %d after failed deal, want 2", d.Remaining())
	}
}

func TestResetRestoresCanonicalOrder(t *testing.T) {
	d := NewSeeded(42)
	d.Shuffle()
	if _, err := d.Deal(10); err != nil {
		t.Fatal(err)
	}

	d.Reset()
	if d.Remaining() != 52 {
		t.Fatalf("Remaining() = %d after reset, want 52", d.Remaining())
	}
	if len(d.Dealt()) != 0 {
		t.Errorf("dealt log not cleared by reset")
	}

	// Canonical order: clubs through spades, two through ace.
	first, err := d.DealOne()
	if err != nil {
		t.Fatal(err)
	}
	if first != (Card{Rank: Two, Suit: Clubs}) {
		t.Errorf("first card after reset = %v, want 2c", first)
	}
}

func TestSeededShuffleIsReproducible(t *testing.T) {
	a := NewSeeded(7)
	b := NewSeeded(7)
	a.Shuffle()
	b.Shuffle()

	ca, _ := a.Deal(52)
	cb, _ := b.Deal(52)
	for i := range ca {
		if ca[i] != cb[i] {
			t.Fatalf("same seed produced different orders at index %d: %v vs %v", i, ca[i], cb[i])
		}
	}

	c := NewSeeded(8)
	c.Shuffle()
	cc, _ := c.Deal(52)
	same := true
	for i := range ca {
		if ca[i] != cc[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical shuffle order")
	}
}
