package deck

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"time"

	"github.com/lox/headsup/internal/randutil"
)

// ErrInsufficientCards is returned when a deal asks for more cards than
// remain. With two players and five community cards this never happens in
// correct use; seeing it indicates a programming error upstream.
var ErrInsufficientCards = errors.New("insufficient cards in deck")

// Deck is an owned, mutable sequence of the 52 unique cards plus a log of
// cards already dealt. Every card is in exactly one of the two piles at any
// time. A Deck is not safe for concurrent use.
type Deck struct {
	cards []Card
	dealt []Card
	rng   *rand.Rand
}

// New creates a full deck in canonical order (suits clubs through spades,
// ranks two through ace within each suit), with shuffling seeded from the
// current time.
func New() *Deck {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded creates a full deck whose shuffles are reproducible from seed.
func NewSeeded(seed int64) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		dealt: make([]Card, 0, 52),
		rng:   randutil.New(seed),
	}
	d.fill()
	return d
}

func (d *Deck) fill() {
	d.cards = d.cards[:0]
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, Card{Rank: rank, Suit: suit})
		}
	}
}

// Shuffle permutes the remaining cards with an unbiased Fisher-Yates
// shuffle.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes n cards from the front of the deck and moves them to the
// dealt log.
func (d *Deck) Deal(n int) ([]Card, error) {
	if n > len(d.cards) {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrInsufficientCards, n, len(d.cards))
	}
	cards := make([]Card, n)
	copy(cards, d.cards[:n])
	d.cards = d.cards[n:]
	d.dealt = append(d.dealt, cards...)
	return cards, nil
}

// DealOne deals a single card.
func (d *Deck) DealOne() (Card, error) {
	cards, err := d.Deal(1)
	if err != nil {
		return Card{}, err
	}
	return cards[0], nil
}

// Reset restores the full 52-card canonical order and clears the dealt log.
// It does not reshuffle.
func (d *Deck) Reset() {
	d.fill()
	d.dealt = d.dealt[:0]
}

// Remaining returns the number of undealt cards.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Dealt returns a copy of the dealt log in deal order.
func (d *Deck) Dealt() []Card {
	out := make([]Card, len(d.dealt))
	copy(out, d.dealt)
	return out
}

func (d *Deck) String() string {
	return fmt.Sprintf("Deck(%d remaining)", len(d.cards))
}
