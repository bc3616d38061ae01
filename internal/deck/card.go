// Package deck provides the playing card value type and a dealing deck for
// heads-up Texas Hold'em.
package deck

import (
	"errors"
	"fmt"
	"strings"
)

// Suit represents a card suit, ordered clubs through spades.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the lower-case suit letter used in the card text format.
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	case Hearts:
		return "h"
	case Spades:
		return "s"
	default:
		return "?"
	}
}

// Symbol returns the unicode glyph for display output.
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// IsRed returns true for Hearts and Diamonds.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. Aces are high (14).
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the single-character rank used in the card text format.
func (r Rank) String() string {
	switch {
	case r >= Two && r <= Nine:
		return string(rune('0' + int(r)))
	case r == Ten:
		return "T"
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	default:
		return "?"
	}
}

// Name returns the spelled-out rank name ("Ace", "Ten", ...).
func (r Rank) Name() string {
	names := map[Rank]string{
		Two: "Two", Three: "Three", Four: "Four", Five: "Five", Six: "Six",
		Seven: "Seven", Eight: "Eight", Nine: "Nine", Ten: "Ten",
		Jack: "Jack", Queen: "Queen", King: "King", Ace: "Ace",
	}
	if n, ok := names[r]; ok {
		return n
	}
	return fmt.Sprintf("%d", int(r))
}

// Card is an immutable rank/suit pair. Cards are small value types and are
// copied freely; equality is plain struct equality.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card.
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the canonical two-character form, e.g. "As" or "Td".
// ParseCard(c.String()) recovers c for every card.
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Pretty returns a display form with the suit glyph, e.g. "A♠".
func (c Card) Pretty() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// ErrInvalidCard is wrapped by all card parse failures.
var ErrInvalidCard = errors.New("invalid card")

var rankChars = map[byte]Rank{
	'2': Two, '3': Three, '4': Four, '5': Five, '6': Six, '7': Seven,
	'8': Eight, '9': Nine, 'T': Ten, 'J': Jack, 'Q': Queen, 'K': King,
	'A': Ace,
}

var suitChars = map[byte]Suit{
	'c': Clubs, 'd': Diamonds, 'h': Hearts, 's': Spades,
}

// ParseCard parses the two-character text form: a rank character
// (2-9, T, J, Q, K, A) followed by a suit character (c, d, h, s). Both
// characters are case-insensitive.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q must be exactly two characters", ErrInvalidCard, s)
	}
	rank, ok := rankChars[strings.ToUpper(s[:1])[0]]
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown rank %q", ErrInvalidCard, s[:1])
	}
	suit, ok := suitChars[strings.ToLower(s[1:])[0]]
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, s[1:])
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses a run of concatenated two-character cards, ignoring
// spaces, e.g. "AsKs" or "Ah Kd Qc".
func ParseCards(s string) ([]Card, error) {
	s = strings.ReplaceAll(s, " ", "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd-length card string %q", ErrInvalidCard, s)
	}
	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards is ParseCards for test fixtures and literals; it panics on
// malformed input.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

// FormatCards renders cards in canonical text form separated by spaces.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
