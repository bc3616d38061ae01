// Package equity estimates hand equity by Monte Carlo simulation against
// hand ranges expressed in standard notation.
package equity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lox/headsup/internal/deck"
)

// ErrEmptyRange is returned when a range has no combos left after removing
// dead cards.
var ErrEmptyRange = errors.New("no combos remain in range")

// HandRange is an expanded set of two-card starting hands. Parse one from
// notation like "AA", "AKs", "QJo", "TT+", "A9s+", "22-77" or a
// comma-separated list of those. "any" matches every starting hand.
type HandRange struct {
	source string
	combos []Combo
}

// Combo is one concrete two-card holding.
type Combo [2]deck.Card

func (c Combo) String() string {
	return c[0].String() + c[1].String()
}

// ParseRange expands range notation into its concrete combos.
func ParseRange(s string) (*HandRange, error) {
	r := &HandRange{source: strings.TrimSpace(s)}
	seen := map[Combo]bool{}

	add := func(combos []Combo) {
		for _, c := range combos {
			// Normalize so each unordered pair appears once.
			if cardLess(c[1], c[0]) {
				c[0], c[1] = c[1], c[0]
			}
			if !seen[c] {
				seen[c] = true
				r.combos = append(r.combos, c)
			}
		}
	}

	for _, token := range strings.Split(r.source, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		combos, err := expandToken(token)
		if err != nil {
			return nil, err
		}
		add(combos)
	}

	if len(r.combos) == 0 {
		return nil, fmt.Errorf("empty range %q", s)
	}
	return r, nil
}

// MustParseRange is ParseRange for tests and constants.
func MustParseRange(s string) *HandRange {
	r, err := ParseRange(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Combos returns the range's holdings that do not collide with the dead
// cards.
func (r *HandRange) Combos(dead ...deck.Card) []Combo {
	isDead := map[deck.Card]bool{}
	for _, c := range dead {
		isDead[c] = true
	}
	out := make([]Combo, 0, len(r.combos))
	for _, combo := range r.combos {
		if isDead[combo[0]] || isDead[combo[1]] {
			continue
		}
		out = append(out, combo)
	}
	return out
}

// Size returns the number of combos before dead-card removal.
func (r *HandRange) Size() int {
	return len(r.combos)
}

func (r *HandRange) String() string {
	return r.source
}

func expandToken(token string) ([]Combo, error) {
	lower := strings.ToLower(token)
	if lower == "any" || lower == "random" {
		return anyTwo(), nil
	}

	if strings.Contains(token, "-") {
		return expandPairRun(token)
	}

	plus := strings.HasSuffix(token, "+")
	body := strings.TrimSuffix(token, "+")

	ranks, suitedness, err := splitHandClass(body)
	if err != nil {
		return nil, fmt.Errorf("bad range token %q: %w", token, err)
	}

	var combos []Combo
	if ranks[0] == ranks[1] {
		top := deck.Ace
		if !plus {
			top = ranks[0]
		}
		for rank := ranks[0]; rank <= top; rank++ {
			combos = append(combos, pairCombos(rank)...)
		}
		return combos, nil
	}

	// Unpaired: "+" walks the kicker up to one below the high card.
	top := ranks[1]
	if plus {
		top = ranks[0] - 1
	}
	for kicker := ranks[1]; kicker <= top; kicker++ {
		combos = append(combos, unpairedCombos(ranks[0], kicker, suitedness)...)
	}
	return combos, nil
}

// expandPairRun handles "22-77" style pair runs.
func expandPairRun(token string) ([]Combo, error) {
	parts := strings.SplitN(token, "-", 2)
	lo, loSuited, err := splitHandClass(parts[0])
	if err != nil {
		return nil, fmt.Errorf("bad range token %q: %w", token, err)
	}
	hi, hiSuited, err := splitHandClass(parts[1])
	if err != nil {
		return nil, fmt.Errorf("bad range token %q: %w", token, err)
	}
	if lo[0] != lo[1] || hi[0] != hi[1] || loSuited != suitedAny || hiSuited != suitedAny {
		return nil, fmt.Errorf("bad range token %q: runs are pairs only", token)
	}
	if lo[0] > hi[0] {
		lo, hi = hi, lo
	}
	var combos []Combo
	for rank := lo[0]; rank <= hi[0]; rank++ {
		combos = append(combos, pairCombos(rank)...)
	}
	return combos, nil
}

type suitedness int

const (
	suitedAny suitedness = iota
	suitedOnly
	offsuitOnly
)

// splitHandClass parses a two-rank class like "AK", "AKs" or "AKo",
// returning the ranks high-first.
func splitHandClass(s string) ([2]deck.Rank, suitedness, error) {
	var zero [2]deck.Rank
	kind := suitedAny
	switch {
	case len(s) == 3 && (s[2] == 's' || s[2] == 'S'):
		kind = suitedOnly
		s = s[:2]
	case len(s) == 3 && (s[2] == 'o' || s[2] == 'O'):
		kind = offsuitOnly
		s = s[:2]
	}
	if len(s) != 2 {
		return zero, kind, fmt.Errorf("expected two ranks, got %q", s)
	}

	a, err := parseRankChar(s[0])
	if err != nil {
		return zero, kind, err
	}
	b, err := parseRankChar(s[1])
	if err != nil {
		return zero, kind, err
	}
	if b > a {
		a, b = b, a
	}
	if a == b && kind != suitedAny {
		return zero, kind, fmt.Errorf("pairs cannot be suited or offsuit")
	}
	return [2]deck.Rank{a, b}, kind, nil
}

func parseRankChar(c byte) (deck.Rank, error) {
	for rank := deck.Two; rank <= deck.Ace; rank++ {
		if rank.String()[0] == c || rank.String()[0] == c-('a'-'A') {
			return rank, nil
		}
	}
	return 0, fmt.Errorf("bad rank %q", string(c))
}

func pairCombos(rank deck.Rank) []Combo {
	var combos []Combo
	for a := deck.Clubs; a <= deck.Spades; a++ {
		for b := a + 1; b <= deck.Spades; b++ {
			combos = append(combos, Combo{{Rank: rank, Suit: a}, {Rank: rank, Suit: b}})
		}
	}
	return combos
}

func unpairedCombos(high, low deck.Rank, kind suitedness) []Combo {
	var combos []Combo
	for a := deck.Clubs; a <= deck.Spades; a++ {
		for b := deck.Clubs; b <= deck.Spades; b++ {
			if kind == suitedOnly && a != b {
				continue
			}
			if kind == offsuitOnly && a == b {
				continue
			}
			combos = append(combos, Combo{{Rank: high, Suit: a}, {Rank: low, Suit: b}})
		}
	}
	return combos
}

func anyTwo() []Combo {
	var cards []deck.Card
	for suit := deck.Clubs; suit <= deck.Spades; suit++ {
		for rank := deck.Two; rank <= deck.Ace; rank++ {
			cards = append(cards, deck.Card{Rank: rank, Suit: suit})
		}
	}
	var combos []Combo
	for i := 0; i < len(cards); i++ {
		for j := i + 1; j < len(cards); j++ {
			combos = append(combos, Combo{cards[i], cards[j]})
		}
	}
	return combos
}

func cardLess(a, b deck.Card) bool {
	if a.Rank != b.Rank {
		return a.Rank < b.Rank
	}
	return a.Suit < b.Suit
}
