// Package evaluator ranks poker hands of 5 to 7 cards. Evaluation is pure:
// the same cards always produce the same result and nothing is mutated.
package evaluator

import (
	"fmt"
	"sort"

	"github.com/lox/headsup/internal/deck"
)

// Category is the 10-way hand ranking, High Card (0) through Royal Flush (9).
type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// Evaluation is the comparable strength of a hand: the category, then the
// category-specific tiebreaker ranks compared lexicographically, plus a
// display name for UIs and hand histories.
type Evaluation struct {
	Category    Category
	Tiebreakers []int
	Name        string
}

// Compare orders two evaluations: 1 if a beats b, -1 if b beats a, 0 on an
// exact tie.
func Compare(a, b Evaluation) int {
	if a.Category != b.Category {
		if a.Category > b.Category {
			return 1
		}
		return -1
	}
	for i := 0; i < len(a.Tiebreakers) && i < len(b.Tiebreakers); i++ {
		if a.Tiebreakers[i] != b.Tiebreakers[i] {
			if a.Tiebreakers[i] > b.Tiebreakers[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Evaluate ranks a set of 5 to 7 cards. For more than 5 cards every 5-card
// subset is evaluated and the best kept, which is the normal Texas Hold'em
// showdown case (2 hole + 5 community).
func Evaluate(cards []deck.Card) (Evaluation, error) {
	switch {
	case len(cards) < 5:
		return Evaluation{}, fmt.Errorf("need at least 5 cards, got %d", len(cards))
	case len(cards) > 7:
		return Evaluation{}, fmt.Errorf("need at most 7 cards, got %d", len(cards))
	case len(cards) == 5:
		return evaluate5(cards), nil
	}

	best := Evaluation{Category: -1}
	var combo [5]deck.Card
	forEachCombination(len(cards), func(idx [5]int) {
		for i, j := range idx {
			combo[i] = cards[j]
		}
		ev := evaluate5(combo[:])
		if best.Category == -1 || Compare(ev, best) > 0 {
			best = ev
		}
	})
	return best, nil
}

// forEachCombination visits every 5-element index subset of [0,n).
func forEachCombination(n int, visit func([5]int)) {
	var idx [5]int
	for a := 0; a < n-4; a++ {
		for b := a + 1; b < n-3; b++ {
			for c := b + 1; c < n-2; c++ {
				for d := c + 1; d < n-1; d++ {
					for e := d + 1; e < n; e++ {
						idx[0], idx[1], idx[2], idx[3], idx[4] = a, b, c, d, e
						visit(idx)
					}
				}
			}
		}
	}
}

// rankGroup is a rank together with how many times it appears in the hand.
type rankGroup struct {
	rank  int
	count int
}

func evaluate5(cards []deck.Card) Evaluation {
	ranks := make([]int, 5)
	for i, c := range cards {
		ranks[i] = int(c.Rank)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))

	isFlush := true
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			isFlush = false
			break
		}
	}
	isStraight, straightHigh := checkStraight(ranks)

	// Multiplicity groups ordered by count then rank, both descending.
	counts := map[int]int{}
	for _, r := range ranks {
		counts[r]++
	}
	groups := make([]rankGroup, 0, len(counts))
	for r, n := range counts {
		groups = append(groups, rankGroup{rank: r, count: n})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].rank > groups[j].rank
	})

	switch {
	case isStraight && isFlush:
		if straightHigh == int(deck.Ace) {
			return Evaluation{RoyalFlush, []int{straightHigh}, "Royal Flush"}
		}
		return Evaluation{StraightFlush, []int{straightHigh},
			fmt.Sprintf("Straight Flush, %s high", deck.Rank(straightHigh).Name())}

	case groups[0].count == 4:
		return Evaluation{FourOfAKind, []int{groups[0].rank, groups[1].rank},
			fmt.Sprintf("Four of a Kind, %ss", deck.Rank(groups[0].rank).Name())}

	case groups[0].count == 3 && groups[1].count == 2:
		return Evaluation{FullHouse, []int{groups[0].rank, groups[1].rank},
			fmt.Sprintf("Full House, %ss over %ss",
				deck.Rank(groups[0].rank).Name(), deck.Rank(groups[1].rank).Name())}

	case isFlush:
		return Evaluation{Flush, ranks,
			fmt.Sprintf("Flush, %s high", deck.Rank(ranks[0]).Name())}

	case isStraight:
		return Evaluation{Straight, []int{straightHigh},
			fmt.Sprintf("Straight, %s high", deck.Rank(straightHigh).Name())}

	case groups[0].count == 3:
		tb := []int{groups[0].rank, groups[1].rank, groups[2].rank}
		return Evaluation{ThreeOfAKind, tb,
			fmt.Sprintf("Three of a Kind, %ss", deck.Rank(groups[0].rank).Name())}

	case groups[0].count == 2 && groups[1].count == 2:
		tb := []int{groups[0].rank, groups[1].rank, groups[2].rank}
		return Evaluation{TwoPair, tb,
			fmt.Sprintf("Two Pair, %ss and %ss",
				deck.Rank(groups[0].rank).Name(), deck.Rank(groups[1].rank).Name())}

	case groups[0].count == 2:
		tb := []int{groups[0].rank, groups[1].rank, groups[2].rank, groups[3].rank}
		return Evaluation{OnePair, tb,
			fmt.Sprintf("Pair of %ss", deck.Rank(groups[0].rank).Name())}

	default:
		return Evaluation{HighCard, ranks,
			fmt.Sprintf("%s high", deck.Rank(ranks[0]).Name())}
	}
}

// checkStraight reports whether the descending ranks form a straight and
// its high card. The wheel A-2-3-4-5 is a 5-high straight, not ace-high.
func checkStraight(ranks []int) (bool, int) {
	distinct := true
	for i := 1; i < 5; i++ {
		if ranks[i] == ranks[i-1] {
			distinct = false
			break
		}
	}
	if distinct && ranks[0]-ranks[4] == 4 {
		return true, ranks[0]
	}
	if ranks[0] == 14 && ranks[1] == 5 && ranks[2] == 4 && ranks[3] == 3 && ranks[4] == 2 {
		return true, 5
	}
	return false, 0
}

// CompareHands evaluates and orders two hands of 5-7 cards.
func CompareHands(a, b []deck.Card) (int, error) {
	ea, err := Evaluate(a)
	if err != nil {
		return 0, err
	}
	eb, err := Evaluate(b)
	if err != nil {
		return 0, err
	}
	return Compare(ea, eb), nil
}

// FindWinners returns the names whose hands tie for best. Ties are exact
// equality of category and tiebreakers.
func FindWinners(hands map[string][]deck.Card) ([]string, error) {
	if len(hands) == 0 {
		return nil, nil
	}

	evals := make(map[string]Evaluation, len(hands))
	for name, hand := range hands {
		ev, err := Evaluate(hand)
		if err != nil {
			return nil, fmt.Errorf("evaluating hand for %s: %w", name, err)
		}
		evals[name] = ev
	}

	var best Evaluation
	first := true
	for _, ev := range evals {
		if first || Compare(ev, best) > 0 {
			best = ev
			first = false
		}
	}

	var winners []string
	for name, ev := range evals {
		if Compare(ev, best) == 0 {
			winners = append(winners, name)
		}
	}
	sort.Strings(winners)
	return winners, nil
}

// HandStrength collapses an evaluation to a [0,1] scalar for bot heuristics:
// the category contributes in tenths, the leading tiebreaker a little more.
func HandStrength(cards []deck.Card) (float64, error) {
	ev, err := Evaluate(cards)
	if err != nil {
		return 0, err
	}
	strength := float64(ev.Category) * 0.1
	if len(ev.Tiebreakers) > 0 {
		strength += float64(ev.Tiebreakers[0]) / 14.0 * 0.08
	}
	if strength > 1 {
		strength = 1
	}
	return strength, nil
}
