package evaluator

import (
	"testing"

	"github.com/lox/headsup/internal/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateCategories(t *testing.T) {
	tests := []struct {
		name        string
		cards       string
		category    Category
		tiebreakers []int
	}{
		{"royal flush", "AsKsQsJsTs", RoyalFlush, []int{14}},
		{"straight flush", "9h8h7h6h5h", StraightFlush, []int{9}},
		{"four of a kind", "KdKhKsKc2d", FourOfAKind, []int{13, 2}},
		{"full house", "QsQhQd9c9d", FullHouse, []int{12, 9}},
		{"flush", "AhJh8h5h3h", Flush, []int{14, 11, 8, 5, 3}},
		{"straight", "Td9c8h7s6d", Straight, []int{10}},
		{"wheel is five high", "Ad5c4h3s2d", Straight, []int{5}},
		{"wheel straight flush", "Ac5c4c3c2c", StraightFlush, []int{5}},
		{"three of a kind", "7s7h7dKc2d", ThreeOfAKind, []int{7, 13, 2}},
		{"two pair", "JsJh4c4dAs", TwoPair, []int{11, 4, 14}},
		{"one pair", "TsThAc8d3s", OnePair, []int{10, 14, 8, 3}},
		{"high card", "AdQc9h6s3c", HighCard, []int{14, 12, 9, 6, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := Evaluate(deck.MustParseCards(tt.cards))
			require.NoError(t, err)
			assert.Equal(t, tt.category, ev.Category)
			assert.Equal(t, tt.tiebreakers, ev.Tiebreakers)
		})
	}
}

func TestEvaluateSevenCardsPicksBestFive(t *testing.T) {
	// Five hearts spread across hole and board make the flush.
	cards := deck.MustParseCards("AhKh QhJh2c 9h3d")
	ev, err := Evaluate(cards)
	require.NoError(t, err)
	assert.Equal(t, Flush, ev.Category)
	assert.Equal(t, []int{14, 13, 12, 11, 9}, ev.Tiebreakers)

	// Straight on the board, pocket pair does not improve it.
	cards = deck.MustParseCards("2s2d Td9c8h7s6d")
	ev, err = Evaluate(cards)
	require.NoError(t, err)
	assert.Equal(t, Straight, ev.Category)
	assert.Equal(t, []int{10}, ev.Tiebreakers)
}

func TestEvaluateRejectsBadSizes(t *testing.T) {
	_, err := Evaluate(deck.MustParseCards("AsKs"))
	assert.Error(t, err)
	_, err = Evaluate(deck.MustParseCards("AsKsQsJsTs9s8s7s"))
	assert.Error(t, err)
}

func TestEvaluateIsPure(t *testing.T) {
	cards := deck.MustParseCards("AhKh2c9h3d5s8h")
	first, err := Evaluate(cards)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Evaluate(cards)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestCompareTiebreakers(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"higher category wins", "KdKhKsKc2d", "AhJh8h5h3h", 1},
		{"kicker decides quads", "KdKhKsKc9d", "KdKhKsKc2d", 1},
		{"full house trips first", "QsQhQd2c2d", "JsJhJdAcAd", 1},
		{"wheel loses to six high straight", "Ad5c4h3s2d", "6d5c4h3s2h", -1},
		{"exact tie", "AhKd9c6s3h", "AsKc9d6h3s", 0},
		{"flush kicker run", "AhJh8h5h3h", "AdJd8d5d2d", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CompareHands(deck.MustParseCards(tt.a), deck.MustParseCards(tt.b))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindWinners(t *testing.T) {
	board := "QdJd8s4c2h"
	hands := map[string][]deck.Card{
		"alice": deck.MustParseCards("QsQh" + board), // set of queens
		"bob":   deck.MustParseCards("AdKd" + board), // ace high
	}
	winners, err := FindWinners(hands)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, winners)

	// A chopped board ties both players.
	board = "AsKsQdJhTc"
	hands = map[string][]deck.Card{
		"alice": deck.MustParseCards("2s3d" + board),
		"bob":   deck.MustParseCards("4c5h" + board),
	}
	winners, err = FindWinners(hands)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, winners)
}

func TestHandNames(t *testing.T) {
	tests := []struct {
		cards string
		name  string
	}{
		{"AsKsQsJsTs", "Royal Flush"},
		{"KdKhKsKc2d", "Four of a Kind, Kings"},
		{"QsQhQd9c9d", "Full House, Queens over Nines"},
		{"Ad5c4h3s2d", "Straight, Five high"},
		{"TsThAc8d3s", "Pair of Tens"},
		{"AdQc9h6s3c", "Ace high"},
	}
	for _, tt := range tests {
		ev, err := Evaluate(deck.MustParseCards(tt.cards))
		require.NoError(t, err)
		assert.Equal(t, tt.name, ev.Name)
	}
}

func TestHandStrengthOrdering(t *testing.T) {
	quads, err := HandStrength(deck.MustParseCards("KdKhKsKc2d"))
	require.NoError(t, err)
	pair, err := HandStrength(deck.MustParseCards("TsThAc8d3s"))
	require.NoError(t, err)
	assert.Greater(t, quads, pair)
	assert.LessOrEqual(t, quads, 1.0)
}
