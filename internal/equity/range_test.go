package equity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/headsup/internal/deck"
)

func TestParseRangeComboCounts(t *testing.T) {
	tests := []struct {
		notation string
		combos   int
	}{
		{"AA", 6},
		{"AKs", 4},
		{"AKo", 12},
		{"AK", 16},
		{"TT+", 30},  // TT JJ QQ KK AA
		{"ATs+", 16}, // ATs AJs AQs AKs
		{"AJo+", 36}, // AJo AQo AKo
		{"22-77", 36},
		{"77-22", 36},
		{"AA,KK", 12},
		{"AA, KK, AKs", 16},
		{"AA,AA", 6},
		{"any", 1326},
	}

	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			r, err := ParseRange(tt.notation)
			require.NoError(t, err)
			assert.Equal(t, tt.combos, r.Size())
		})
	}
}

func TestParseRangeRejectsBadNotation(t *testing.T) {
	for _, notation := range []string{
		"",
		"A",
		"AKx",
		"ZZ",
		"AAs",
		"AKs-QQ",
		"AKs-AQs",
	} {
		t.Run(notation, func(t *testing.T) {
			_, err := ParseRange(notation)
			assert.Error(t, err)
		})
	}
}

func TestSuitedCombosAreSuited(t *testing.T) {
	r := MustParseRange("AKs")
	for _, combo := range r.Combos() {
		assert.Equal(t, combo[0].Suit, combo[1].Suit, "combo %s", combo)
	}
}

func TestOffsuitCombosAreOffsuit(t *testing.T) {
	r := MustParseRange("AKo")
	for _, combo := range r.Combos() {
		assert.NotEqual(t, combo[0].Suit, combo[1].Suit, "combo %s", combo)
	}
}

func TestCombosExcludesDeadCards(t *testing.T) {
	r := MustParseRange("AA")

	live := r.Combos(deck.MustParseCards("As")...)
	assert.Len(t, live, 3, "three aces leave three pairings")
	for _, combo := range live {
		assert.NotEqual(t, "As", combo[0].String())
		assert.NotEqual(t, "As", combo[1].String())
	}

	// Dead cards outside the range change nothing.
	assert.Len(t, r.Combos(deck.MustParseCards("2c7d")...), 6)
}

func TestRangeStringRoundTrip(t *testing.T) {
	r := MustParseRange("JJ+, AQs+")
	assert.Equal(t, "JJ+, AQs+", r.String())
}
