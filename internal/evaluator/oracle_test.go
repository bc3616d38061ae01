package evaluator

import (
	"testing"

	"github.com/lox/headsup/internal/deck"
	"github.com/lox/headsup/internal/randutil"
	"github.com/paulhankin/poker"
	"github.com/stretchr/testify/require"
)

// oracleEval scores a 7-card hand with the paulhankin/poker evaluator, which
// uses an entirely different algorithm. Higher scores are better there too.
func oracleEval(t *testing.T, cards []deck.Card) int16 {
	t.Helper()
	var hand [7]poker.Card
	for i, c := range cards {
		// The oracle numbers aces as 1; suits share our ordering.
		rank := int(c.Rank)
		if c.Rank == deck.Ace {
			rank = 1
		}
		pc, err := poker.MakeCard(poker.Suit(c.Suit), poker.Rank(rank))
		require.NoError(t, err)
		hand[i] = pc
	}
	return poker.Eval7(&hand)
}

// Deal random pairs of 7-card hands over a shared board and require that our
// ordering agrees with the independent evaluator on every one.
func TestEvaluateAgreesWithOracle(t *testing.T) {
	rng := randutil.New(99)

	for trial := 0; trial < 500; trial++ {
		d := deck.NewSeeded(rng.Int64())
		d.Shuffle()

		board, err := d.Deal(5)
		require.NoError(t, err)
		holeA, err := d.Deal(2)
		require.NoError(t, err)
		holeB, err := d.Deal(2)
		require.NoError(t, err)

		handA := append(append([]deck.Card{}, holeA...), board...)
		handB := append(append([]deck.Card{}, holeB...), board...)

		got, err := CompareHands(handA, handB)
		require.NoError(t, err)

		scoreA := oracleEval(t, handA)
		scoreB := oracleEval(t, handB)
		want := 0
		if scoreA > scoreB {
			want = 1
		} else if scoreA < scoreB {
			want = -1
		}

		require.Equalf(t, want, got,
			"trial %d: hole %v vs %v on board %v", trial, holeA, holeB, board)
	}
}
