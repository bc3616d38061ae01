package bot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/headsup/internal/game"
)

var (
	facingBet = game.LegalActions{
		Fold:  true,
		Call:  true,
		Raise: &game.RaiseBounds{Min: 40, Max: 70},
	}
	openToAct = game.LegalActions{
		Check: true,
		Raise: &game.RaiseBounds{Min: 20, Max: 30},
	}
	callOrFold = game.LegalActions{Fold: true, Call: true}
)

func TestCallerNeverFoldsWhenCallable(t *testing.T) {
	ctx := context.Background()

	action, _, err := Caller{}.Act(ctx, game.Snapshot{}, facingBet)
	require.NoError(t, err)
	assert.Equal(t, game.Call, action)

	action, _, err = Caller{}.Act(ctx, game.Snapshot{}, openToAct)
	require.NoError(t, err)
	assert.Equal(t, game.Check, action)
}

func TestAggressorMaxRaises(t *testing.T) {
	ctx := context.Background()

	action, amount, err := Aggressor{}.Act(ctx, game.Snapshot{}, facingBet)
	require.NoError(t, err)
	assert.Equal(t, game.Raise, action)
	assert.Equal(t, 70, amount)

	action, _, err = Aggressor{}.Act(ctx, game.Snapshot{}, callOrFold)
	require.NoError(t, err)
	assert.Equal(t, game.Call, action)
}

func TestRandomStaysWithinLegalActions(t *testing.T) {
	ctx := context.Background()
	b := NewRandom(1)

	for i := 0; i < 200; i++ {
		action, amount, err := b.Act(ctx, game.Snapshot{}, facingBet)
		require.NoError(t, err)
		require.NoError(t, game.ValidateAction(action, amount, facingBet))
	}

	for i := 0; i < 200; i++ {
		action, amount, err := b.Act(ctx, game.Snapshot{}, openToAct)
		require.NoError(t, err)
		require.NoError(t, game.ValidateAction(action, amount, openToAct))
	}
}

func TestRandomDeterministicForSeed(t *testing.T) {
	ctx := context.Background()

	sequence := func(seed int64) []int {
		b := NewRandom(seed)
		var amounts []int
		for i := 0; i < 50; i++ {
			action, amount, err := b.Act(ctx, game.Snapshot{}, facingBet)
			require.NoError(t, err)
			amounts = append(amounts, int(action)*1000+amount)
		}
		return amounts
	}

	assert.Equal(t, sequence(9), sequence(9))
}

func TestBotsFinishGames(t *testing.T) {
	caller, err := New("caller", 0)
	require.NoError(t, err)
	random, err := New("random", 3)
	require.NoError(t, err)

	g := game.New("caller", "random", caller, random,
		game.WithSeed(11), game.WithStartingStack(200))

	ctx := context.Background()
	for i := 0; i < 100 && !g.IsGameOver(); i++ {
		_, err := g.PlayHand(ctx)
		require.NoError(t, err)

		total := 0
		for _, stack := range g.Stacks() {
			total += stack
		}
		require.Equal(t, 400, total)
	}
}

func TestNewUnknownBot(t *testing.T) {
	_, err := New("tilted", 0)
	assert.Error(t, err)
}
