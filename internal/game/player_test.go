package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/headsup/internal/deck"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer("alice", 1000)
	assert.Equal(t, "alice", p.Name)
	assert.Equal(t, 1000, p.Stack)
	assert.True(t, p.IsActive)
	assert.False(t, p.IsAllIn)
	assert.True(t, p.CanAct())
}

func TestPlayerBetMovesChips(t *testing.T) {
	p := NewPlayer("alice", 100)

	added := p.Bet(30, 0)
	assert.Equal(t, 30, added)
	assert.Equal(t, 70, p.Stack)
	assert.Equal(t, 30, p.CurrentBet)
	assert.Equal(t, 30, p.TotalBet)
	assert.False(t, p.IsAllIn)

	// Raising to 80 adds only the difference.
	added = p.Bet(80, 40)
	assert.Equal(t, 50, added)
	assert.Equal(t, 20, p.Stack)
	assert.Equal(t, 80, p.CurrentBet)
	assert.Equal(t, 80, p.TotalBet)
}

func TestPlayerBetCapsAtStack(t *testing.T) {
	p := NewPlayer("alice", 50)

	added := p.Bet(200, 0)
	assert.Equal(t, 50, added)
	assert.Equal(t, 0, p.Stack)
	assert.Equal(t, 50, p.CurrentBet, "street total reflects the capped amount")
	assert.True(t, p.IsAllIn)
	assert.False(t, p.CanAct())
}

func TestPlayerCallShortStackGoesAllIn(t *testing.T) {
	p := NewPlayer("alice", 30)

	added := p.Call(100)
	assert.Equal(t, 30, added)
	assert.True(t, p.IsAllIn)
	assert.Equal(t, 30, p.CurrentBet)
}

func TestPlayerBlindDoesNotCountAsActing(t *testing.T) {
	p := NewPlayer("alice", 100)

	p.PostBlind(20, PostBigBlind)
	assert.False(t, p.actedThisStreet)
	assert.False(t, p.voluntaryThisStreet)
	assert.Equal(t, 20, p.CurrentBet)

	p.Call(40)
	assert.True(t, p.voluntaryThisStreet)
}

func TestPlayerShortBlindRecordsActualAmount(t *testing.T) {
	p := NewPlayer("alice", 15)

	p.PostBlind(20, PostBigBlind)
	require.Len(t, p.Actions, 1)
	assert.Equal(t, 15, p.Actions[0].Amount)
	assert.True(t, p.IsAllIn)
}

func TestPlayerFold(t *testing.T) {
	p := NewPlayer("alice", 100)
	p.Fold()
	assert.False(t, p.IsActive)
	assert.True(t, p.HasFolded)
	assert.False(t, p.CanAct())
}

func TestPlayerActionLog(t *testing.T) {
	p := NewPlayer("alice", 100)
	p.PostBlind(10, PostSmallBlind)
	p.Call(20)
	p.Bet(60, 20)

	require.Len(t, p.Actions, 3)
	assert.Equal(t, PostSmallBlind, p.Actions[0].Action)
	assert.Equal(t, Call, p.Actions[1].Action)
	assert.Equal(t, 20, p.Actions[1].Amount)
	assert.Equal(t, Raise, p.Actions[2].Action, "betting into an outstanding bet records a raise")
	assert.Equal(t, 60, p.Actions[2].Amount)
}

func TestPlayerResetForNewHandPreservesStack(t *testing.T) {
	p := NewPlayer("alice", 100)
	p.Position = BigBlindPosition
	p.DealHoleCards(deck.MustParseCards("AsKs"))
	p.Bet(40, 0)
	p.Fold()
	p.WinPot(25)

	p.ResetForNewHand()
	assert.Equal(t, 85, p.Stack)
	assert.Nil(t, p.HoleCards)
	assert.Equal(t, NoPosition, p.Position)
	assert.True(t, p.IsActive)
	assert.False(t, p.HasFolded)
	assert.Zero(t, p.CurrentBet)
	assert.Zero(t, p.TotalBet)
	assert.Empty(t, p.Actions)
}

func TestPlayerStreetResetPreservesTotalBet(t *testing.T) {
	p := NewPlayer("alice", 100)
	p.Bet(40, 0)
	p.resetForNewStreet()

	assert.Zero(t, p.CurrentBet)
	assert.Equal(t, 40, p.TotalBet)
	assert.False(t, p.actedThisStreet)
	assert.False(t, p.voluntaryThisStreet)
}

func TestPlayerHoleCardsString(t *testing.T) {
	p := NewPlayer("alice", 100)
	p.DealHoleCards(deck.MustParseCards("AhTd"))

	assert.Equal(t, "Ah Td", p.HoleCardsString(false))
	assert.Equal(t, "?? ??", p.HoleCardsString(true))
}
