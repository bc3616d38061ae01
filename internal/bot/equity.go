package bot

import (
	"context"
	"fmt"

	"github.com/lox/headsup/internal/deck"
	"github.com/lox/headsup/internal/equity"
	"github.com/lox/headsup/internal/game"
)

// anyHand is the unweighted opponent model the equity bot plays against.
var anyHand = equity.MustParseRange("any")

// raiseThreshold and the pot-odds call rule below are deliberately blunt;
// the bot exists to exercise the engine, not to win.
const raiseThreshold = 0.65

// EquityBot estimates its equity against a random hand each turn and plays
// pot odds: raise the maximum when well ahead, call when the price is
// right, fold otherwise.
type EquityBot struct {
	sim *equity.Simulator
}

// NewEquityBot creates an equity-driven bot with a deterministic sampler.
func NewEquityBot(seed int64) *EquityBot {
	return &EquityBot{
		sim: equity.NewSimulator(
			equity.WithTrials(2000),
			equity.WithWorkers(1),
			equity.WithSimSeed(seed),
		),
	}
}

func (b *EquityBot) Act(ctx context.Context, snap game.Snapshot, legal game.LegalActions) (game.Action, int, error) {
	hero, board, err := cardsFromSnapshot(snap)
	if err != nil {
		return 0, 0, err
	}

	result, err := b.sim.Run(ctx, hero, anyHand, board)
	if err != nil {
		return 0, 0, err
	}

	if result.Equity >= raiseThreshold && legal.CanRaise() {
		return game.Raise, legal.Raise.Max, nil
	}
	if legal.Check {
		return game.Check, 0, nil
	}

	toCall := snap.CurrentBet
	if viewer := snap.Player(snap.Viewer); viewer != nil {
		toCall -= viewer.CurrentBet
	}
	// Price of the call against the pot after calling.
	price := float64(toCall) / float64(snap.Pot+toCall)
	if legal.Call && result.Equity >= price {
		return game.Call, 0, nil
	}
	return game.Fold, 0, nil
}

// cardsFromSnapshot recovers the bot's hole cards and the board from the
// textual snapshot.
func cardsFromSnapshot(snap game.Snapshot) (hero, board []deck.Card, err error) {
	viewer := snap.Player(snap.Viewer)
	if viewer == nil || len(viewer.HoleCards) != 2 {
		return nil, nil, fmt.Errorf("snapshot for %q has no hole cards", snap.Viewer)
	}
	for _, s := range viewer.HoleCards {
		c, err := deck.ParseCard(s)
		if err != nil {
			return nil, nil, err
		}
		hero = append(hero, c)
	}
	for _, s := range snap.Board {
		c, err := deck.ParseCard(s)
		if err != nil {
			return nil, nil, err
		}
		board = append(board, c)
	}
	return hero, board, nil
}
