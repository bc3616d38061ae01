// Package bot provides built-in computer opponents. Each bot is a
// game.ActionSource and only ever returns actions that are legal for the
// state it is shown.
package bot

import (
	"context"
	"fmt"

	rand "math/rand/v2"

	"github.com/lox/headsup/internal/game"
	"github.com/lox/headsup/internal/randutil"
)

// New returns the named bot. Known names are "caller", "random",
// "aggressor" and "equity"; seed only affects bots that randomize or
// sample.
func New(name string, seed int64) (game.ActionSource, error) {
	switch name {
	case "caller":
		return Caller{}, nil
	case "random":
		return NewRandom(seed), nil
	case "aggressor":
		return Aggressor{}, nil
	case "equity":
		return NewEquityBot(seed), nil
	default:
		return nil, fmt.Errorf("unknown bot %q", name)
	}
}

// Caller checks when it can and calls when it must. It never bets and never
// folds, which makes it a useful showdown baseline.
type Caller struct{}

func (Caller) Act(_ context.Context, _ game.Snapshot, legal game.LegalActions) (game.Action, int, error) {
	if legal.Check {
		return game.Check, 0, nil
	}
	if legal.Call {
		return game.Call, 0, nil
	}
	return game.Fold, 0, nil
}

// Random picks uniformly among the legal actions, with raise sizes drawn
// uniformly from the legal window. Not safe for concurrent use; give each
// game its own instance.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a randomizing bot with a deterministic stream.
func NewRandom(seed int64) *Random {
	return &Random{rng: randutil.New(seed)}
}

func (b *Random) Act(_ context.Context, _ game.Snapshot, legal game.LegalActions) (game.Action, int, error) {
	var choices []game.Action
	if legal.Fold {
		choices = append(choices, game.Fold)
	}
	if legal.Check {
		choices = append(choices, game.Check)
	}
	if legal.Call {
		choices = append(choices, game.Call)
	}
	if legal.CanRaise() {
		choices = append(choices, game.Raise)
	}

	action := choices[b.rng.IntN(len(choices))]
	if action != game.Raise {
		return action, 0, nil
	}
	span := legal.Raise.Max - legal.Raise.Min
	amount := legal.Raise.Min
	if span > 0 {
		amount += b.rng.IntN(span + 1)
	}
	return game.Raise, amount, nil
}

// Aggressor raises the maximum whenever raising is legal, otherwise calls.
type Aggressor struct{}

func (Aggressor) Act(_ context.Context, _ game.Snapshot, legal game.LegalActions) (game.Action, int, error) {
	if legal.CanRaise() {
		return game.Raise, legal.Raise.Max, nil
	}
	if legal.Call {
		return game.Call, 0, nil
	}
	if legal.Check {
		return game.Check, 0, nil
	}
	return game.Fold, 0, nil
}
