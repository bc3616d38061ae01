package game

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/headsup/internal/deck"
)

const (
	DefaultSmallBlind    = 10
	DefaultBigBlind      = 20
	DefaultStartingStack = 1000
)

// HandRecord is the completed record of one hand.
type HandRecord struct {
	Number  int            `json:"number"`
	Result  *HandResult    `json:"result"`
	History []ActionRecord `json:"history"`
	Stacks  map[string]int `json:"stacks"`
}

// Game runs a heads-up pot-limit hold'em match until one player busts. It is
// not safe for concurrent use; callers owning several games run each behind
// its own lock.
type Game struct {
	players       []*Player
	sources       []ActionSource
	dealerIndex   int
	smallBlind    int
	bigBlind      int
	startingStack int
	seed          int64
	seeded        bool
	deck          *deck.Deck
	logger        *log.Logger
	round         *Round
	handNumber    int
	history       []HandRecord
}

// Option configures a Game.
type Option func(*Game)

// WithBlinds sets the blind sizes.
func WithBlinds(smallBlind, bigBlind int) Option {
	return func(g *Game) {
		g.smallBlind = smallBlind
		g.bigBlind = bigBlind
	}
}

// WithStartingStack sets each player's initial stack.
func WithStartingStack(stack int) Option {
	return func(g *Game) {
		g.startingStack = stack
	}
}

// WithSeed makes the deck deterministic, for tests and replays.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.seed = seed
		g.seeded = true
	}
}

// WithLogger sets the structured logger. The default logs warnings and
// above to stderr.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// New creates a two-player game. The first named player starts as dealer and
// posts the small blind in the opening hand.
func New(nameA, nameB string, sourceA, sourceB ActionSource, opts ...Option) *Game {
	g := &Game{
		smallBlind:    DefaultSmallBlind,
		bigBlind:      DefaultBigBlind,
		startingStack: DefaultStartingStack,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.NewWithOptions(os.Stderr, log.Options{
			Level:           log.WarnLevel,
			ReportTimestamp: true,
			TimeFormat:      time.Kitchen,
		})
	}
	if g.seeded {
		g.deck = deck.NewSeeded(g.seed)
	} else {
		g.deck = deck.New()
	}
	g.players = []*Player{
		NewPlayer(nameA, g.startingStack),
		NewPlayer(nameB, g.startingStack),
	}
	g.sources = []ActionSource{sourceA, sourceB}
	g.round = NewRound(g.players, g.dealerIndex, g.deck, g.smallBlind, g.bigBlind, g.logger)
	return g
}

// PlayHand runs one complete hand: blinds, betting on every street, an
// automatic runout when a player is all-in, and the payout. The dealer
// button moves after the hand. Returns ErrGameOver once a player has busted.
func (g *Game) PlayHand(ctx context.Context) (*HandResult, error) {
	if g.IsGameOver() {
		return nil, ErrGameOver
	}

	g.handNumber++
	g.round.dealerIndex = g.dealerIndex
	if err := g.round.StartHand(); err != nil {
		return nil, err
	}

	for {
		if err := g.round.RunBettingRound(ctx, g.sources); err != nil {
			return nil, err
		}
		if g.round.countActive() < 2 {
			break
		}
		if g.round.NeedsRunout() {
			if err := g.round.RunOutBoard(); err != nil {
				return nil, err
			}
			break
		}
		if g.round.Street == River {
			g.round.Street = Showdown
			break
		}
		if err := g.round.AdvanceStreet(); err != nil {
			return nil, err
		}
	}

	result, err := g.round.DetermineWinner()
	if err != nil {
		return nil, err
	}

	record := HandRecord{
		Number:  g.handNumber,
		Result:  result,
		History: append([]ActionRecord{}, g.round.History...),
		Stacks:  g.Stacks(),
	}
	g.history = append(g.history, record)
	g.logger.Info("hand complete",
		"hand", g.handNumber,
		"winners", result.Winners,
		"pot", result.Pot)
	for _, name := range sortedNames(record.Stacks) {
		g.logger.Debug("stack", "player", name, "chips", record.Stacks[name])
	}

	g.dealerIndex = 1 - g.dealerIndex
	return result, nil
}

// Round exposes the current hand for snapshots and display.
func (g *Game) Round() *Round {
	return g.round
}

// Players returns the seats in fixed order.
func (g *Game) Players() []*Player {
	return g.players
}

// Stacks returns each player's chip count by name.
func (g *Game) Stacks() map[string]int {
	stacks := make(map[string]int, len(g.players))
	for _, p := range g.players {
		stacks[p.Name] = p.Stack
	}
	return stacks
}

// HandNumber returns how many hands have been started.
func (g *Game) HandNumber() int {
	return g.handNumber
}

// History returns the completed hand records.
func (g *Game) History() []HandRecord {
	return g.history
}

// IsGameOver reports whether a player has busted.
func (g *Game) IsGameOver() bool {
	for _, p := range g.players {
		if p.Stack <= 0 {
			return true
		}
	}
	return false
}

// Winner returns the player holding all the chips, or nil while the match is
// still live.
func (g *Game) Winner() *Player {
	if !g.IsGameOver() {
		return nil
	}
	for _, p := range g.players {
		if p.Stack > 0 {
			return p
		}
	}
	return nil
}

// Reset restores both stacks and restarts the match from hand zero. The
// button returns to the first-named player.
func (g *Game) Reset() {
	for _, p := range g.players {
		p.ResetForNewHand()
		p.Stack = g.startingStack
	}
	g.dealerIndex = 0
	g.handNumber = 0
	g.history = nil
}
