package equity

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lox/headsup/internal/deck"
	"github.com/lox/headsup/internal/evaluator"
	"github.com/lox/headsup/internal/randutil"
)

// Result summarizes a simulation. Equity counts a tie as half a win; StdErr
// is the standard error of the equity estimate.
type Result struct {
	Equity  float64 `json:"equity"`
	WinRate float64 `json:"win_rate"`
	TieRate float64 `json:"tie_rate"`
	Samples int     `json:"samples"`
	StdErr  float64 `json:"std_err"`
}

// Simulator runs hero-versus-range equity simulations. The zero value is
// not usable; construct with NewSimulator.
type Simulator struct {
	trials  int
	workers int
	seed    int64
}

// SimOption configures a Simulator.
type SimOption func(*Simulator)

// WithTrials sets the total sample count.
func WithTrials(n int) SimOption {
	return func(s *Simulator) { s.trials = n }
}

// WithWorkers sets the number of parallel workers.
func WithWorkers(n int) SimOption {
	return func(s *Simulator) { s.workers = n }
}

// WithSimSeed makes the simulation deterministic.
func WithSimSeed(seed int64) SimOption {
	return func(s *Simulator) { s.seed = seed }
}

// NewSimulator creates a simulator with 10000 trials across one worker per
// CPU by default.
func NewSimulator(opts ...SimOption) *Simulator {
	s := &Simulator{
		trials:  10000,
		workers: runtime.NumCPU(),
		seed:    1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.workers < 1 {
		s.workers = 1
	}
	if s.workers > s.trials {
		s.workers = s.trials
	}
	return s
}

type tally struct {
	wins, ties, samples int
}

// Run estimates the hero hand's equity against the villain range on the
// given board (0, 3, 4 or 5 cards). Each trial draws a villain combo from
// the range, completes the board and compares the seven-card hands.
func (s *Simulator) Run(ctx context.Context, hero []deck.Card, villain *HandRange, board []deck.Card) (Result, error) {
	if len(hero) != 2 {
		return Result{}, fmt.Errorf("hero hand must be 2 cards, got %d", len(hero))
	}
	switch len(board) {
	case 0, 3, 4, 5:
	default:
		return Result{}, fmt.Errorf("board must have 0, 3, 4 or 5 cards, got %d", len(board))
	}

	dead := append(append([]deck.Card{}, hero...), board...)
	combos := villain.Combos(dead...)
	if len(combos) == 0 {
		return Result{}, ErrEmptyRange
	}

	// Cards available to complete the board, excluding hero and board but
	// not villain cards; each trial filters its combo out.
	stub := make([]deck.Card, 0, 52)
	isDead := map[deck.Card]bool{}
	for _, c := range dead {
		isDead[c] = true
	}
	for suit := deck.Clubs; suit <= deck.Spades; suit++ {
		for rank := deck.Two; rank <= deck.Ace; rank++ {
			c := deck.Card{Rank: rank, Suit: suit}
			if !isDead[c] {
				stub = append(stub, c)
			}
		}
	}

	results := make([]tally, s.workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < s.workers; w++ {
		share := s.trials / s.workers
		if w < s.trials%s.workers {
			share++
		}
		g.Go(s.worker(ctx, w, share, hero, board, combos, stub, &results[w]))
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	var total tally
	for _, t := range results {
		total.wins += t.wins
		total.ties += t.ties
		total.samples += t.samples
	}
	if total.samples == 0 {
		return Result{}, errors.New("no samples completed")
	}

	n := float64(total.samples)
	equity := (float64(total.wins) + float64(total.ties)/2) / n
	return Result{
		Equity:  equity,
		WinRate: float64(total.wins) / n,
		TieRate: float64(total.ties) / n,
		Samples: total.samples,
		StdErr:  math.Sqrt(equity * (1 - equity) / n),
	}, nil
}

func (s *Simulator) worker(ctx context.Context, id, trials int, hero, board []deck.Card, combos []Combo, stub []deck.Card, out *tally) func() error {
	return func() error {
		rng := randutil.Derive(s.seed, id)
		pool := make([]deck.Card, len(stub))
		need := 5 - len(board)

		for i := 0; i < trials; i++ {
			if i%1024 == 0 {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
			}

			combo := combos[rng.IntN(len(combos))]

			// Draw the remaining board cards from the stub, skipping the
			// villain's two.
			pool = pool[:0]
			for _, c := range stub {
				if c != combo[0] && c != combo[1] {
					pool = append(pool, c)
				}
			}
			for j := 0; j < need; j++ {
				k := j + rng.IntN(len(pool)-j)
				pool[j], pool[k] = pool[k], pool[j]
			}

			full := append(append([]deck.Card{}, board...), pool[:need]...)
			heroHand := append(append([]deck.Card{}, hero...), full...)
			villainHand := append([]deck.Card{combo[0], combo[1]}, full...)

			cmp, err := evaluator.CompareHands(heroHand, villainHand)
			if err != nil {
				return err
			}
			switch {
			case cmp > 0:
				out.wins++
			case cmp == 0:
				out.ties++
			}
			out.samples++
		}
		return nil
	}
}
