package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/lox/headsup/internal/deck"
	"github.com/lox/headsup/internal/equity"
)

type OddsCmd struct {
	Hand       string `arg:"" help:"Hero hand, e.g. 'AsKd'"`
	Range      string `arg:"" help:"Villain range, e.g. 'JJ+,AQs+' or 'any'"`
	Board      string `short:"b" help:"Board cards, e.g. 'Td7s8h'"`
	Iterations int    `short:"i" default:"100000" help:"Number of Monte Carlo samples"`
	Workers    int    `short:"w" default:"0" help:"Worker goroutines (0 for one per CPU)"`
	Seed       int64  `default:"0" help:"RNG seed (0 for random)"`
}

func (cmd *OddsCmd) Run(appCtx *Context) error {
	hero, err := deck.ParseCards(cmd.Hand)
	if err != nil {
		return fmt.Errorf("bad hand: %w", err)
	}

	villain, err := equity.ParseRange(cmd.Range)
	if err != nil {
		return err
	}

	var board []deck.Card
	if cmd.Board != "" {
		board, err = deck.ParseCards(cmd.Board)
		if err != nil {
			return fmt.Errorf("bad board: %w", err)
		}
	}

	seed := cmd.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	workers := cmd.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	sim := equity.NewSimulator(
		equity.WithTrials(cmd.Iterations),
		equity.WithWorkers(workers),
		equity.WithSimSeed(seed),
	)

	start := time.Now()
	result, err := sim.Run(context.Background(), hero, villain, board)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("%s vs %s", boardStyle.Render(deck.FormatCards(hero)), villain)
	if len(board) > 0 {
		fmt.Printf(" on %s", boardStyle.Render(deck.FormatCards(board)))
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "equity\t%.2f%% ± %.2f%%\n", 100*result.Equity, 100*result.StdErr)
	fmt.Fprintf(w, "win\t%.2f%%\n", 100*result.WinRate)
	fmt.Fprintf(w, "tie\t%.2f%%\n", 100*result.TieRate)
	fmt.Fprintf(w, "samples\t%d in %s\n", result.Samples, elapsed.Round(time.Millisecond))
	return w.Flush()
}
