package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/lox/headsup/internal/bot"
	"github.com/lox/headsup/internal/game"
)

type SimulateCmd struct {
	Hands int    `default:"10000" help:"Maximum number of hands per match"`
	BotA  string `default:"random" help:"First bot: caller, random, aggressor, equity"`
	BotB  string `default:"caller" help:"Second bot: caller, random, aggressor, equity"`
	Seed  int64  `default:"0" help:"RNG seed (0 for random)"`
}

func (cmd *SimulateCmd) Run(appCtx *Context) error {
	seed := cmd.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	botA, err := bot.New(cmd.BotA, seed+1)
	if err != nil {
		return err
	}
	botB, err := bot.New(cmd.BotB, seed+2)
	if err != nil {
		return err
	}

	nameA := "a:" + cmd.BotA
	nameB := "b:" + cmd.BotB
	g := game.New(nameA, nameB, botA, botB,
		game.WithBlinds(appCtx.Config.Game.SmallBlind, appCtx.Config.Game.BigBlind),
		game.WithStartingStack(appCtx.Config.Game.StartingStack),
		game.WithSeed(seed),
		game.WithLogger(appCtx.Logger),
	)

	appCtx.Logger.Info("simulating", "bot_a", cmd.BotA, "bot_b", cmd.BotB,
		"max_hands", cmd.Hands, "seed", seed)

	var (
		wins      = map[string]int{}
		showdowns int
		folds     int
		totalPot  int
	)

	ctx := context.Background()
	start := time.Now()
	hands := 0
	for ; hands < cmd.Hands && !g.IsGameOver(); hands++ {
		result, err := g.PlayHand(ctx)
		if err != nil {
			return err
		}
		for _, name := range result.Winners {
			wins[name]++
		}
		if result.WinByFold {
			folds++
		} else {
			showdowns++
		}
		totalPot += result.Pot
	}
	elapsed := time.Since(start)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "hands played\t%d\n", hands)
	fmt.Fprintf(w, "showdowns\t%d (%.1f%%)\n", showdowns, pct(showdowns, hands))
	fmt.Fprintf(w, "fold wins\t%d (%.1f%%)\n", folds, pct(folds, hands))
	if hands > 0 {
		fmt.Fprintf(w, "average pot\t%.1f\n", float64(totalPot)/float64(hands))
	}
	for _, name := range []string{nameA, nameB} {
		fmt.Fprintf(w, "%s hand wins\t%d\tstack %d\n", name, wins[name], g.Stacks()[name])
	}
	fmt.Fprintf(w, "elapsed\t%s\n", elapsed.Round(time.Millisecond))
	if err := w.Flush(); err != nil {
		return err
	}

	if winner := g.Winner(); winner != nil {
		fmt.Println(winStyle.Render(fmt.Sprintf("%s busts the opponent after %d hands",
			winner.Name, hands)))
	}
	return nil
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}
