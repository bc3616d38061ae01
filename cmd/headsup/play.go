package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/headsup/internal/bot"
	"github.com/lox/headsup/internal/deck"
	"github.com/lox/headsup/internal/game"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#1E5F2E")).
			Padding(0, 1).
			Bold(true)

	boardStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	potStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	winStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

type PlayCmd struct {
	Name     string `default:"You" help:"Your display name"`
	Bot      string `default:"random" help:"Opponent: caller, random, aggressor, equity"`
	Seed     int64  `default:"0" help:"Deck seed (0 for random)"`
	DebugLog string `help:"Write debug logs for the hand engine to this file"`
}

func (cmd *PlayCmd) Run(appCtx *Context) error {
	seed := cmd.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opponent, err := bot.New(cmd.Bot, seed+1)
	if err != nil {
		return err
	}

	logger := appCtx.Logger
	if cmd.DebugLog != "" {
		f, err := os.OpenFile(cmd.DebugLog, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o666)
		if err != nil {
			return fmt.Errorf("failed to create debug log: %w", err)
		}
		defer f.Close()
		logger = log.NewWithOptions(f, log.Options{
			Level:           log.DebugLevel,
			ReportTimestamp: true,
			TimeFormat:      "15:04:05",
		})
	}

	human := &humanSource{in: bufio.NewScanner(os.Stdin), out: os.Stdout}
	g := game.New(cmd.Name, cmd.Bot, human, opponent,
		game.WithBlinds(appCtx.Config.Game.SmallBlind, appCtx.Config.Game.BigBlind),
		game.WithStartingStack(appCtx.Config.Game.StartingStack),
		game.WithSeed(seed),
		game.WithLogger(logger),
	)

	fmt.Println(titleStyle.Render(" ♠ ♥ Heads-Up Pot-Limit Hold'em ♦ ♣ "))
	fmt.Println()

	ctx := context.Background()
	for !g.IsGameOver() {
		result, err := g.PlayHand(ctx)
		if errors.Is(err, io.EOF) {
			fmt.Println("\nBye.")
			return nil
		}
		if err != nil {
			return err
		}
		printResult(result, g)
	}

	fmt.Println(winStyle.Render(fmt.Sprintf("%s wins the match after %d hands!",
		g.Winner().Name, g.HandNumber())))
	return nil
}

func printResult(result *game.HandResult, g *game.Game) {
	fmt.Println()
	if result.WinByFold {
		fmt.Printf("%s takes the pot of %s uncontested\n",
			winStyle.Render(result.Winners[0]), potStyle.Render(strconv.Itoa(result.Pot)))
	} else {
		fmt.Printf("Board: %s\n", boardStyle.Render(deck.FormatCards(result.Board)))
		for _, sh := range result.Showdown {
			fmt.Printf("  %s shows %s (%s)\n",
				sh.Name, deck.FormatCards(sh.HoleCards), sh.Evaluation.Name)
		}
		for _, name := range result.Winners {
			fmt.Printf("%s wins %s\n",
				winStyle.Render(name), potStyle.Render(strconv.Itoa(result.Payouts[name])))
		}
	}
	for name, stack := range g.Stacks() {
		fmt.Printf("  %s: %d chips\n", name, stack)
	}
	fmt.Println()
}

// humanSource prompts on the terminal. It validates input locally and
// re-prompts, so the round only ever sees legal actions. Returns io.EOF when
// input is closed.
type humanSource struct {
	in  *bufio.Scanner
	out io.Writer
}

func (h *humanSource) Act(_ context.Context, snap game.Snapshot, legal game.LegalActions) (game.Action, int, error) {
	h.render(snap)
	fmt.Fprintf(h.out, "%s\n", describeOptions(legal, snap))

	for {
		fmt.Fprint(h.out, "> ")
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return 0, 0, err
			}
			return 0, 0, io.EOF
		}

		action, amount, err := parseInput(h.in.Text())
		if err == nil {
			err = game.ValidateAction(action, amount, legal)
		}
		if err != nil {
			fmt.Fprintln(h.out, errorStyle.Render(err.Error()))
			continue
		}
		return action, amount, nil
	}
}

func (h *humanSource) render(snap game.Snapshot) {
	fmt.Fprintln(h.out)
	if len(snap.Board) > 0 {
		fmt.Fprintf(h.out, "%s  %s\n", snap.Street,
			boardStyle.Render(strings.Join(snap.Board, " ")))
	} else {
		fmt.Fprintln(h.out, snap.Street)
	}
	fmt.Fprintf(h.out, "Pot: %s\n", potStyle.Render(strconv.Itoa(snap.Pot)))

	for _, p := range snap.Players {
		cards := "?? ??"
		if len(p.HoleCards) > 0 {
			cards = strings.Join(p.HoleCards, " ")
		}
		marker := "  "
		if p.Name == snap.Viewer {
			marker = "* "
		}
		fmt.Fprintf(h.out, "%s%s (%s) %s  stack %d  bet %d\n",
			marker, p.Name, p.Position, cards, p.Stack, p.CurrentBet)
	}
}

func describeOptions(legal game.LegalActions, snap game.Snapshot) string {
	var opts []string
	if legal.Check {
		opts = append(opts, "[k]check")
	}
	if legal.Call {
		toCall := snap.CurrentBet
		if viewer := snap.Player(snap.Viewer); viewer != nil {
			toCall -= viewer.CurrentBet
		}
		opts = append(opts, fmt.Sprintf("[c]all %d", toCall))
	}
	if legal.CanRaise() {
		opts = append(opts, fmt.Sprintf("[r]aise <%d..%d>", legal.Raise.Min, legal.Raise.Max))
	}
	if legal.Fold {
		opts = append(opts, "[f]old")
	}
	return strings.Join(opts, "  ")
}

// parseInput reads lines like "call", "r 60" or "raise 60".
func parseInput(line string) (game.Action, int, error) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 {
		return 0, 0, fmt.Errorf("enter an action")
	}
	action, err := game.ParseAction(fields[0])
	if err != nil {
		return 0, 0, err
	}
	amount := 0
	if len(fields) > 1 {
		amount, err = strconv.Atoi(fields[1])
		if err != nil {
			return 0, 0, fmt.Errorf("bad amount %q", fields[1])
		}
	}
	if (action == game.Bet || action == game.Raise) && amount <= 0 {
		return 0, 0, fmt.Errorf("raise needs an amount, e.g. %q", "r 60")
	}
	return action, amount, nil
}
