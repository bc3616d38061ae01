package main

import (
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/headsup/internal/config"
)

type CLI struct {
	Config   string `short:"c" default:"headsup.hcl" help:"Path to HCL config file"`
	LogLevel string `help:"Log level: debug, info, warn, error (overrides config)"`

	Play     PlayCmd     `cmd:"" help:"Play an interactive match against a bot"`
	Simulate SimulateCmd `cmd:"" help:"Run bot-versus-bot matches and report results"`
	Odds     OddsCmd     `cmd:"" help:"Estimate a hand's equity against a range"`
}

// Context carries resolved configuration into commands.
type Context struct {
	Config *config.Config
	Logger *log.Logger
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("headsup"),
		kong.Description("Heads-up pot-limit Texas Hold'em."),
		kong.UsageOnError(),
	)

	cfg, err := config.Load(cli.Config)
	if err != nil {
		log.Fatal("Failed to load config", "path", cli.Config, "error", err)
	}
	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal("Bad log level", "level", cfg.LogLevel)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})

	err = ctx.Run(&Context{Config: cfg, Logger: logger})
	ctx.FatalIfErrorf(err)
}
