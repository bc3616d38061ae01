// Package config loads match settings from HCL files.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the top-level configuration file.
type Config struct {
	LogLevel string           `hcl:"log_level,optional"`
	Game     *GameSettings    `hcl:"game,block"`
	Session  *SessionSettings `hcl:"session,block"`
}

// GameSettings configures the match structure.
type GameSettings struct {
	SmallBlind    int   `hcl:"small_blind,optional"`
	BigBlind      int   `hcl:"big_blind,optional"`
	StartingStack int   `hcl:"starting_stack,optional"`
	Seed          int64 `hcl:"seed,optional"`
}

// SessionSettings configures session housekeeping for embedders hosting
// multiple games.
type SessionSettings struct {
	TTLMinutes   int `hcl:"ttl_minutes,optional"`
	SweepSeconds int `hcl:"sweep_seconds,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Game: &GameSettings{
			SmallBlind:    10,
			BigBlind:      20,
			StartingStack: 1000,
		},
		Session: &SessionSettings{
			TTLMinutes:   30,
			SweepSeconds: 60,
		},
	}
}

// Load reads an HCL configuration file, fills in defaults for anything
// unset and validates the result. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.Game == nil {
		c.Game = def.Game
	} else {
		if c.Game.SmallBlind == 0 {
			c.Game.SmallBlind = def.Game.SmallBlind
		}
		if c.Game.BigBlind == 0 {
			c.Game.BigBlind = c.Game.SmallBlind * 2
		}
		if c.Game.StartingStack == 0 {
			c.Game.StartingStack = c.Game.BigBlind * 50
		}
	}
	if c.Session == nil {
		c.Session = def.Session
	} else {
		if c.Session.TTLMinutes == 0 {
			c.Session.TTLMinutes = def.Session.TTLMinutes
		}
		if c.Session.SweepSeconds == 0 {
			c.Session.SweepSeconds = def.Session.SweepSeconds
		}
	}
}

// Validate checks the configuration for values the engine cannot run with.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	if c.Game.SmallBlind <= 0 {
		return fmt.Errorf("small blind must be positive, got %d", c.Game.SmallBlind)
	}
	if c.Game.BigBlind <= c.Game.SmallBlind {
		return fmt.Errorf("big blind %d must exceed small blind %d",
			c.Game.BigBlind, c.Game.SmallBlind)
	}
	if c.Game.StartingStack < c.Game.BigBlind {
		return fmt.Errorf("starting stack %d cannot cover the big blind %d",
			c.Game.StartingStack, c.Game.BigBlind)
	}
	if c.Session.TTLMinutes <= 0 {
		return fmt.Errorf("session ttl must be positive, got %d", c.Session.TTLMinutes)
	}
	return nil
}

// TTL returns the session idle expiry as a duration.
func (c *Config) TTL() time.Duration {
	return time.Duration(c.Session.TTLMinutes) * time.Minute
}

// SweepInterval returns how often idle sessions are swept.
func (c *Config) SweepInterval() time.Duration {
	return time.Duration(c.Session.SweepSeconds) * time.Second
}
