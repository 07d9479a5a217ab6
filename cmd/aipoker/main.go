package main

import (
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/kylewong001/AI-Poker/internal/config"
	"github.com/kylewong001/AI-Poker/internal/policy"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Config  string           `short:"c" default:"aipoker.hcl" help:"Bot parameters file (HCL)"`
	Debug   bool             `help:"Log bot decision analysis"`
	Seed    int64            `default:"0" help:"RNG seed (0 for time-based)"`

	Play     PlayCmd     `cmd:"" help:"Play heads-up against the bot"`
	Simulate SimulateCmd `cmd:"" help:"Run bot-vs-bot simulations"`
	Odds     OddsCmd     `cmd:"" help:"Monte Carlo equity for a hand"`
	Range    RangeCmd    `cmd:"" help:"Inspect the preflop percentile table"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("aipoker"),
		kong.Description("Heads-up no-limit hold'em bot with a Monte Carlo decision engine"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}

// logger builds the shared logger; decision analysis only shows with --debug.
func (c *CLI) logger() *log.Logger {
	level := log.WarnLevel
	if c.Debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: false,
	})
}

func (c *CLI) seed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

func (c *CLI) botParams() (policy.BotParams, error) {
	return config.LoadBotParams(c.Config)
}
