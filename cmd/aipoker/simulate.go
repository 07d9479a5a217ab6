package main

import (
	"fmt"
	"time"

	"github.com/kylewong001/AI-Poker/internal/simulator"
)

// SimulateCmd plays bot-vs-baseline hands and reports winrate statistics
// in big blinds per hand.
type SimulateCmd struct {
	Hands    int           `default:"10000" help:"Number of hands to simulate"`
	Opponent string        `default:"call" enum:"call,random,bot" help:"Opponent type: call, random, bot"`
	Chips    int           `default:"1000" help:"Starting chips per hand"`
	Timeout  time.Duration `default:"30s" help:"Per-hand decision timeout"`
}

func (s *SimulateCmd) Run(cli *CLI) error {
	params, err := cli.botParams()
	if err != nil {
		return err
	}
	seed := cli.seed()

	sim := simulator.New(simulator.Config{
		Hands:         s.Hands,
		Seed:          seed,
		SmallBlind:    5,
		BigBlind:      10,
		StartingChips: s.Chips,
		Timeout:       s.Timeout,
		Opponent:      simulator.Opponent(s.Opponent),
		Params:        params,
		Logger:        cli.logger(),
	})

	start := time.Now()
	report, err := sim.Run()
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	stats := &report.Stats
	lo, hi := stats.ConfidenceInterval95()

	fmt.Printf("Simulated %d hands vs %s in %s (seed %d)\n\n",
		stats.Hands, s.Opponent, elapsed.Round(time.Millisecond), seed)
	fmt.Printf("  Winrate:        %+.3f bb/hand (95%% CI %+.3f .. %+.3f)\n", stats.Mean(), lo, hi)
	fmt.Printf("  Std deviation:  %.3f bb\n", stats.StdDev())
	fmt.Printf("  Showdowns:      %d (%.1f%%)\n", stats.Showdowns,
		100*float64(stats.Showdowns)/float64(stats.Hands))
	fmt.Printf("  Showdown bb:    %+.1f   Non-showdown bb: %+.1f\n",
		stats.ShowdownBB, stats.NonShowdownBB)
	fmt.Printf("  Button bb:      %+.1f   Off-button bb:   %+.1f\n",
		stats.ButtonBB, stats.NonButtonBB)
	fmt.Printf("  Largest pot:    %.1f bb\n", stats.MaxPotBB)
	fmt.Printf("  Worst hand:     %+.1f bb (seed %d, replay with --seed)\n",
		stats.WorstBB, stats.WorstSeed)
	if report.Folds > 0 {
		fmt.Printf("  Fold audit:     %d folds, %d with the best hand (%.1f%%)\n",
			report.Folds, report.BadFolds,
			100*float64(report.BadFolds)/float64(report.Folds))
	}
	return nil
}
