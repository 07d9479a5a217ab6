// Package simulator runs bot-vs-bot heads-up matches and aggregates the
// results.
package simulator

import (
	"fmt"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/kylewong001/AI-Poker/internal/bot"
	"github.com/kylewong001/AI-Poker/internal/equity"
	"github.com/kylewong001/AI-Poker/internal/game"
	"github.com/kylewong001/AI-Poker/internal/policy"
	"github.com/kylewong001/AI-Poker/internal/randutil"
	"github.com/kylewong001/AI-Poker/internal/statistics"
)

// Opponent selects the baseline the hero bot plays against.
type Opponent string

const (
	OpponentCall   Opponent = "call"
	OpponentRandom Opponent = "random"
	OpponentBot    Opponent = "bot" // Mirror match with identical parameters
)

// Config holds simulation parameters. Clock is injectable so tests can
// drive timeouts deterministically.
type Config struct {
	Hands         int
	Seed          int64
	SmallBlind    int
	BigBlind      int
	StartingChips int
	Timeout       time.Duration
	Opponent      Opponent
	Params        policy.BotParams
	Logger        *log.Logger
	Clock         quartz.Clock
}

// Report is the outcome of a run: aggregate stats plus the retrospective
// fold audit, which scores every hero fold against the opponent's actual
// hole cards.
type Report struct {
	Stats statistics.Statistics

	Folds    int // Hands the hero folded
	BadFolds int // Folds where hero had the majority equity vs the actual hand
}

// Simulator plays fixed-stack hands, each from its own seed, with the
// button alternating between seats.
type Simulator struct {
	config Config

	// newOpponent overrides opponent construction in tests.
	newOpponent func(rng *rand.Rand) game.Agent
}

// New creates a simulator. Missing Clock defaults to the real one.
func New(config Config) *Simulator {
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Simulator{config: config}
}

// Run plays the configured number of hands and returns the report. A hand
// that exceeds the timeout aborts the whole run, since a stuck decision
// loop would otherwise poison every later result.
func (s *Simulator) Run() (*Report, error) {
	report := &Report{}
	logger := s.config.Logger

	for i := 0; i < s.config.Hands; i++ {
		handSeed := s.config.Seed + int64(i)
		heroButton := i%2 == 0

		result, err := s.playHand(handSeed, heroButton, report)
		if err != nil {
			return nil, err
		}
		report.Stats.Add(result, s.config.BigBlind)

		if (i+1)%1000 == 0 {
			logger.Info("progress",
				"hands", i+1,
				"meanBB", fmt.Sprintf("%.3f", report.Stats.Mean()))
		}
	}
	return report, nil
}

// playHand plays one hand with the hero in seat 0, guarded by the timeout.
func (s *Simulator) playHand(handSeed int64, heroButton bool, report *Report) (statistics.HandResult, error) {
	type outcome struct {
		result statistics.HandResult
		err    error
	}
	done := make(chan outcome, 1)
	timedOut := make(chan struct{})

	timer := s.config.Clock.AfterFunc(s.config.Timeout, func() {
		close(timedOut)
	})
	defer timer.Stop()

	go func() {
		result, err := s.playHandBody(handSeed, heroButton, report)
		done <- outcome{result, err}
	}()

	select {
	case o := <-done:
		return o.result, o.err
	case <-timedOut:
		return statistics.HandResult{}, fmt.Errorf("hand timed out after %v (seed %d)", s.config.Timeout, handSeed)
	}
}

func (s *Simulator) playHandBody(handSeed int64, heroButton bool, report *Report) (statistics.HandResult, error) {
	rng := randutil.New(handSeed)

	button := 1
	if heroButton {
		button = 0
	}
	hand, err := game.NewHand(rng, game.HandConfig{
		Names:      [2]string{"hero", "villain"},
		Chips:      [2]int{s.config.StartingChips, s.config.StartingChips},
		Button:     button,
		SmallBlind: s.config.SmallBlind,
		BigBlind:   s.config.BigBlind,
	})
	if err != nil {
		return statistics.HandResult{}, err
	}

	hero := bot.New(s.config.Params, rng, s.config.Logger)
	result, err := hand.Play([2]game.Agent{hero, s.opponent(rng)})
	if err != nil {
		return statistics.HandResult{}, fmt.Errorf("seed %d: %w", handSeed, err)
	}

	s.auditFold(hand, rng, report)

	return statistics.HandResult{
		NetBB:          float64(result.Chips[0]-s.config.StartingChips) / float64(s.config.BigBlind),
		Seed:           handSeed,
		Button:         heroButton,
		WentToShowdown: !hand.Players[0].Folded && !hand.Players[1].Folded,
		FinalPot:       result.Pot,
	}, nil
}

func (s *Simulator) opponent(rng *rand.Rand) game.Agent {
	if s.newOpponent != nil {
		return s.newOpponent(rng)
	}
	switch s.config.Opponent {
	case OpponentRandom:
		return bot.NewRandBot(rng)
	case OpponentBot:
		return bot.New(s.config.Params, rng, s.config.Logger)
	default:
		return bot.NewCallBot()
	}
}

// auditFold scores a hero fold against the villain's actual cards. A fold
// made with the majority of the equity counts as bad. Sampling noise makes
// this a diagnostic, not a proof, so it only feeds counters and debug logs.
func (s *Simulator) auditFold(hand *game.Hand, rng *rand.Rand, report *Report) {
	hero := hand.Players[0]
	if !hero.Folded {
		return
	}
	report.Folds++

	eq, err := equity.Estimate(hero.Hole[:], hand.Board,
		equity.KnownOpponent{Hole: hand.Players[1].Hole},
		equity.TrialsForBoard(len(hand.Board)), rng)
	if err != nil {
		return
	}
	if eq > 0.5 {
		report.BadFolds++
		s.config.Logger.Debug("folded the best hand",
			"hole", hero.Hole[0].Code()+hero.Hole[1].Code(),
			"equity", fmt.Sprintf("%.2f", eq))
	}
}
