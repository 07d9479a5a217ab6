// Package bot provides game agents: the equity-driven Bot plus a couple of
// simple baseline opponents used for benchmarking and tests.
package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/kylewong001/AI-Poker/internal/game"
	"github.com/kylewong001/AI-Poker/internal/policy"
)

// Bot plays according to a policy.Strategy and logs every decision with the
// factors that produced it.
type Bot struct {
	strategy *policy.Strategy
	rng      *rand.Rand
	logger   *log.Logger
}

// New creates a bot playing with params, drawing randomness from rng.
func New(params policy.BotParams, rng *rand.Rand, logger *log.Logger) *Bot {
	return &Bot{
		strategy: policy.NewStrategy(params),
		rng:      rng,
		logger:   logger.WithPrefix("bot"),
	}
}

// Act implements game.Agent.
func (b *Bot) Act(view *game.View) policy.Decision {
	d := b.strategy.Decide(view, b.rng)

	hole := view.HoleCards()
	b.logger.Debug("decision",
		"seat", view.Seat(),
		"hole", hole[0].Code()+hole[1].Code(),
		"board", len(view.Board()),
		"pot", view.Pot(),
		"toCall", view.CheckOrCallAmount(),
		"action", d.Action.String(),
		"raiseTo", d.RaiseTo,
		"reasoning", d.Reasoning)
	return d
}
