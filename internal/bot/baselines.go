package bot

import (
	rand "math/rand/v2"

	"github.com/kylewong001/AI-Poker/internal/game"
	"github.com/kylewong001/AI-Poker/internal/policy"
)

// CallBot checks or calls every decision. It never folds and never raises,
// which makes it a useful floor for benchmarking: any strategy that cannot
// beat a pure calling station is broken.
type CallBot struct{}

// NewCallBot creates a CallBot.
func NewCallBot() *CallBot { return &CallBot{} }

// Act implements game.Agent.
func (c *CallBot) Act(view *game.View) policy.Decision {
	return policy.Decision{Action: policy.CheckCall, Reasoning: "call-bot always calls"}
}

// RandBot picks uniformly among fold, check/call, and a min-raise when each
// is legal.
type RandBot struct {
	rng *rand.Rand
}

// NewRandBot creates a RandBot drawing from rng.
func NewRandBot(rng *rand.Rand) *RandBot {
	return &RandBot{rng: rng}
}

// Act implements game.Agent.
func (r *RandBot) Act(view *game.View) policy.Decision {
	choices := []policy.Decision{
		{Action: policy.CheckCall, Reasoning: "rand-bot call"},
	}
	if view.CanFold() {
		choices = append(choices, policy.Decision{Action: policy.Fold, Reasoning: "rand-bot fold"})
	}
	if minTo := view.MinRaiseTo(); view.CanRaiseTo(minTo) {
		choices = append(choices, policy.Decision{
			Action: policy.Raise, RaiseTo: minTo, Reasoning: "rand-bot min raise",
		})
	}
	return choices[r.rng.IntN(len(choices))]
}
