package policy

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/kylewong001/AI-Poker/internal/deck"
	"github.com/kylewong001/AI-Poker/internal/equity"
)

// Strategy is the action-selection policy. It is memoryless: every call to
// Decide reads only the supplied view and parameters, so nothing learned in
// one hand carries into the next.
type Strategy struct {
	Params BotParams

	// estimate is swappable so tests can pin equity without sampling.
	estimate func(hole, board []deck.Card, model equity.OpponentModel, trials int, rng *rand.Rand) (float64, error)
}

// NewStrategy creates a strategy with the given parameters.
func NewStrategy(params BotParams) *Strategy {
	return &Strategy{Params: params, estimate: equity.Estimate}
}

// Decide reads the legal-action bounds and pot state from the view and
// returns one action. Branches are tried in a fixed order and the first
// applicable one wins; each aggressive branch rolls its own independent
// uniform draw.
func (s *Strategy) Decide(view GameView, rng *rand.Rand) Decision {
	p := s.Params
	pot := view.Pot()
	call := view.CheckOrCallAmount()
	board := view.Board()

	// Pot-odds required equity. A free check requires nothing, which we
	// express as an unreachable threshold so the call branch can never be
	// the reason to put chips in.
	requiredEquity := 1.0
	if call > 0 {
		requiredEquity = float64(call) / float64(pot+call)
	}

	topFrac := InferTopFraction(len(board), call, pot)
	eq, err := s.estimate(view.HoleCards(), board, equity.RangeOpponent{TopFrac: topFrac},
		equity.TrialsForBoard(len(board)), rng)
	if err != nil {
		// Estimation only fails on caller error (bad trial count or card
		// sets); degrade to the safe default rather than acting on garbage.
		return s.safeDefault(view, "equity estimation failed")
	}

	canRaise := view.MinRaiseTo() <= view.MaxRaiseTo() && view.CanRaiseTo(view.MinRaiseTo())

	// Free check: bet strong hands some of the time, otherwise take the
	// free card.
	if call == 0 && view.CanCheckOrCall() {
		if canRaise && eq >= p.FreeRaiseEquity && rng.Float64() < p.ValueRaiseFreq {
			amount := s.raiseSize(view, p.SizeFraction)
			return Decision{Action: Raise, RaiseTo: amount,
				Reasoning: fmt.Sprintf("value bet, equity %.2f vs top %.0f%%", eq, topFrac*100)}
		}
		return Decision{Action: CheckCall, Reasoning: fmt.Sprintf("free check, equity %.2f", eq)}
	}

	// Facing a bet with a clearly strong hand: jam occasionally, raise for
	// value often, otherwise fall through to the call check.
	strongThreshold := p.StrongEquity
	if requiredEquity+p.StrongEquityMargin > strongThreshold {
		strongThreshold = requiredEquity + p.StrongEquityMargin
	}
	if eq >= strongThreshold && canRaise {
		if rng.Float64() < p.JamFreq && eq >= p.JamEquity && view.CanRaiseTo(view.MaxRaiseTo()) {
			return Decision{Action: AllIn, RaiseTo: view.MaxRaiseTo(),
				Reasoning: fmt.Sprintf("jam, equity %.2f", eq)}
		}
		if rng.Float64() < p.ValueRaiseFreq {
			amount := s.raiseSize(view, p.SizeFraction)
			return Decision{Action: Raise, RaiseTo: amount,
				Reasoning: fmt.Sprintf("value raise, equity %.2f", eq)}
		}
	}

	// Call when equity clears pot odds with the configured edge. The edge
	// is strict in the sense that equity below required+CallEdge never
	// calls, equity at or above it does.
	if view.CanCheckOrCall() && eq >= requiredEquity+p.CallEdge {
		return Decision{Action: CheckCall,
			Reasoning: fmt.Sprintf("call, equity %.2f vs required %.2f", eq, requiredEquity)}
	}

	// Bluff only into ranges loose enough to have folds in them, and only
	// when the raise is positive-EV against the modeled fold probability.
	if rng.Float64() < p.BluffFreq && topFrac >= p.BluffMinTopFrac && canRaise {
		amount := s.raiseSize(view, p.BluffSizeFraction)
		foldP := FoldProbability(topFrac, amount, pot)
		if RaiseEV(eq, foldP, pot, amount) > 0 {
			return Decision{Action: Raise, RaiseTo: amount,
				Reasoning: fmt.Sprintf("bluff, fold prob %.2f", foldP)}
		}
	}

	if view.CanFold() && call > 0 {
		return Decision{Action: Fold,
			Reasoning: fmt.Sprintf("fold, equity %.2f below required %.2f", eq, requiredEquity)}
	}
	return s.safeDefault(view, "no profitable line")
}

// safeDefault is used when no branch applies or the engine reports a state
// we cannot price: check or call if that is legal, else fold.
func (s *Strategy) safeDefault(view GameView, why string) Decision {
	if view.CanCheckOrCall() {
		return Decision{Action: CheckCall, Reasoning: why}
	}
	return Decision{Action: Fold, Reasoning: why}
}

// raiseSize computes a raise-to amount. The target is the hero stack scaled
// by sizeFraction, clamped into the engine's legal bounds; if the clamped
// target is still rejected, the minimum legal raise is used instead.
func (s *Strategy) raiseSize(view GameView, sizeFraction float64) int {
	minTo, maxTo := view.MinRaiseTo(), view.MaxRaiseTo()

	target := int(float64(view.Stack()) * sizeFraction)
	if target < minTo {
		target = minTo
	}
	if target > maxTo {
		target = maxTo
	}

	if !view.CanRaiseTo(target) {
		return minTo
	}
	return target
}
