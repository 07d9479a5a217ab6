// Package policy chooses an action for the bot each time it is asked to
// act: it infers an opponent range from betting pressure, estimates equity
// against that range by Monte Carlo, and walks a fixed branch order of
// value raises, calls, and positive-EV bluffs.
package policy

// BotParams holds every tunable threshold of the decision policy. The
// numeric values are heuristic policy knobs, not derived constants, so they
// are exposed as configuration rather than hard-coded. Construct once at
// session start and treat as immutable.
type BotParams struct {
	// CallEdge is the margin above pot-odds required equity a call must
	// clear; equity exactly at required+CallEdge is enough, below is not.
	CallEdge float64

	// ValueRaiseFreq is the probability of raising (rather than checking
	// or calling) when the hand is strong enough to raise for value.
	ValueRaiseFreq float64

	// FreeRaiseEquity is the minimum equity to consider betting when a
	// check is free.
	FreeRaiseEquity float64

	// StrongEquity and StrongEquityMargin gate the facing-a-bet value
	// line: equity must reach max(StrongEquity, required+StrongEquityMargin).
	StrongEquity       float64
	StrongEquityMargin float64

	// JamFreq and JamEquity control the all-in line: with probability
	// JamFreq a strong hand jams instead of raising, provided equity is at
	// least JamEquity.
	JamFreq   float64
	JamEquity float64

	// BluffFreq is the probability of attempting a bluff when no other
	// branch fires; BluffMinTopFrac is the loosest assumed opponent range
	// that still folds often enough to bluff into.
	BluffFreq       float64
	BluffMinTopFrac float64

	// SizeFraction scales big raises: the target raise-to is the hero
	// stack times this fraction, clamped into the legal bounds.
	// BluffSizeFraction does the same for bluff raises.
	SizeFraction      float64
	BluffSizeFraction float64
}

// DefaultBotParams returns the stock parameter set: a solid, mildly
// aggressive baseline tuned by simulation against calling and random
// opponents.
func DefaultBotParams() BotParams {
	return BotParams{
		CallEdge:           0.02,
		ValueRaiseFreq:     0.75,
		FreeRaiseEquity:    0.62,
		StrongEquity:       0.70,
		StrongEquityMargin: 0.12,
		JamFreq:            0.25,
		JamEquity:          0.80,
		BluffFreq:          0.20,
		BluffMinTopFrac:    0.18,
		SizeFraction:       0.60,
		BluffSizeFraction:  0.45,
	}
}
