package equity

import (
	rand "math/rand/v2"

	"github.com/kylewong001/AI-Poker/internal/deck"
	"github.com/kylewong001/AI-Poker/internal/preflop"
)

// rangeSampleAttempts caps the rejection-sampling loop when drawing an
// opponent hand from a range. After the cap is exhausted the sampler
// relaxes to the first two available cards rather than failing the trial.
const rangeSampleAttempts = 40

// OpponentModel draws a hypothetical opponent hole pair for one Monte Carlo
// trial. availableCards is the deck minus the hero's cards and the board;
// implementations must not return a card that appears in it twice.
type OpponentModel interface {
	SampleHole(availableCards []deck.Card, rng *rand.Rand) ([2]deck.Card, bool)
}

// RandomOpponent models an opponent holding any two random cards.
type RandomOpponent struct{}

func (RandomOpponent) SampleHole(availableCards []deck.Card, rng *rand.Rand) ([2]deck.Card, bool) {
	if len(availableCards) < 2 {
		return [2]deck.Card{}, false
	}

	// Pick 2 distinct indices without building a permutation
	idx1 := rng.IntN(len(availableCards))
	idx2 := rng.IntN(len(availableCards) - 1)
	if idx2 >= idx1 {
		idx2++
	}

	return [2]deck.Card{availableCards[idx1], availableCards[idx2]}, true
}

// KnownOpponent models an opponent whose exact hole cards are known; used
// retrospectively, e.g. to audit a fold after the opponent's hand is shown.
type KnownOpponent struct {
	Hole [2]deck.Card
}

func (k KnownOpponent) SampleHole(_ []deck.Card, _ *rand.Rand) ([2]deck.Card, bool) {
	return k.Hole, true
}

// RangeOpponent models an opponent holding a hand from the top TopFrac of
// starting hands. Sampling is by bounded rejection: random pairs are drawn
// until one falls inside the range, and after rangeSampleAttempts draws the
// sampler deliberately relaxes to the first two available cards. The
// relaxation keeps trials terminating when the range excludes nearly every
// pair the dead cards allow; it is a documented trade-off, not an error.
type RangeOpponent struct {
	TopFrac float64
}

func (r RangeOpponent) SampleHole(availableCards []deck.Card, rng *rand.Rand) ([2]deck.Card, bool) {
	if len(availableCards) < 2 {
		return [2]deck.Card{}, false
	}

	for attempt := 0; attempt < rangeSampleAttempts; attempt++ {
		hole, ok := RandomOpponent{}.SampleHole(availableCards, rng)
		if !ok {
			return hole, false
		}
		if preflop.InTopFraction(hole[0], hole[1], r.TopFrac) {
			return hole, true
		}
	}

	return [2]deck.Card{availableCards[0], availableCards[1]}, true
}
