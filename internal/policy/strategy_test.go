package policy

import (
	rand "math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kylewong001/AI-Poker/internal/deck"
	"github.com/kylewong001/AI-Poker/internal/equity"
	"github.com/kylewong001/AI-Poker/internal/randutil"
)

// fakeView is a scripted GameView for exercising each decision branch.
type fakeView struct {
	hole       []deck.Card
	board      []deck.Card
	pot        int
	stack      int
	callAmount int
	minRaiseTo int
	maxRaiseTo int
	canRaise   bool
}

func (v *fakeView) HoleCards() []deck.Card { return v.hole }
func (v *fakeView) Board() []deck.Card     { return v.board }
func (v *fakeView) Pot() int               { return v.pot }
func (v *fakeView) Stack() int             { return v.stack }
func (v *fakeView) CanFold() bool          { return v.callAmount > 0 }
func (v *fakeView) CanCheckOrCall() bool   { return true }
func (v *fakeView) CheckOrCallAmount() int { return v.callAmount }
func (v *fakeView) MinRaiseTo() int        { return v.minRaiseTo }
func (v *fakeView) MaxRaiseTo() int        { return v.maxRaiseTo }

func (v *fakeView) CanRaiseTo(amount int) bool {
	return v.canRaise && amount >= v.minRaiseTo && amount <= v.maxRaiseTo
}

// pinnedStrategy returns a strategy whose equity estimate is a constant,
// removing Monte Carlo noise from branch tests.
func pinnedStrategy(params BotParams, eq float64) *Strategy {
	s := NewStrategy(params)
	s.estimate = func(_, _ []deck.Card, _ equity.OpponentModel, _ int, _ *rand.Rand) (float64, error) {
		return eq, nil
	}
	return s
}

// passiveParams disables every randomized aggressive branch so only the
// call-or-fold logic is in play.
func passiveParams() BotParams {
	p := DefaultBotParams()
	p.ValueRaiseFreq = 0
	p.JamFreq = 0
	p.BluffFreq = 0
	return p
}

func facingBetView() *fakeView {
	return &fakeView{
		hole:       deck.MustParseCards("AsKs"),
		pot:        150,
		stack:      500,
		callAmount: 50,
		minRaiseTo: 100,
		maxRaiseTo: 550,
		canRaise:   true,
	}
}

func TestDecideCallEdgeIsStrict(t *testing.T) {
	view := facingBetView()
	rng := randutil.New(1)

	// Pot 150, call 50: required equity is 50/200 = 0.25, so with the
	// default 0.02 edge the threshold sits at 0.27 exactly.
	d := pinnedStrategy(passiveParams(), 0.27).Decide(view, rng)
	assert.Equal(t, CheckCall, d.Action, "equity at required+edge must call")

	d = pinnedStrategy(passiveParams(), 0.2699).Decide(view, rng)
	assert.Equal(t, Fold, d.Action, "equity below required+edge must fold")
}

func TestDecideFreeCheckNeverFolds(t *testing.T) {
	view := facingBetView()
	view.callAmount = 0

	d := pinnedStrategy(passiveParams(), 0.05).Decide(view, randutil.New(1))
	assert.Equal(t, CheckCall, d.Action, "garbage still checks when free")
}

func TestDecideFreeCheckValueBets(t *testing.T) {
	params := passiveParams()
	params.ValueRaiseFreq = 1.0

	view := facingBetView()
	view.callAmount = 0

	d := pinnedStrategy(params, 0.80).Decide(view, randutil.New(1))
	require.Equal(t, Raise, d.Action)
	assert.GreaterOrEqual(t, d.RaiseTo, view.minRaiseTo)
	assert.LessOrEqual(t, d.RaiseTo, view.maxRaiseTo)

	// Sizing targets stack * SizeFraction = 500 * 0.60 = 300.
	assert.Equal(t, 300, d.RaiseTo)
}

func TestDecideStrongHandJams(t *testing.T) {
	params := passiveParams()
	params.JamFreq = 1.0

	view := facingBetView()
	d := pinnedStrategy(params, 0.90).Decide(view, randutil.New(1))

	require.Equal(t, AllIn, d.Action)
	assert.Equal(t, view.maxRaiseTo, d.RaiseTo)
}

func TestDecideStrongHandValueRaises(t *testing.T) {
	params := passiveParams()
	params.ValueRaiseFreq = 1.0

	view := facingBetView()
	d := pinnedStrategy(params, 0.85).Decide(view, randutil.New(1))

	require.Equal(t, Raise, d.Action)
	assert.GreaterOrEqual(t, d.RaiseTo, view.minRaiseTo)
	assert.LessOrEqual(t, d.RaiseTo, view.maxRaiseTo)
}

func TestDecideStrongHandCallsWhenRaisingClosed(t *testing.T) {
	params := passiveParams()
	params.JamFreq = 1.0
	params.ValueRaiseFreq = 1.0

	view := facingBetView()
	view.canRaise = false

	d := pinnedStrategy(params, 0.90).Decide(view, randutil.New(1))
	assert.Equal(t, CheckCall, d.Action, "no raise available, strong hand calls")
}

func TestDecideBluffsWhenProfitable(t *testing.T) {
	params := passiveParams()
	params.BluffFreq = 1.0

	// Preflop, small bet: inferred range is loose, folds are plentiful.
	view := facingBetView()
	view.pot = 30
	view.callAmount = 10
	view.minRaiseTo = 40
	view.maxRaiseTo = 510

	d := pinnedStrategy(params, 0.20).Decide(view, randutil.New(1))
	require.Equal(t, Raise, d.Action, "positive-EV bluff should fire")
	assert.GreaterOrEqual(t, d.RaiseTo, view.minRaiseTo)
	assert.LessOrEqual(t, d.RaiseTo, view.maxRaiseTo)
}

func TestDecideNoBluffIntoTightRange(t *testing.T) {
	params := passiveParams()
	params.BluffFreq = 1.0

	// A river overbet call implies a range clamped to the tight floor,
	// below the bluffability threshold.
	view := facingBetView()
	view.board = deck.MustParseCards("2c7d9h3s5d")
	view.pot = 400
	view.callAmount = 400

	d := pinnedStrategy(params, 0.10).Decide(view, randutil.New(1))
	assert.Equal(t, Fold, d.Action)
}

func TestDecideRaiseClampedToLegalBounds(t *testing.T) {
	params := passiveParams()
	params.ValueRaiseFreq = 1.0

	// Tiny stack: the sizing target falls below the minimum legal raise.
	view := facingBetView()
	view.callAmount = 0
	view.stack = 120
	view.minRaiseTo = 100
	view.maxRaiseTo = 120

	d := pinnedStrategy(params, 0.80).Decide(view, randutil.New(1))
	require.Equal(t, Raise, d.Action)
	assert.GreaterOrEqual(t, d.RaiseTo, view.minRaiseTo)
	assert.LessOrEqual(t, d.RaiseTo, view.maxRaiseTo)
}

func TestDecideEstimateFailureFallsBackSafely(t *testing.T) {
	s := NewStrategy(passiveParams())
	s.estimate = func(_, _ []deck.Card, _ equity.OpponentModel, _ int, _ *rand.Rand) (float64, error) {
		return 0, assert.AnError
	}

	d := s.Decide(facingBetView(), randutil.New(1))
	assert.Equal(t, CheckCall, d.Action, "estimation failure degrades to the safe default")
}

func TestDecideIsMemoryless(t *testing.T) {
	view := facingBetView()
	s := pinnedStrategy(passiveParams(), 0.60)

	first := s.Decide(view, randutil.New(1))
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, s.Decide(view, randutil.New(1)))
	}
}

func TestDecideWithRealEstimator(t *testing.T) {
	// Full-stack smoke test: aces facing a bet, live Monte Carlo, any
	// decision must be legal.
	view := facingBetView()
	view.hole = deck.MustParseCards("AsAh")

	s := NewStrategy(DefaultBotParams())
	d := s.Decide(view, randutil.New(42))

	switch d.Action {
	case Raise, AllIn:
		assert.True(t, view.CanRaiseTo(d.RaiseTo), "raise to %d must be legal", d.RaiseTo)
	case CheckCall, Fold:
	default:
		t.Fatalf("unexpected action %v", d.Action)
	}
}
