package bot

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kylewong001/AI-Poker/internal/game"
	"github.com/kylewong001/AI-Poker/internal/policy"
	"github.com/kylewong001/AI-Poker/internal/randutil"
)

func testHand(t *testing.T, seed int64) *game.Hand {
	t.Helper()
	h, err := game.NewHand(randutil.New(seed), game.HandConfig{
		Names:      [2]string{"a", "b"},
		Chips:      [2]int{1000, 1000},
		Button:     0,
		SmallBlind: 5,
		BigBlind:   10,
	})
	require.NoError(t, err)
	return h
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func TestBotActReturnsLegalDecision(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		h := testHand(t, seed)
		b := New(policy.DefaultBotParams(), randutil.New(seed), discardLogger())

		view := h.View()
		d := b.Act(view)

		switch d.Action {
		case policy.Fold:
			assert.True(t, view.CanFold(), "seed %d: illegal fold", seed)
		case policy.CheckCall:
			assert.True(t, view.CanCheckOrCall(), "seed %d: illegal call", seed)
		case policy.Raise, policy.AllIn:
			assert.True(t, view.CanRaiseTo(d.RaiseTo), "seed %d: illegal raise to %d", seed, d.RaiseTo)
		default:
			t.Fatalf("seed %d: unexpected action %v", seed, d.Action)
		}
	}
}

func TestBotVsBotHandCompletes(t *testing.T) {
	h := testHand(t, 21)
	a := New(policy.DefaultBotParams(), randutil.New(1), discardLogger())
	b := New(policy.DefaultBotParams(), randutil.New(2), discardLogger())

	result, err := h.Play([2]game.Agent{a, b})
	require.NoError(t, err)
	assert.Equal(t, 2000, result.Chips[0]+result.Chips[1])
}

func TestCallBotAlwaysCalls(t *testing.T) {
	c := NewCallBot()
	h := testHand(t, 3)
	d := c.Act(h.View())
	assert.Equal(t, policy.CheckCall, d.Action)
}

func TestCallBotNeverErrors(t *testing.T) {
	h := testHand(t, 4)
	result, err := h.Play([2]game.Agent{NewCallBot(), NewCallBot()})
	require.NoError(t, err)
	assert.Equal(t, 2000, result.Chips[0]+result.Chips[1])
}

func TestRandBotOnlyPicksLegalActions(t *testing.T) {
	rng := randutil.New(8)
	for seed := int64(1); seed <= 20; seed++ {
		h := testHand(t, seed)
		view := h.View()
		d := NewRandBot(rng).Act(view)

		switch d.Action {
		case policy.Fold:
			assert.True(t, view.CanFold())
		case policy.CheckCall:
			assert.True(t, view.CanCheckOrCall())
		case policy.Raise:
			assert.True(t, view.CanRaiseTo(d.RaiseTo))
		}
	}
}

func TestRandBotVsRandBotCompletes(t *testing.T) {
	rng := randutil.New(15)
	for seed := int64(1); seed <= 10; seed++ {
		h := testHand(t, seed)
		result, err := h.Play([2]game.Agent{NewRandBot(rng), NewRandBot(rng)})
		require.NoError(t, err)
		assert.Equal(t, 2000, result.Chips[0]+result.Chips[1], "seed %d", seed)
	}
}
