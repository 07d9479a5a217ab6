package equity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kylewong001/AI-Poker/internal/deck"
	"github.com/kylewong001/AI-Poker/internal/preflop"
	"github.com/kylewong001/AI-Poker/internal/randutil"
)

func TestRandomOpponentDistinctCards(t *testing.T) {
	available := deck.Remaining(deck.NewCardSet(deck.MustParseCards("AsAh")))
	rng := randutil.New(5)

	for i := 0; i < 1000; i++ {
		hole, ok := RandomOpponent{}.SampleHole(available, rng)
		require.True(t, ok)
		assert.NotEqual(t, hole[0], hole[1], "sampled the same card twice")
	}
}

func TestRandomOpponentTooFewCards(t *testing.T) {
	_, ok := RandomOpponent{}.SampleHole(deck.MustParseCards("As"), randutil.New(1))
	assert.False(t, ok)
}

func TestKnownOpponentReturnsFixedHole(t *testing.T) {
	hole := [2]deck.Card{}
	copy(hole[:], deck.MustParseCards("KdKc"))

	got, ok := KnownOpponent{Hole: hole}.SampleHole(nil, nil)
	require.True(t, ok)
	assert.Equal(t, hole, got)
}

func TestRangeOpponentSamplesFromRange(t *testing.T) {
	available := deck.Remaining(deck.NewCardSet(deck.MustParseCards("2s7h")))
	rng := randutil.New(11)
	model := RangeOpponent{TopFrac: 0.20}

	inRange := 0
	const samples = 500
	for i := 0; i < samples; i++ {
		hole, ok := model.SampleHole(available, rng)
		require.True(t, ok)
		if preflop.InTopFraction(hole[0], hole[1], model.TopFrac) {
			inRange++
		}
	}

	// The bounded rejection loop relaxes to arbitrary cards only after 40
	// misses, so nearly every sample should land inside the range.
	assert.Greater(t, inRange, samples*95/100)
}

func TestRangeOpponentWideRangeIsUnconstrained(t *testing.T) {
	available := deck.Remaining(deck.NewCardSet(deck.MustParseCards("AsAh")))
	rng := randutil.New(2)

	hole, ok := RangeOpponent{TopFrac: 1.0}.SampleHole(available, rng)
	require.True(t, ok)
	assert.NotEqual(t, hole[0], hole[1])
}
