package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kylewong001/AI-Poker/internal/randutil"
)

func TestUniverse(t *testing.T) {
	cards := Universe()
	require.Len(t, cards, 52)

	seen := make(map[Card]bool)
	for _, c := range cards {
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
	}
}

func TestRemaining(t *testing.T) {
	known := MustParseCards("AsKs")
	remaining := Remaining(NewCardSet(known))
	require.Len(t, remaining, 50)

	for _, c := range remaining {
		for _, k := range known {
			assert.NotEqual(t, k, c)
		}
	}
}

func TestRemainingEmpty(t *testing.T) {
	assert.Len(t, Remaining(CardSet(0)), 52)
}

func TestDeckDealsWholeDeck(t *testing.T) {
	d := NewDeck(randutil.New(1))
	d.Shuffle()

	seen := make(map[Card]bool)
	for i := 0; i < 52; i++ {
		card, ok := d.Deal()
		require.True(t, ok)
		assert.False(t, seen[card], "dealt %s twice", card)
		seen[card] = true
	}

	_, ok := d.Deal()
	assert.False(t, ok, "53rd deal should fail")
}

func TestDeckShuffleDeterministic(t *testing.T) {
	d1 := NewDeck(randutil.New(42))
	d1.Shuffle()
	d2 := NewDeck(randutil.New(42))
	d2.Shuffle()

	assert.Equal(t, d1.DealN(52), d2.DealN(52))
}

func TestCardSet(t *testing.T) {
	var cs CardSet
	card := Card{Suit: Hearts, Rank: Queen}

	assert.False(t, cs.Contains(card))
	cs.Add(card)
	assert.True(t, cs.Contains(card))
	assert.False(t, cs.Contains(Card{Suit: Spades, Rank: Queen}))
}

func TestNewCardSetGroups(t *testing.T) {
	hole := MustParseCards("AsKs")
	board := MustParseCards("2h3h4h")
	cs := NewCardSet(hole, board)

	for _, c := range append(hole, board...) {
		assert.True(t, cs.Contains(c))
	}
	assert.False(t, cs.Contains(Card{Suit: Clubs, Rank: Nine}))
}
