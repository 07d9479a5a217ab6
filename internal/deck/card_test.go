package deck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCards(t *testing.T) {
	cards, err := ParseCards("AsKdTh2c")
	require.NoError(t, err)
	require.Len(t, cards, 4)

	assert.Equal(t, Card{Suit: Spades, Rank: Ace}, cards[0])
	assert.Equal(t, Card{Suit: Diamonds, Rank: King}, cards[1])
	assert.Equal(t, Card{Suit: Hearts, Rank: Ten}, cards[2])
	assert.Equal(t, Card{Suit: Clubs, Rank: Two}, cards[3])
}

func TestParseCardsWithSpaces(t *testing.T) {
	cards, err := ParseCards("As Kd")
	require.NoError(t, err)
	require.Len(t, cards, 2)
}

func TestParseCardsInvalid(t *testing.T) {
	for _, input := range []string{"A", "Xs", "Az", "AsK"} {
		_, err := ParseCards(input)
		require.Error(t, err, "input %q", input)
		assert.True(t, errors.Is(err, ErrInvalidCard), "input %q should wrap ErrInvalidCard", input)
	}
}

func TestCardCodeRoundTrip(t *testing.T) {
	for _, card := range Universe() {
		parsed, err := ParseCard(card.Code())
		require.NoError(t, err)
		assert.Equal(t, card, parsed)
	}
}

func TestCardString(t *testing.T) {
	assert.Equal(t, "A♠", Card{Suit: Spades, Rank: Ace}.String())
	assert.Equal(t, "T♦", Card{Suit: Diamonds, Rank: Ten}.String())
}
