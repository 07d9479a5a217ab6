package preflop

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kylewong001/AI-Poker/internal/deck"
)

func card(code string) deck.Card {
	c, err := deck.ParseCard(code)
	if err != nil {
		panic(err)
	}
	return c
}

func TestStrengthScore(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"pocket aces", "As", "Ah", 100 + 6*14},
		{"pocket deuces", "2s", "2h", 100 + 6*2},
		{"AK suited", "As", "Ks", 4*14 + 2*13 + 6 + 5 + 6 + 4},
		{"AK offsuit", "As", "Kh", 4*14 + 2*13 + 5 + 6 + 4},
		{"T9 suited one-gap bonus", "Ts", "9s", 4*10 + 2*9 + 6 + 5},
		{"J9 two-gap", "Jh", "9d", 4*11 + 2*9 + 2},
		{"QT broadway both high", "Qc", "Tc", 4*12 + 2*10 + 6 + 2 + 6},
		{"A2 offsuit ace bonus", "Ad", "2c", 4*14 + 2*2 + 4},
		{"72 offsuit trash", "7h", "2c", 4*7 + 2*2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StrengthScore(card(tt.a), card(tt.b)))
		})
	}
}

func TestStrengthScoreOrderIndependent(t *testing.T) {
	a, b := card("Kd"), card("7s")
	assert.Equal(t, StrengthScore(a, b), StrengthScore(b, a))
}
