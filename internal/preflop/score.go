// Package preflop ranks the 1326 two-card starting hands by a heuristic
// strength score and exposes percentile lookups used to define opponent
// ranges ("top X% of starting hands").
package preflop

import "github.com/kylewong001/AI-Poker/internal/deck"

// StrengthScore assigns a heuristic score to a pair of hole cards.
// Pairs score 100 + 6*highRank. Non-pairs score 4*high + 2*low, with
// bonuses for suitedness, connectedness, broadway cards and aces.
//
// The ordering is a hand-tuned heuristic, not a provably optimal ranking;
// it only needs to induce a sensible percentile ordering.
func StrengthScore(a, b deck.Card) int {
	high, low := a.Rank, b.Rank
	if low > high {
		high, low = low, high
	}

	if high == low {
		return 100 + 6*int(high)
	}

	score := 4*int(high) + 2*int(low)
	if a.Suit == b.Suit {
		score += 6
	}
	switch high - low {
	case 1:
		score += 5
	case 2:
		score += 2
	}
	if low >= deck.Ten {
		score += 6
	}
	if high == deck.Ace {
		score += 4
	}
	return score
}
