package preflop

import (
	"sort"
	"sync"

	"github.com/kylewong001/AI-Poker/internal/deck"
)

// Combinations is the number of unordered two-card starting hands.
const Combinations = 1326

var (
	tableOnce sync.Once
	table     map[deck.CardSet]float64
)

// percentileTable lazily builds the process-wide percentile table. The build
// is deterministic: all C(52,2) combinations are scored, sorted ascending,
// and assigned percentile (index+1)/1326, so 1.0 is the strongest hand.
// Read-only after the build, so concurrent lookups are safe.
func percentileTable() map[deck.CardSet]float64 {
	tableOnce.Do(func() {
		universe := deck.Universe()

		type combo struct {
			key   deck.CardSet
			score int
		}
		combos := make([]combo, 0, Combinations)
		for i := 0; i < len(universe); i++ {
			for j := i + 1; j < len(universe); j++ {
				key := deck.NewCardSet([]deck.Card{universe[i], universe[j]})
				combos = append(combos, combo{key: key, score: StrengthScore(universe[i], universe[j])})
			}
		}

		// Tie-break on the bitset key so rebuilds reproduce the identical
		// table. Equal scores then differ only within a percentile band.
		sort.Slice(combos, func(i, j int) bool {
			if combos[i].score != combos[j].score {
				return combos[i].score < combos[j].score
			}
			return combos[i].key < combos[j].key
		})

		t := make(map[deck.CardSet]float64, Combinations)
		for i, c := range combos {
			t[c.key] = float64(i+1) / float64(len(combos))
		}
		table = t
	})
	return table
}

// Percentile returns the percentile in (0, 1] for the given hole pair,
// where 1.0 is the strongest starting hand.
func Percentile(a, b deck.Card) float64 {
	return percentileTable()[deck.NewCardSet([]deck.Card{a, b})]
}

// InTopFraction reports whether the hole pair ranks in the top topFrac of
// all starting hands. topFrac is clamped to [0.01, 1.0], so the top 100%
// includes every hand.
func InTopFraction(a, b deck.Card, topFrac float64) bool {
	if topFrac < 0.01 {
		topFrac = 0.01
	}
	if topFrac > 1.0 {
		topFrac = 1.0
	}
	return Percentile(a, b) >= 1.0-topFrac
}
