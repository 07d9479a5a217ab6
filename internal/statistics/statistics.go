// Package statistics accumulates heads-up simulation results in big blinds
// per hand.
package statistics

import "math"

// HandResult is the outcome of a single simulated hand from the hero's
// perspective.
type HandResult struct {
	NetBB          float64 // Net big blinds won or lost
	Seed           int64   // RNG seed for this hand, for replay
	Button         bool    // Hero had the button
	WentToShowdown bool
	FinalPot       int // Matched pot in chips
}

// Statistics tracks the running aggregates of a simulation run.
type Statistics struct {
	Hands  int
	SumBB  float64
	SumBB2 float64 // Sum of squares for variance

	// Showdown split: fold equity shows up as non-showdown winnings.
	ShowdownBB    float64
	NonShowdownBB float64
	Showdowns     int

	// Positional split: the button acts last postflop and should show a
	// higher winrate than the same strategy out of position.
	ButtonBB    float64
	NonButtonBB float64
	ButtonHands int

	// Worst single hand, kept with its seed so the hand can be replayed.
	WorstBB   float64
	WorstSeed int64

	MaxPotBB float64
}

// Add incorporates one hand result.
func (s *Statistics) Add(result HandResult, bigBlind int) {
	netBB := result.NetBB
	s.Hands++
	s.SumBB += netBB
	s.SumBB2 += netBB * netBB

	if result.WentToShowdown {
		s.Showdowns++
		s.ShowdownBB += netBB
	} else {
		s.NonShowdownBB += netBB
	}

	if result.Button {
		s.ButtonHands++
		s.ButtonBB += netBB
	} else {
		s.NonButtonBB += netBB
	}

	if s.Hands == 1 || netBB < s.WorstBB {
		s.WorstBB = netBB
		s.WorstSeed = result.Seed
	}

	if potBB := float64(result.FinalPot) / float64(bigBlind); potBB > s.MaxPotBB {
		s.MaxPotBB = potBB
	}
}

// Mean returns the mean result in big blinds per hand.
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumBB / float64(s.Hands)
}

// Variance returns the sample variance of the per-hand results.
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumBB2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

// StdDev returns the sample standard deviation.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// TotalBB returns the summed net result, which by construction equals the
// showdown and non-showdown buckets combined.
func (s *Statistics) TotalBB() float64 {
	return s.SumBB
}
