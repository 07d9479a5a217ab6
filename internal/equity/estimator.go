// Package equity estimates the hero's chance of winning a hand by Monte
// Carlo simulation against an opponent model (random, known hand, or an
// inferred range of starting hands).
package equity

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/kylewong001/AI-Poker/internal/deck"
	"github.com/kylewong001/AI-Poker/internal/evaluator"
	"github.com/kylewong001/AI-Poker/internal/randutil"
)

// ErrInvalidTrials is returned when the requested trial count is below 1.
var ErrInvalidTrials = errors.New("trial count must be at least 1")

// parallelThreshold is the trial count above which the estimator shards
// work across goroutines; below it the coordination overhead dominates.
const parallelThreshold = 500

// TrialsForBoard returns the recommended trial count for a given number of
// board cards. Later streets leave fewer unknown cards per trial, so more
// trials fit in the same wall-clock time.
func TrialsForBoard(boardLen int) int {
	switch boardLen {
	case 0:
		return 1200
	case 3:
		return 2000
	default:
		return 3000
	}
}

// Estimate runs Monte Carlo trials of the hand and returns the hero's
// equity, (wins + 0.5*ties) / trials, in [0, 1]. Each trial samples an
// opponent hole pair from the model and completes the board to five cards
// from the cards that remain; no card is ever dealt twice within a trial.
// The caller supplies the random source so results are reproducible under a
// fixed seed. Large trial counts are sharded across workers with
// independently seeded generators.
func Estimate(hole []deck.Card, board []deck.Card, model OpponentModel, trials int, rng *rand.Rand) (float64, error) {
	if trials < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidTrials, trials)
	}
	if len(hole) != 2 {
		return 0, fmt.Errorf("hero must hold exactly 2 cards, got %d", len(hole))
	}
	switch len(board) {
	case 0, 3, 4, 5:
	default:
		return 0, fmt.Errorf("board must have 0, 3, 4 or 5 cards, got %d", len(board))
	}

	availableCards := deck.Remaining(deck.NewCardSet(hole, board))

	if trials < parallelThreshold {
		wins, ties := runTrials(hole, board, availableCards, model, trials, rng)
		return (float64(wins) + 0.5*float64(ties)) / float64(trials), nil
	}

	workers := runtime.NumCPU()
	if workers > 8 {
		workers = 8
	}

	type shard struct{ wins, ties int }
	results := make([]shard, workers)

	var g errgroup.Group
	perWorker := trials / workers
	remainder := trials % workers
	for w := 0; w < workers; w++ {
		n := perWorker
		if w < remainder {
			n++
		}
		// Derive an independent generator per worker so shards never
		// repeat each other's sampling sequence. Seeds draw sequentially
		// from the parent, keeping the run reproducible.
		workerRng := randutil.Derive(rng)
		g.Go(func() error {
			wins, ties := runTrials(hole, board, availableCards, model, n, workerRng)
			results[w] = shard{wins: wins, ties: ties}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var wins, ties int
	for _, r := range results {
		wins += r.wins
		ties += r.ties
	}
	return (float64(wins) + 0.5*float64(ties)) / float64(trials), nil
}

// runTrials executes n Monte Carlo trials sequentially and tallies
// wins and ties for the hero.
func runTrials(hole, board, availableCards []deck.Card, model OpponentModel, n int, rng *rand.Rand) (wins, ties int) {
	base := deck.NewCardSet(hole, board)

	finalBoard := make([]deck.Card, 5)
	candidates := make([]deck.Card, 0, 52)

	for i := 0; i < n; i++ {
		oppHole, ok := model.SampleHole(availableCards, rng)
		if !ok {
			continue
		}

		used := base
		used.Add(oppHole[0])
		used.Add(oppHole[1])

		// Complete the board from the cards neither player holds. The
		// known-opponent model's cards live in availableCards too, so the
		// bitset filter is what keeps them off the board.
		copy(finalBoard[:len(board)], board)
		candidates = candidates[:0]
		for _, card := range availableCards {
			if !used.Contains(card) {
				candidates = append(candidates, card)
			}
		}

		needed := 5 - len(board)
		for filled := 0; filled < needed; filled++ {
			idx := rng.IntN(len(candidates) - filled)
			finalBoard[len(board)+filled] = candidates[idx]
			candidates[idx], candidates[len(candidates)-1-filled] =
				candidates[len(candidates)-1-filled], candidates[idx]
		}

		switch evaluator.Compare(hole, oppHole[:], finalBoard) {
		case 1:
			wins++
		case 0:
			ties++
		}
	}

	return wins, ties
}
