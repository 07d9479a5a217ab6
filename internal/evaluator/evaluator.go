// Package evaluator adapts the paulhankin/poker hand evaluator to this
// module's card model. The engine treats it as a pure comparator: given two
// hole-card pairs and a completed five-card board, it orders the hands.
package evaluator

import (
	"fmt"

	poker "github.com/paulhankin/poker"

	"github.com/kylewong001/AI-Poker/internal/deck"
)

// toLib converts our card representation to the library's. The library uses
// ranks 1-13 with Ace low as 1; ours are 2-14 with Ace high.
func toLib(c deck.Card) poker.Card {
	var s poker.Suit
	switch c.Suit {
	case deck.Clubs:
		s = poker.Club
	case deck.Diamonds:
		s = poker.Diamond
	case deck.Hearts:
		s = poker.Heart
	default:
		s = poker.Spade
	}

	var r poker.Rank
	if c.Rank == deck.Ace {
		r = poker.Rank(1)
	} else {
		r = poker.Rank(c.Rank)
	}

	card, _ := poker.MakeCard(s, r)
	return card
}

// Eval7 scores a two-card hole plus five-card board. Higher is better.
func Eval7(hole []deck.Card, board []deck.Card) int16 {
	var a7 [7]poker.Card
	for i, c := range hole {
		a7[i] = toLib(c)
	}
	for i, c := range board {
		a7[2+i] = toLib(c)
	}
	return poker.Eval7(&a7)
}

// Compare orders two hole-card pairs over a completed board. It returns
// a positive value if holeA wins, negative if holeB wins, and zero on a tie.
// The board must contain exactly 5 cards; Monte Carlo trials complete the
// board synthetically before calling it.
func Compare(holeA, holeB, board []deck.Card) int {
	if len(holeA) != 2 || len(holeB) != 2 || len(board) != 5 {
		panic(fmt.Sprintf("compare needs 2+2 hole cards and a 5-card board, got %d/%d/%d",
			len(holeA), len(holeB), len(board)))
	}

	scoreA := Eval7(holeA, board)
	scoreB := Eval7(holeB, board)

	switch {
	case scoreA > scoreB:
		return 1
	case scoreA < scoreB:
		return -1
	default:
		return 0
	}
}

// Describe names the best five-card hand makeable from hole plus board,
// like "full house, tens over fours".
func Describe(hole, board []deck.Card) (string, error) {
	cards := make([]poker.Card, 0, len(hole)+len(board))
	for _, c := range hole {
		cards = append(cards, toLib(c))
	}
	for _, c := range board {
		cards = append(cards, toLib(c))
	}
	return poker.Describe(cards)
}
