package game

import "github.com/kylewong001/AI-Poker/internal/deck"

// View is the read-only window a seat gets when it is due to act. It
// exposes only what a player at the table could know: their own cards, the
// board, pot size, and the legal-action bounds.
type View struct {
	hand *Hand
	seat int
}

// Seat returns the acting seat number.
func (v *View) Seat() int { return v.seat }

// HoleCards returns the acting seat's two hole cards.
func (v *View) HoleCards() []deck.Card {
	p := v.hand.Players[v.seat]
	return []deck.Card{p.Hole[0], p.Hole[1]}
}

// Board returns the community cards dealt so far.
func (v *View) Board() []deck.Card {
	board := make([]deck.Card, len(v.hand.Board))
	copy(board, v.hand.Board)
	return board
}

// Pot returns all chips committed to the hand, including live bets.
func (v *View) Pot() int { return v.hand.Pot() }

// Stack returns the acting seat's remaining chips.
func (v *View) Stack() int { return v.hand.Players[v.seat].Chips }

// CanFold reports whether folding is legal. Folding when a check is free
// is never legal.
func (v *View) CanFold() bool {
	return v.hand.currentBet > v.hand.Players[v.seat].Bet
}

// CanCheckOrCall reports whether checking or calling is legal. For the
// acting seat it always is: a call that exceeds the stack becomes all-in.
func (v *View) CanCheckOrCall() bool { return true }

// CheckOrCallAmount returns the chips required to continue, zero for a
// free check. Capped at the remaining stack.
func (v *View) CheckOrCallAmount() int {
	p := v.hand.Players[v.seat]
	toCall := v.hand.currentBet - p.Bet
	if toCall > p.Chips {
		toCall = p.Chips
	}
	return toCall
}

// MinRaiseTo returns the smallest legal raise-to amount, capped at all-in.
func (v *View) MinRaiseTo() int {
	p := v.hand.Players[v.seat]
	minTo := v.hand.currentBet + v.hand.minRaise
	if maxTo := p.Bet + p.Chips; minTo > maxTo {
		minTo = maxTo
	}
	return minTo
}

// MaxRaiseTo returns the all-in raise-to amount.
func (v *View) MaxRaiseTo() int {
	p := v.hand.Players[v.seat]
	return p.Bet + p.Chips
}

// CanRaiseTo reports whether raising the street bet to amount is legal.
func (v *View) CanRaiseTo(amount int) bool {
	p := v.hand.Players[v.seat]
	opp := v.hand.Players[1-v.seat]
	maxTo := p.Bet + p.Chips

	if opp.AllIn || p.AllIn {
		return false
	}
	if amount <= v.hand.currentBet || amount > maxTo {
		return false
	}
	// Short of a full raise is only legal as an all-in.
	return amount >= v.hand.currentBet+v.hand.minRaise || amount == maxTo
}
