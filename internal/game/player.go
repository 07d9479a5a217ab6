package game

import "github.com/kylewong001/AI-Poker/internal/deck"

// Player holds the per-seat state of a hand.
type Player struct {
	Seat     int
	Name     string
	Chips    int
	Hole     [2]deck.Card
	Folded   bool
	AllIn    bool
	Bet      int // Chips committed this street
	TotalBet int // Chips committed this hand
}

// CanAct reports whether the player can still take a voluntary action.
func (p *Player) CanAct() bool {
	return !p.Folded && !p.AllIn && p.Chips > 0
}

func (p *Player) commit(amount int) {
	if amount > p.Chips {
		amount = p.Chips
	}
	p.Chips -= amount
	p.Bet += amount
	p.TotalBet += amount
	if p.Chips == 0 {
		p.AllIn = true
	}
}
