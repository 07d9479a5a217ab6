package policy

import (
	"fmt"

	"github.com/kylewong001/AI-Poker/internal/deck"
)

// Action is the kind of move the policy selects.
type Action int

const (
	Fold Action = iota
	CheckCall
	Raise
	AllIn
)

func (a Action) String() string {
	return [...]string{"fold", "check/call", "raise", "all-in"}[a]
}

// Decision is the policy's answer for one action request. RaiseTo is only
// meaningful for Raise and AllIn, and always lies inside the legal raise-to
// bounds the table engine reported when the decision was made.
type Decision struct {
	Action    Action
	RaiseTo   int
	Reasoning string
}

func (d Decision) String() string {
	if d.Action == Raise || d.Action == AllIn {
		return fmt.Sprintf("%s to %d", d.Action, d.RaiseTo)
	}
	return d.Action.String()
}

// GameView is the read-only surface the policy needs from the table engine.
// One explicit interface replaces probing the engine for differently named
// fields: the engine answers legality and bounds, the policy never mutates
// table state directly.
type GameView interface {
	// HoleCards returns the acting player's two hole cards.
	HoleCards() []deck.Card
	// Board returns the community cards dealt so far (0, 3, 4, or 5).
	Board() []deck.Card
	// Pot is the total pot, including chips committed on the current street.
	Pot() int
	// Stack is the acting player's remaining stack.
	Stack() int

	CanFold() bool
	CanCheckOrCall() bool
	// CheckOrCallAmount is the cost of a check-or-call; 0 means a free check.
	CheckOrCallAmount() int

	// MinRaiseTo and MaxRaiseTo bound the legal raise-to amounts. When
	// MinRaiseTo > MaxRaiseTo no raise is legal.
	MinRaiseTo() int
	MaxRaiseTo() int
	CanRaiseTo(amount int) bool
}
