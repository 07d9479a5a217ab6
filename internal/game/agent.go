package game

import (
	"fmt"

	"github.com/kylewong001/AI-Poker/internal/policy"
)

// Agent is anything that can act for a seat when it is due: a bot, a human
// at a prompt, or a scripted sequence in tests. Agents receive a read-only
// view and return a decision; they never mutate the hand.
type Agent interface {
	Act(view *View) policy.Decision
}

// Play drives the hand to completion, asking the matching agent each time
// a seat is due to act. Illegal decisions are reported as errors rather
// than corrected, so buggy agents surface immediately.
func (h *Hand) Play(agents [2]Agent) (Result, error) {
	for !h.complete {
		seat := h.ActiveSeat
		d := agents[seat].Act(h.View())

		var err error
		switch d.Action {
		case policy.Fold:
			err = h.Fold()
		case policy.CheckCall:
			err = h.CheckOrCall()
		case policy.Raise, policy.AllIn:
			err = h.RaiseTo(d.RaiseTo)
		default:
			err = fmt.Errorf("unknown action %v", d.Action)
		}
		if err != nil {
			return Result{}, fmt.Errorf("seat %d (%s): %s: %w", seat, h.Players[seat].Name, d.Action, err)
		}
	}
	return h.result, nil
}
