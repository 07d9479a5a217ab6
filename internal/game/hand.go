package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/kylewong001/AI-Poker/internal/deck"
	"github.com/kylewong001/AI-Poker/internal/evaluator"
)

// HandConfig describes the fixed parameters of a single heads-up hand.
type HandConfig struct {
	Names      [2]string
	Chips      [2]int
	Button     int // Seat posting the small blind and acting first preflop
	SmallBlind int
	BigBlind   int
}

// Hand is the state of one heads-up hold'em hand. A hand is independent of
// any other hand; chips flow in through HandConfig and out through Result.
type Hand struct {
	Players    [2]*Player
	Button     int
	Street     Street
	Board      []deck.Card
	ActiveSeat int

	deck       *deck.Deck
	bigBlind   int
	currentBet int
	minRaise   int
	acted      [2]bool
	complete   bool
	result     Result
}

// Result records the outcome of a completed hand.
type Result struct {
	Winner int // Winning seat, or -1 for a chopped pot
	Pot    int // Chips in the matched pot
	Chips  [2]int
}

// NewHand shuffles a fresh deck from rng, posts blinds, and deals hole
// cards. Button posts the small blind, as is standard heads-up.
func NewHand(rng *rand.Rand, cfg HandConfig) (*Hand, error) {
	if cfg.Button != 0 && cfg.Button != 1 {
		return nil, fmt.Errorf("button seat must be 0 or 1, got %d", cfg.Button)
	}
	if cfg.SmallBlind <= 0 || cfg.BigBlind < cfg.SmallBlind {
		return nil, fmt.Errorf("invalid blinds %d/%d", cfg.SmallBlind, cfg.BigBlind)
	}
	for seat, chips := range cfg.Chips {
		if chips <= 0 {
			return nil, fmt.Errorf("seat %d has no chips", seat)
		}
	}

	d := deck.NewDeck(rng)
	d.Shuffle()
	h := &Hand{
		Button:   cfg.Button,
		Street:   Preflop,
		deck:     d,
		bigBlind: cfg.BigBlind,
	}
	for seat := range h.Players {
		h.Players[seat] = &Player{Seat: seat, Name: cfg.Names[seat], Chips: cfg.Chips[seat]}
	}

	sb, bb := h.Button, 1-h.Button
	h.Players[sb].commit(cfg.SmallBlind)
	h.Players[bb].commit(cfg.BigBlind)
	h.currentBet = cfg.BigBlind
	h.minRaise = cfg.BigBlind

	for _, p := range h.Players {
		cards := h.deck.DealN(2)
		p.Hole = [2]deck.Card{cards[0], cards[1]}
	}

	h.ActiveSeat = h.firstToAct()
	if h.ActiveSeat == -1 {
		// Blinds put someone all-in already; run the board out.
		h.runOut()
	}
	return h, nil
}

// firstToAct returns the seat due to act, or -1 if nobody can.
func (h *Hand) firstToAct() int {
	var order [2]int
	if h.Street == Preflop {
		order = [2]int{h.Button, 1 - h.Button}
	} else {
		order = [2]int{1 - h.Button, h.Button}
	}
	for _, seat := range order {
		if h.Players[seat].CanAct() {
			return seat
		}
	}
	return -1
}

// Pot returns all chips committed so far, including live street bets.
func (h *Hand) Pot() int {
	return h.Players[0].TotalBet + h.Players[1].TotalBet
}

// IsComplete reports whether the hand has been settled.
func (h *Hand) IsComplete() bool { return h.complete }

// Result returns the settled outcome. Only valid once IsComplete is true.
func (h *Hand) Result() Result { return h.result }

// View returns the decision-making view for the active seat.
func (h *Hand) View() *View {
	return &View{hand: h, seat: h.ActiveSeat}
}

// Fold folds the active seat and settles the pot to the opponent.
func (h *Hand) Fold() error {
	if h.complete {
		return fmt.Errorf("hand is complete")
	}
	p := h.Players[h.ActiveSeat]
	if h.currentBet == p.Bet {
		return fmt.Errorf("cannot fold when checking is free")
	}
	p.Folded = true
	h.settle()
	return nil
}

// CheckOrCall checks if no bet is outstanding, otherwise calls, going
// all-in if the call exceeds the remaining stack.
func (h *Hand) CheckOrCall() error {
	if h.complete {
		return fmt.Errorf("hand is complete")
	}
	p := h.Players[h.ActiveSeat]
	toCall := h.currentBet - p.Bet
	if toCall > 0 {
		p.commit(toCall)
	}
	h.acted[h.ActiveSeat] = true
	h.advance()
	return nil
}

// RaiseTo raises the active seat's street bet to amount. Amounts below the
// minimum raise are rejected unless they put the player all-in.
func (h *Hand) RaiseTo(amount int) error {
	if h.complete {
		return fmt.Errorf("hand is complete")
	}
	p := h.Players[h.ActiveSeat]
	opp := h.Players[1-h.ActiveSeat]
	maxTo := p.Bet + p.Chips

	if opp.AllIn {
		return fmt.Errorf("opponent is all-in, raising is closed")
	}
	if amount <= h.currentBet {
		return fmt.Errorf("raise to %d does not exceed current bet %d", amount, h.currentBet)
	}
	if amount > maxTo {
		return fmt.Errorf("insufficient chips to raise to %d", amount)
	}
	if amount < h.currentBet+h.minRaise && amount < maxTo {
		return fmt.Errorf("raise too small, minimum %d", h.currentBet+h.minRaise)
	}

	h.minRaise = amount - h.currentBet
	h.currentBet = amount
	p.commit(amount - p.Bet)

	h.acted = [2]bool{}
	h.acted[h.ActiveSeat] = true
	h.advance()
	return nil
}

// advance hands the action to the opponent or closes the street.
func (h *Hand) advance() {
	next := 1 - h.ActiveSeat
	if h.Players[next].CanAct() && !h.roundClosed(next) {
		h.ActiveSeat = next
		return
	}
	h.nextStreet()
}

// roundClosed reports whether seat owes no action on this street.
func (h *Hand) roundClosed(seat int) bool {
	p := h.Players[seat]
	return h.acted[seat] && p.Bet == h.currentBet
}

func (h *Hand) nextStreet() {
	for _, p := range h.Players {
		p.Bet = 0
	}
	h.currentBet = 0
	h.minRaise = h.bigBlind
	h.acted = [2]bool{}

	if h.Street == River {
		h.Street = Showdown
		h.settle()
		return
	}
	h.Street++
	h.dealBoard()

	h.ActiveSeat = h.firstToAct()
	if h.ActiveSeat == -1 || !h.Players[1-h.ActiveSeat].CanAct() {
		// One or both players all-in; no more betting is possible.
		h.runOut()
	}
}

func (h *Hand) dealBoard() {
	for len(h.Board) < h.Street.BoardCards() {
		if card, ok := h.deck.Deal(); ok {
			h.Board = append(h.Board, card)
		}
	}
}

// runOut deals the remaining board and goes straight to showdown.
func (h *Hand) runOut() {
	h.Street = Showdown
	for len(h.Board) < 5 {
		if card, ok := h.deck.Deal(); ok {
			h.Board = append(h.Board, card)
		}
	}
	h.settle()
}

// settle matches the committed chips, awards the pot, and refunds any
// unmatched excess to the deeper stack.
func (h *Hand) settle() {
	h.complete = true
	h.ActiveSeat = -1

	a, b := h.Players[0], h.Players[1]
	matched := min(a.TotalBet, b.TotalBet)
	pot := 2 * matched

	// Unmatched chips never change hands.
	a.Chips += a.TotalBet - matched
	b.Chips += b.TotalBet - matched

	winner := h.winner()
	if winner == -1 {
		// The matched pot is twice the short commitment, so a chop
		// always splits evenly.
		a.Chips += pot / 2
		b.Chips += pot / 2
	} else {
		h.Players[winner].Chips += pot
	}

	h.result = Result{
		Winner: winner,
		Pot:    pot,
		Chips:  [2]int{a.Chips, b.Chips},
	}
}

// winner returns the winning seat, or -1 for a chop.
func (h *Hand) winner() int {
	if h.Players[0].Folded {
		return 1
	}
	if h.Players[1].Folded {
		return 0
	}
	cmp := evaluator.Compare(h.Players[0].Hole[:], h.Players[1].Hole[:], h.Board)
	switch {
	case cmp > 0:
		return 0
	case cmp < 0:
		return 1
	default:
		return -1
	}
}
