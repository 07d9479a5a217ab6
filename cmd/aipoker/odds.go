package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/kylewong001/AI-Poker/internal/deck"
	"github.com/kylewong001/AI-Poker/internal/equity"
	"github.com/kylewong001/AI-Poker/internal/preflop"
	"github.com/kylewong001/AI-Poker/internal/randutil"
)

// OddsCmd estimates hand equity by Monte Carlo: against a random hand,
// against known villain cards, or against a top-X%-of-hands range.
type OddsCmd struct {
	Hand    string  `arg:"" help:"Hero hole cards, e.g. 'AsKd'"`
	Villain string  `help:"Villain hole cards for a known matchup, e.g. 'QhQc'"`
	Range   float64 `default:"0" help:"Villain range as a top fraction, e.g. 0.25 (0 = random hand)"`
	Board   string  `short:"b" help:"Community cards, e.g. 'Td7s8h'"`
	Trials  int     `default:"100000" help:"Number of Monte Carlo trials"`
}

func (o *OddsCmd) Run(cli *CLI) error {
	hole, err := deck.ParseCards(o.Hand)
	if err != nil {
		return fmt.Errorf("parsing hand: %w", err)
	}
	if len(hole) != 2 {
		return fmt.Errorf("hand must be exactly 2 cards, got %d", len(hole))
	}

	var board []deck.Card
	if o.Board != "" {
		board, err = deck.ParseCards(o.Board)
		if err != nil {
			return fmt.Errorf("parsing board: %w", err)
		}
	}

	var model equity.OpponentModel = equity.RandomOpponent{}
	modelName := "random hand"
	switch {
	case o.Villain != "":
		villain, err := deck.ParseCards(o.Villain)
		if err != nil {
			return fmt.Errorf("parsing villain: %w", err)
		}
		if len(villain) != 2 {
			return fmt.Errorf("villain must be exactly 2 cards, got %d", len(villain))
		}
		model = equity.KnownOpponent{Hole: [2]deck.Card{villain[0], villain[1]}}
		modelName = "known " + o.Villain
	case o.Range > 0:
		model = equity.RangeOpponent{TopFrac: o.Range}
		modelName = fmt.Sprintf("top %.0f%% range", o.Range*100)
	}

	seed := cli.seed()
	rng := randutil.New(seed)

	start := time.Now()
	eq, err := equity.Estimate(hole, board, model, o.Trials, rng)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Hand:\t%s\n", cardStyle.Render(cardString(hole)))
	if len(board) > 0 {
		fmt.Fprintf(w, "Board:\t%s\n", cardStyle.Render(cardString(board)))
	} else {
		pct := preflop.Percentile(hole[0], hole[1])
		fmt.Fprintf(w, "Preflop rank:\ttop %.1f%% of hands\n", (1-pct)*100)
	}
	fmt.Fprintf(w, "Opponent:\t%s\n", modelName)
	fmt.Fprintf(w, "Equity:\t%s\n", winStyle.Render(fmt.Sprintf("%.2f%%", eq*100)))
	fmt.Fprintf(w, "Trials:\t%d in %s (seed %d)\n", o.Trials, elapsed.Round(time.Millisecond), seed)
	return w.Flush()
}
