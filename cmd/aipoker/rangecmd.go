package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/kylewong001/AI-Poker/internal/deck"
	"github.com/kylewong001/AI-Poker/internal/preflop"
)

// RangeCmd inspects the preflop hand ranking. With a hand argument it
// reports that hand's percentile; without one it lists every starting-hand
// class inside the given top fraction.
type RangeCmd struct {
	Hand string  `arg:"" optional:"" help:"Hole cards to look up, e.g. 'AsKd'"`
	Top  float64 `default:"0.25" help:"Range fraction to list or test against"`
}

func (r *RangeCmd) Run(cli *CLI) error {
	if r.Hand != "" {
		return r.lookup()
	}
	return r.list()
}

func (r *RangeCmd) lookup() error {
	hole, err := deck.ParseCards(r.Hand)
	if err != nil {
		return fmt.Errorf("parsing hand: %w", err)
	}
	if len(hole) != 2 {
		return fmt.Errorf("hand must be exactly 2 cards, got %d", len(hole))
	}

	pct := preflop.Percentile(hole[0], hole[1])
	fmt.Printf("Hand:       %s (%s)\n", cardStyle.Render(cardString(hole)), classLabel(hole[0], hole[1]))
	fmt.Printf("Score:      %d\n", preflop.StrengthScore(hole[0], hole[1]))
	fmt.Printf("Percentile: %.1f (top %.1f%% of hands)\n", pct*100, (1-pct)*100)
	if preflop.InTopFraction(hole[0], hole[1], r.Top) {
		fmt.Println(winStyle.Render(fmt.Sprintf("Inside the top %.0f%% range", r.Top*100)))
	} else {
		fmt.Println(loseStyle.Render(fmt.Sprintf("Outside the top %.0f%% range", r.Top*100)))
	}
	return nil
}

func (r *RangeCmd) list() error {
	type class struct {
		label  string
		pct    float64
		combos int
	}

	// Collapse the 1326 combos into the 169 suited/offsuit/pair classes,
	// keeping the best percentile seen for each class.
	classes := make(map[string]*class)
	universe := deck.Universe()
	for i := 0; i < len(universe); i++ {
		for j := i + 1; j < len(universe); j++ {
			a, b := universe[i], universe[j]
			label := classLabel(a, b)
			c, ok := classes[label]
			if !ok {
				c = &class{label: label}
				classes[label] = c
			}
			if pct := preflop.Percentile(a, b); pct > c.pct {
				c.pct = pct
			}
			c.combos++
		}
	}

	inRange := make([]*class, 0, len(classes))
	for _, c := range classes {
		if c.pct >= 1-r.Top {
			inRange = append(inRange, c)
		}
	}
	sort.Slice(inRange, func(i, j int) bool { return inRange[i].pct > inRange[j].pct })

	fmt.Printf("Top %.0f%% of starting hands (%d classes):\n\n", r.Top*100, len(inRange))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "HAND\tCOMBOS\tPERCENTILE")
	for _, c := range inRange {
		fmt.Fprintf(w, "%s\t%d\t%.1f\n", c.label, c.combos, c.pct*100)
	}
	return w.Flush()
}

// classLabel renders a hole pair as its starting-hand class, like "AKs",
// "T9o", or "QQ".
func classLabel(a, b deck.Card) string {
	hi, lo := a, b
	if lo.Rank > hi.Rank {
		hi, lo = lo, hi
	}
	ranks := hi.Rank.String() + lo.Rank.String()
	if hi.Rank == lo.Rank {
		return ranks
	}
	if hi.Suit == lo.Suit {
		return ranks + "s"
	}
	return ranks + "o"
}
