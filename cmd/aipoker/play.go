package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kylewong001/AI-Poker/internal/bot"
	"github.com/kylewong001/AI-Poker/internal/deck"
	"github.com/kylewong001/AI-Poker/internal/evaluator"
	"github.com/kylewong001/AI-Poker/internal/game"
	"github.com/kylewong001/AI-Poker/internal/policy"
	"github.com/kylewong001/AI-Poker/internal/randutil"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	cardStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	potStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	loseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

// PlayCmd runs an interactive heads-up session against the bot. Stacks
// carry over between hands and the button alternates; the session ends
// when either side busts or the player quits.
type PlayCmd struct {
	Chips      int `default:"1000" help:"Starting chips per player"`
	SmallBlind int `default:"5" help:"Small blind"`
	BigBlind   int `default:"10" help:"Big blind"`
}

func (p *PlayCmd) Run(cli *CLI) error {
	params, err := cli.botParams()
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(" ♠ ♥ AI-Poker heads-up ♦ ♣ "))
	fmt.Println()

	rng := randutil.New(cli.seed())
	logger := cli.logger()

	chips := [2]int{p.Chips, p.Chips}
	button := 0
	scanner := bufio.NewScanner(os.Stdin)

	for handNum := 1; chips[0] > 0 && chips[1] > 0; handNum++ {
		fmt.Printf("--- Hand %d  (you: %d chips, bot: %d chips) ---\n", handNum, chips[0], chips[1])

		hand, err := game.NewHand(rng, game.HandConfig{
			Names:      [2]string{"you", "bot"},
			Chips:      chips,
			Button:     button,
			SmallBlind: p.SmallBlind,
			BigBlind:   p.BigBlind,
		})
		if err != nil {
			return err
		}

		human := &humanAgent{scanner: scanner}
		botAgent := bot.New(params, rng, logger)

		result, err := hand.Play([2]game.Agent{human, botAgent})
		if err != nil {
			if human.quit {
				fmt.Println("Thanks for playing.")
				return nil
			}
			return err
		}

		printHandResult(hand, result)
		chips = result.Chips
		button = 1 - button

		if human.quit {
			fmt.Println("Thanks for playing.")
			return nil
		}
	}

	if chips[0] == 0 {
		fmt.Println(loseStyle.Render("You are busted. Better luck next time."))
	} else {
		fmt.Println(winStyle.Render("The bot is busted. You win the session!"))
	}
	return nil
}

// humanAgent prompts on stdin for each action. Quitting mid-hand is
// surfaced as an intentionally illegal decision so Play unwinds cleanly.
type humanAgent struct {
	scanner *bufio.Scanner
	quit    bool
}

func (h *humanAgent) Act(view *game.View) policy.Decision {
	hole := view.HoleCards()
	fmt.Printf("\nYour cards: %s   Board: %s\n",
		cardStyle.Render(cardString(hole)),
		cardStyle.Render(cardString(view.Board())))
	fmt.Printf("%s  to call: %d, your stack: %d\n",
		potStyle.Render(fmt.Sprintf("Pot: %d", view.Pot())),
		view.CheckOrCallAmount(), view.Stack())

	for {
		fmt.Printf("(f)old, (c)heck/call, (r)aise <to>, (a)ll-in, (q)uit > ")
		if !h.scanner.Scan() {
			h.quit = true
			return policy.Decision{Action: policy.Fold}
		}
		fields := strings.Fields(strings.ToLower(h.scanner.Text()))
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "q", "quit":
			h.quit = true
			// An impossible raise forces Play to return an error we catch.
			return policy.Decision{Action: policy.Raise, RaiseTo: -1}
		case "f", "fold":
			if !view.CanFold() {
				fmt.Println("Nothing to fold to; check instead.")
				continue
			}
			return policy.Decision{Action: policy.Fold}
		case "c", "check", "call":
			return policy.Decision{Action: policy.CheckCall}
		case "a", "allin", "all-in":
			if !view.CanRaiseTo(view.MaxRaiseTo()) {
				fmt.Println("Cannot raise; check or call instead.")
				continue
			}
			return policy.Decision{Action: policy.AllIn, RaiseTo: view.MaxRaiseTo()}
		case "r", "raise":
			if len(fields) < 2 {
				fmt.Printf("Usage: r <amount>, between %d and %d\n", view.MinRaiseTo(), view.MaxRaiseTo())
				continue
			}
			amount, err := strconv.Atoi(fields[1])
			if err != nil || !view.CanRaiseTo(amount) {
				fmt.Printf("Illegal raise; legal range is %d to %d\n", view.MinRaiseTo(), view.MaxRaiseTo())
				continue
			}
			return policy.Decision{Action: policy.Raise, RaiseTo: amount}
		default:
			fmt.Println("Unrecognized command.")
		}
	}
}

func printHandResult(hand *game.Hand, result game.Result) {
	if hand.Street == game.Showdown {
		fmt.Printf("Board: %s\n", cardStyle.Render(cardString(hand.Board)))
		for seat, p := range hand.Players {
			desc, err := evaluator.Describe(p.Hole[:], hand.Board)
			if err != nil {
				desc = "?"
			}
			fmt.Printf("  %s shows %s (%s)\n", hand.Players[seat].Name,
				cardString(p.Hole[:]), desc)
		}
	}

	switch result.Winner {
	case 0:
		fmt.Println(winStyle.Render(fmt.Sprintf("You win the pot of %d.", result.Pot)))
	case 1:
		fmt.Println(loseStyle.Render(fmt.Sprintf("Bot wins the pot of %d.", result.Pot)))
	default:
		fmt.Printf("Split pot of %d.\n", result.Pot)
	}
	fmt.Println()
}

func cardString(cards []deck.Card) string {
	if len(cards) == 0 {
		return "--"
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
