package agent

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"jass-game/internal/shared"
)

// Interactive prompts a human on the console. Invalid input re-prompts;
// the agent only ever returns a choice the engine will accept.
type Interactive struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewInteractive creates a console agent reading from in and writing
// prompts to out.
func NewInteractive(in io.Reader, out io.Writer) *Interactive {
	return &Interactive{in: bufio.NewScanner(in), out: out}
}

// ChooseTrump prompts for a suit letter, or "chibre" when passing to the
// partner is allowed.
func (a *Interactive) ChooseTrump(state shared.ChooseTrumpState) (shared.Suit, bool) {
	fmt.Fprintf(a.out, "Your hand: %s\n", formatCards(state.Hand))
	hint := "d, s, h, c"
	if state.MayPass {
		hint += " or chibre"
	}
	fmt.Fprintf(a.out, "Choose the trump suit (%s): ", hint)

	for a.in.Scan() {
		token := strings.TrimSpace(a.in.Text())
		if state.MayPass && strings.EqualFold(token, "chibre") {
			return 0, true
		}
		suit, err := shared.ParseSuit(token)
		if err == nil {
			return suit, false
		}
		fmt.Fprintf(a.out, "Invalid input, try again (%s): ", hint)
	}
	// Input closed: fall back to diamonds rather than stall the match.
	return shared.Diamonds, false
}

// PlayCard prompts for a card token like "7d" until a legal one is given.
func (a *Interactive) PlayCard(state shared.PlayCardState) shared.Card {
	if len(state.TrickSoFar) > 0 {
		fmt.Fprintf(a.out, "On the table: %s\n", formatCards(state.TrickSoFar))
	}
	fmt.Fprintf(a.out, "Your hand: %s (trump %s)\n", formatCards(state.Hand), state.Trump)
	fmt.Fprint(a.out, "Choose a card to play (e.g. 7d): ")

	for a.in.Scan() {
		card, err := shared.ParseCard(strings.TrimSpace(a.in.Text()))
		if err != nil {
			fmt.Fprint(a.out, "Invalid input, try again: ")
			continue
		}
		for _, legal := range state.LegalMoves {
			if legal == card {
				return card
			}
		}
		fmt.Fprintf(a.out, "%s is not a legal move, try again: ", card)
	}
	// Input closed: play the first legal card rather than stall the match.
	return state.LegalMoves[0]
}

// TrickEnded reports the signed trick outcome to the console.
func (a *Interactive) TrickEnded(points int, final bool) {
	fmt.Fprintf(a.out, "Trick ended: %+d points for your team\n", points)
	if final {
		fmt.Fprintln(a.out, "That was the last trick of the deal.")
	}
}

func formatCards(cards []shared.Card) string {
	tokens := make([]string, len(cards))
	for i, c := range cards {
		tokens[i] = c.String()
	}
	return strings.Join(tokens, " ")
}
