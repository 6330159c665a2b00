package agent

import "jass-game/internal/shared"

// trumpWeight scores a rank's worth when evaluating a suit as trump.
func trumpWeight(r shared.Rank) float64 {
	switch r {
	case shared.Jack:
		return 2.5
	case shared.Nine:
		return 2.0
	case shared.Ace:
		return 1.5
	case shared.King:
		return 1.2
	case shared.Queen:
		return 1.1
	}
	return 1.0
}

// Greedy plays deterministic lookahead-free Jass: it picks the trump suit
// its hand is strongest in, tries to win tricks with the cheapest winning
// card, and otherwise sheds its cheapest card.
type Greedy struct{}

// NewGreedy creates a greedy agent.
func NewGreedy() *Greedy { return &Greedy{} }

// ChooseTrump picks the suit with the highest weighted presence in the
// hand. It never passes.
func (a *Greedy) ChooseTrump(state shared.ChooseTrumpState) (shared.Suit, bool) {
	var scores [4]float64
	for _, c := range state.Hand {
		scores[c.Suit] += trumpWeight(c.Rank)
	}
	best := shared.Diamonds
	for _, s := range shared.Suits() {
		if scores[s] > scores[best] {
			best = s
		}
	}
	return best, false
}

// PlayCard leads with its strongest card; otherwise it plays the cheapest
// legal card that currently wins the trick, falling back to the cheapest
// legal card when the trick cannot be won.
func (a *Greedy) PlayCard(state shared.PlayCardState) shared.Card {
	legal := state.LegalMoves

	if len(state.TrickSoFar) == 0 {
		best := legal[0]
		for _, c := range legal[1:] {
			if c.Points(state.Trump) > best.Points(state.Trump) {
				best = c
			}
		}
		return best
	}

	served := state.TrickSoFar[0].Suit
	tableBest := state.TrickSoFar[0]
	for _, c := range state.TrickSoFar[1:] {
		if c.Beats(tableBest, served, state.Trump) {
			tableBest = c
		}
	}

	var winner *shared.Card
	for i, c := range legal {
		if c == tableBest || !c.Beats(tableBest, served, state.Trump) {
			continue
		}
		if winner == nil || c.Points(state.Trump) < winner.Points(state.Trump) {
			winner = &legal[i]
		}
	}
	if winner != nil {
		return *winner
	}

	cheapest := legal[0]
	for _, c := range legal[1:] {
		if c.Points(state.Trump) < cheapest.Points(state.Trump) ||
			(c.Points(state.Trump) == cheapest.Points(state.Trump) && c.OrderValue() < cheapest.OrderValue()) {
			cheapest = c
		}
	}
	return cheapest
}

// TrickEnded is ignored.
func (a *Greedy) TrickEnded(points int, final bool) {}
