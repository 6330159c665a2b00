// Package agent provides the built-in decision-making agents: uniform
// random, a simple greedy heuristic, an interactive console agent and a
// weight-table learned policy. They all sit behind shared.Agent; the
// engine never knows which one it is talking to.
package agent

import (
	"math/rand/v2"
	"time"

	"jass-game/internal/shared"
)

// Random chooses uniformly among the legal options. Useful as a baseline
// and for driving full-match simulations in tests.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random agent. Seed 0 uses the clock.
func NewRandom(seed uint64) *Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Random{rng: rand.New(rand.NewPCG(seed, seed))}
}

// ChooseTrump picks one of the four suits, or passes with equal chance
// when allowed.
func (a *Random) ChooseTrump(state shared.ChooseTrumpState) (shared.Suit, bool) {
	options := 4
	if state.MayPass {
		options = 5
	}
	pick := a.rng.IntN(options)
	if pick == 4 {
		return 0, true
	}
	return shared.Suits()[pick], false
}

// PlayCard picks uniformly from the legal moves.
func (a *Random) PlayCard(state shared.PlayCardState) shared.Card {
	return state.LegalMoves[a.rng.IntN(len(state.LegalMoves))]
}

// TrickEnded is ignored.
func (a *Random) TrickEnded(points int, final bool) {}
