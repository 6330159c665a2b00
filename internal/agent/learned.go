package agent

import "jass-game/internal/shared"

// NumCards is the size of the learned weight table, one entry per card.
const NumCards = 36

// DefaultLearningRate scales weight updates from trick rewards.
const DefaultLearningRate = 0.01

// cardIndex maps a card to a dense 0..35 table index.
func cardIndex(c shared.Card) int {
	return c.Rank.PlainOrder() + int(c.Suit)*9
}

// LearnedPolicy plays from a per-card weight table: among the legal moves
// it picks the card with the highest weight, and after each trick it
// shifts the weights of the cards it committed that trick by the signed
// reward. Weights survive across matches through the policy store.
type LearnedPolicy struct {
	weights [NumCards]float64
	rate    float64

	// cards played since the last reward notification
	pending []int
}

// NewLearnedPolicy creates a learned agent with zeroed weights.
func NewLearnedPolicy() *LearnedPolicy {
	return &LearnedPolicy{rate: DefaultLearningRate}
}

// Weights returns a copy of the weight table, for persistence.
func (a *LearnedPolicy) Weights() []float64 {
	out := make([]float64, NumCards)
	copy(out, a.weights[:])
	return out
}

// SetWeights loads a previously saved weight table. Short or long slices
// are ignored beyond the table bounds.
func (a *LearnedPolicy) SetWeights(w []float64) {
	copy(a.weights[:], w)
}

// ChooseTrump scores each suit by hand strength, like the greedy agent.
// It never passes.
func (a *LearnedPolicy) ChooseTrump(state shared.ChooseTrumpState) (shared.Suit, bool) {
	return NewGreedy().ChooseTrump(state)
}

// PlayCard picks the legal card with the highest learned weight, breaking
// ties by display order.
func (a *LearnedPolicy) PlayCard(state shared.PlayCardState) shared.Card {
	best := state.LegalMoves[0]
	for _, c := range state.LegalMoves[1:] {
		if a.weights[cardIndex(c)] > a.weights[cardIndex(best)] {
			best = c
		}
	}
	a.pending = append(a.pending, cardIndex(best))
	return best
}

// TrickEnded reinforces the cards played since the previous notification
// with the signed trick reward.
func (a *LearnedPolicy) TrickEnded(points int, final bool) {
	for _, idx := range a.pending {
		a.weights[idx] += a.rate * float64(points)
	}
	a.pending = a.pending[:0]
}
