package shared

// PlayCardState carries everything an agent may look at when choosing a
// card: the trump, who chose it, its own remaining hand, the precomputed
// legal-move set, the cards already on the table this trick (in play
// order) and the completed tricks of the current deal (each in seating
// order).
type PlayCardState struct {
	Trump            Suit
	TrumpChooserSeat int
	Hand             []Card
	LegalMoves       []Card
	TrickSoFar       []Card
	PriorTricks      [][]Card
}

// ChooseTrumpState carries the agent's full 9-card hand and whether
// passing the decision to the partner (chibre) is allowed.
type ChooseTrumpState struct {
	Hand    []Card
	MayPass bool
}

// Agent is the decision-making capability bound to a player. The engine
// validates every returned card against the legal-move set, so a buggy
// agent can never corrupt game state. Calls are synchronous and may block
// (console input, policy inference); the engine imposes no timeout.
type Agent interface {
	// ChooseTrump picks the trump suit, or passes (second return true) when
	// state.MayPass allows it.
	ChooseTrump(state ChooseTrumpState) (Suit, bool)

	// PlayCard returns one card from state.LegalMoves.
	PlayCard(state PlayCardState) Card

	// TrickEnded notifies the agent of the points its team earned this
	// trick, negated when the opposing team won, and whether this was the
	// deal's final trick. Fire-and-forget; the engine ignores its effects.
	TrickEnded(points int, final bool)
}
