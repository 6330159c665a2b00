package shared

import "fmt"

// Player binds a name and seat to a hand and a decision-making agent. The
// hand is replaced at every deal and drained to zero over nine tricks.
type Player struct {
	Name  string
	Seat  int
	agent Agent
	hand  *Hand
}

// NewPlayer creates a player for the given seat.
func NewPlayer(name string, seat int, agent Agent) *Player {
	return &Player{Name: name, Seat: seat, agent: agent}
}

// Give hands the player a fresh 9-card hand for a new deal.
func (p *Player) Give(hand *Hand) {
	p.hand = hand
}

// Hand returns the player's current hand.
func (p *Player) Hand() *Hand { return p.hand }

// Has7OfDiamonds reports whether the player holds the 7♢, which marks the
// trump chooser of a match's very first deal.
func (p *Player) Has7OfDiamonds() bool {
	return p.hand != nil && p.hand.Has(Card{Rank: Seven, Suit: Diamonds})
}

// Play asks the agent for a card and applies it to the hand. An agent
// choice outside the legal-move set is rejected with an IllegalMoveError:
// the agent broke its contract and the game must abort.
func (p *Player) Play(trump Suit, chooserSeat int, trickSoFar []Card, priorTricks [][]Card) (Card, error) {
	if p.hand == nil {
		return Card{}, IllegalMoveError("cannot play before being dealt a hand")
	}
	legal := p.hand.LegalMoves(trickSoFar, trump)
	card := p.agent.PlayCard(PlayCardState{
		Trump:            trump,
		TrumpChooserSeat: chooserSeat,
		Hand:             p.hand.Cards(),
		LegalMoves:       legal,
		TrickSoFar:       trickSoFar,
		PriorTricks:      priorTricks,
	})
	if err := p.hand.Play(card, trickSoFar, trump); err != nil {
		return Card{}, IllegalMoveError(fmt.Sprintf("%s chose an illegal card %s", p.Name, card))
	}
	return card, nil
}

// ChooseTrump asks the agent for the trump suit. The second return is true
// when the agent passes; passing while mayPass is false is a contract
// violation.
func (p *Player) ChooseTrump(mayPass bool) (Suit, bool, error) {
	if p.hand == nil {
		return 0, false, IllegalMoveError("cannot choose trump before being dealt a hand")
	}
	suit, pass := p.agent.ChooseTrump(ChooseTrumpState{
		Hand:    p.hand.Cards(),
		MayPass: mayPass,
	})
	if pass && !mayPass {
		return 0, false, IllegalMoveError(fmt.Sprintf("%s passed the trump choice when not allowed", p.Name))
	}
	return suit, pass, nil
}

// Reward forwards the signed trick outcome to the agent.
func (p *Player) Reward(points int, final bool) {
	p.agent.TrickEnded(points, final)
}

func (p *Player) String() string { return p.Name }
