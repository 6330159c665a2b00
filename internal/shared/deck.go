package shared

import (
	"fmt"
	"math/rand/v2"
)

// DeckSize is the number of cards in a Jass deck.
const DeckSize = 36

// HandSize is the number of cards dealt to each of the four players.
const HandSize = 9

// Deck represents the 36-card Jass deck.
type Deck struct {
	cards []Card
}

// NewDeck creates the full deck in a fixed order: for each suit, each rank.
// The order only matters for reproducibility under a seeded shuffle.
func NewDeck() *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, suit := range Suits() {
		for _, rank := range Ranks() {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}
	return &Deck{cards: cards}
}

// Cards returns a copy of the deck in its current order.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Shuffle permutes the deck in place using the supplied random source.
// The source is always explicit so simulations stay reproducible.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal partitions the deck into four 9-card hands in sequence: the first
// nine cards go to seat 0, the next nine to seat 1, and so on. A deck not
// holding exactly 36 cards is an invariant violation, not a gameplay error.
func (d *Deck) Deal() ([4]*Hand, error) {
	var hands [4]*Hand
	if len(d.cards) != DeckSize {
		return hands, fmt.Errorf("deck must hold %d cards to deal, has %d", DeckSize, len(d.cards))
	}
	for i := range hands {
		hand, err := NewHand(d.cards[i*HandSize : (i+1)*HandSize])
		if err != nil {
			return hands, err
		}
		hands[i] = hand
	}
	return hands, nil
}
