package shared

import (
	"fmt"
	"sort"
)

// Hand represents one player's set of unplayed cards. Cards are only ever
// removed after creation; a fresh hand always holds exactly 9 unique cards.
type Hand struct {
	cards map[Card]struct{}

	// Legal-move memo for the trick in progress, keyed by remaining hand
	// size. The played-so-far set only grows within one trick, so the hand
	// size is a sufficient key. Dropped whenever a card is removed.
	legalCache map[int][]Card
}

// NewHand creates a hand from exactly 9 unique cards.
func NewHand(cards []Card) (*Hand, error) {
	set := make(map[Card]struct{}, len(cards))
	for _, c := range cards {
		set[c] = struct{}{}
	}
	if len(cards) != HandSize || len(set) != HandSize {
		return nil, fmt.Errorf("a hand must start with exactly %d unique cards, got %d", HandSize, len(cards))
	}
	return &Hand{cards: set, legalCache: make(map[int][]Card)}, nil
}

// Cards returns the unplayed cards sorted by display order.
func (h *Hand) Cards() []Card {
	out := make([]Card, 0, len(h.cards))
	for c := range h.cards {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderValue() < out[j].OrderValue() })
	return out
}

// Len returns the number of unplayed cards.
func (h *Hand) Len() int { return len(h.cards) }

// Has reports whether the card is still in the hand.
func (h *Hand) Has(card Card) bool {
	_, ok := h.cards[card]
	return ok
}

// LegalMoves computes which cards may be played next, given the cards
// already on the table this trick (in play order) and the trump suit.
//
// The obligations encoded here: follow the served suit when able, trump
// may always cut, an already-played trump must be beaten rather than
// under-trumped, and a player whose only trump is the jack is never forced
// to reveal it when trump is led.
func (h *Hand) LegalMoves(trickSoFar []Card, trump Suit) []Card {
	if cached, ok := h.legalCache[len(h.cards)]; ok {
		return cached
	}
	moves := h.findLegalMoves(trickSoFar, trump)
	h.legalCache = map[int][]Card{len(h.cards): moves}
	return moves
}

func (h *Hand) findLegalMoves(trickSoFar []Card, trump Suit) []Card {
	// Leading: everything is playable.
	if len(trickSoFar) == 0 {
		return h.Cards()
	}

	served := trickSoFar[0].Suit

	if served == trump {
		// Trump was led. Holding any trump besides the jack forces a trump;
		// holding none, or only the jack, frees the whole hand.
		if h.canServe(trump, false) {
			return h.filter(func(c Card) bool { return c.Suit == trump })
		}
		return h.Cards()
	}

	// Track the strongest trump already played this trick, if any.
	var bestTrump *Card
	for i, played := range trickSoFar {
		if played.Suit != trump {
			continue
		}
		if bestTrump == nil || played.Beats(*bestTrump, served, trump) {
			bestTrump = &trickSoFar[i]
		}
	}

	if h.canServe(served, true) {
		if bestTrump == nil {
			// Serve, or cut with any trump.
			return h.filter(func(c Card) bool { return c.Suit == served || c.Suit == trump })
		}
		// Serve, or over-trump; under-trumping is not allowed.
		return h.filter(func(c Card) bool {
			return c.Suit == served || c.Beats(*bestTrump, served, trump)
		})
	}

	if bestTrump == nil {
		// Cannot serve and nothing to over-trump: free discard.
		return h.Cards()
	}

	// Cannot serve: discard any non-trump, or over-trump.
	moves := h.filter(func(c Card) bool {
		return c.Suit != trump || c.Beats(*bestTrump, served, trump)
	})
	if len(moves) == 0 {
		// Only trumps remain and all are weaker: a losing trump must be played.
		return h.Cards()
	}
	return moves
}

// Play removes card from the hand. It fails with an IllegalMoveError when
// the card is not in the legal-move set for the current trick context.
func (h *Hand) Play(card Card, trickSoFar []Card, trump Suit) error {
	legal := false
	for _, c := range h.LegalMoves(trickSoFar, trump) {
		if c == card {
			legal = true
			break
		}
	}
	if !legal {
		return IllegalMoveError(fmt.Sprintf("cannot play %s", card))
	}
	delete(h.cards, card)
	h.legalCache = make(map[int][]Card)
	return nil
}

// canServe reports whether the hand holds at least one card of the suit.
// With includingJack false, the jack of that suit does not count.
func (h *Hand) canServe(suit Suit, includingJack bool) bool {
	for c := range h.cards {
		if c.Suit == suit && (includingJack || c.Rank != Jack) {
			return true
		}
	}
	return false
}

func (h *Hand) filter(keep func(Card) bool) []Card {
	var out []Card
	for _, c := range h.Cards() {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}
