package shared

// PlayedCard stores a card along with the seat of the player who played it.
type PlayedCard struct {
	Card Card
	Seat int
}

// Trick accumulates up to four plays in turn order. The suit of the first
// card becomes the served suit; once four cards are in, the trick is
// complete and its winner and points are fixed.
type Trick struct {
	trump  Suit
	served Suit
	plays  []PlayedCard
}

// NewTrick creates an empty trick for the given trump suit.
func NewTrick(trump Suit) *Trick {
	return &Trick{trump: trump, plays: make([]PlayedCard, 0, 4)}
}

// Trump returns the trick's trump suit.
func (t *Trick) Trump() Suit { return t.trump }

// Served returns the suit of the first card played. Meaningless while the
// trick is empty.
func (t *Trick) Served() Suit { return t.served }

// Complete reports whether all four cards have been played.
func (t *Trick) Complete() bool { return len(t.plays) == 4 }

// Cards returns the cards played so far, in play order.
func (t *Trick) Cards() []Card {
	out := make([]Card, len(t.plays))
	for i, p := range t.plays {
		out[i] = p.Card
	}
	return out
}

// Plays returns the (card, seat) pairs in play order.
func (t *Trick) Plays() []PlayedCard {
	out := make([]PlayedCard, len(t.plays))
	copy(out, t.plays)
	return out
}

// AddCard records a play. It fails when the trick already has four cards
// or the seat already played.
func (t *Trick) AddCard(card Card, seat int) error {
	if t.Complete() {
		return IllegalMoveError("a trick can have at most 4 cards")
	}
	for _, p := range t.plays {
		if p.Seat == seat {
			return IllegalMoveError("a player can only play once per trick")
		}
	}
	if len(t.plays) == 0 {
		t.served = card.Suit
	}
	t.plays = append(t.plays, PlayedCard{Card: card, Seat: seat})
	return nil
}

// Winner returns the seat that won the trick. It fails on an incomplete
// trick. The fold compares each later card against the running best with
// Beats; only a card of the served or trump suit can hold the lead, so
// equal strengths never arise between contenders.
func (t *Trick) Winner() (int, error) {
	if !t.Complete() {
		return 0, IllegalMoveError("cannot determine the winner of an incomplete trick")
	}
	best := t.plays[0]
	for _, p := range t.plays[1:] {
		if p.Card.Beats(best.Card, t.served, t.trump) {
			best = p
		}
	}
	return best.Seat, nil
}

// Points returns the sum of the played cards' point values. It fails on an
// incomplete trick. The last-trick bonus is the game loop's business.
func (t *Trick) Points() (int, error) {
	if !t.Complete() {
		return 0, IllegalMoveError("cannot compute points of an incomplete trick")
	}
	points := 0
	for _, p := range t.plays {
		points += p.Card.Points(t.trump)
	}
	return points, nil
}
