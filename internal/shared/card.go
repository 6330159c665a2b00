package shared

import "strings"

// Suit represents the suit of a card. The numeric value is only a stable
// display/indexing order; no suit outranks another except through trump.
type Suit int

const (
	Diamonds Suit = iota
	Spades
	Hearts
	Clubs
)

// Suits returns all four suits in index order.
func Suits() [4]Suit {
	return [4]Suit{Diamonds, Spades, Hearts, Clubs}
}

func (s Suit) String() string {
	switch s {
	case Diamonds:
		return "♢"
	case Spades:
		return "♠"
	case Hearts:
		return "♡"
	case Clubs:
		return "♣"
	}
	return "?"
}

// Rank represents the rank of a card. Values run 6 (Six) through 14 (Ace).
type Rank int

const (
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

// Ranks returns all nine ranks in plain order.
func Ranks() [9]Rank {
	return [9]Rank{Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
}

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	if r >= Six && r <= Ten {
		return [5]string{"6", "7", "8", "9", "10"}[r-Six]
	}
	return "?"
}

// plainOrder[rank-6] is the strength order of a rank in a non-trump suit.
var plainOrder = [9]int{0, 1, 2, 3, 4, 5, 6, 7, 8}

// trumpOrder[rank-6] is the strength order of a rank in the trump suit:
// J > 9 > A > K > Q > 10 > 8 > 7 > 6.
var trumpOrder = [9]int{0, 1, 2, 7, 3, 8, 4, 5, 6}

// PlainOrder returns the rank's strength order (0..8) outside trump.
func (r Rank) PlainOrder() int {
	return plainOrder[r-Six]
}

// TrumpOrder returns the rank's strength order (0..8) inside the trump suit.
func (r Rank) TrumpOrder() int {
	return trumpOrder[r-Six]
}

// Card represents a single playing card. Cards are immutable value types,
// comparable with ==.
type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// OrderValue is a global display/sort order. The suit stride is 10, not 9,
// so that the ace of one suit and the six of the next never look adjacent
// when scanning for sequences.
func (c Card) OrderValue() int {
	return c.Rank.PlainOrder() + int(c.Suit)*10
}

// Points returns the card's point value given the trump suit. Summed over
// the full 36-card deck this is 152 for every choice of trump.
func (c Card) Points(trump Suit) int {
	if c.Suit == trump {
		switch c.Rank {
		case Jack:
			return 20
		case Nine:
			return 14
		}
	}
	switch c.Rank {
	case Ace:
		return 11
	case King:
		return 4
	case Queen:
		return 3
	case Jack:
		return 2
	case Ten:
		return 10
	}
	return 0
}

// strength is the card's power within a trick. Any trump outranks any
// non-trump; cards neither of the trump nor the served suit have no power.
func (c Card) strength(served, trump Suit) int {
	if c.Suit == trump {
		return c.Rank.TrumpOrder() + 9
	}
	if c.Suit == served {
		return c.Rank.PlainOrder() + 1
	}
	return 0
}

// Beats reports whether c wins over other given the served and trump suits.
// The comparison is >=, so a challenger takes a strength tie; between cards
// of the served or trump suits ties never arise in practice.
func (c Card) Beats(other Card, served, trump Suit) bool {
	return c.strength(served, trump) >= other.strength(served, trump)
}

// ParseSuit parses a suit token: the letters d/s/h/c (any case) or the
// unicode suit glyphs.
func ParseSuit(token string) (Suit, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "d", "♢", "♦":
		return Diamonds, nil
	case "s", "♠":
		return Spades, nil
	case "h", "♡", "♥":
		return Hearts, nil
	case "c", "♣":
		return Clubs, nil
	}
	return 0, &InvalidCardError{Token: token}
}

// ParseCard parses a card token like "7d", "10♠" or "Jh": a rank (6..10 or
// J/Q/K/A, any case) followed by a suit token.
func ParseCard(token string) (Card, error) {
	t := strings.TrimSpace(token)
	runes := []rune(t)
	if len(runes) < 2 {
		return Card{}, &InvalidCardError{Token: token}
	}
	// The suit is the last rune; anything before it is the rank.
	suit, err := ParseSuit(string(runes[len(runes)-1]))
	if err != nil {
		return Card{}, &InvalidCardError{Token: token}
	}
	var rank Rank
	switch strings.ToUpper(string(runes[:len(runes)-1])) {
	case "6":
		rank = Six
	case "7":
		rank = Seven
	case "8":
		rank = Eight
	case "9":
		rank = Nine
	case "10":
		rank = Ten
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "A":
		rank = Ace
	default:
		return Card{}, &InvalidCardError{Token: token}
	}
	return Card{Rank: rank, Suit: suit}, nil
}
