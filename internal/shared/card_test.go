package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointConservation(t *testing.T) {
	// 152 points in the deck regardless of the trump suit.
	for _, trump := range Suits() {
		total := 0
		for _, card := range NewDeck().Cards() {
			total += card.Points(trump)
		}
		assert.Equal(t, 152, total, "trump %s", trump)
	}
}

func TestPoints(t *testing.T) {
	testCases := []struct {
		card   Card
		trump  Suit
		points int
	}{
		{Card{Ace, Spades}, Hearts, 11},
		{Card{King, Spades}, Hearts, 4},
		{Card{Queen, Spades}, Hearts, 3},
		{Card{Jack, Spades}, Hearts, 2},
		{Card{Ten, Spades}, Hearts, 10},
		{Card{Nine, Spades}, Hearts, 0},
		{Card{Six, Spades}, Hearts, 0},
		{Card{Jack, Hearts}, Hearts, 20},
		{Card{Nine, Hearts}, Hearts, 14},
		{Card{Ace, Hearts}, Hearts, 11},
		{Card{Ten, Hearts}, Hearts, 10},
		{Card{Eight, Hearts}, Hearts, 0},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.points, tc.card.Points(tc.trump), "%s with trump %s", tc.card, tc.trump)
	}
}

func TestTrumpOrder(t *testing.T) {
	// J > 9 > A > K > Q > 10 > 8 > 7 > 6 inside trump.
	strongToWeak := []Rank{Jack, Nine, Ace, King, Queen, Ten, Eight, Seven, Six}
	for i := 0; i < len(strongToWeak)-1; i++ {
		assert.Greater(t, strongToWeak[i].TrumpOrder(), strongToWeak[i+1].TrumpOrder(),
			"%s should outrank %s in trump", strongToWeak[i], strongToWeak[i+1])
	}
}

func TestPlainOrder(t *testing.T) {
	ranks := Ranks()
	for i := 0; i < len(ranks)-1; i++ {
		assert.Less(t, ranks[i].PlainOrder(), ranks[i+1].PlainOrder())
	}
}

func TestBeats(t *testing.T) {
	trump := Hearts
	served := Spades

	// The trump jack beats every other card in the deck.
	jack := Card{Jack, Hearts}
	for _, other := range NewDeck().Cards() {
		if other == jack {
			continue
		}
		assert.True(t, jack.Beats(other, served, trump), "J♡ must beat %s", other)
		assert.False(t, other.Beats(jack, served, trump), "%s must not beat J♡", other)
	}

	// The trump nine beats every trump except the jack.
	nine := Card{Nine, Hearts}
	for _, rank := range Ranks() {
		other := Card{rank, Hearts}
		if rank == Nine {
			continue
		}
		if rank == Jack {
			assert.False(t, nine.Beats(other, served, trump))
		} else {
			assert.True(t, nine.Beats(other, served, trump), "9♡ must beat %s", other)
		}
	}

	// Plain ordering applies between trumps outside the jack/nine specials.
	assert.True(t, Card{Ace, Hearts}.Beats(Card{King, Hearts}, served, trump))

	// Any trump beats any card of the served suit.
	assert.True(t, Card{Six, Hearts}.Beats(Card{Ace, Spades}, served, trump))

	// Serving beats discarding.
	assert.True(t, Card{Six, Spades}.Beats(Card{Ace, Clubs}, served, trump))

	// Beats is >=: a card compared against itself wins.
	assert.True(t, Card{Ace, Clubs}.Beats(Card{Ace, Clubs}, served, trump))

	// Two worthless discards also "beat" each other both ways.
	assert.True(t, Card{Six, Clubs}.Beats(Card{Seven, Diamonds}, served, trump))
	assert.True(t, Card{Seven, Diamonds}.Beats(Card{Six, Clubs}, served, trump))
}

func TestOrderValue(t *testing.T) {
	// Ace and six of adjacent suits stay two apart for sequence scans.
	assert.Equal(t, 2, Card{Six, Spades}.OrderValue()-Card{Ace, Diamonds}.OrderValue())

	seen := map[int]bool{}
	for _, c := range NewDeck().Cards() {
		assert.False(t, seen[c.OrderValue()], "duplicate order value for %s", c)
		seen[c.OrderValue()] = true
	}
}

func TestParseCard(t *testing.T) {
	testCases := []struct {
		token string
		card  Card
	}{
		{"7d", Card{Seven, Diamonds}},
		{"7D", Card{Seven, Diamonds}},
		{"10s", Card{Ten, Spades}},
		{"Jh", Card{Jack, Hearts}},
		{"jH", Card{Jack, Hearts}},
		{"A♣", Card{Ace, Clubs}},
		{"q♡", Card{Queen, Hearts}},
		{" 6c ", Card{Six, Clubs}},
	}
	for _, tc := range testCases {
		card, err := ParseCard(tc.token)
		require.NoError(t, err, "token %q", tc.token)
		assert.Equal(t, tc.card, card)
	}

	for _, bad := range []string{"", "d", "5d", "11s", "Jx", "10", "joker"} {
		_, err := ParseCard(bad)
		require.Error(t, err, "token %q", bad)
		var invalid *InvalidCardError
		assert.ErrorAs(t, err, &invalid)
	}
}

func TestParseSuit(t *testing.T) {
	for token, want := range map[string]Suit{
		"d": Diamonds, "S": Spades, "♡": Hearts, "c": Clubs, "♠": Spades,
	} {
		suit, err := ParseSuit(token)
		require.NoError(t, err)
		assert.Equal(t, want, suit)
	}
	_, err := ParseSuit("x")
	assert.Error(t, err)
}

func TestCardString(t *testing.T) {
	assert.Equal(t, "6♠", Card{Six, Spades}.String())
	assert.Equal(t, "A♣", Card{Ace, Clubs}.String())
	assert.Equal(t, "10♢", Card{Ten, Diamonds}.String())
	assert.Equal(t, "J♡", Card{Jack, Hearts}.String())
}
