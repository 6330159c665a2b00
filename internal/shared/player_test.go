package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedAgent plays and chooses exactly what it is told to, legal or not.
type scriptedAgent struct {
	trump   Suit
	pass    bool
	card    Card
	rewards []int
}

func (a *scriptedAgent) ChooseTrump(ChooseTrumpState) (Suit, bool) { return a.trump, a.pass }
func (a *scriptedAgent) PlayCard(PlayCardState) Card               { return a.card }
func (a *scriptedAgent) TrickEnded(points int, final bool)         { a.rewards = append(a.rewards, points) }

func TestPlayerPlay(t *testing.T) {
	agent := &scriptedAgent{card: Card{Ace, Spades}}
	player := NewPlayer("north", 0, agent)

	// Playing before a deal is a contract violation.
	_, err := player.Play(Hearts, 0, nil, nil)
	assert.True(t, IsIllegalMove(err))

	hand, err := NewHand(NewDeck().Cards()[9:18]) // the spade suit
	require.NoError(t, err)
	player.Give(hand)

	card, err := player.Play(Hearts, 0, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, Card{Ace, Spades}, card)
	assert.Equal(t, 8, player.Hand().Len())

	// The card is gone; choosing it again breaks the contract.
	_, err = player.Play(Hearts, 0, nil, nil)
	require.Error(t, err)
	assert.True(t, IsIllegalMove(err))
	assert.Contains(t, err.Error(), "north")
}

func TestPlayerPlayIllegalChoice(t *testing.T) {
	// The agent insists on a club while holding servable spades.
	agent := &scriptedAgent{card: Card{Eight, Clubs}}
	player := NewPlayer("east", 1, agent)

	hand := newTestHand(t, Card{Ace, Spades}, Card{Eight, Clubs})
	player.Give(hand)

	_, err := player.Play(Hearts, 0, []Card{{Six, Spades}}, nil)
	require.Error(t, err)
	assert.True(t, IsIllegalMove(err))
	// The hand is untouched after a rejected choice.
	assert.Equal(t, 2, player.Hand().Len())
}

func TestPlayerChooseTrump(t *testing.T) {
	agent := &scriptedAgent{trump: Clubs}
	player := NewPlayer("south", 2, agent)

	_, _, err := player.ChooseTrump(true)
	assert.True(t, IsIllegalMove(err), "choosing trump before a deal must fail")

	hand, err := NewHand(NewDeck().Cards()[:9])
	require.NoError(t, err)
	player.Give(hand)

	suit, pass, err := player.ChooseTrump(false)
	require.NoError(t, err)
	assert.Equal(t, Clubs, suit)
	assert.False(t, pass)

	agent.pass = true
	_, pass, err = player.ChooseTrump(true)
	require.NoError(t, err)
	assert.True(t, pass)

	// Passing when the choice was already passed to us is not allowed.
	_, _, err = player.ChooseTrump(false)
	require.Error(t, err)
	assert.True(t, IsIllegalMove(err))
}

func TestPlayerHas7OfDiamonds(t *testing.T) {
	player := NewPlayer("west", 3, &scriptedAgent{})
	assert.False(t, player.Has7OfDiamonds())

	hand, err := NewHand(NewDeck().Cards()[:9]) // the diamond suit
	require.NoError(t, err)
	player.Give(hand)
	assert.True(t, player.Has7OfDiamonds())

	hand, err = NewHand(NewDeck().Cards()[9:18])
	require.NoError(t, err)
	player.Give(hand)
	assert.False(t, player.Has7OfDiamonds())
}

func TestPlayerReward(t *testing.T) {
	agent := &scriptedAgent{}
	player := NewPlayer("north", 0, agent)
	player.Reward(21, false)
	player.Reward(-26, true)
	assert.Equal(t, []int{21, -26}, agent.rewards)
}
