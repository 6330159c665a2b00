package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"jass-game/internal/protocol"
	"jass-game/internal/shared"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// State represents the current phase of the match state machine.
type State string

const (
	Dealing       State = "Dealing"       // shuffling and handing out cards
	ChoosingTrump State = "ChoosingTrump" // the chooser (or their partner) picks trump
	Playing       State = "Playing"       // the nine tricks of a deal
	Scoring       State = "Scoring"       // end-of-deal bookkeeping
	GameOver      State = "GameOver"      // a team reached the goal
)

// EventSink receives every spectator-feed message the game emits. Nil
// disables the feed.
type EventSink func(message []byte)

// TrickBonus is awarded to the winner of a deal's last trick.
const TrickBonus = 5

// MatchBonus is awarded to a team that wins all nine tricks of a deal.
const MatchBonus = 100

// Result describes a finished match.
type Result struct {
	WinningTeam *shared.Team
	Scores      [2]int
	Deals       int
}

// Game drives a full Jass match: deal, trump selection, nine tricks,
// scoring, repeated until a team reaches the goal. All state is confined
// to the goroutine calling Run; agents are invoked synchronously.
type Game struct {
	ID      string
	players [4]*shared.Player
	teams   [2]*shared.Team

	deck  *shared.Deck
	rng   *rand.Rand
	goal  int
	state State

	log  *logrus.Logger
	sink EventSink
}

// NewGame initializes a match between four agents seated in config order.
func NewGame(cfg Config, agents [4]shared.Agent, logger *logrus.Logger, sink EventSink) (*Game, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	for i, a := range agents {
		if a == nil {
			return nil, fmt.Errorf("seat %d has no agent", i)
		}
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	goal := cfg.Goal
	if goal == 0 {
		goal = DefaultGoal
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	g := &Game{
		ID:    uuid.NewString(),
		deck:  shared.NewDeck(),
		rng:   rand.New(rand.NewPCG(seed, seed)),
		goal:  goal,
		state: Dealing,
		log:   logger,
		sink:  sink,
	}
	for i, a := range agents {
		g.players[i] = shared.NewPlayer(cfg.Names[i], i, a)
	}
	g.teams[0] = shared.NewTeam(0, 2)
	g.teams[1] = shared.NewTeam(1, 3)
	return g, nil
}

// State returns the current phase.
func (g *Game) State() State { return g.state }

// Teams returns the two teams.
func (g *Game) Teams() [2]*shared.Team { return g.teams }

// Players returns the four players in seat order.
func (g *Game) Players() [4]*shared.Player { return g.players }

// Run plays the match to completion. Any IllegalMoveError bubbling up from
// a hand, trick or player marks an agent or driver bug: the match aborts
// and the error is returned untouched.
func (g *Game) Run() (*Result, error) {
	g.emitGameStart()
	g.log.WithFields(logrus.Fields{"game": g.ID, "goal": g.goal}).Info("match started")

	chooserSeat := -1
	deals := 0
	for {
		deals++
		if err := g.deal(deals, &chooserSeat); err != nil {
			return nil, err
		}

		trump, chooserForDeal, err := g.chooseTrump(chooserSeat)
		if err != nil {
			return nil, err
		}

		if err := g.playTricks(deals, trump, chooserForDeal); err != nil {
			return nil, err
		}

		g.state = Scoring
		if winner := g.winningTeam(); winner != nil {
			g.state = GameOver
			result := &Result{
				WinningTeam: winner,
				Scores:      [2]int{g.teams[0].Score, g.teams[1].Score},
				Deals:       deals,
			}
			g.emit(protocol.TypeGameOver, protocol.GameOverPayload{
				WinningTeamID: winner.ID,
				FinalScoreT1:  g.teams[0].Score,
				FinalScoreT2:  g.teams[1].Score,
				Deals:         deals,
			})
			g.log.WithFields(logrus.Fields{
				"game":  g.ID,
				"team":  winner.ID,
				"score": winner.Score,
				"deals": deals,
			}).Info("match over")
			return result, nil
		}

		// The chooser rotates one seat per deal, regardless of outcomes.
		chooserSeat = (chooserSeat + 1) % 4
	}
}

// deal shuffles and distributes four fresh hands. On the very first deal
// the chooser is whoever holds the 7♢.
func (g *Game) deal(dealNumber int, chooserSeat *int) error {
	g.state = Dealing
	g.deck.Shuffle(g.rng)
	hands, err := g.deck.Deal()
	if err != nil {
		return err
	}
	for i, hand := range hands {
		g.players[i].Give(hand)
	}
	if *chooserSeat < 0 {
		for _, p := range g.players {
			if p.Has7OfDiamonds() {
				*chooserSeat = p.Seat
				break
			}
		}
	}
	g.emit(protocol.TypeDeal, protocol.DealPayload{
		DealNumber:  dealNumber,
		ChooserSeat: *chooserSeat,
	})
	return nil
}

// chooseTrump runs trump selection, allowing one chibre: the chooser may
// pass to their partner, who must then decide. Returns the trump and the
// seat that actually chose it.
func (g *Game) chooseTrump(chooserSeat int) (shared.Suit, int, error) {
	g.state = ChoosingTrump
	trump, passed, err := g.players[chooserSeat].ChooseTrump(true)
	if err != nil {
		return 0, 0, err
	}
	seat := chooserSeat
	if passed {
		seat = (chooserSeat + 2) % 4
		trump, _, err = g.players[seat].ChooseTrump(false)
		if err != nil {
			return 0, 0, err
		}
	}
	g.emit(protocol.TypeTrumpChosen, protocol.TrumpChosenPayload{
		Trump:       trump.String(),
		ChooserSeat: seat,
		Passed:      passed,
	})
	g.log.WithFields(logrus.Fields{
		"game":    g.ID,
		"chooser": g.players[seat].Name,
		"trump":   trump.String(),
		"chibre":  passed,
	}).Debug("trump chosen")
	return trump, seat, nil
}

// playTricks runs the nine tricks of one deal and applies all scoring,
// including the last-trick and match bonuses.
func (g *Game) playTricks(dealNumber int, trump shared.Suit, chooserSeat int) error {
	g.state = Playing
	leader := chooserSeat
	var priorTricks [][]shared.Card
	var trickWins [2]int

	for trickIdx := 0; trickIdx < 9; trickIdx++ {
		trick := shared.NewTrick(trump)
		for i := 0; i < 4; i++ {
			seat := (leader + i) % 4
			card, err := g.players[seat].Play(trump, chooserSeat, trick.Cards(), priorTricks)
			if err != nil {
				return err
			}
			if err := trick.AddCard(card, seat); err != nil {
				return err
			}
			g.emit(protocol.TypeCardPlayed, protocol.CardPlayedPayload{
				Seat: seat,
				Name: g.players[seat].Name,
				Card: card.String(),
			})
		}

		winnerSeat, err := trick.Winner()
		if err != nil {
			return err
		}
		points, err := trick.Points()
		if err != nil {
			return err
		}
		final := trickIdx == 8
		if final {
			points += TrickBonus
		}

		winnerTeamIdx := winnerSeat % 2
		g.teams[winnerTeamIdx].AddScore(points)
		trickWins[winnerTeamIdx]++

		for _, p := range g.players {
			if g.teams[winnerTeamIdx].HasSeat(p.Seat) {
				p.Reward(points, final)
			} else {
				p.Reward(-points, final)
			}
		}

		cards := trick.Cards()
		cardNames := make([]string, len(cards))
		for i, c := range cards {
			cardNames[i] = c.String()
		}
		g.emit(protocol.TypeTrickEnd, protocol.TrickEndPayload{
			TrickNumber: trickIdx,
			WinnerSeat:  winnerSeat,
			WinnerName:  g.players[winnerSeat].Name,
			Cards:       cardNames,
			Points:      points,
		})
		g.log.WithFields(logrus.Fields{
			"game":   g.ID,
			"trick":  trickIdx,
			"winner": g.players[winnerSeat].Name,
			"points": points,
		}).Debug("trick won")

		priorTricks = append(priorTricks, cardsBySeat(trick))
		leader = winnerSeat
	}

	matchBonus := false
	for teamIdx, wins := range trickWins {
		if wins == 9 {
			g.teams[teamIdx].AddScore(MatchBonus)
			matchBonus = true
		}
	}

	g.emit(protocol.TypeRoundEnd, protocol.RoundEndPayload{
		DealNumber: dealNumber,
		Team1Score: g.teams[0].Score,
		Team2Score: g.teams[1].Score,
		MatchBonus: matchBonus,
	})
	g.log.WithFields(logrus.Fields{
		"game":   g.ID,
		"deal":   dealNumber,
		"team1":  g.teams[0].Score,
		"team2":  g.teams[1].Score,
		"match":  matchBonus,
	}).Info("deal scored")
	return nil
}

// winningTeam returns the team that reached the goal, or nil. When both
// teams cross in the same deal the higher score wins.
func (g *Game) winningTeam() *shared.Team {
	var best *shared.Team
	for _, t := range g.teams {
		if !t.HasWon(g.goal) {
			continue
		}
		if best == nil || t.Score > best.Score {
			best = t
		}
	}
	return best
}

// cardsBySeat renders a completed trick as four cards indexed by seat.
func cardsBySeat(trick *shared.Trick) []shared.Card {
	out := make([]shared.Card, 4)
	for _, p := range trick.Plays() {
		out[p.Seat] = p.Card
	}
	return out
}

func (g *Game) emitGameStart() {
	playerInfos := make([]protocol.PlayerInfo, 4)
	for i, p := range g.players {
		playerInfos[i] = protocol.PlayerInfo{Name: p.Name, Seat: p.Seat}
	}
	teamInfos := make([]protocol.TeamInfo, 2)
	for i, t := range g.teams {
		teamInfos[i] = protocol.TeamInfo{
			ID: t.ID,
			Players: []protocol.PlayerInfo{
				playerInfos[t.Seats[0]],
				playerInfos[t.Seats[1]],
			},
			Score: t.Score,
		}
	}
	g.emit(protocol.TypeGameStart, protocol.GameStartPayload{
		GameID:  g.ID,
		Players: playerInfos,
		Teams:   teamInfos,
		Goal:    g.goal,
	})
}

func (g *Game) emit(msgType string, payload interface{}) {
	if g.sink == nil {
		return
	}
	msg, err := protocol.NewMessage(msgType, payload)
	if err != nil {
		g.log.WithError(err).WithField("type", msgType).Warn("dropping feed message")
		return
	}
	g.sink(msg)
}
