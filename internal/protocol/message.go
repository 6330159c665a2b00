package protocol

import "encoding/json"

// Message represents a generic spectator-feed message.
type Message struct {
	Type    string          `json:"type"`              // e.g. "trick_end", "game_over"
	Payload json.RawMessage `json:"payload,omitempty"` // raw JSON payload, allows flexible structures
}

// Event types emitted over the feed.
const (
	TypeGameStart   = "game_start"
	TypeDeal        = "deal"
	TypeTrumpChosen = "trump_chosen"
	TypeCardPlayed  = "card_played"
	TypeTrickEnd    = "trick_end"
	TypeRoundEnd    = "round_end"
	TypeGameOver    = "game_over"
)

type PlayerInfo struct {
	Name string `json:"name"`
	Seat int    `json:"seat"`
}

type TeamInfo struct {
	ID      string       `json:"id"`
	Players []PlayerInfo `json:"players"`
	Score   int          `json:"score"`
}

type GameStartPayload struct {
	GameID  string       `json:"game_id"`
	Players []PlayerInfo `json:"players"`
	Teams   []TeamInfo   `json:"teams"`
	Goal    int          `json:"goal"`
}

type DealPayload struct {
	DealNumber  int `json:"deal_number"`
	ChooserSeat int `json:"chooser_seat"`
}

type TrumpChosenPayload struct {
	Trump       string `json:"trump"`
	ChooserSeat int    `json:"chooser_seat"`
	Passed      bool   `json:"passed"` // chibre: the first chooser passed to their partner
}

type CardPlayedPayload struct {
	Seat int    `json:"seat"`
	Name string `json:"name"`
	Card string `json:"card"`
}

type TrickEndPayload struct {
	TrickNumber int      `json:"trick_number"`
	WinnerSeat  int      `json:"winner_seat"`
	WinnerName  string   `json:"winner_name"`
	Cards       []string `json:"cards"`
	Points      int      `json:"points"`
}

type RoundEndPayload struct {
	DealNumber int  `json:"deal_number"`
	Team1Score int  `json:"team1_score"`
	Team2Score int  `json:"team2_score"`
	MatchBonus bool `json:"match_bonus"` // one team took all nine tricks
}

type GameOverPayload struct {
	WinningTeamID string `json:"winning_team_id"`
	FinalScoreT1  int    `json:"final_score_t1"`
	FinalScoreT2  int    `json:"final_score_t2"`
	Deals         int    `json:"deals"`
}

// NewMessage marshals a typed payload into a feed message.
func NewMessage(msgType string, payload interface{}) ([]byte, error) {
	if payload == nil {
		return json.Marshal(Message{Type: msgType})
	}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Message{Type: msgType, Payload: payloadBytes})
}
