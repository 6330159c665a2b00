package shared

import "github.com/google/uuid"

// Team represents two partners sitting opposite each other: seats {0,2}
// form one team, seats {1,3} the other. The score only ever grows.
type Team struct {
	ID    string `json:"id"`
	Seats [2]int `json:"seats"`
	Score int    `json:"score"`
}

// NewTeam creates a team for the given pair of seats.
func NewTeam(seat1, seat2 int) *Team {
	return &Team{
		ID:    uuid.NewString(),
		Seats: [2]int{seat1, seat2},
	}
}

// HasSeat reports whether the seat belongs to this team.
func (t *Team) HasSeat(seat int) bool {
	return t.Seats[0] == seat || t.Seats[1] == seat
}

// AddScore adds points to the team's total score. Points are never negative.
func (t *Team) AddScore(points int) {
	t.Score += points
}

// HasWon reports whether the team has reached the goal score.
func (t *Team) HasWon(goal int) bool {
	return t.Score >= goal
}
