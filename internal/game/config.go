package game

import "fmt"

// DefaultGoal is the score a team must reach to win the match.
const DefaultGoal = 1000

// Config parameterizes a match.
type Config struct {
	// Goal is the winning score (0 => DefaultGoal).
	Goal int

	// Seed for the match RNG (0 => time-based).
	Seed uint64

	// Names of the four players, in seat order. Seats 0 and 2 are partners,
	// as are 1 and 3.
	Names [4]string
}

func (c Config) validate() error {
	if c.Goal < 0 {
		return fmt.Errorf("Goal must be >= 0")
	}
	seen := map[string]bool{}
	for _, name := range c.Names {
		if name == "" {
			return fmt.Errorf("all four player names must be set")
		}
		if seen[name] {
			return fmt.Errorf("player names must be unique, %q repeats", name)
		}
		seen[name] = true
	}
	return nil
}
