package metrics

import (
	"time"

	"bao/game"
	"bao/searcher"
)

// AgentConfig describes one contestant of an experiment. Only the fields
// its Kind uses are read.
type AgentConfig struct {
	ID         int
	Kind       string
	Episodes   int
	Duration   time.Duration
	Goroutines int
	Cutoff     int
	Parallel   bool
}

type MoveMetric struct {
	Step     int
	Player   int // Player tag
	Index    int
	Captured int
	Outcome  game.Outcome
	Think    time.Duration // Time the agent took to pick

	// Zero unless the agent reports its search
	searcher.SearchMetric
}

type GameMetric struct {
	Winner    int // Player tag, 0 if unfinished
	Turns     int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}
