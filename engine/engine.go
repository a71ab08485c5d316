package engine

import (
	"context"
	"errors"

	"bao/experiments/metrics"
	"bao/game"
	"bao/searcher"
)

var (
	ErrAgentFailed = errors.New("agent failed to pick a bowl")
	ErrTurnLimit   = errors.New("turn limit reached")
)

type Engine interface {
	// Run plays until a player wins, the turn limit is reached or ctx is done
	Run(ctx context.Context) (game.GameResult, []metrics.MoveMetric, error)
}

// SearchReporter is implemented by agents that search before picking. Local
// copies the metric of each pick into the move it records.
type SearchReporter interface {
	LastMetric() searcher.SearchMetric
}
