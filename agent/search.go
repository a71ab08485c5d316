package agent

import (
	"bao/game"
	"bao/searcher"

	"github.com/rs/zerolog/log"
)

// Search picks moves with Monte Carlo tree search. A Search keeps a search
// counter and must not be shared between concurrent games.
type Search struct {
	mcts *searcher.MCTS
	last searcher.SearchMetric
}

// NewSearch always collects search metrics; see LastMetric.
func NewSearch(options ...searcher.Option) *Search {
	options = append([]searcher.Option{searcher.WithMetrics()}, options...)
	return &Search{mcts: searcher.NewMCTS(options...)}
}

func (s *Search) PickIndex(g game.View) int {
	index, metric := s.mcts.FindMove(g.Position())
	s.last = metric
	log.Debug().Msgf("search picked %d after %d episodes (%d visits, %s)", index, metric.Episodes, metric.Visits, metric.Duration)
	return index
}

// LastMetric returns the metric of the most recent PickIndex.
func (s *Search) LastMetric() searcher.SearchMetric {
	return s.last
}
