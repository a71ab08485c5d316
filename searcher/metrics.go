package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarises one call to Simulate or FindMove.
type SearchMetric struct {
	Goroutines   int
	Cutoff       int
	Duration     time.Duration
	Episodes     int
	FullPlayouts int // Rollouts that ended the game before the cutoff
	Decided      int // Episodes whose descent stopped on a finished game
	Visits       int // Root visits of the picked index, set by FindMove
}

// Collector counts episodes while workers search one tree.
type Collector interface {
	Start(goroutines, cutoff int)
	Episode(decided, fullPlayout bool)
	Complete() SearchMetric
}

type counter struct {
	goroutines int
	cutoff     int
	started    time.Time

	episodes     atomic.Int64
	fullPlayouts atomic.Int64
	decided      atomic.Int64
}

func NewCollector() Collector {
	return &counter{}
}

func (c *counter) Start(goroutines, cutoff int) {
	c.goroutines, c.cutoff = goroutines, cutoff
	c.started = time.Now()
	c.episodes.Store(0)
	c.fullPlayouts.Store(0)
	c.decided.Store(0)
}

func (c *counter) Episode(decided, fullPlayout bool) {
	c.episodes.Add(1)
	if decided {
		c.decided.Add(1)
	}
	if fullPlayout {
		c.fullPlayouts.Add(1)
	}
}

func (c *counter) Complete() SearchMetric {
	return SearchMetric{
		Goroutines:   c.goroutines,
		Cutoff:       c.cutoff,
		Duration:     time.Since(c.started),
		Episodes:     int(c.episodes.Load()),
		FullPlayouts: int(c.fullPlayouts.Load()),
		Decided:      int(c.decided.Load()),
	}
}

// noCollector discards everything; searches without WithMetrics report a
// zero SearchMetric.
type noCollector struct{}

func (noCollector) Start(int, int)         {}
func (noCollector) Episode(bool, bool)     {}
func (noCollector) Complete() SearchMetric { return SearchMetric{} }
