package searcher

import (
	"sync"
	"time"

	"bao/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(mcts *MCTS)

type MCTS struct {
	goroutines int
	duration   time.Duration
	episodes   int
	cutoff     int
	seed       uint64
	searches   uint64
	evaluate   game.Evaluate
	metrics    Collector
}

func WithGoroutines(goroutines int) Option {
	return func(m *MCTS) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

func WithCutoff(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.seed = seed
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *MCTS) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		goroutines: 1,
		cutoff:     MaxCutoff,
		evaluate:   game.EvaluateStones,
		metrics:    noCollector{},
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

// FindMove searches position and returns the most visited index.
// Ties go to the lowest index.
func (m *MCTS) FindMove(position game.Position) (int, SearchMetric) {
	visits, metric := m.Simulate(position)

	best := -1
	for index, n := range visits {
		if position.IsLegal(index) && (best < 0 || n > visits[best]) {
			best = index
		}
	}
	if metric != (SearchMetric{}) {
		metric.Visits = visits[best]
	}
	return best, metric
}

// Simulate builds a fresh tree for position and returns root visit counts
// per index.
func (m *MCTS) Simulate(position game.Position) ([game.BoardSize]int, SearchMetric) {
	if len(position.LegalIndices()) == 0 {
		panic("no legal move to search")
	}
	root := newDecision(nil, position, game.None)
	m.searches++
	seed := m.seed + m.searches*uint64(m.goroutines)

	m.metrics.Start(m.goroutines, m.cutoff)
	if m.episodes > 0 {
		m.iterate(root, position, seed)
	} else {
		m.countdown(root, position, seed)
	}
	metric := m.metrics.Complete()

	log.Debug().Msgf("searched %d episodes in %s", metric.Episodes, metric.Duration)
	return root.policy(), metric
}

func (m *MCTS) iterate(root *decision, position game.Position, seed uint64) {
	task := make(chan any, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func(rng *rand.Rand) {
			defer wg.Done()

			for range task {
				m.simulate(root, position, rng)
			}
		}(rand.New(rand.NewSource(seed + uint64(i))))
	}

	wg.Wait()
}

func (m *MCTS) countdown(root *decision, position game.Position, seed uint64) {
	start := time.Now()
	var wg sync.WaitGroup

	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func(rng *rand.Rand) {
			defer wg.Done()

			for time.Since(start) < m.duration {
				m.simulate(root, position, rng)
			}
		}(rand.New(rand.NewSource(seed + uint64(i))))
	}

	wg.Wait()
}

func (m *MCTS) simulate(root *decision, position game.Position, rng *rand.Rand) {
	node, position := selectThenExpand(root, position)

	var reward float64
	full := false
	switch node.outcome {
	case game.Won:
		reward = Win
	case game.Lost:
		reward = Loss
	default:
		// Rollout scores the opponent's side; the node belongs to the mover before it
		var score float64
		score, full = rollout(position, m.cutoff, m.evaluate, rng)
		reward = -score
	}

	backup(node, reward)
	m.metrics.Episode(node.outcome != game.None, full)
}

func selectThenExpand(root *decision, position game.Position) (*decision, game.Position) {
	node := root
	for {
		child, next, stop := node.selectOrExpand(position)
		if stop {
			return child, next
		}
		node, position = child, next
	}
}

// rollout plays random legal moves from position and scores the result from
// the perspective of position's mover. full reports whether the game ended
// before the cutoff.
func rollout(position game.Position, cutoff int, evaluate game.Evaluate, rng *rand.Rand) (score float64, full bool) {
	sign := 1.0
	for depth := 0; depth < cutoff; depth++ {
		moves := position.LegalIndices()
		next, result := position.Play(moves[rng.Intn(len(moves))]) // Random rollout policy
		switch result.Outcome {
		case game.Won:
			return sign * Win, true
		case game.Lost:
			return sign * Loss, true
		}
		position = next
		sign = -sign
	}

	// At cutoff, evaluate from the current mover's perspective
	return sign * evaluate(position), false
}

func backup(node *decision, reward float64) {
	for node != nil {
		node = node.backup(reward)
		reward = -reward
	}
}
