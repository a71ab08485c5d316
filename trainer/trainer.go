// Package trainer improves a network agent by self-play against a fixed
// opponent.
package trainer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bao/agent"
	"bao/engine"
	"bao/game"

	"github.com/patrikeh/go-deep"
	"github.com/patrikeh/go-deep/training"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const (
	RewardWin  = 1.0
	RewardLoss = 0.0
	MaxTurns   = 2000
)

type Config struct {
	Direction      game.Direction
	Mode           game.Mode
	Episodes       int
	LearningRate   float64
	Epsilon        float64 // Initial exploration rate, decays linearly to zero
	BatchSize      int     // Examples collected before each training step
	ReportInterval int
	Seed           uint64
	// ModelPath is written at every report and at the end. Empty disables
	// saving.
	ModelPath string
	Hidden    []int
}

func DefaultConfig() Config {
	return Config{
		Direction:      game.CW,
		Mode:           game.Easy,
		Episodes:       200,
		LearningRate:   0.01,
		Epsilon:        0.2,
		BatchSize:      256,
		ReportInterval: 50,
		Hidden:         DefaultHidden,
	}
}

type Stats struct {
	Episodes   int
	Wins       int
	Losses     int
	Unfinished int
	Examples   int // Examples trained on
	StartTime  time.Time
}

func (s Stats) WinRate() float64 {
	if s.Episodes == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Episodes)
}

type Trainer struct {
	config   Config
	network  *deep.Neural
	opponent game.Agent
	rng      *rand.Rand
}

// New trains network as player 2 against opponent.
func New(config Config, network *deep.Neural, opponent game.Agent) *Trainer {
	return &Trainer{
		config:   config,
		network:  network,
		opponent: opponent,
		rng:      rand.New(rand.NewSource(config.Seed)),
	}
}

func (t *Trainer) Run(ctx context.Context) (Stats, error) {
	stats := Stats{StartTime: time.Now()}
	var examples training.Examples

	log.Info().Msgf("starting self-play training: %d episodes, learning rate %g, batch size %d",
		t.config.Episodes, t.config.LearningRate, t.config.BatchSize)

	for episode := 0; episode < t.config.Episodes; episode++ {
		epsilon := t.config.Epsilon * (1 - float64(episode)/float64(t.config.Episodes))
		learner := &learner{network: t.network, epsilon: epsilon, rng: t.rng}

		won, err := t.playEpisode(ctx, learner)
		stats.Episodes++
		switch {
		case errors.Is(err, engine.ErrTurnLimit):
			stats.Unfinished++
		case err != nil:
			return stats, fmt.Errorf("episode %d: %w", episode+1, err)
		case won:
			stats.Wins++
			examples = append(examples, learner.examples(RewardWin)...)
		default:
			stats.Losses++
			examples = append(examples, learner.examples(RewardLoss)...)
		}

		if len(examples) >= t.config.BatchSize {
			stats.Examples += t.train(examples)
			examples = nil
		}

		if t.config.ReportInterval > 0 && (episode+1)%t.config.ReportInterval == 0 {
			t.report(stats)
			if err := t.save(); err != nil {
				return stats, err
			}
		}
	}

	if len(examples) > 0 {
		stats.Examples += t.train(examples)
	}
	t.report(stats)
	return stats, t.save()
}

func (t *Trainer) playEpisode(ctx context.Context, learner *learner) (bool, error) {
	g := game.NewGame(t.config.Direction, t.config.Mode, game.NewPlayer("Opponent", 1), game.NewPlayer("Network", 2))
	e := engine.NewLocal(g, t.opponent, learner)
	e.MaxTurns = MaxTurns

	result, _, err := e.Run(ctx)
	if err != nil {
		return false, err
	}
	return result.Winner.Tag == 2, nil
}

func (t *Trainer) train(examples training.Examples) int {
	examples.Shuffle()
	trainer := training.NewTrainer(training.NewSGD(t.config.LearningRate, 0.5, 0.0, false), 1)
	trainer.Train(t.network, examples, nil, 1)
	log.Debug().Msgf("trained on %d examples", len(examples))
	return len(examples)
}

func (t *Trainer) report(stats Stats) {
	log.Info().Msgf("[%d/%d] win rate %.1f%% (W:%d L:%d U:%d) | examples %d | elapsed %s",
		stats.Episodes, t.config.Episodes, stats.WinRate()*100, stats.Wins, stats.Losses, stats.Unfinished,
		stats.Examples, time.Since(stats.StartTime).Round(time.Millisecond))
}

func (t *Trainer) save() error {
	if t.config.ModelPath == "" {
		return nil
	}
	err := SaveModel(t.config.ModelPath, t.network, t.config.Hidden)
	if err != nil {
		return err
	}
	log.Info().Msgf("saved model to %s", t.config.ModelPath)
	return nil
}

// learner plays the network epsilon-greedily and remembers each decision
type learner struct {
	network *deep.Neural
	epsilon float64
	rng     *rand.Rand
	moves   []decision
}

type decision struct {
	features []float64
	scores   []float64
	index    int
}

func (l *learner) PickIndex(g game.View) int {
	position := g.Position()
	features := position.Features()
	scores := l.network.Predict(features)

	var index int
	if l.rng.Float64() < l.epsilon {
		legal := position.LegalIndices()
		index = legal[l.rng.Intn(len(legal))]
	} else {
		index = agent.BestScored(position, scores)
	}

	l.moves = append(l.moves, decision{features: features, scores: scores, index: index})
	return index
}

// examples pulls the chosen output of every move toward reward and keeps
// the other outputs at their predictions.
func (l *learner) examples(reward float64) training.Examples {
	examples := make(training.Examples, 0, len(l.moves))
	for _, move := range l.moves {
		response := append([]float64{}, move.scores...)
		response[move.index] = reward
		examples = append(examples, training.Example{Input: move.features, Response: response})
	}
	return examples
}
