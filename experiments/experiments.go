package experiments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bao/agent"
	"bao/engine"
	"bao/experiments/metrics"
	"bao/game"
	"bao/searcher"

	"github.com/rs/zerolog/log"
)

// Agent kinds
const (
	Random   = "random"
	Maximize = "maximize"
	Search   = "search"
	Network  = "network"
)

const (
	NumGames   = 30   // Per match up
	MaxTurns   = 2000 // Games running longer are recorded as unfinished
	TimeBudget = 10 * time.Millisecond
)

type Settings struct {
	Direction game.Direction
	Mode      game.Mode
	Games     int // Per match up, NumGames if zero
	Seed      uint64
	// Model backs network agents
	Model agent.Scorer
	// OutputDir receives the CSV files; nothing is written if empty
	OutputDir string
}

// Tally counts the results of one match up.
type Tally struct {
	Agent1     int // AgentConfig.ID
	Agent2     int // AgentConfig.ID
	FirstWins  int
	SecondWins int
	Unfinished int
}

func (t Tally) Games() int {
	return t.FirstWins + t.SecondWins + t.Unfinished
}

// RunRandomSelfPlay pits two random agents against each other and counts
// how often each seat wins.
func RunRandomSelfPlay(ctx context.Context, s Settings) (Tally, error) {
	config := metrics.AgentConfig{ID: 1, Kind: Random}
	tallies, err := runExperiment(ctx, "random_self_play", s, []metrics.AgentConfig{config}, [][2]metrics.AgentConfig{{config, config}})
	if err != nil {
		return Tally{}, err
	}
	return tallies[0], nil
}

// RunBaselines plays every ordered pair of random, maximize and search
// agents.
func RunBaselines(ctx context.Context, s Settings, episodes, goroutines int) ([]Tally, error) {
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: Random},
		{ID: 2, Kind: Maximize},
		{ID: 3, Kind: Search, Episodes: episodes, Goroutines: goroutines, Cutoff: 50},
	}
	if s.Model != nil {
		configs = append(configs, metrics.AgentConfig{ID: 4, Kind: Network})
	}

	matchUps := [][2]metrics.AgentConfig{}
	for _, config1 := range configs {
		for _, config2 := range configs {
			if config1.ID != config2.ID {
				matchUps = append(matchUps, [2]metrics.AgentConfig{config1, config2})
			}
		}
	}

	return runExperiment(ctx, "baselines", s, configs, matchUps)
}

// RunParallelization pairs search agents with growing worker counts
// against the sequential baseline under the same time budget.
func RunParallelization(ctx context.Context, s Settings) ([]Tally, error) {
	baseline := metrics.AgentConfig{ID: 0, Kind: Search, Goroutines: 1, Duration: TimeBudget}
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: Search, Goroutines: 2, Duration: TimeBudget},
		{ID: 2, Kind: Search, Goroutines: 4, Duration: TimeBudget},
		{ID: 3, Kind: Search, Goroutines: 8, Duration: TimeBudget},
	}

	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	return runExperiment(ctx, "parallelization", s, append(configs, baseline), matchUps)
}

func runExperiment(ctx context.Context, name string, s Settings, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig) ([]Tally, error) {
	games := s.Games
	if games <= 0 {
		games = NumGames
	}

	count := 0
	tallies := []Tally{}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		config1, config2 := matchUp[0], matchUp[1]
		tally := Tally{Agent1: config1.ID, Agent2: config2.ID}

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < games; i++ {
			count++
			seed := s.Seed + uint64(count)*2
			gameMetric, moveMetrics, err := runGame(ctx, s, config1, config2, seed)
			if err != nil {
				return nil, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			switch gameMetric.Winner {
			case 1:
				tally.FirstWins++
			case 2:
				tally.SecondWins++
			default:
				tally.Unfinished++
			}

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Debug().Msgf("completed matchup %d of %d game %d with winner: %d", mi+1, len(matchUps), i+1, gameMetric.Winner)
		}

		tallies = append(tallies, tally)
		log.Info().Msgf("completed matchup %d of %d: first=%d second=%d unfinished=%d",
			mi+1, len(matchUps), tally.FirstWins, tally.SecondWins, tally.Unfinished)
	}

	log.Info().Msgf("completed %s experiment", name)

	if s.OutputDir == "" {
		return tallies, nil
	}
	return tallies, store(s.OutputDir, name, configs, gameRecords, moveRecords)
}

func store(root, name string, configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	err = writer.WriteGameRecords(games)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	err = writer.WriteMoveRecords(moves)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}

	log.Info().Msgf("stored experiment records in %s", writer.Dir())
	return nil
}

// runGame plays one game and reports a zero winner if it hit MaxTurns
func runGame(ctx context.Context, s Settings, config1, config2 metrics.AgentConfig, seed uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	agent1, err := NewAgent(config1, seed, s.Model)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	agent2, err := NewAgent(config2, seed+1, s.Model)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	g := game.NewGame(s.Direction, s.Mode, game.NewPlayer("Player 1", 1), game.NewPlayer("Player 2", 2))
	e := engine.NewLocal(g, agent1, agent2)
	e.MaxTurns = MaxTurns

	start := time.Now()
	result, moves, err := e.Run(ctx)
	end := time.Now()

	gameMetric := metrics.GameMetric{
		Turns:     len(moves),
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	}
	switch {
	case errors.Is(err, engine.ErrTurnLimit):
	case err != nil:
		return metrics.GameMetric{}, nil, err
	default:
		gameMetric.Winner = result.Winner.Tag
	}
	return gameMetric, moves, nil
}

// NewAgent builds the agent a config describes.
func NewAgent(config metrics.AgentConfig, seed uint64, model agent.Scorer) (game.Agent, error) {
	switch config.Kind {
	case Random:
		return agent.NewRandom(seed), nil
	case Maximize:
		return &agent.Maximize{Parallel: config.Parallel}, nil
	case Search:
		return agent.NewSearch(searchOptions(config, seed)...), nil
	case Network:
		if model == nil {
			return nil, fmt.Errorf("agent %d: network agent needs a model", config.ID)
		}
		return agent.NewNetwork(model), nil
	default:
		return nil, fmt.Errorf("agent %d: unknown kind %q", config.ID, config.Kind)
	}
}

func searchOptions(config metrics.AgentConfig, seed uint64) []searcher.Option {
	options := []searcher.Option{searcher.WithSeed(seed)}

	if config.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(config.Episodes))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Episodes <= 0 && config.Duration <= 0 {
		options = append(options, searcher.WithDuration(TimeBudget))
	}
	if config.Cutoff > 0 {
		options = append(options, searcher.WithCutoff(config.Cutoff))
	}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	return options
}
