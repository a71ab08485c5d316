package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"bao/agent"
	"bao/config"
	"bao/engine"
	"bao/experiments"
	"bao/experiments/metrics"
	"bao/game"
	"bao/render"
	"bao/searcher"
	"bao/trainer"

	"github.com/patrikeh/go-deep"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const usage = "usage: bao play|random|experiment|train|watch [flags]"

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	mode := os.Args[1]

	cfg, err := config.ParseConfig(flag.NewFlagSet(mode, flag.ExitOnError), os.Args[2:])
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch mode {
	case "play":
		err = play(ctx, cfg)
	case "random":
		err = random(ctx, cfg)
	case "experiment":
		err = experiment(ctx, cfg)
	case "train":
		err = train(ctx, cfg)
	case "watch":
		err = watch(ctx, cfg)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", mode)
	}
}

func newGame(cfg config.Config, name1, name2 string) *game.Game {
	return game.NewGame(cfg.Direction, cfg.Mode, game.NewPlayer(name1, 1), game.NewPlayer(name2, 2))
}

// play sets a human on stdin against the maximizing agent
func play(ctx context.Context, cfg config.Config) error {
	g := newGame(cfg, "Player 1", "Maximize")
	e := engine.NewLocal(g, agent.NewHuman(os.Stdin, os.Stdout), &agent.Maximize{})

	result, _, err := e.Run(ctx)
	if errors.Is(err, agent.ErrInputClosed) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := render.Board(os.Stdout, g.View()); err != nil {
		return err
	}
	fmt.Printf("%s wins after %d turns\n", result.Winner.Name, result.TurnCount)
	return nil
}

func random(ctx context.Context, cfg config.Config) error {
	tally, err := experiments.RunRandomSelfPlay(ctx, experiments.Settings{
		Direction: cfg.Direction,
		Mode:      cfg.Mode,
		Games:     cfg.Games,
		Seed:      cfg.Seed,
	})
	if err != nil {
		return err
	}

	fmt.Printf("First Player: %d\n", tally.FirstWins)
	fmt.Printf("Second Player: %d\n", tally.SecondWins)
	if tally.Unfinished > 0 {
		fmt.Printf("Unfinished: %d\n", tally.Unfinished)
	}
	return nil
}

func experiment(ctx context.Context, cfg config.Config) error {
	model, _, err := loadModelIfExists(cfg)
	if err != nil {
		return err
	}

	settings := experiments.Settings{
		Direction: cfg.Direction,
		Mode:      cfg.Mode,
		Games:     cfg.Games,
		Seed:      cfg.Seed,
		OutputDir: cfg.OutputDir,
	}
	if model != nil {
		settings.Model = model
	}

	tallies, err := experiments.RunBaselines(ctx, settings, cfg.SearchEpisodes, cfg.Goroutines)
	if err != nil {
		return err
	}
	for _, tally := range tallies {
		fmt.Printf("agent %d vs agent %d: %d-%d (%d unfinished)\n",
			tally.Agent1, tally.Agent2, tally.FirstWins, tally.SecondWins, tally.Unfinished)
	}
	return nil
}

func train(ctx context.Context, cfg config.Config) error {
	path, err := modelPath(cfg)
	if err != nil {
		return err
	}

	tc := trainer.DefaultConfig()
	tc.Direction = cfg.Direction
	tc.Mode = cfg.Mode
	tc.Episodes = cfg.Episodes
	tc.LearningRate = cfg.LearningRate
	tc.Seed = cfg.Seed
	tc.ModelPath = path

	network, hidden, err := loadModelIfExists(cfg)
	if err != nil {
		return err
	}
	if network != nil {
		tc.Hidden = hidden
	} else {
		log.Info().Msgf("creating new model at %s", path)
		network = trainer.NewModel(tc.Hidden)
	}

	stats, err := trainer.New(tc, network, agent.NewRandom(cfg.Seed)).Run(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Win rate: %.1f%% over %d episodes\n", stats.WinRate()*100, stats.Episodes)
	return nil
}

// watch renders the maximizing agent against tree search
func watch(ctx context.Context, cfg config.Config) error {
	g := newGame(cfg, "Maximize", "Search")
	search := agent.NewSearch(
		searcher.WithEpisodes(cfg.SearchEpisodes),
		searcher.WithGoroutines(cfg.Goroutines),
		searcher.WithSeed(cfg.Seed),
	)
	e := engine.NewLocal(g, &agent.Maximize{Parallel: true}, search)
	e.OnMove = func(v game.View, move metrics.MoveMetric) {
		fmt.Printf("player %d played %d, captured %d (%s) in %s\n", move.Player, move.Index, move.Captured, move.Outcome, move.Think)
		if move.Episodes > 0 {
			fmt.Printf("  searched %d episodes, %d full playouts, %d visits to the pick\n", move.Episodes, move.FullPlayouts, move.Visits)
		}
		if err := render.Board(os.Stdout, v); err != nil {
			log.Warn().Err(err).Msg("failed to render board")
		}
	}

	result, _, err := e.Run(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s wins after %d turns\n", result.Winner.Name, result.TurnCount)
	return nil
}

func modelPath(cfg config.Config) (string, error) {
	if cfg.Model != "" {
		return cfg.Model, nil
	}
	return trainer.DefaultModelPath()
}

// loadModelIfExists returns nil without error when no model was saved yet
func loadModelIfExists(cfg config.Config) (*deep.Neural, []int, error) {
	path, err := modelPath(cfg)
	if err != nil {
		return nil, nil, err
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, nil, nil
	}
	return trainer.LoadModel(path)
}
