// Package config reads run settings from the environment, then lets
// command-line flags override them.
package config

import (
	"crypto/rand"
	"encoding/binary"
	"flag"
	"fmt"

	"bao/game"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Direction      game.Direction `env:"BAO_DIRECTION"       envDefault:"cw"`
	Mode           game.Mode      `env:"BAO_MODE"            envDefault:"easy"`
	Games          int            `env:"BAO_GAMES"           envDefault:"1000"`
	Seed           uint64         `env:"BAO_SEED"`
	Model          string         `env:"BAO_MODEL"`
	Episodes       int            `env:"BAO_EPISODES"        envDefault:"200"`
	LearningRate   float64        `env:"BAO_LEARNING_RATE"   envDefault:"0.01"`
	OutputDir      string         `env:"BAO_OUTPUT_DIR"      envDefault:"experiments"`
	SearchEpisodes int            `env:"BAO_SEARCH_EPISODES" envDefault:"400"`
	Goroutines     int            `env:"BAO_GOROUTINES"      envDefault:"4"`
	LogLevel       string         `env:"BAO_LOG_LEVEL"       envDefault:"info"`
}

// ParseConfig parses the environment, then flags from args, into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.TextVar(&cfg.Direction, "direction", cfg.Direction, "sowing direction (cw|ccw)")
	fs.TextVar(&cfg.Mode, "mode", cfg.Mode, "rules (normal|easy)")
	fs.IntVar(&cfg.Games, "games", cfg.Games, "games per matchup")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 for a random one")
	fs.StringVar(&cfg.Model, "model", cfg.Model, "network model path")
	fs.IntVar(&cfg.Episodes, "episodes", cfg.Episodes, "training episodes")
	fs.Float64Var(&cfg.LearningRate, "learning-rate", cfg.LearningRate, "training learning rate")
	fs.StringVar(&cfg.OutputDir, "output", cfg.OutputDir, "experiment output directory")
	fs.IntVar(&cfg.SearchEpisodes, "search-episodes", cfg.SearchEpisodes, "MCTS episodes per move")
	fs.IntVar(&cfg.Goroutines, "goroutines", cfg.Goroutines, "MCTS worker goroutines")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Seed == 0 {
		seed, err := randomSeed()
		if err != nil {
			return Config{}, err
		}
		cfg.Seed = seed
	}
	return cfg, nil
}

func randomSeed() (uint64, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]) | 1, nil
}
