package engine

import (
	"context"
	"fmt"
	"time"

	"bao/experiments/metrics"
	"bao/game"

	"github.com/rs/zerolog/log"
)

// Local runs both agents in process. Each decision is made off the
// sequencing goroutine and handed back over a single-slot channel; moves
// are applied only by Run.
type Local struct {
	game   *game.Game
	agents [2]game.Agent

	// MaxTurns stops the game with ErrTurnLimit once exceeded. Zero means no
	// limit.
	MaxTurns int
	// OnMove, if set, is called on the sequencing goroutine after each move
	OnMove func(g game.View, move metrics.MoveMetric)
}

type pick struct {
	index int
	err   error
}

var _ Engine = (*Local)(nil)

func NewLocal(g *game.Game, agent1, agent2 game.Agent) *Local {
	if agent1 == nil || agent2 == nil {
		panic("need an agent for each player")
	}
	return &Local{
		game:   g,
		agents: [2]game.Agent{agent1, agent2},
	}
}

func (e *Local) Run(ctx context.Context) (game.GameResult, []metrics.MoveMetric, error) {
	var moves []metrics.MoveMetric

	log.Info().Msgf("%s vs %s (%s, %s), %s is starting",
		e.game.Player(game.Player1).Name, e.game.Player(game.Player2).Name,
		e.game.Direction(), e.game.Mode(), e.game.Current().Name)

	for !e.game.Over() {
		if err := ctx.Err(); err != nil {
			return game.GameResult{}, moves, err
		}
		if e.MaxTurns > 0 && e.game.TurnCount() > e.MaxTurns {
			return game.GameResult{}, moves, fmt.Errorf("%w: %d", ErrTurnLimit, e.MaxTurns)
		}

		player := e.game.Current()
		start := time.Now()
		agent := e.agents[e.game.Turn()-1]
		index, err := e.decide(ctx, agent)
		if err != nil {
			return game.GameResult{}, moves, err
		}
		think := time.Since(start)

		step := e.game.TurnCount()
		result, err := e.game.Advance(index)
		if err != nil {
			return game.GameResult{}, moves, err
		}

		move := metrics.MoveMetric{
			Step:     step,
			Player:   player.Tag,
			Index:    index,
			Captured: result.Captured,
			Outcome:  result.Outcome,
			Think:    think,
		}
		if reporter, ok := agent.(SearchReporter); ok {
			move.SearchMetric = reporter.LastMetric()
		}
		moves = append(moves, move)
		log.Debug().Msgf("turn %d: %s played %d, captured %d (%s)", step, player.Name, index, result.Captured, result.Outcome)

		if e.OnMove != nil {
			e.OnMove(e.game.View(), move)
		}
	}

	result, _ := e.game.Result()
	log.Info().Msgf("%s won after %d turns", result.Winner.Name, result.TurnCount)
	return result, moves, nil
}

// decide asks agent for an index without blocking the caller past ctx. A
// panicking agent is reported as ErrAgentFailed.
func (e *Local) decide(ctx context.Context, agent game.Agent) (int, error) {
	pickCh := make(chan pick, 1)
	view := e.game.View()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				if err, ok := r.(error); ok {
					pickCh <- pick{err: fmt.Errorf("%w: %w", ErrAgentFailed, err)}
					return
				}
				pickCh <- pick{err: fmt.Errorf("%w: %v", ErrAgentFailed, r)}
			}
		}()
		pickCh <- pick{index: agent.PickIndex(view)}
	}()

	select {
	case <-ctx.Done():
		return -1, ctx.Err()
	case p := <-pickCh:
		return p.index, p.err
	}
}
