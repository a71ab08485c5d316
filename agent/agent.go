// Package agent holds the decision makers that drive a game.Game: console
// input, uniform random, greedy capture maximization, a trained network and
// Monte Carlo tree search.
package agent

import (
	"errors"

	"bao/game"
)

var (
	ErrNoLegalIndex = errors.New("no legal bowl index")
	ErrNaNScore     = errors.New("model returned NaN score")
	ErrInputClosed  = errors.New("input closed")
)

var (
	_ game.Agent = (*Human)(nil)
	_ game.Agent = (*Random)(nil)
	_ game.Agent = (*Maximize)(nil)
	_ game.Agent = (*Network)(nil)
	_ game.Agent = (*Search)(nil)
)
