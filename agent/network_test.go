package agent

import (
	"math"
	"testing"

	"bao/game"

	"github.com/patrikeh/go-deep"
	"github.com/stretchr/testify/require"
)

type fixedScorer struct {
	scores []float64
	input  []float64
}

func (f *fixedScorer) Predict(input []float64) []float64 {
	f.input = input
	return f.scores
}

func scoresWith(values map[int]float64) []float64 {
	scores := make([]float64, game.BoardSize)
	for i, v := range values {
		scores[i] = v
	}
	return scores
}

func TestNetworkPickIndex(t *testing.T) {
	t.Run("highest legal score", func(t *testing.T) {
		scorer := &fixedScorer{scores: scoresWith(map[int]float64{1: 9, 5: 0.5, 0: 0.25})}
		v := view(t, game.Normal, twoMoves, full)

		index := NewNetwork(scorer).PickIndex(v)

		require.Equal(t, 5, index, "bowl 1 holds a single stone")
		require.Equal(t, v.Position().Features(), scorer.input)
	})

	t.Run("first highest wins ties", func(t *testing.T) {
		scorer := &fixedScorer{scores: scoresWith(map[int]float64{0: 0.5, 5: 0.5})}

		require.Equal(t, 0, NewNetwork(scorer).PickIndex(view(t, game.Normal, twoMoves, full)))
	})

	t.Run("NaN score", func(t *testing.T) {
		scorer := &fixedScorer{scores: scoresWith(map[int]float64{12: math.NaN()})}

		requirePanicIs(t, ErrNaNScore, func() {
			NewNetwork(scorer).PickIndex(view(t, game.Normal, twoMoves, full))
		})
	})

	t.Run("wrong output size", func(t *testing.T) {
		scorer := &fixedScorer{scores: []float64{1, 2}}

		require.Panics(t, func() {
			NewNetwork(scorer).PickIndex(view(t, game.Normal, twoMoves, full))
		})
	})

	t.Run("untrained network plays legally", func(t *testing.T) {
		model := deep.NewNeural(&deep.Config{
			Inputs:     game.FeatureSize,
			Layout:     []int{8, game.BoardSize},
			Activation: deep.ActivationReLU,
			Mode:       deep.ModeRegression,
			Weight:     deep.NewNormal(0.0, 0.1),
			Bias:       true,
		})
		v := view(t, game.Normal, twoMoves, full)

		require.Contains(t, []int{0, 5}, NewNetwork(model).PickIndex(v))
	})
}
