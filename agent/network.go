package agent

import (
	"fmt"
	"math"

	"bao/game"

	"github.com/patrikeh/go-deep"
)

// Scorer maps a feature vector to one score per bowl.
type Scorer interface {
	Predict(input []float64) []float64
}

var _ Scorer = (*deep.Neural)(nil)

// Network plays the highest-scoring legal bowl of a trained model.
type Network struct {
	model Scorer
}

func NewNetwork(model Scorer) *Network {
	return &Network{model: model}
}

func (n *Network) PickIndex(g game.View) int {
	position := g.Position()
	return BestScored(position, n.model.Predict(position.Features()))
}

// BestScored returns the legal index with the highest score, the lowest
// index on ties. Any NaN score panics with ErrNaNScore.
func BestScored(position game.Position, scores []float64) int {
	if len(scores) != game.BoardSize {
		panic(fmt.Errorf("model returned %d scores, want %d", len(scores), game.BoardSize))
	}
	for index, score := range scores {
		if math.IsNaN(score) {
			panic(fmt.Errorf("%w: bowl %d", ErrNaNScore, index))
		}
	}

	best := -1
	for index, score := range scores {
		if position.IsLegal(index) && (best < 0 || score > scores[best]) {
			best = index
		}
	}
	if best < 0 {
		panic(ErrNoLegalIndex)
	}
	return best
}
