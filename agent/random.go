package agent

import (
	"bao/game"

	"golang.org/x/exp/rand"
)

// Random rejection-samples uniform indices until one is legal.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) PickIndex(g game.View) int {
	position := g.Position()
	if len(position.LegalIndices()) == 0 {
		panic(ErrNoLegalIndex)
	}
	for {
		index := r.rng.Intn(game.BoardSize)
		if position.IsLegal(index) {
			return index
		}
	}
}
