package agent

import (
	"math"
	"sync"

	"bao/game"
)

// WinPriority outranks any capture so a winning move is always preferred.
const WinPriority = math.MaxInt

// Unplayable marks an index that is not a legal start.
const Unplayable = -1

// Maximize greedily picks the move that captures the most stones, trying
// every legal index as a dry run on a copy of the position.
type Maximize struct {
	// Parallel evaluates candidate moves concurrently. The choice does not
	// depend on it.
	Parallel bool
}

func (m *Maximize) PickIndex(g game.View) int {
	return Best(m.Scores(g.Position()))
}

// Scores simulates each legal index and returns its captured stones,
// WinPriority for a win, or Unplayable for an illegal index.
func (m *Maximize) Scores(position game.Position) [game.BoardSize]int {
	var scores [game.BoardSize]int
	score := func(index int) {
		if !position.IsLegal(index) {
			scores[index] = Unplayable
			return
		}
		_, _, result := position.DryRun(index)
		if result.Outcome == game.Won {
			scores[index] = WinPriority
			return
		}
		scores[index] = result.Captured
	}

	if !m.Parallel {
		for index := range scores {
			score(index)
		}
		return scores
	}

	var wg sync.WaitGroup
	for index := range scores {
		wg.Add(1)
		go func(index int) {
			defer wg.Done()
			score(index)
		}(index)
	}
	wg.Wait()
	return scores
}

// Best returns the first index with the strictly greatest score, skipping
// Unplayable ones.
func Best(scores [game.BoardSize]int) int {
	best := -1
	for index, score := range scores {
		if score == Unplayable {
			continue
		}
		if best < 0 || score > scores[best] {
			best = index
		}
	}
	if best < 0 {
		panic(ErrNoLegalIndex)
	}
	return best
}
