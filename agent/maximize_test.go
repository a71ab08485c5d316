package agent

import (
	"testing"

	"bao/game"

	"github.com/stretchr/testify/require"
)

func TestMaximizeScores(t *testing.T) {
	t.Run("captures and illegal bowls", func(t *testing.T) {
		v := view(t, game.Normal, winner, backedFour)

		scores := (&Maximize{}).Scores(v.Position())

		for index, score := range scores {
			switch index {
			case 10:
				require.Equal(t, 0, score)
			case 13:
				require.Equal(t, 4, score)
			default:
				require.Equal(t, Unplayable, score, "bowl %d", index)
			}
		}
	})

	t.Run("winning move", func(t *testing.T) {
		v := view(t, game.Easy, winner, frontFour)

		scores := (&Maximize{}).Scores(v.Position())

		require.Equal(t, WinPriority, scores[13])
		require.Equal(t, 0, scores[10])
	})

	t.Run("parallel matches sequential", func(t *testing.T) {
		v := game.NewGame(game.CW, game.Normal, game.NewPlayer("a", 1), game.NewPlayer("b", 2)).View()

		require.Equal(t, (&Maximize{}).Scores(v.Position()), (&Maximize{Parallel: true}).Scores(v.Position()))
	})

	t.Run("live state untouched", func(t *testing.T) {
		v := view(t, game.Normal, winner, backedFour)
		before := v.Position()

		(&Maximize{Parallel: true}).Scores(v.Position())

		require.Equal(t, before, v.Position())
	})
}

func TestMaximizePickIndex(t *testing.T) {
	t.Run("largest capture", func(t *testing.T) {
		require.Equal(t, 13, (&Maximize{}).PickIndex(view(t, game.Normal, winner, backedFour)))
	})

	t.Run("parallel largest capture", func(t *testing.T) {
		require.Equal(t, 13, (&Maximize{Parallel: true}).PickIndex(view(t, game.Normal, winner, backedFour)))
	})

	t.Run("no capture picks the first legal bowl", func(t *testing.T) {
		require.Equal(t, 0, (&Maximize{}).PickIndex(view(t, game.Normal, twoMoves, full)))
	})

	t.Run("no legal index", func(t *testing.T) {
		requirePanicIs(t, ErrNoLegalIndex, func() {
			(&Maximize{}).PickIndex(view(t, game.Normal, noMoves, full))
		})
	})
}

func TestBest(t *testing.T) {
	tests := []struct {
		name   string
		scores map[int]int
		want   int
	}{
		{"first strictly greatest wins ties", map[int]int{2: 3, 7: 3, 9: 1}, 2},
		{"win outranks a larger capture", map[int]int{3: 10, 5: WinPriority}, 5},
		{"zero captures are playable", map[int]int{4: 0}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var scores [game.BoardSize]int
			for i := range scores {
				scores[i] = Unplayable
			}
			for i, score := range tt.scores {
				scores[i] = score
			}

			require.Equal(t, tt.want, Best(scores))
		})
	}
}
