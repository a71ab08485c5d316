package agent

import (
	"testing"

	"bao/game"

	"github.com/stretchr/testify/require"
)

const (
	full      = "<2,2,2,2,2,2,2,2,2,2,2,2,2,2,2,2>"
	twoMoves  = "<2,1,0,0,0,2,0,0,0,0,0,0,0,0,0,0>"
	winner    = "<0,0,0,0,0,0,0,0,0,0,2,0,0,2,0,1>"
	frontFour = "<0,0,0,0,0,0,0,0,4,0,0,0,0,0,0,0>"
	// Capturing bowl 8 from slot 15 leaves bowl 0, so no win in normal mode
	backedFour = "<2,0,0,0,0,0,0,0,4,0,0,0,0,0,0,0>"
	noMoves    = "<1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1>"
)

func board(t *testing.T, notation string) game.BoardHalf {
	t.Helper()
	b, err := game.ParseBoardHalf(notation)
	require.NoError(t, err)
	return b
}

// view starts a game with player 1 to move on the given boards.
func view(t *testing.T, mode game.Mode, mover, opponent string) game.View {
	t.Helper()
	p1 := game.NewPlayer("Alice", 1)
	p1.Board = board(t, mover)
	p2 := game.NewPlayer("Bob", 2)
	p2.Board = board(t, opponent)
	return game.NewGame(game.CCW, mode, p1, p2).View()
}

func requirePanicIs(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %T", r)
		require.ErrorIs(t, err, target)
	}()
	f()
}
