package agent

import (
	"bytes"
	"strings"
	"testing"

	"bao/game"

	"github.com/stretchr/testify/require"
)

func TestHumanPickIndex(t *testing.T) {
	t.Run("reprompts until a legal bowl", func(t *testing.T) {
		var out bytes.Buffer
		h := NewHuman(strings.NewReader("abc\n-3\n16\n1\n 5 \n"), &out)

		index := h.PickIndex(view(t, game.Normal, twoMoves, full))

		require.Equal(t, 5, index)
		require.Equal(t, 5, strings.Count(out.String(), "Alice, enter bowl index:"))
		require.Equal(t, 3, strings.Count(out.String(), "Please enter a valid index between 0 and 15."))
		require.Equal(t, 1, strings.Count(out.String(), "Bowl must contain at least 2 stones."))
	})

	t.Run("renders the board first", func(t *testing.T) {
		var out bytes.Buffer
		h := NewHuman(strings.NewReader("0\n"), &out)

		require.Equal(t, 0, h.PickIndex(view(t, game.Normal, twoMoves, full)))
		require.True(t, strings.HasPrefix(out.String(), "           "))
		require.Contains(t, out.String(), "Round: 1")
	})

	t.Run("closed input", func(t *testing.T) {
		h := NewHuman(strings.NewReader("x\n"), &bytes.Buffer{})

		requirePanicIs(t, ErrInputClosed, func() {
			h.PickIndex(view(t, game.Normal, twoMoves, full))
		})
	})
}
