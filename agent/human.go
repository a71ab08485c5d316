package agent

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"bao/game"
	"bao/render"

	"github.com/rs/zerolog/log"
)

// Human reads bowl indices from a line-oriented reader, reprompting until
// the input names a legal bowl.
type Human struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{in: bufio.NewScanner(in), out: out}
}

// PickIndex panics with ErrInputClosed once the reader is exhausted.
func (h *Human) PickIndex(g game.View) int {
	if err := render.Board(h.out, g); err != nil {
		log.Warn().Err(err).Msg("failed to render board")
	}

	player := g.Current()
	for {
		fmt.Fprintf(h.out, "%s, enter bowl index: \n", player.Name)
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				panic(fmt.Errorf("%w: %v", ErrInputClosed, err))
			}
			panic(ErrInputClosed)
		}

		index, err := strconv.Atoi(strings.TrimSpace(h.in.Text()))
		if err != nil || index < 0 || index >= game.BoardSize {
			fmt.Fprintf(h.out, "Please enter a valid index between 0 and %d.\n", game.BoardSize-1)
			continue
		}
		if !player.Board.IsValidIndex(index) {
			fmt.Fprintf(h.out, "Bowl must contain at least %d stones.\n", game.MinSowing)
			continue
		}
		return index
	}
}
