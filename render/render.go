// Package render draws the board as text: player 2's half on top, player 1's
// half below, each as two rows of eight slots with index headers.
package render

import (
	"fmt"
	"io"
	"strings"

	"bao/game"
)

const rule = "-----------------------------------------"

// Board writes the current state of g to w.
func Board(w io.Writer, g game.View) error {
	p1 := g.Player(game.Player1)
	p2 := g.Player(game.Player2)
	active := g.Turn()

	var b strings.Builder

	marker(&b, p2.Name, active == game.Player2)

	// Player 2 sits opposite, so its back row reads right to left on top
	indexRow(&b, descending(0, 8))
	b.WriteString(rule + "\n")
	slotRow(&b, p2.Board, descending(0, 8))
	b.WriteString("\n")
	b.WriteString(rule + "\n")
	indexRow(&b, ascending(8, 16))
	b.WriteString(rule + "\n")
	slotRow(&b, p2.Board, ascending(8, 16))
	fmt.Fprintf(&b, " Stones: %d\n", p2.Board.Sum())

	fmt.Fprintf(&b, "==================================================== Round: %d (%s)\n", g.TurnCount(), g.Direction())

	slotRow(&b, p1.Board, descending(8, 16))
	fmt.Fprintf(&b, " Stones: %d\n", p1.Board.Sum())
	b.WriteString(rule + "\n")
	indexRow(&b, descending(8, 16))
	b.WriteString(rule + "\n")
	slotRow(&b, p1.Board, ascending(0, 8))
	b.WriteString("\n")
	b.WriteString(rule + "\n")
	indexRow(&b, ascending(0, 8))

	marker(&b, p1.Name, active == game.Player1)

	_, err := io.WriteString(w, b.String())
	return err
}

func marker(b *strings.Builder, name string, active bool) {
	left, right := "", ""
	if active {
		left, right = "->", "<-"
	}
	fmt.Fprintf(b, "           %2s%s%2s\n", left, name, right)
}

func indexRow(b *strings.Builder, indices []int) {
	b.WriteString("|")
	for _, i := range indices {
		fmt.Fprintf(b, " %2d |", i)
	}
	b.WriteString("\n")
}

func slotRow(b *strings.Builder, board game.BoardHalf, indices []int) {
	b.WriteString("|")
	for _, i := range indices {
		fmt.Fprintf(b, " %2d |", board[i])
	}
}

func ascending(from, to int) []int {
	indices := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		indices = append(indices, i)
	}
	return indices
}

func descending(from, to int) []int {
	indices := ascending(from, to)
	for i, j := 0, len(indices)-1; i < j; i, j = i+1, j-1 {
		indices[i], indices[j] = indices[j], indices[i]
	}
	return indices
}
