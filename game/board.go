package game

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	BoardSize     = 16 // Slots per board half
	FrontRowStart = 8  // First capture-eligible slot
	InitialStones = 2  // Stones per slot at game start
	MinSowing     = 2  // Minimum stones a slot needs to start a move
)

// BoardHalf holds one player's 16 slots. Indices 0-7 are the back row,
// 8-15 the front row facing the opponent. Being an array, assigning a
// BoardHalf copies it.
type BoardHalf [BoardSize]int

var notation = regexp.MustCompile(`^\s*<\s*(\d+(\s*,\s*\d+)*)\s*>\s*$`)

// NewBoardHalf returns a board half seeded for a standard game
func NewBoardHalf() BoardHalf {
	var b BoardHalf
	for i := range b {
		b[i] = InitialStones
	}
	return b
}

// ParseBoardHalf reads the notation produced by BoardHalf.String
func ParseBoardHalf(s string) (BoardHalf, error) {
	var b BoardHalf
	match := notation.FindStringSubmatch(s)
	if match == nil {
		return b, errors.New("invalid board notation")
	}
	parts := strings.Split(match[1], ",")
	if len(parts) != BoardSize {
		return b, fmt.Errorf("invalid board size: got %d slots, want %d", len(parts), BoardSize)
	}
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return b, fmt.Errorf("slot %d: %w", i, err)
		}
		b[i] = n
	}
	return b, nil
}

func (b BoardHalf) String() string {
	var buf bytes.Buffer
	buf.WriteByte('<')
	for i, stones := range b {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Itoa(stones))
	}
	buf.WriteByte('>')
	return buf.String()
}

// IsValidIndex reports whether a move may start at index
func (b *BoardHalf) IsValidIndex(index int) bool {
	return index >= 0 && index < BoardSize && b[index] >= MinSowing
}

// LegalIndices lists every index a move may start from, in ascending order
func (b *BoardHalf) LegalIndices() []int {
	indices := make([]int, 0, BoardSize)
	for i := range b {
		if b.IsValidIndex(i) {
			indices = append(indices, i)
		}
	}
	return indices
}

// Sum counts all stones on the board half
func (b *BoardHalf) Sum() int {
	total := 0
	for _, stones := range b {
		total += stones
	}
	return total
}

// FrontRowSum counts the stones in the capture-eligible row
func (b *BoardHalf) FrontRowSum() int {
	total := 0
	for _, stones := range b[FrontRowStart:] {
		total += stones
	}
	return total
}

// IsFrontRow reports whether index lies in the capture-eligible row
func IsFrontRow(index int) bool {
	return index >= FrontRowStart && index < BoardSize
}

// Mirror maps a front-row index to the opponent's front-row slot directly
// opposite it.
func Mirror(index int) int {
	return (BoardSize - 1 - index) + FrontRowStart
}
