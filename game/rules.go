package game

import (
	"fmt"
	"strings"
)

// Direction fixes the sowing order around each player's ring of slots.
type Direction int

const (
	CW Direction = iota
	CCW
)

// Next returns the slot following index when sowing in direction d.
func (d Direction) Next(index int) int {
	switch d {
	case CW:
		if index == 0 {
			return BoardSize - 1
		}
		return index - 1
	case CCW:
		if index == BoardSize-1 {
			return 0
		}
		return index + 1
	default:
		panic(fmt.Sprintf("unknown direction %d", int(d)))
	}
}

// Reverse returns the opposite direction
func (d Direction) Reverse() Direction {
	if d == CW {
		return CCW
	}
	return CW
}

// Encode maps the direction to the numeric input used by trained models
func (d Direction) Encode() float64 {
	if d == CCW {
		return 1
	}
	return 0
}

func (d Direction) String() string {
	switch d {
	case CW:
		return "cw"
	case CCW:
		return "ccw"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cw":
		return CW, nil
	case "ccw":
		return CCW, nil
	default:
		return CW, fmt.Errorf("unknown direction %q", s)
	}
}

// Mode selects how much a capture sweeps and when a player has lost.
type Mode int

const (
	Normal Mode = iota // a capture also sweeps the mirror's back-row partner
	Easy               // an empty front row already loses
)

func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Easy:
		return "easy"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal":
		return Normal, nil
	case "easy":
		return Easy, nil
	default:
		return Normal, fmt.Errorf("unknown mode %q", s)
	}
}

// HasLost reports whether board is a losing position under mode.
//
// Normal: no slot holds enough stones to start a move.
// Easy: the Normal condition, or every front-row slot is empty.
func HasLost(mode Mode, board *BoardHalf) bool {
	stuck := true
	for _, stones := range board {
		if stones >= MinSowing {
			stuck = false
			break
		}
	}
	if stuck {
		return true
	}

	if mode == Easy {
		for _, stones := range board[FrontRowStart:] {
			if stones != 0 {
				return false
			}
		}
		return true
	}

	return false
}
