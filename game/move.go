package game

import (
	"errors"
	"fmt"
)

// ErrIllegalIndex is the panic value (wrapped) raised when a move starts
// from an index that is out of range or holds fewer than two stones.
var ErrIllegalIndex = errors.New("illegal bowl index")

// Outcome classifies how a move ended for the player who made it.
type Outcome int

const (
	None Outcome = iota // Game continues
	Lost                // Mover is left in a losing position
	Won                 // Opponent was reduced to a losing position
)

func (o Outcome) String() string {
	switch o {
	case None:
		return "none"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// MoveResult is the outcome of one move together with the stones captured
// from the opponent while making it.
type MoveResult struct {
	Outcome  Outcome
	Captured int
}

func illegalIndex(index int, board *BoardHalf) error {
	if index < 0 || index >= BoardSize {
		return fmt.Errorf("%w: %d out of range 0-%d", ErrIllegalIndex, index, BoardSize-1)
	}
	return fmt.Errorf("%w: bowl %d holds %d stones, need at least %d", ErrIllegalIndex, index, board[index], MinSowing)
}

// ApplyMove sows the stones of mover[start] along direction, relaying and
// capturing until the hand is empty, and reports the outcome.
//
// A move stops as soon as the opponent is beaten. Stones still in hand at
// that point go back to the last slot they were lifted from, so the mover
// keeps every stone it held and the board total stays unchanged.
//
// mover and opponent must not alias. Callers validate start beforehand; an
// illegal start panics.
func ApplyMove(direction Direction, mode Mode, start int, mover, opponent *BoardHalf) MoveResult {
	if !mover.IsValidIndex(start) {
		panic(illegalIndex(start, mover))
	}

	index := start
	hand := mover[index]
	mover[index] = 0
	captured := 0

	for hand > 0 {
		index = direction.Next(index)
		mover[index]++
		hand--

		if hand > 0 || mover[index] < MinSowing {
			continue
		}

		// Relay: pick the stones back up and keep sowing from here
		hand = mover[index]
		mover[index] = 0

		if !IsFrontRow(index) {
			continue
		}

		mirror := Mirror(index)
		steal := opponent[mirror]
		opponent[mirror] = 0
		if mode == Normal {
			partner := BoardSize - 1 - mirror
			steal += opponent[partner]
			opponent[partner] = 0
		}
		hand += steal
		captured += steal

		// The move ends as soon as the opponent is beaten, even mid-hand.
		// Unsown stones stay in the slot they were lifted from.
		if HasLost(mode, opponent) {
			mover[index] += hand
			return MoveResult{Outcome: Won, Captured: captured}
		}
	}

	if HasLost(mode, mover) {
		return MoveResult{Outcome: Lost, Captured: captured}
	}
	return MoveResult{Outcome: None, Captured: captured}
}
