package game

// Player is a named participant and the board half it owns.
type Player struct {
	Name  string
	Tag   int // Identifies the player in results, e.g. 1 or 2
	Board BoardHalf
}

// NewPlayer creates a player with a standard seeded board
func NewPlayer(name string, tag int) Player {
	return Player{
		Name:  name,
		Tag:   tag,
		Board: NewBoardHalf(),
	}
}

// Turn names the seat whose move it is.
type Turn int

const (
	Player1 Turn = iota + 1
	Player2
)

func (t Turn) String() string {
	if t == Player1 {
		return "player1"
	}
	return "player2"
}

// Other returns the opposing seat
func (t Turn) Other() Turn {
	if t == Player1 {
		return Player2
	}
	return Player1
}
