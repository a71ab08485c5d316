package game

// Position is a self-contained snapshot of the board from the point of view
// of the player about to move. It is a value: playing a move on a Position
// never touches live game state.
type Position struct {
	Direction Direction
	Mode      Mode
	Mover     BoardHalf
	Opponent  BoardHalf
}

// LegalIndices lists the indices the mover may start from.
func (p Position) LegalIndices() []int {
	return p.Mover.LegalIndices()
}

// IsLegal reports whether the mover may start from index.
func (p Position) IsLegal(index int) bool {
	return p.Mover.IsValidIndex(index)
}

// DryRun applies index for the mover and returns the resulting boards
// without swapping perspective.
func (p Position) DryRun(index int) (mover, opponent BoardHalf, result MoveResult) {
	mover, opponent = p.Mover, p.Opponent
	result = ApplyMove(p.Direction, p.Mode, index, &mover, &opponent)
	return mover, opponent, result
}

// Play applies index for the mover and returns the position the opponent
// faces next, along with the mover's result.
func (p Position) Play(index int) (Position, MoveResult) {
	mover, opponent, result := p.DryRun(index)
	return Position{
		Direction: p.Direction,
		Mode:      p.Mode,
		Mover:     opponent,
		Opponent:  mover,
	}, result
}

// Features encodes the position as the 33-value input of trained models:
// mover slots, opponent slots, direction.
func (p Position) Features() []float64 {
	features := make([]float64, 0, FeatureSize)
	for _, stones := range p.Mover {
		features = append(features, float64(stones))
	}
	for _, stones := range p.Opponent {
		features = append(features, float64(stones))
	}
	return append(features, p.Direction.Encode())
}

// FeatureSize is the length of Position.Features.
const FeatureSize = 2*BoardSize + 1
